// ABOUTME: logrus setup for the fiend CLI and MCP server.
// ABOUTME: Logs go to stderr, or to a lumberjack-rotated file when configured.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams controls where and how logs are written.
type SetupParams struct {
	LogFileName   string
	LogLevel      string
	LogFormatJSON bool
	// Stderr is the fallback output when no log file is set. Defaults to os.Stderr.
	Stderr io.Writer
}

// Setup configures the standard logrus logger. Stdout is never used:
// the CLI prints results there and the MCP server speaks its protocol there.
func Setup(params SetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		out := params.Stderr
		if out == nil {
			out = os.Stderr
		}
		logrus.SetOutput(out)
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		Compress:   true,
	}
	logrus.SetOutput(lumberJackLogger)

	return lumberJackLogger
}

// GetLevel maps a level name to a logrus level. Unknown names give warn,
// which keeps the CLI quiet unless something went wrong.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
