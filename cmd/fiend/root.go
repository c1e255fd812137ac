// ABOUTME: Root Cobra command for the fiend CLI.
// ABOUTME: Owns the store, logging, and tracing lifecycle via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/fitnessfiend/internal/config"
	"github.com/harperreed/fitnessfiend/internal/journal"
	"github.com/harperreed/fitnessfiend/internal/logging"
	"github.com/harperreed/fitnessfiend/internal/storage"
	"github.com/harperreed/fitnessfiend/internal/telemetry/tracing"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	dbPathFlag    string
	logLevelFlag  string
	traceFileFlag string

	repo    *storage.DB
	journ   *journal.Journal
	closers []func(ctx context.Context) error
)

var rootCmd = &cobra.Command{
	Use:     "fiend",
	Short:   "Lifting journal: log exercises, weights, reps, and sets",
	Version: version,
	Long: `Fiend is a CLI for keeping a lifting journal.

Every entry is one exercise with a weight (lbs), reps, sets, and notes.
Numbers that don't parse are stored as 0 rather than rejected.

QUICK START:

  $ fiend add Squat 135 5 3 -n "felt strong"   # Log an entry
  $ fiend add                                   # Prompted entry (on a terminal)
  $ fiend list                                  # Every entry
  $ fiend list -e Squat                         # One exercise, with stats
  $ fiend stats Squat                           # Max weight, avg reps and sets
  $ fiend edit 3 Squat 140 5 3                  # Overwrite entry 3
  $ fiend delete 3                              # Remove entry 3

PROFILE:

  $ fiend profile set --name Sam --weight 180
  $ fiend profile show

MCP INTEGRATION:

  Run 'fiend mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fiend": { "command": "fiend", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries live in SQLite at ~/.local/share/fiend/workouts.db
  (override with --db or data_dir in ~/.config/fiend/config.json).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		switch cmd.Name() {
		case "help", "install-skill", "completion", "__complete":
			return nil
		}
		return openSession()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeSession(cmd.Context())
	},
}

// openSession loads config, sets up logging and tracing, and opens the store.
func openSession() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Apply(config.Overrides{
		DBFile:    dbPathFlag,
		LogLevel:  logLevelFlag,
		TraceFile: traceFileFlag,
	})

	logCloser := logging.Setup(cfg.LoggingParams())
	closers = append(closers, func(context.Context) error { return logCloser.Close() })

	if trace := cfg.TracePath(); trace != "" {
		if err := setupTracing(trace); err != nil {
			return err
		}
	}

	path := cfg.DBPath()
	db, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open workout log: %w", err)
	}
	repo = db
	journ = journal.New(db)
	closers = append(closers, func(context.Context) error { return db.Close() })

	logrus.WithField("path", path).Debug("session opened")
	return nil
}

func setupTracing(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create trace directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}

	shutdown, err := tracing.Setup(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	// Closers run in reverse, so spans are flushed before the file closes.
	closers = append(closers,
		func(context.Context) error { return f.Close() },
		func(ctx context.Context) error { return shutdown(ctx) },
	)
	return nil
}

// closeSession releases everything openSession acquired, newest first.
func closeSession(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var err error
	for i := len(closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, closers[i](ctx))
	}
	closers = nil
	repo = nil
	journ = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "database path (default: ~/.local/share/fiend/workouts.db)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&traceFileFlag, "trace-file", "", "write OpenTelemetry spans to this file")
}
