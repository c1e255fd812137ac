// ABOUTME: Fiend configuration loaded from a JSON file under XDG_CONFIG_HOME.
// ABOUTME: Resolves the database path and the log and trace settings.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitnessfiend/internal/logging"
	"github.com/harperreed/fitnessfiend/internal/storage"
)

const (
	appDir     = "fiend"
	configFile = "config.json"
	dbFile     = "workouts.db"
)

// Config stores fiend configuration.
type Config struct {
	// DataDir holds workouts.db. Supports ~. Defaults to $XDG_DATA_HOME/fiend.
	DataDir string `json:"data_dir,omitempty"`

	// DBFile points at a database file directly and wins over DataDir.
	DBFile string `json:"db_path,omitempty"`

	// LogLevel is a logrus level name. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`

	// LogFile sends logs to a rotated file instead of stderr.
	LogFile string `json:"log_file,omitempty"`

	LogJSON bool `json:"log_json,omitempty"`

	// TraceFile enables span export to this file.
	TraceFile string `json:"trace_file,omitempty"`
}

// Overrides carries command-line values. Empty fields leave the file value alone.
type Overrides struct {
	DBFile    string
	LogLevel  string
	TraceFile string
}

// Apply copies every non-empty override onto c.
func (c *Config) Apply(o Overrides) *Config {
	if o.DBFile != "" {
		c.DBFile = o.DBFile
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.TraceFile != "" {
		c.TraceFile = o.TraceFile
	}
	return c
}

// GetDataDir returns the data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the workout database location.
func (c *Config) DBPath() string {
	if c.DBFile != "" {
		return ExpandPath(c.DBFile)
	}
	return filepath.Join(c.GetDataDir(), dbFile)
}

// TracePath returns the expanded trace file, or "" when tracing is off.
func (c *Config) TracePath() string {
	return ExpandPath(c.TraceFile)
}

// OpenStorage opens the workout database at DBPath.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.DBPath())
}

// LoggingParams maps the log settings onto logging.Setup parameters.
func (c *Config) LoggingParams() logging.SetupParams {
	return logging.SetupParams{
		LogFileName:   ExpandPath(c.LogFile),
		LogLevel:      c.LogLevel,
		LogFormatJSON: c.LogJSON,
	}
}

// ExpandPath replaces a leading ~ or ~/ with the user's home directory.
// ~user forms are returned unchanged.
func ExpandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// GetConfigPath returns $XDG_CONFIG_HOME/fiend/config.json.
func GetConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = ExpandPath("~/.config")
	}
	return filepath.Join(base, appDir, configFile)
}

// Load reads the config at GetConfigPath.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from path. A missing file yields the zero Config.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to GetConfigPath.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the config as indented JSON, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
