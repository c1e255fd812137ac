// ABOUTME: SQLite database handle and one-time initialization for the workout log.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// DB is the workout log store. It opens its SQLite file lazily on first
// use; concurrent first calls share a single initialization.
type DB struct {
	dbPath string

	once    sync.Once
	db      *sql.DB
	openErr error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)

// New returns a store for dbPath without touching the filesystem.
func New(dbPath string) *DB {
	return &DB{dbPath: dbPath}
}

// Open returns a store for dbPath and initializes it immediately.
func Open(dbPath string) (*DB, error) {
	d := New(dbPath)
	if _, err := d.conn(); err != nil {
		return nil, err
	}
	return d, nil
}

// DataDir returns the default data directory following XDG base directory conventions.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fiend")
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection. Closing an unopened store is a no-op.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// conn returns the open handle, initializing it on first call.
func (d *DB) conn() (*sql.DB, error) {
	d.once.Do(func() {
		d.db, d.openErr = d.open()
		if d.openErr != nil {
			d.openErr = storageFailure("open", d.openErr)
		}
	})
	return d.db, d.openErr
}

func (d *DB) open() (*sql.DB, error) {
	dir := filepath.Dir(d.dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", d.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection: pragmas stick, and every statement against the file is serialized.
	db.SetMaxOpenConns(1)

	if err := configurePragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := os.Chmod(d.dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	if err := initSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	logrus.WithField("path", d.dbPath).Debug("workout log opened")
	return db, nil
}

// configurePragmas sets up SQLite for a single local writer.
func configurePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}
