// ABOUTME: Profile and installation settings stored as key/value rows.
// ABOUTME: Each profile field is its own row in the settings table.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/harperreed/fitnessfiend/internal/telemetry/tracing"
)

// LoadProfile reads every profile setting. Missing settings are left empty.
func (d *DB) LoadProfile(ctx context.Context) (_ *models.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	db, err := d.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT key, value FROM settings WHERE key LIKE 'profile.%'`)
	if err != nil {
		return nil, storageFailure("load profile", err)
	}
	defer rows.Close()

	p := &models.Profile{}
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storageFailure("load profile", err)
		}
		field := models.ProfileField(key)
		if field == models.ProfileAvatar {
			p.Avatar = value
			continue
		}
		p.Set(field, string(value))
	}
	if err := rows.Err(); err != nil {
		return nil, storageFailure("load profile", err)
	}
	return p, nil
}

// SaveProfile writes every profile field in one transaction. An empty
// avatar removes any stored image.
func (d *DB) SaveProfile(ctx context.Context, p *models.Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	db, err := d.conn()
	if err != nil {
		return err
	}

	err = withTx(ctx, db, func(tx *sql.Tx) error {
		for _, f := range models.AllProfileFields {
			if err := putSetting(ctx, tx, string(f), []byte(p.Get(f))); err != nil {
				return err
			}
		}
		if p.HasAvatar() {
			return putSetting(ctx, tx, string(models.ProfileAvatar), p.Avatar)
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, string(models.ProfileAvatar))
		return err
	})
	if err != nil {
		return storageFailure("save profile", err)
	}
	return nil
}

// SetProfileField writes a single profile setting, as a form does on each change.
func (d *DB) SetProfileField(ctx context.Context, field models.ProfileField, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !models.IsValidProfileField(string(field)) {
		return fmt.Errorf("unknown profile field: %s", field)
	}

	db, err := d.conn()
	if err != nil {
		return err
	}
	if err := putSetting(ctx, db, string(field), value); err != nil {
		return storageFailure("set profile field", err)
	}
	return nil
}

// InstallationID returns the id generated when this database was created.
func (d *DB) InstallationID(ctx context.Context) (string, error) {
	db, err := d.conn()
	if err != nil {
		return "", err
	}

	var value []byte
	err = db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, settingInstallationID).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", storageFailure("installation id", err)
	}
	return strings.TrimSpace(string(value)), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putSetting(ctx context.Context, ex execer, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := ex.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}
