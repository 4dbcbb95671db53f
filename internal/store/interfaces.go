// Package store persists the restore audit log.
//
// [RestoreStorage] has three implementations selected by DSN: PostgreSQL
// (pgx), SQLite (mattn/go-sqlite3) and a bounded in-memory store used when no
// database is configured. SQL backends build their queries with squirrel and
// keep their schema up to date with goose (see the migrations package).
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/clumio-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/restore_storage_mock.go -package=mock

// RestoreStorage stores one [models.RestoreRecord] per restore request
// forwarded to Clumio.
type RestoreStorage interface {
	// Save appends rec and returns it with ID populated.
	Save(ctx context.Context, rec models.RestoreRecord) (models.RestoreRecord, error)

	// List returns at most limit records, newest first. A non-positive limit
	// returns every record.
	List(ctx context.Context, limit int) ([]models.RestoreRecord, error)

	// DeleteOlderThan removes records created strictly before t and reports
	// how many were removed.
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection, if any.
	Close() error
}
