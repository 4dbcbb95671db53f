package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
)

type backend int

const (
	backendMemory backend = iota
	backendPostgres
	backendSQLite
)

// Storages groups all storage components into a single value that can be
// passed to the service layer.
type Storages struct {
	RestoreStorage RestoreStorage
}

// NewStorages opens the audit store selected by cfg.DSN:
//   - empty: in-memory store bounded to [DefaultMemoryCapacity] records;
//   - postgres:// or postgresql://: PostgreSQL via pgx;
//   - sqlite://path or file:...: SQLite.
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	kind, source, err := backendFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch kind {
	case backendMemory:
		logger.Warn().Msg("no database configured, restore history is kept in memory")
		return &Storages{RestoreStorage: NewMemoryRestoreStorage(DefaultMemoryCapacity)}, nil
	case backendPostgres:
		db, err = NewConnectPostgres(ctx, source, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	case backendSQLite:
		db, err = NewConnectSQLite(ctx, source, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		RestoreStorage: NewRestoreRepository(db, logger),
	}, nil
}

// Close releases every opened backend.
func (s *Storages) Close() error {
	if s == nil || s.RestoreStorage == nil {
		return nil
	}
	return s.RestoreStorage.Close()
}

func backendFromDSN(dsn string) (backend, string, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return backendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return 0, "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return backendSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return backendSQLite, dsn, nil
	default:
		return 0, "", ErrUnsupportedDSN
	}
}
