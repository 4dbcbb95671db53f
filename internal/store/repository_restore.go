package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/models"
)

const (
	restoreRecordsTable = "restore_records"

	saveRetryDelay = 50 * time.Millisecond
	saveMaxRetries = 1
)

var restoreRecordColumns = []string{
	"id", "trace_id", "type", "bucket_name", "bucket_id", "status", "error", "created_at",
}

// restoreRepository is the SQL implementation of [RestoreStorage]. It works
// with both PostgreSQL and SQLite; the differences are hidden behind the
// placeholder format of [DB].
type restoreRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRestoreRepository constructs a [RestoreStorage] backed by db.
func NewRestoreRepository(db *DB, logger *logger.Logger) RestoreStorage {
	logger.Debug().Str("dialect", db.dialect).Msg("creating restore repository")
	return &restoreRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts rec and returns it with the generated ID. CreatedAt is stored
// in UTC; a zero CreatedAt is replaced with the current time. An insert that
// fails with a transient error is attempted once more.
func (r *restoreRepository) Save(ctx context.Context, rec models.RestoreRecord) (models.RestoreRecord, error) {
	log := logger.FromContext(ctx)

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	query, args, err := r.db.builder().
		Insert(restoreRecordsTable).
		Columns("trace_id", "type", "bucket_name", "bucket_id", "status", "error", "created_at").
		Values(rec.TraceID, string(rec.Type), rec.BucketName, rec.BucketID, string(rec.Status), rec.Error, rec.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.RestoreRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insert := func() error {
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID)
		if scanErr != nil && r.db.classify(scanErr) != Retryable {
			return backoff.Permanent(scanErr)
		}
		return scanErr
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(saveRetryDelay), saveMaxRetries), ctx)

	err = backoff.RetryNotify(insert, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("func", "*restoreRepository.Save").Dur("wait", wait).Msg("retrying restore record insert")
	})
	if err != nil {
		r.logError(log, "*restoreRepository.Save", err)
		return models.RestoreRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rec.ID == 0 {
		return models.RestoreRecord{}, ErrRestoreRecordNotSaved
	}

	return rec, nil
}

// List returns at most limit records ordered by creation time, newest first.
func (r *restoreRepository) List(ctx context.Context, limit int) ([]models.RestoreRecord, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder().
		Select(restoreRecordColumns...).
		From(restoreRecordsTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(log, "*restoreRepository.List", err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.RestoreRecord, 0)
	for rows.Next() {
		var (
			rec      models.RestoreRecord
			recType  string
			recState string
		)
		if err = rows.Scan(&rec.ID, &rec.TraceID, &recType, &rec.BucketName, &rec.BucketID, &recState, &rec.Error, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Type = models.InventoryType(recType)
		rec.Status = models.RestoreStatus(recState)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// DeleteOlderThan removes records created before t.
func (r *restoreRepository) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(restoreRecordsTable).
		Where(sq.Lt{"created_at": t.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logError(log, "*restoreRepository.DeleteOlderThan", err)
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func (r *restoreRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *restoreRepository) Close() error {
	return r.db.Close()
}

func (r *restoreRepository) logError(log *logger.Logger, fn string, err error) {
	event := log.Err(err).
		Str("func", fn).
		Str("classification", r.db.classify(err).String())

	if postgresError(err) == pgerrcode.UndefinedTable {
		event = event.Bool("schema_missing", true)
	}

	event.Msg("restore repository query failed")
}
