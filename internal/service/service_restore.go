package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/store"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/MKhiriev/clumio-bot/models"
)

const (
	// DefaultHistoryLimit is used when ListRestores is called with limit 0.
	DefaultHistoryLimit = 50
	// MaxHistoryLimit caps a single ListRestores page.
	MaxHistoryLimit = 500
)

type restoreService struct {
	clumio  adapter.ClumioAdapter
	storage store.RestoreStorage
	metrics *metrics.Metrics
	now     func() time.Time

	logger *logger.Logger
}

func NewRestoreService(clumio adapter.ClumioAdapter, storage store.RestoreStorage, m *metrics.Metrics, logger *logger.Logger) RestoreService {
	return &restoreService{
		clumio:  clumio,
		storage: storage,
		metrics: m,
		now:     time.Now,
		logger:  logger,
	}
}

// Restore implements [RestoreService]. Every attempt that reaches the
// upstream is recorded in the audit store; failing to record it is logged
// and does not change the result.
func (s *restoreService) Restore(ctx context.Context, req models.RestoreRequest) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	result, restoreErr := s.clumio.Restore(ctx, req)

	rec := models.RestoreRecord{
		Type:       req.Type,
		BucketName: req.BucketName,
		BucketID:   req.BucketID,
		Status:     models.RestoreSucceeded,
		CreatedAt:  s.now(),
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		rec.TraceID = traceID
	}
	if restoreErr != nil {
		rec.Status = models.RestoreFailed
		rec.Error = restoreErr.Error()
	}

	s.metrics.IncRestore(req.Type.String(), string(rec.Status))

	// the upstream call already happened, so the audit write must not be
	// cut short by a client that has gone away
	if _, err := s.storage.Save(context.WithoutCancel(ctx), rec); err != nil {
		log.Err(err).
			Str("func", "*restoreService.Restore").
			Str("type", req.Type.String()).
			Str("status", string(rec.Status)).
			Msg("error saving restore record")
	}

	if restoreErr != nil {
		return nil, restoreErr
	}
	return result, nil
}

// ListRestores implements [RestoreService]. limit 0 means
// [DefaultHistoryLimit]; larger values are capped at [MaxHistoryLimit].
func (s *restoreService) ListRestores(ctx context.Context, limit int) ([]models.RestoreRecord, error) {
	switch {
	case limit < 0:
		return nil, ErrInvalidLimit
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	return s.storage.List(ctx, limit)
}

// PruneRestores implements [RestoreService].
func (s *restoreService) PruneRestores(ctx context.Context, olderThan time.Time) (int64, error) {
	deleted, err := s.storage.DeleteOlderThan(ctx, olderThan)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Int64("deleted", deleted).
		Time("older_than", olderThan).
		Msg("pruned restore records")

	return deleted, nil
}
