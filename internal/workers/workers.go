package workers

import (
	"context"

	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the long-running server.
// The restore pruner is skipped when retention or interval is not positive.
func NewWorkers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	w := &Workers{}

	retention, interval := cfg.Storage.DB.Retention, cfg.Workers.PruneInterval
	if retention > 0 && interval > 0 && services != nil && services.RestoreService != nil {
		w.workers = append(w.workers, NewRestorePruner(services.RestoreService, retention, interval, logger))
	} else {
		logger.Info().Msg("restore pruner disabled")
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
