// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/service"
)

// RestorePruner periodically deletes restore audit records older than the
// configured retention. One prune runs immediately on start.
type RestorePruner struct {
	restores  service.RestoreService
	retention time.Duration
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRestorePruner(restores service.RestoreService, retention, interval time.Duration, logger *logger.Logger) *RestorePruner {
	return &RestorePruner{
		restores:  restores,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Run starts the pruning loop. A running loop is stopped first.
func (p *RestorePruner) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.prune(jobCtx)
			}
		}
	}()
}

func (p *RestorePruner) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *RestorePruner) prune(ctx context.Context) {
	olderThan := p.now().Add(-p.retention)

	deleted, err := p.restores.PruneRestores(ctx, olderThan)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Err(err).Str("func", "*RestorePruner.prune").Msg("failed to prune restore records")
		return
	}

	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Time("older_than", olderThan).Msg("pruned restore records")
	}
}
