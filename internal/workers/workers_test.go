// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/mock"
	"github.com/MKhiriev/clumio-bot/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

// orderWorker is a helper that appends its ID to a shared slice on Run
// and its negated ID on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d] runCount", i)
		assert.Equal(t, 1, w.stopCount, "worker[%d] stopCount", i)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	order := []int{}

	ws := &Workers{workers: []Worker{
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	}}
	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, order)
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{RestoreService: mock.NewMockRestoreService(ctrl)}

	tests := []struct {
		name      string
		retention time.Duration
		interval  time.Duration
		want      int
	}{
		{name: "pruner enabled", retention: time.Hour, interval: time.Minute, want: 1},
		{name: "zero retention", retention: 0, interval: time.Minute, want: 0},
		{name: "zero interval", retention: time.Hour, interval: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.StructuredConfig{
				Storage: config.Storage{DB: config.DB{Retention: tt.retention}},
				Workers: config.Workers{PruneInterval: tt.interval},
			}

			ws := NewWorkers(services, cfg, logger.Nop())

			assert.Len(t, ws.workers, tt.want)
		})
	}
}
