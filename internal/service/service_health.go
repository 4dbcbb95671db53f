package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/store"
)

type healthService struct {
	clumio  adapter.ClumioAdapter
	storage store.RestoreStorage

	logger *logger.Logger
}

func NewHealthService(clumio adapter.ClumioAdapter, storage store.RestoreStorage, logger *logger.Logger) HealthService {
	return &healthService{
		clumio:  clumio,
		storage: storage,
		logger:  logger,
	}
}

func (s *healthService) CheckUpstream(ctx context.Context) error {
	if err := s.clumio.Ping(ctx); err != nil {
		return fmt.Errorf("clumio api check failed: %w", err)
	}
	return nil
}

func (s *healthService) CheckStorage(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("restore storage check failed: %w", err)
	}
	return nil
}
