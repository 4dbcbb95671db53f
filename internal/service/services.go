package service

import (
	"fmt"

	"github.com/MKhiriev/clumio-bot/internal/adapter"
	"github.com/MKhiriev/clumio-bot/internal/config"
	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/MKhiriev/clumio-bot/internal/metrics"
	"github.com/MKhiriev/clumio-bot/internal/store"
	"github.com/MKhiriev/clumio-bot/internal/validators"
	"github.com/MKhiriev/clumio-bot/models"
)

type Services struct {
	InventoryService InventoryService
	RestoreService   RestoreService
	AppInfoService   AppInfoService
	HealthService    HealthService
}

// NewServices wires the services on top of the Clumio adapter and the audit
// store. Inventory and restore requests are validated before they reach the
// adapter.
func NewServices(clumio adapter.ClumioAdapter, storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewClumioRequestValidator()

	inventoryService := NewInventoryValidationService(validator).
		Wrap(NewInventoryService(clumio, logger))
	restoreService := NewRestoreValidationService(validator).
		Wrap(NewRestoreService(clumio, storages.RestoreStorage, m, logger))

	return &Services{
		InventoryService: inventoryService,
		RestoreService:   restoreService,
		AppInfoService:   appInfoService,
		HealthService:    NewHealthService(clumio, storages.RestoreStorage, logger),
	}, nil
}
