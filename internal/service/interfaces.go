package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/clumio-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=InventoryServiceWrapper,RestoreServiceWrapper

type InventoryService interface {
	// GetInventory returns a *models.SlackMessage for s3 and the raw upstream
	// JSON (json.RawMessage) for ec2.
	GetInventory(ctx context.Context, req models.InventoryRequest) (any, error)
}

type RestoreService interface {
	Restore(ctx context.Context, req models.RestoreRequest) (json.RawMessage, error)

	ListRestores(ctx context.Context, limit int) ([]models.RestoreRecord, error)
	PruneRestores(ctx context.Context, olderThan time.Time) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService checks the dependencies of the bot. It is not used by the
// liveness probe, which must not depend on the upstream.
type HealthService interface {
	CheckUpstream(ctx context.Context) error
	CheckStorage(ctx context.Context) error
}

// InventoryServiceWrapper defines middleware composition for InventoryService.
// Implementations wrap an existing InventoryService to add behavior such as
// validating.
type InventoryServiceWrapper interface {
	Wrap(InventoryService) InventoryService
}

// RestoreServiceWrapper defines middleware composition for RestoreService.
type RestoreServiceWrapper interface {
	Wrap(RestoreService) RestoreService
}
