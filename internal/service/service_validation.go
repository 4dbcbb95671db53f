package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/validators"
	"github.com/MKhiriev/clumio-bot/models"
)

// InventoryValidationService validates inventory requests before passing
// them to the wrapped service.
type InventoryValidationService struct {
	inner     InventoryService
	validator validators.Validator
}

func NewInventoryValidationService(validator validators.Validator) InventoryServiceWrapper {
	return &InventoryValidationService{validator: validator}
}

func (v *InventoryValidationService) GetInventory(ctx context.Context, req models.InventoryRequest) (any, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.GetInventory(ctx, req)
}

func (v *InventoryValidationService) Wrap(wrapped InventoryService) InventoryService {
	v.inner = wrapped
	return v
}

// RestoreValidationService validates restore requests before passing them
// to the wrapped service. History calls are passed through unchanged.
type RestoreValidationService struct {
	inner     RestoreService
	validator validators.Validator
}

func NewRestoreValidationService(validator validators.Validator) RestoreServiceWrapper {
	return &RestoreValidationService{validator: validator}
}

func (v *RestoreValidationService) Restore(ctx context.Context, req models.RestoreRequest) (json.RawMessage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.Restore(ctx, req)
}

func (v *RestoreValidationService) ListRestores(ctx context.Context, limit int) ([]models.RestoreRecord, error) {
	return v.inner.ListRestores(ctx, limit)
}

func (v *RestoreValidationService) PruneRestores(ctx context.Context, olderThan time.Time) (int64, error) {
	return v.inner.PruneRestores(ctx, olderThan)
}

func (v *RestoreValidationService) Wrap(wrapped RestoreService) RestoreService {
	v.inner = wrapped
	return v
}
