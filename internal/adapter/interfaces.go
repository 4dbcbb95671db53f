// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client used to talk to the Clumio REST API.
//
// The primary abstraction is [ClumioAdapter], which decouples the service
// layer from the transport. The package ships a resty implementation
// ([NewHTTPClumioAdapter]) that injects the bearer credential and API version
// header into every call.
//
// Non-2xx upstream responses are mapped by mapHTTPError to an [*UpstreamError]
// wrapping one of the sentinels in errors.go, so callers can use [errors.Is]
// (e.g. [ErrUpstreamUnauthorized] for 401) without inspecting status codes.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/clumio-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/clumio_adapter_mock.go -package=mock

// ClumioAdapter defines the calls the bot makes against the Clumio API.
// Implementations are responsible for authentication headers, endpoint
// selection per inventory type and mapping upstream failures to the sentinel
// values defined in this package.
type ClumioAdapter interface {
	// GetInventory lists protected assets of req.Type. For s3 the listing is
	// filtered by account native ID (req.AccountNativeID, or the configured
	// default when empty). The upstream JSON body is returned unchanged.
	// Returns [ErrInvalidInventoryType] for types other than s3 and ec2.
	GetInventory(ctx context.Context, req models.InventoryRequest) (json.RawMessage, error)

	// Restore triggers a restore of req.Type. bucket_name and bucket_id are
	// sent only when non-empty. The upstream JSON body is returned unchanged.
	Restore(ctx context.Context, req models.RestoreRequest) (json.RawMessage, error)

	// Ping performs a cheap authenticated call to check that the base URL and
	// the token are usable.
	Ping(ctx context.Context) error
}
