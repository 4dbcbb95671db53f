// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inventory and restore requests before they are
// forwarded to Clumio.
//
// Rules are expressed with ozzo-validation; failures are returned as
// [*RequestError] values whose Message is safe to show to a chat user
// verbatim. Each failure also wraps one of the package sentinels (for
// example [ErrMissingType]) so callers can branch with errors.Is.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked; unknown field names are ignored.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
