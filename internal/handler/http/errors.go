// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading inbound requests. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSONBody is returned when a JSON POST body is not a JSON
	// object with the expected parameter types.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrInvalidFormBody is returned when a form-encoded POST body cannot be
	// parsed.
	ErrInvalidFormBody = errors.New("invalid form body")

	// ErrInvalidLimit is returned when the limit query parameter is not a
	// non-negative integer.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrMissingSlackSignature is returned when a signed route is called
	// without the X-Slack-Signature or X-Slack-Request-Timestamp header.
	ErrMissingSlackSignature = errors.New("missing slack signature headers")

	// ErrStaleSlackTimestamp is returned when X-Slack-Request-Timestamp is
	// not a unix timestamp within the allowed clock skew.
	ErrStaleSlackTimestamp = errors.New("stale or malformed slack request timestamp")

	// ErrSlackSignatureMismatch is returned when X-Slack-Signature does not
	// match the signature computed from the request body.
	ErrSlackSignatureMismatch = errors.New("slack signature mismatch")
)
