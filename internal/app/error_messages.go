// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// clumio-bot HTTP handlers, middleware and the serverless entrypoint.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of JSON response bodies or into log entries. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONBody is returned when a JSON POST body cannot be decoded
	// into a request object.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgInvalidFormBody is returned when a form-encoded POST body (a Slack
	// slash command) cannot be parsed.
	MsgInvalidFormBody = "invalid form body"

	// MsgInvalidGzipBody is returned when a request declares gzip
	// Content-Encoding but its body is not valid gzip data.
	MsgInvalidGzipBody = "invalid gzip data"

	// MsgFailedToRetrieveInventory prefixes every upstream failure reported
	// by /inventory.
	MsgFailedToRetrieveInventory = "Failed to retrieve inventory"

	// MsgFailedToRestore prefixes every upstream failure reported by
	// /restore.
	MsgFailedToRestore = "Failed to restore"

	// MsgFailedToListRestores prefixes audit store failures reported by
	// /restores.
	MsgFailedToListRestores = "Failed to list restores"

	// MsgInvalidLimit is returned when the limit query parameter of
	// /restores is not a non-negative integer.
	MsgInvalidLimit = "limit must be a non-negative integer"

	// MsgInvalidSlackSignature is returned when a request to a Slack-facing
	// route carries a missing, stale or forged signature.
	MsgInvalidSlackSignature = "invalid slack signature"

	// MsgNotFound is returned for unknown routes and for known routes called
	// with an unregistered method.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServerMisconfigured prefixes configuration errors reported by the
	// serverless entrypoint on every request.
	MsgServerMisconfigured = "server misconfigured"
)
