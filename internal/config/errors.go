package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidClumioConfigs indicates missing or malformed upstream
	// settings (for example, an empty CLUMIO_API_TOKEN or a base URL that is
	// not an absolute http(s) URL).
	ErrInvalidClumioConfigs = errors.New("invalid clumio configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an audit DSN whose scheme is not
	// supported.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative prune interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
