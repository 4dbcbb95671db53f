// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels that names the offending setting.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Clumio.APIToken) == "" {
		return fmt.Errorf("%w: CLUMIO_API_TOKEN is not set", ErrInvalidClumioConfigs)
	}

	u, err := url.Parse(cfg.Clumio.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: CLUMIO_API_BASE_URL %q is not an absolute http(s) URL", ErrInvalidClumioConfigs, cfg.Clumio.APIBaseURL)
	}

	if cfg.Clumio.RequestTimeout < 0 {
		return fmt.Errorf("%w: CLUMIO_REQUEST_TIMEOUT must not be negative", ErrInvalidClumioConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: SERVER_ADDRESS is empty", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: SERVER_REQUEST_TIMEOUT must not be negative", ErrInvalidServerConfigs)
	}

	if dsn := cfg.Storage.DB.DSN; dsn != "" && !IsSupportedDSN(dsn) {
		return fmt.Errorf("%w: unsupported DSN scheme in STORAGE_DB_DATABASE_URI", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.PruneInterval < 0 || cfg.Storage.DB.Retention < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// IsSupportedDSN reports whether dsn names a backend the audit store can
// open.
func IsSupportedDSN(dsn string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://", "file:"} {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
