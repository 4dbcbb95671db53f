// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// clumio-bot application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Clumio holds the credentials and endpoint of the upstream Clumio API.
	Clumio Clumio `envPrefix:"CLUMIO_"`

	// App holds application-level settings such as the reported version and
	// the Slack signing secret.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the restore audit store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// PlatformPort is the port injected by serverless and PaaS platforms.
	// It is only consulted when Server.HTTPAddress is not set.
	// Env: PORT
	PlatformPort string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Clumio holds everything needed to talk to the Clumio REST API.
type Clumio struct {
	// APIToken is the bearer token sent in the Authorization header of every
	// upstream request. Required. Must be kept confidential.
	// Env: CLUMIO_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// APIBaseURL is the regional API host
	// (e.g. "https://us-west-2.api.clumio.com").
	// Env: CLUMIO_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// APIVersion is sent as the Clumio-Api-Version header.
	// Env: CLUMIO_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds a single upstream request.
	// Env: CLUMIO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AccountNativeID is the AWS account used to filter the S3 inventory
	// when the caller does not provide one.
	// Env: CLUMIO_ACCOUNT_NATIVE_ID
	AccountNativeID string `env:"ACCOUNT_NATIVE_ID"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SlackSigningSecret enables verification of Slack request signatures on
	// /inventory and /restore when non-empty.
	// Env: APP_SLACK_SIGNING_SECRET
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`

	// LogLevel is the minimum zerolog level written to the log
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the restore audit database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the restore audit database.
type DB struct {
	// DSN selects the backend: "postgres://..." for PostgreSQL,
	// "sqlite://path" or "file:path" for SQLite. Empty keeps the audit
	// log in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Retention is how long restore records are kept before the pruner
	// removes them.
	// Env: STORAGE_DB_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PruneInterval is how often old restore records are pruned.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Redacted returns a copy of cfg that is safe to log.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.Clumio.APIToken != "" {
		cfg.Clumio.APIToken = redactedValue
	}
	if cfg.App.SlackSigningSecret != "" {
		cfg.App.SlackSigningSecret = redactedValue
	}
	return cfg
}

const redactedValue = "[REDACTED]"

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetEnvConfig is [GetStructuredConfig] without command-line flags. It is
// used by entrypoints that do not own the process arguments (the serverless
// handler and the operator CLI).
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
