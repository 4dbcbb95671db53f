// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields still empty after merging receive the defaults declared in
// defaults.go. The main entry points are [GetStructuredConfig] for the server
// binary and [GetEnvConfig] for entrypoints that do not own the command line.
package config
