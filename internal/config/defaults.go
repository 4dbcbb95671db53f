package config

import "time"

// Default values applied to every field left empty by all sources.
const (
	DefaultClumioAPIBaseURL      = "https://api.clumio.com"
	DefaultClumioAPIVersion      = "1.0"
	DefaultClumioRequestTimeout  = 30 * time.Second
	DefaultClumioAccountNativeID = "761018876565"

	DefaultHTTPAddress          = ":8080"
	DefaultServerRequestTimeout = 60 * time.Second

	DefaultAppVersion  = "dev"
	DefaultAppLogLevel = "info"

	DefaultRestoreRetention = 30 * 24 * time.Hour
	DefaultPruneInterval    = time.Hour
)

func defaults(cfg *StructuredConfig) *StructuredConfig {
	httpAddress := DefaultHTTPAddress
	if cfg.PlatformPort != "" {
		httpAddress = ":" + cfg.PlatformPort
	}

	return &StructuredConfig{
		Clumio: Clumio{
			APIBaseURL:      DefaultClumioAPIBaseURL,
			APIVersion:      DefaultClumioAPIVersion,
			RequestTimeout:  DefaultClumioRequestTimeout,
			AccountNativeID: DefaultClumioAccountNativeID,
		},
		App: App{
			Version:  DefaultAppVersion,
			LogLevel: DefaultAppLogLevel,
		},
		Storage: Storage{
			DB: DB{Retention: DefaultRestoreRetention},
		},
		Server: Server{
			HTTPAddress:    httpAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Workers: Workers{
			PruneInterval: DefaultPruneInterval,
		},
	}
}
