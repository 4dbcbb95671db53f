package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func requiredEnv() map[string]string {
	return map[string]string{
		"CLUMIO_API_TOKEN":    "token",
		"CLUMIO_API_BASE_URL": "https://us-west-2.api.clumio.com",
	}
}

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EnvOnly_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withEnvFrom(requiredEnv()).build()

	require.NoError(t, err)
	assert.Equal(t, "token", cfg.Clumio.APIToken)
	assert.Equal(t, "https://us-west-2.api.clumio.com", cfg.Clumio.APIBaseURL)
	assert.Equal(t, DefaultClumioAPIVersion, cfg.Clumio.APIVersion)
	assert.Equal(t, DefaultClumioRequestTimeout, cfg.Clumio.RequestTimeout)
	assert.Equal(t, DefaultClumioAccountNativeID, cfg.Clumio.AccountNativeID)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultAppVersion, cfg.App.Version)
	assert.Equal(t, DefaultAppLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultRestoreRetention, cfg.Storage.DB.Retention)
	assert.Equal(t, DefaultPruneInterval, cfg.Workers.PruneInterval)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestBuild_DefaultBaseURLWhenUnset(t *testing.T) {
	cfg, err := newConfigBuilder().
		withEnvFrom(map[string]string{"CLUMIO_API_TOKEN": "token"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, DefaultClumioAPIBaseURL, cfg.Clumio.APIBaseURL)
}

func TestBuild_MissingToken_Fails(t *testing.T) {
	cfg, err := newConfigBuilder().
		withEnvFrom(map[string]string{"CLUMIO_API_BASE_URL": "https://api.clumio.com"}).
		build()

	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidClumioConfigs)
	assert.Contains(t, err.Error(), "CLUMIO_API_TOKEN")
}

func TestBuild_PlatformPortUsedWhenNoAddress(t *testing.T) {
	env := requiredEnv()
	env["PORT"] = "3000"

	cfg, err := newConfigBuilder().withEnvFrom(env).build()

	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
}

func TestBuild_ExplicitAddressBeatsPlatformPort(t *testing.T) {
	env := requiredEnv()
	env["PORT"] = "3000"
	env["SERVER_ADDRESS"] = "127.0.0.1:9000"

	cfg, err := newConfigBuilder().withEnvFrom(env).build()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

func TestBuild_FlagsOverrideEnv(t *testing.T) {
	env := requiredEnv()
	env["APP_VERSION"] = "from-env"

	cfg, err := newConfigBuilder().
		withEnvFrom(env).
		withFlagSet(newTestFlagSet(), []string{"-version", "from-flags", "-a", "localhost:9999"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.App.Version)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	// untouched by flags
	assert.Equal(t, "token", cfg.Clumio.APIToken)
}

func TestBuild_JSONOverridesEnvAndFlags(t *testing.T) {
	p := writeTempJSONConfig(t, `{
		"clumio": {"api_token": "from-json", "request_timeout": "5s"},
		"storage": {"db": {"dsn": "sqlite:///tmp/audit.db"}}
	}`)

	cfg, err := newConfigBuilder().
		withEnvFrom(requiredEnv()).
		withFlagSet(newTestFlagSet(), []string{"-c", p, "-clumio-token", "from-flags"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Clumio.APIToken)
	assert.Equal(t, 5*time.Second, cfg.Clumio.RequestTimeout)
	assert.Equal(t, "sqlite:///tmp/audit.db", cfg.Storage.DB.DSN)
}

func TestBuild_JSONPathFromEnv(t *testing.T) {
	p := writeTempJSONConfig(t, `{"app": {"version": "9.9.9"}}`)
	env := requiredEnv()
	env["CONFIG"] = p

	cfg, err := newConfigBuilder().withEnvFrom(env).withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestBuild_MissingJSONFile_Fails(t *testing.T) {
	env := requiredEnv()
	env["CONFIG"] = filepath.Join(t.TempDir(), "nope.json")

	cfg, err := newConfigBuilder().withEnvFrom(env).withJSON().build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestBuild_InvalidEnv_Fails(t *testing.T) {
	env := requiredEnv()
	env["CLUMIO_REQUEST_TIMEOUT"] = "soon"

	cfg, err := newConfigBuilder().withEnvFrom(env).build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestBuild_BadFlag_Fails(t *testing.T) {
	fs := newTestFlagSet()
	fs.SetOutput(new(discard))

	cfg, err := newConfigBuilder().
		withEnvFrom(requiredEnv()).
		withFlagSet(fs, []string{"-unknown"}).
		build()

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestRedacted_MasksSecrets(t *testing.T) {
	cfg := StructuredConfig{
		Clumio: Clumio{APIToken: "token", APIBaseURL: "https://api.clumio.com"},
		App:    App{SlackSigningSecret: "secret"},
	}

	red := cfg.Redacted()

	assert.Equal(t, redactedValue, red.Clumio.APIToken)
	assert.Equal(t, redactedValue, red.App.SlackSigningSecret)
	assert.Equal(t, "https://api.clumio.com", red.Clumio.APIBaseURL)
	// original untouched
	assert.Equal(t, "token", cfg.Clumio.APIToken)
}

func TestRedacted_LeavesEmptySecretsEmpty(t *testing.T) {
	red := StructuredConfig{}.Redacted()

	assert.Empty(t, red.Clumio.APIToken)
	assert.Empty(t, red.App.SlackSigningSecret)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
