package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Host: "", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
		},
		{
			name:        "port not a number",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
		{
			name:        "hostname instead of IP",
			input:       "example.com:8080",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8081",
		"-config", "/etc/clumio-bot.json",
		"-clumio-token", "tok",
		"-clumio-url", "https://eu-central-1.api.clumio.com",
		"-clumio-api-version", "1.1",
		"-clumio-timeout", "10s",
		"-account-native-id", "111122223333",
		"-d", "postgres://localhost/audit",
		"-retention", "24h",
		"-prune-interval", "5m",
		"-request-timeout", "20s",
		"-slack-signing-secret", "shh",
		"-version", "2.0.0",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/clumio-bot.json", cfg.JSONFilePath)
	assert.Equal(t, "tok", cfg.Clumio.APIToken)
	assert.Equal(t, "https://eu-central-1.api.clumio.com", cfg.Clumio.APIBaseURL)
	assert.Equal(t, "1.1", cfg.Clumio.APIVersion)
	assert.Equal(t, 10*time.Second, cfg.Clumio.RequestTimeout)
	assert.Equal(t, "111122223333", cfg.Clumio.AccountNativeID)
	assert.Equal(t, "postgres://localhost/audit", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.Storage.DB.Retention)
	assert.Equal(t, 5*time.Minute, cfg.Workers.PruneInterval)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "shh", cfg.App.SlackSigningSecret)
	assert.Equal(t, "2.0.0", cfg.App.Version)
}

func TestParseFlags_NoFlags_ZeroConfig(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{})

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	fs := newTestFlagSet()
	fs.SetOutput(new(discard))

	_, err := parseFlags(fs, []string{"-a", "nonsense"})

	assert.Error(t, err)
}
