package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.API.ProbeInterval)
	assert.Equal(t, ".classdesk_state.json", cfg.State.FilePath)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "devsecret", cfg.Server.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.Server.TokenTTL)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "api config override",
			envVars: map[string]string{
				"API_BASE_URL":        "https://classes.example.org/api",
				"API_REQUEST_TIMEOUT": "5s",
				"API_PROBE_INTERVAL":  "1m",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://classes.example.org/api", cfg.API.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
				assert.Equal(t, time.Minute, cfg.API.ProbeInterval)
			},
		},
		{
			name: "state config override",
			envVars: map[string]string{
				"STATE_FILE_PATH": "/tmp/classdesk.json",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/classdesk.json", cfg.State.FilePath)
			},
		},
		{
			name: "server config override",
			envVars: map[string]string{
				"SERVER_PORT":       "9090",
				"SERVER_JWT_SECRET": "customsecret",
				"SERVER_TOKEN_TTL":  "24h",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.Server.Port)
				assert.Equal(t, "customsecret", cfg.Server.JWTSecret)
				assert.Equal(t, 24*time.Hour, cfg.Server.TokenTTL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
