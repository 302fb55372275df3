package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HARDENED":        "true",
		"APP_PROXY_URL":       "https://wallet.example.com",
		"APP_COOKIE_SECRET":   "cookie_secret",
		"APP_SESSION_MAX_AGE": "1h",
		"APP_VERSION":         "1.2.3",

		"SECURITY_CONNECT_HOSTS": "chain.so,bittrex.com",
		"SECURITY_FONT_HOSTS":    "s3.amazonaws.com",
		"SECURITY_IMAGE_HOSTS":   "www.gravatar.com",
		"SECURITY_STYLE_HOSTS":   "s3.amazonaws.com",
		"SECURITY_HSTS_MAX_AGE":  "4320h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"AUTH_BASE_URL": "http://auth.internal:9000",
		"AUTH_TIMEOUT":  "5s",
		"GEO_BASE_URL":  "http://geo.internal:9000",
		"GEO_TIMEOUT":   "2s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.True(t, cfg.App.Hardened)
	assert.Equal(t, "https://wallet.example.com", cfg.App.ProxyURL)
	assert.Equal(t, "cookie_secret", cfg.App.CookieSecret)
	assert.Equal(t, time.Hour, cfg.App.SessionMaxAge)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, []string{"chain.so", "bittrex.com"}, cfg.Security.ConnectHosts)
	assert.Equal(t, []string{"s3.amazonaws.com"}, cfg.Security.FontHosts)
	assert.Equal(t, []string{"www.gravatar.com"}, cfg.Security.ImageHosts)
	assert.Equal(t, []string{"s3.amazonaws.com"}, cfg.Security.StyleHosts)
	assert.Equal(t, 4320*time.Hour, cfg.Security.HSTSMaxAge)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://auth.internal:9000", cfg.Auth.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Auth.Timeout)
	assert.Equal(t, "http://geo.internal:9000", cfg.Geo.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Geo.Timeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_COOKIE_SECRET": "cookie_secret",
		"SERVER_ADDRESS":    "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// App partially filled
	assert.Equal(t, "cookie_secret", cfg.App.CookieSecret)
	assert.False(t, cfg.App.Hardened)
	assert.Empty(t, cfg.App.ProxyURL)
	assert.Zero(t, cfg.App.SessionMaxAge)

	// Server partially filled
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others untouched
	assert.Equal(t, Security{}, cfg.Security)
	assert.Equal(t, Collaborator{}, cfg.Auth)
	assert.Equal(t, Collaborator{}, cfg.Geo)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Defaults are applied later by the builder, not by parseEnv: an empty
	// environment yields a zero config, so later sources can still win.
	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Security{}, cfg.Security)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Collaborator{}, cfg.Auth)
	assert.Equal(t, Collaborator{}, cfg.Geo)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"APP_SESSION_MAX_AGE": "not-a-duration"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"APP_SESSION_MAX_AGE": tt.envValue})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.App.SessionMaxAge)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HARDENED",
		"APP_PROXY_URL",
		"APP_COOKIE_SECRET",
		"APP_SESSION_MAX_AGE",
		"APP_VERSION",

		"SECURITY_CONNECT_HOSTS",
		"SECURITY_FONT_HOSTS",
		"SECURITY_IMAGE_HOSTS",
		"SECURITY_STYLE_HOSTS",
		"SECURITY_HSTS_MAX_AGE",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"AUTH_BASE_URL",
		"AUTH_TIMEOUT",
		"GEO_BASE_URL",
		"GEO_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
