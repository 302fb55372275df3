package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the wallet
// gateway. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file. It is constructed once at process start and passed by reference into
// the gateway's constructors; request-handling code never reads the ambient
// environment.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds deployment-level settings: hardened mode, the public proxy
	// URL, the session cookie secret and lifetime.
	App App `envPrefix:"APP_"`

	// Security holds the content-security-policy host allow-lists and the
	// HSTS lifetime applied in hardened mode.
	Security Security `envPrefix:"SECURITY_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the endpoint of the external authentication collaborator.
	Auth Collaborator `envPrefix:"AUTH_"`

	// Geo holds the endpoint of the external geo collaborator.
	Geo Collaborator `envPrefix:"GEO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds deployment-level configuration for the gateway itself.
type App struct {
	// Hardened enables transport-security enforcement: plaintext requests
	// are redirected to HTTPS and browser hardening headers are attached to
	// every response. Off by default for local development.
	// Env: APP_HARDENED
	Hardened bool `env:"HARDENED"`

	// ProxyURL is the public HTTPS URL the gateway is served behind
	// (e.g. "https://wallet.example.com"). Its host is included in the
	// content-security-policy connect-src allow-list. Required in hardened
	// mode.
	// Env: APP_PROXY_URL
	ProxyURL string `env:"PROXY_URL"`

	// CookieSecret is the key used to sign session cookies with HMAC-SHA256.
	// Must be kept confidential. The cookie payload itself is not encrypted,
	// so no secret material is ever placed in a session.
	// Env: APP_COOKIE_SECRET
	CookieSecret string `env:"COOKIE_SECRET"`

	// SessionMaxAge is how long a session remains valid after creation.
	// There is no sliding renewal: the expiry is fixed when the session is
	// first written. Defaults to one hour.
	// Env: APP_SESSION_MAX_AGE
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE"`

	// Version is the semantic version string of the running gateway.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// ProxyHost returns the bare host portion of ProxyURL: the scheme prefix is
// stripped and anything from the first "/?" onward is discarded. Returns ""
// when no proxy URL is configured.
func (a App) ProxyHost() string {
	host := strings.TrimPrefix(a.ProxyURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	if i := strings.Index(host, "/?"); i > 0 {
		host = host[:i]
	}
	return strings.TrimSuffix(host, "/")
}

// Security holds the host allow-lists for the content-security policy and the
// transport-security header lifetime. The defaults cover the third-party
// services the wallet front-end talks to (price tickers, blockchain APIs,
// asset CDNs); deployments override them via environment.
type Security struct {
	// ConnectHosts are the third-party hosts allowed in connect-src.
	// Env: SECURITY_CONNECT_HOSTS (comma-separated)
	ConnectHosts []string `env:"CONNECT_HOSTS"`

	// FontHosts are the hosts allowed in font-src.
	// Env: SECURITY_FONT_HOSTS
	FontHosts []string `env:"FONT_HOSTS"`

	// ImageHosts are the hosts allowed in img-src beside 'self' and data:.
	// Env: SECURITY_IMAGE_HOSTS
	ImageHosts []string `env:"IMAGE_HOSTS"`

	// StyleHosts are the hosts allowed in style-src beside 'self'.
	// Env: SECURITY_STYLE_HOSTS
	StyleHosts []string `env:"STYLE_HOSTS"`

	// HSTSMaxAge is the Strict-Transport-Security lifetime. Defaults to
	// 4320h (180 days).
	// Env: SECURITY_HSTS_MAX_AGE
	HSTSMaxAge time.Duration `env:"HSTS_MAX_AGE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long the server waits for request headers.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Collaborator holds the connection settings for one external collaborator.
type Collaborator struct {
	// BaseURL is the collaborator's root endpoint
	// (e.g. "http://auth.internal:9000").
	// Env: {AUTH,GEO}_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds every call to the collaborator. A call that exceeds it
	// is reported to the client in the same shape as any other collaborator
	// failure. Defaults to ten seconds.
	// Env: {AUTH,GEO}_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Defaults applied after all sources are merged, so any source may override
// them.
var (
	defaultSessionMaxAge       = time.Hour
	defaultHSTSMaxAge          = 4320 * time.Hour // 180 days
	defaultCollaboratorTimeout = 10 * time.Second

	// The third-party services the wallet front-end talks to: price tickers,
	// blockchain APIs, asset CDNs.
	defaultConnectHosts = []string{
		"apiv2.bitcoinaverage.com", "chain.so", "bittrex.com",
		"btc.blockr.io", "tbtc.blockr.io", "ltc.blockr.io",
	}
	defaultFontHosts  = []string{"s3.amazonaws.com"}
	defaultImageHosts = []string{"www.gravatar.com"}
	defaultStyleHosts = []string{"s3.amazonaws.com"}
)

// setDefaults fills every field no configuration source provided.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.SessionMaxAge == 0 {
		cfg.App.SessionMaxAge = defaultSessionMaxAge
	}
	if cfg.Security.HSTSMaxAge == 0 {
		cfg.Security.HSTSMaxAge = defaultHSTSMaxAge
	}
	if cfg.Security.ConnectHosts == nil {
		cfg.Security.ConnectHosts = defaultConnectHosts
	}
	if cfg.Security.FontHosts == nil {
		cfg.Security.FontHosts = defaultFontHosts
	}
	if cfg.Security.ImageHosts == nil {
		cfg.Security.ImageHosts = defaultImageHosts
	}
	if cfg.Security.StyleHosts == nil {
		cfg.Security.StyleHosts = defaultStyleHosts
	}
	if cfg.Auth.Timeout == 0 {
		cfg.Auth.Timeout = defaultCollaboratorTimeout
	}
	if cfg.Geo.Timeout == 0 {
		cfg.Geo.Timeout = defaultCollaboratorTimeout
	}
}

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields no source provides fall back to the package defaults. Returns a
// fully populated *StructuredConfig or an error if any source fails to load
// or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
