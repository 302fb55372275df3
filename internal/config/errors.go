package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrNoCookieSecret is returned when no session cookie signing key is
	// configured. The gateway cannot issue or verify sessions without one.
	ErrNoCookieSecret = errors.New("no session cookie secret configured")

	// ErrNoProxyURL is returned when hardened mode is enabled but the public
	// proxy URL is missing; the content-security policy needs its host.
	ErrNoProxyURL = errors.New("hardened mode requires a proxy URL")

	// ErrNoAuthCollaborator is returned when the authentication
	// collaborator's base URL is missing.
	ErrNoAuthCollaborator = errors.New("no authentication collaborator base URL configured")

	// ErrNoGeoCollaborator is returned when the geo collaborator's base URL
	// is missing.
	ErrNoGeoCollaborator = errors.New("no geo collaborator base URL configured")
)
