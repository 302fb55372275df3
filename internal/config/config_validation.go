package config

// validate checks that the final merged [StructuredConfig] satisfies all
// gateway invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.CookieSecret == "" {
		return ErrNoCookieSecret
	}

	if cfg.App.Hardened && cfg.App.ProxyURL == "" {
		return ErrNoProxyURL
	}

	if cfg.Auth.BaseURL == "" {
		return ErrNoAuthCollaborator
	}

	if cfg.Geo.BaseURL == "" {
		return ErrNoGeoCollaborator
	}

	return nil
}
