package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/walletgw/go-wallet-gateway/internal/config"
)

// withTransportSecurity enforces encrypted transport and browser hardening in
// hardened deployments.
//
// Requests arriving over plaintext (no TLS and no https X-Forwarded-Proto
// from the fronting proxy) are redirected to the HTTPS equivalent of the same
// host and path. All other responses carry a strict content-security policy
// built from the configured host allow-lists, plus clickjacking, sniffing,
// and transport-security headers.
//
// In non-hardened mode the middleware is a pass-through: nothing is checked,
// nothing is set. This layer never fails a request.
func (h *Handler) withTransportSecurity(next http.Handler) http.Handler {
	if !h.cfg.App.Hardened {
		return next
	}

	csp := buildContentSecurityPolicy(h.cfg)
	hsts := fmt.Sprintf("max-age=%d; includeSubDomains", int64(h.cfg.Security.HSTSMaxAge.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
			http.Redirect(w, r, "https://"+r.Host+r.RequestURI, http.StatusFound)
			return
		}

		header := w.Header()
		header.Set("Content-Security-Policy", csp)
		header.Set("X-Frame-Options", "SAMEORIGIN")
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("X-XSS-Protection", "1; mode=block")
		header.Set("Strict-Transport-Security", hsts)

		next.ServeHTTP(w, r)
	})
}

// buildContentSecurityPolicy assembles the CSP header value from the
// configured allow-lists. Self and blob sources are fixed; the third-party
// hosts come from deployment configuration, including the public proxy host.
func buildContentSecurityPolicy(cfg *config.StructuredConfig) string {
	connectSources := append([]string{"'self'", "blob:"}, cfg.Security.ConnectHosts...)
	if proxyHost := cfg.App.ProxyHost(); proxyHost != "" {
		connectSources = append(connectSources, proxyHost)
	}

	directives := []string{
		"default-src 'self' blob:",
		"child-src 'self' blob:",
		"connect-src " + strings.Join(connectSources, " "),
		"font-src " + strings.Join(cfg.Security.FontHosts, " "),
		"img-src " + strings.Join(append([]string{"'self'", "data:"}, cfg.Security.ImageHosts...), " "),
		"style-src " + strings.Join(append([]string{"'self'"}, cfg.Security.StyleHosts...), " "),
		"script-src 'self' blob: 'unsafe-eval'",
	}

	return strings.Join(directives, "; ")
}
