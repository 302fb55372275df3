package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/service"
	"github.com/walletgw/go-wallet-gateway/internal/session"
	"github.com/walletgw/go-wallet-gateway/models"
)

// ─────────────────────────────────────────────
// Mock collaborator gateways
// ─────────────────────────────────────────────

// mockAuthGateway implements service.AuthGateway for unit tests. Each method
// field can be overridden per test case; calls counts every invocation so
// tests can assert that validation failures never reach the collaborator.
type mockAuthGateway struct {
	calls int

	registerFn   func(ctx context.Context, walletID, pin string) (models.Token, error)
	loginFn      func(ctx context.Context, walletID, pin string) (models.Token, error)
	existsFn     func(ctx context.Context, walletID string) (bool, error)
	disablePinFn func(ctx context.Context, walletID, pin string) error
	resetPinFn   func(ctx context.Context, walletID string) error
}

func (m *mockAuthGateway) Register(ctx context.Context, walletID, pin string) (models.Token, error) {
	m.calls++
	if m.registerFn != nil {
		return m.registerFn(ctx, walletID, pin)
	}
	return models.Token{Raw: json.RawMessage(`"token"`)}, nil
}

func (m *mockAuthGateway) Login(ctx context.Context, walletID, pin string) (models.Token, error) {
	m.calls++
	if m.loginFn != nil {
		return m.loginFn(ctx, walletID, pin)
	}
	return models.Token{Raw: json.RawMessage(`"token"`)}, nil
}

func (m *mockAuthGateway) Exists(ctx context.Context, walletID string) (bool, error) {
	m.calls++
	if m.existsFn != nil {
		return m.existsFn(ctx, walletID)
	}
	return false, nil
}

func (m *mockAuthGateway) DisablePin(ctx context.Context, walletID, pin string) error {
	m.calls++
	if m.disablePinFn != nil {
		return m.disablePinFn(ctx, walletID, pin)
	}
	return nil
}

func (m *mockAuthGateway) ResetPin(ctx context.Context, walletID string) error {
	m.calls++
	if m.resetPinFn != nil {
		return m.resetPinFn(ctx, walletID)
	}
	return nil
}

// mockGeoGateway implements service.GeoGateway for unit tests.
type mockGeoGateway struct {
	calls int

	saveFn   func(ctx context.Context, lat, lon float64, record map[string]any) error
	searchFn func(ctx context.Context, lat, lon float64, record map[string]any) (json.RawMessage, error)
	removeFn func(ctx context.Context, handle string) error
}

func (m *mockGeoGateway) Save(ctx context.Context, lat, lon float64, record map[string]any) error {
	m.calls++
	if m.saveFn != nil {
		return m.saveFn(ctx, lat, lon, record)
	}
	return nil
}

func (m *mockGeoGateway) Search(ctx context.Context, lat, lon float64, record map[string]any) (json.RawMessage, error) {
	m.calls++
	if m.searchFn != nil {
		return m.searchFn(ctx, lat, lon, record)
	}
	return json.RawMessage(`[]`), nil
}

func (m *mockGeoGateway) Remove(ctx context.Context, handle string) error {
	m.calls++
	if m.removeFn != nil {
		return m.removeFn(ctx, handle)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testCookieSecret = "test-cookie-secret"

// newTestConfig returns a non-hardened gateway configuration for tests.
func newTestConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.CookieSecret = testCookieSecret
	cfg.App.SessionMaxAge = time.Hour
	return cfg
}

// newTestRouter wires a full router around the given mocks so requests run
// through the real middleware pipeline.
func newTestRouter(t *testing.T, cfg *config.StructuredConfig, auth service.AuthGateway, geo service.GeoGateway) http.Handler {
	t.Helper()

	sessions := session.NewStore(cfg.App.CookieSecret, cfg.App.SessionMaxAge, false)
	h := NewHandler(&service.Services{Auth: auth, Geo: geo}, sessions, cfg, logger.Nop())
	return h.Init()
}

// doJSON performs a request with the given JSON body and optional session
// cookie against router.
func doJSON(t *testing.T, router http.Handler, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the session cookie from a recorded response,
// failing the test when it is absent.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// hasSessionCookie reports whether the response carries a session cookie.
func hasSessionCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return true
		}
	}
	return false
}

// badRequestBody asserts the fixed validation-failure payload.
func badRequestBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.JSONEq(t, `{"error":"Bad request"}`, rec.Body.String())
}
