package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie under which the signed session travels.
const CookieName = "wallet_session"

// claims is the wire form of a session: standard JWT registered claims for
// expiry plus the two session attributes.
type claims struct {
	jwt.RegisteredClaims
	WalletID   string `json:"wallet_id,omitempty"`
	TrackingID string `json:"tracking_id,omitempty"`
}

// Store reads and writes signed session cookies. It holds the server-side
// signing secret and the fixed session lifetime; it keeps no per-session
// state of its own and is safe for concurrent use.
type Store struct {
	secret []byte
	maxAge time.Duration
	secure bool
}

// NewStore returns a Store signing sessions with secret. Sessions expire
// maxAge after first creation, with no sliding renewal. When secure is set,
// cookies are marked Secure and only travel over HTTPS.
func NewStore(secret string, maxAge time.Duration, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		maxAge: maxAge,
		secure: secure,
	}
}

// Read decodes the session cookie from r. A missing, malformed, tampered, or
// expired cookie yields the empty Session; absence of a valid session means
// unauthenticated, never an error surfaced to the caller.
func (st *Store) Read(r *http.Request) Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}
	}

	var cl claims
	token, err := jwt.ParseWithClaims(cookie.Value, &cl, func(*jwt.Token) (any, error) {
		return st.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Session{}
	}

	s := Session{
		WalletID:   cl.WalletID,
		TrackingID: cl.TrackingID,
	}
	if cl.ExpiresAt != nil {
		s.expiresAt = cl.ExpiresAt.Time
	}
	return s
}

// Write signs s and attaches it to the response as a cookie. A session being
// written for the first time gets an expiry of now+maxAge; re-encoded
// sessions keep their original expiry. Must be called before the response
// status and body are written.
func (st *Store) Write(w http.ResponseWriter, s *Session) error {
	now := time.Now()

	if s.expiresAt.IsZero() {
		s.expiresAt = now.Add(st.maxAge)
	}

	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.expiresAt),
		},
		WalletID:   s.WalletID,
		TrackingID: s.TrackingID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(st.secret)
	if err != nil {
		return fmt.Errorf("error signing session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  s.expiresAt,
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
