// Package session implements the gateway's client-held session state.
//
// A session is a small signed token carried in a cookie: an optional wallet
// identity set after authentication and an optional anonymous tracking
// handle used by the location features. The signature (HMAC-SHA256 over a
// JWT) prevents tampering; the payload is not treated as confidential, so no
// secret material is ever placed in it. Nothing is persisted server-side;
// the cookie is re-parsed on every request.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Session is the per-request session value decoded from the signed cookie.
// The zero value is the unauthenticated, handle-less session.
type Session struct {
	// WalletID is the authenticated wallet identity, empty until a
	// successful register or login.
	WalletID string

	// TrackingID is the anonymous handle scoping location records to this
	// session. It is never derived from or linked to WalletID.
	TrackingID string

	// expiresAt is fixed when the session is first written and preserved
	// across re-encodes; sessions do not renew on activity.
	expiresAt time.Time
}

// SetIdentity records walletID as the session's authenticated identity.
// Idempotent; any prior identity is overwritten.
func (s *Session) SetIdentity(walletID string) {
	s.WalletID = walletID
}

// Authenticated reports whether the session carries a wallet identity.
func (s *Session) Authenticated() bool {
	return s.WalletID != ""
}

// EnsureTrackingID returns the session's anonymous handle, generating a fresh
// one on first use. The handle is 128 bits of entropy in a URL-safe base64
// encoding and stays stable for the session's lifetime. This is the only
// place the gateway mints identifiers; collision resistance comes from the
// entropy alone, no registry is consulted.
func (s *Session) EnsureTrackingID() string {
	if s.TrackingID == "" {
		s.TrackingID = newTrackingID()
	}
	return s.TrackingID
}

func newTrackingID() string {
	buf := make([]byte, 16)
	rand.Read(buf) // never fails per crypto/rand contract
	return base64.RawURLEncoding.EncodeToString(buf)
}
