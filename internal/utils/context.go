// Package utils provides general-purpose helper utilities used across
// different parts of the gateway: type-safe context keys, HTTP response
// writing, and HTTP client initialization.
package utils

import (
	"context"

	"github.com/walletgw/go-wallet-gateway/internal/session"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the per-request session value is
// stored in the context. The session middleware writes it; handlers read and
// mutate the pointed-to value.
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the per-request session from the context.
//
// Returns the *session.Session and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(*session.Session)
	return s, ok
}
