package http

import (
	"context"
	"net/http"

	"github.com/walletgw/go-wallet-gateway/internal/utils"
)

// withSession decodes the signed session cookie into a per-request session
// value and places a pointer to it in the context. Tampered, expired, or
// absent cookies silently yield the empty session: the caller is simply
// unauthenticated.
//
// Handlers mutate the pointed-to value and re-encode it with an explicit
// Store.Write on their success path, so a failed validation never touches
// the outgoing cookie.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.Read(r)

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, &sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
