package http

import (
	"net/http"
	"runtime/debug"

	"github.com/walletgw/go-wallet-gateway/internal/logger"
)

// faultResponse is the only thing a client ever sees of an unhandled fault.
// Collaborator detail and stack traces stay in the server logs.
const faultResponse = "Oops! something went wrong."

// recoverFaults is the gateway's last-resort fault boundary: any panic
// escaping the layers below is caught here, logged with its stack, and
// converted into a generic 500 response.
func (h *Handler) recoverFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// the connection is gone; let net/http handle it
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("unhandled fault")

			http.Error(w, faultResponse, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
