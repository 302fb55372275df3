package http

import (
	"errors"
	"net/http"

	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/utils"
	"github.com/walletgw/go-wallet-gateway/models"
)

// badRequest writes the fixed validation-failure body. Used for every
// locally-detected input problem, before any collaborator is called.
func badRequest(w http.ResponseWriter) {
	utils.WriteJSON(w, models.BadRequest, http.StatusBadRequest)
}

// collaboratorFailure translates a collaborator error into the client
// response: the collaborator's structural payload travels through as the 400
// body unmodified. Anything that is not a collaborator error is an unhandled
// fault and yields the generic 500.
func (h *Handler) collaboratorFailure(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var cerr *models.CollaboratorError
	if errors.As(err, &cerr) {
		log.Err(cerr).Msg("collaborator reported failure")
		utils.WriteJSON(w, cerr, http.StatusBadRequest)
		return
	}

	log.Err(err).Msg("unexpected gateway failure")
	http.Error(w, faultResponse, http.StatusInternalServerError)
}

// writeToken responds 200 with the collaborator-issued token verbatim.
func writeToken(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(token.Raw)
}
