package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/pin"
	"github.com/walletgw/go-wallet-gateway/internal/utils"
	"github.com/walletgw/go-wallet-gateway/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cred, ok := readCredential(w, r, false)
	if !ok {
		return
	}

	token, err := h.services.Auth.Register(ctx, cred.WalletID, cred.Pin)
	if err != nil {
		h.collaboratorFailure(w, r, err)
		return
	}

	if !h.writeIdentity(w, r, cred.WalletID) {
		return
	}

	log.Info().Str("wallet_id", cred.WalletID).Msg("registered wallet")
	writeToken(w, token)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cred, ok := readCredential(w, r, true)
	if !ok {
		return
	}

	token, err := h.services.Auth.Login(ctx, cred.WalletID, cred.Pin)
	if err != nil {
		h.collaboratorFailure(w, r, err)
		return
	}

	if !h.writeIdentity(w, r, cred.WalletID) {
		return
	}

	log.Info().Str("wallet_id", cred.WalletID).Msg("authenticated wallet")
	writeToken(w, token)
}

func (h *Handler) exist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	walletID := r.URL.Query().Get("wallet_id")
	if walletID == "" {
		badRequest(w)
		return
	}

	exists, err := h.services.Auth.Exists(ctx, walletID)
	if err != nil {
		h.collaboratorFailure(w, r, err)
		return
	}

	utils.WriteJSON(w, exists, http.StatusOK)
}

func (h *Handler) disablePin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PinDisableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid request body")
		badRequest(w)
		return
	}

	// the restriction check: only the wallet named in the session may act
	// on itself
	sess, _ := utils.GetSessionFromContext(ctx)
	if sess == nil || !sess.Authenticated() || sess.WalletID != req.ID {
		log.Warn().Str("id", req.ID).Msg("restricted operation without matching session identity")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if err := h.services.Auth.DisablePin(ctx, req.ID, req.Pin); err != nil {
		h.collaboratorFailure(w, r, err)
		return
	}

	log.Info().Str("wallet_id", req.ID).Msg("pin disabled")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resetPin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	walletID := r.URL.Query().Get("wallet_id")
	if walletID == "" {
		badRequest(w)
		return
	}

	// Reset deliberately answers 200 regardless of the collaborator outcome,
	// reporting failure only through the body. Callers poll the body, not
	// the status code.
	err := h.services.Auth.ResetPin(ctx, walletID)

	var cerr *models.CollaboratorError
	if errors.As(err, &cerr) {
		log.Err(cerr).Str("wallet_id", walletID).Msg("pin reset failed")
		utils.WriteJSON(w, cerr, http.StatusOK)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// readCredential decodes and validates the register/login request body. On
// any shape problem it answers 400 with the fixed validation body and
// reports false; the collaborator is never reached with malformed input.
func readCredential(w http.ResponseWriter, r *http.Request, allowMissingPin bool) (models.Credential, bool) {
	log := logger.FromRequest(r)

	var cred models.Credential
	if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
		log.Err(err).Msg("invalid request body")
		badRequest(w)
		return models.Credential{}, false
	}

	if cred.WalletID == "" || !pin.ValidFormat(cred.Pin, allowMissingPin) {
		log.Warn().Str("wallet_id", cred.WalletID).Msg("credential validation failed")
		badRequest(w)
		return models.Credential{}, false
	}

	return cred, true
}

// writeIdentity records walletID in the session and re-encodes the cookie.
// Called only after the collaborator confirmed the credentials.
func (h *Handler) writeIdentity(w http.ResponseWriter, r *http.Request, walletID string) bool {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no session in request context")
		http.Error(w, faultResponse, http.StatusInternalServerError)
		return false
	}

	sess.SetIdentity(walletID)
	if err := h.sessions.Write(w, sess); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding session")
		http.Error(w, faultResponse, http.StatusInternalServerError)
		return false
	}

	return true
}
