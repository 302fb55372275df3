package http

import (
	"encoding/json"
	"net/http"

	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/session"
	"github.com/walletgw/go-wallet-gateway/internal/utils"
	"github.com/walletgw/go-wallet-gateway/models"
)

func (h *Handler) saveLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sample, sess, ok := h.prepareLocation(w, r)
	if !ok {
		return
	}

	if err := h.services.Geo.Save(ctx, sample.Lat, sample.Lon, sample.Attributes); err != nil {
		h.collaboratorFailure(w, r, err)
		return
	}

	if err := h.sessions.Write(w, sess); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding session")
		http.Error(w, faultResponse, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) searchLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sample, sess, ok := h.prepareLocation(w, r)
	if !ok {
		return
	}

	results, err := h.services.Geo.Search(ctx, sample.Lat, sample.Lon, sample.Attributes)
	if err != nil {
		h.collaboratorFailure(w, r, err)
		return
	}

	if err := h.sessions.Write(w, sess); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding session")
		http.Error(w, faultResponse, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) removeLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// Removal is fire-and-forget: a session that never touched the location
	// features has nothing to remove, and collaborator failures are only
	// logged. The caller always gets 200.
	sess, _ := utils.GetSessionFromContext(ctx)
	if sess != nil && sess.TrackingID != "" {
		if err := h.services.Geo.Remove(ctx, sess.TrackingID); err != nil {
			log.Err(err).Msg("location removal failed")
		}
	}

	w.WriteHeader(http.StatusOK)
}

// prepareLocation decodes a location request body, validates the coordinates,
// and rebuilds the attribute bag for the geo collaborator: lat/lon are lifted
// out to travel positionally and the session's anonymous handle is attached
// under "id", generated on first use. On validation failure it answers 400
// and reports false; the session is left untouched.
func (h *Handler) prepareLocation(w http.ResponseWriter, r *http.Request) (models.LocationSample, *session.Session, bool) {
	log := logger.FromRequest(r)

	var bag map[string]any
	if err := json.NewDecoder(r.Body).Decode(&bag); err != nil {
		log.Err(err).Msg("invalid request body")
		badRequest(w)
		return models.LocationSample{}, nil, false
	}

	lat, latOK := bag["lat"].(float64)
	lon, lonOK := bag["lon"].(float64)
	if !latOK || !lonOK {
		log.Warn().Msg("location request without numeric coordinates")
		badRequest(w)
		return models.LocationSample{}, nil, false
	}

	delete(bag, "lat")
	delete(bag, "lon")

	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		log.Error().Msg("no session in request context")
		http.Error(w, faultResponse, http.StatusInternalServerError)
		return models.LocationSample{}, nil, false
	}

	bag["id"] = sess.EnsureTrackingID()

	return models.LocationSample{Lat: lat, Lon: lon, Attributes: bag}, sess, true
}
