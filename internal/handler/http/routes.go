package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the middleware pipeline and routes.
//
// Order matters: the trace-id and logging middleware come first so every
// outcome is observable, the fault boundary wraps everything below it, and
// transport security, compression, and session decoding all run before any
// route handler. Validation happens inside the handlers, strictly before any
// collaborator call.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverFaults)
	router.Use(middleware.RealIP)
	router.Use(h.withTransportSecurity)
	router.Use(withGZip)
	router.Use(h.withSession)

	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Get("/exist", h.exist)
	router.Delete("/pin", h.disablePin)
	router.Get("/reset", h.resetPin)

	router.Post("/location", h.saveLocation)
	router.Put("/location", h.searchLocation)
	router.Delete("/location", h.removeLocation)

	return router
}
