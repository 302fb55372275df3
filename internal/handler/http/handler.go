package http

import (
	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/service"
	"github.com/walletgw/go-wallet-gateway/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Store
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Store, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}
