package handler

import (
	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/handler/http"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/service"
	"github.com/walletgw/go-wallet-gateway/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Store, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
