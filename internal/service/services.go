package service

import (
	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
)

type Services struct {
	Auth AuthGateway
	Geo  GeoGateway
}

func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Auth: NewAuthClient(cfg.Auth, logger),
		Geo:  NewGeoClient(cfg.Geo, logger),
	}
}
