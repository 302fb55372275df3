package main

import (
	"fmt"

	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/handler"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/server"
	"github.com/walletgw/go-wallet-gateway/internal/service"
	"github.com/walletgw/go-wallet-gateway/internal/session"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wallet-gateway")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Bool("hardened", cfg.App.Hardened).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	sessions := session.NewStore(cfg.App.CookieSecret, cfg.App.SessionMaxAge, cfg.App.Hardened)
	services := service.NewServices(cfg, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
