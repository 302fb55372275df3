package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/utils"
	"github.com/walletgw/go-wallet-gateway/models"
)

// AuthClient is the HTTP adapter for the external authentication
// collaborator. All calls are bounded by the configured timeout; failures
// come back as *models.CollaboratorError.
type AuthClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewAuthClient(cfg config.Collaborator, logger *logger.Logger) *AuthClient {
	logger.Info().Str("base_url", cfg.BaseURL).Dur("timeout", cfg.Timeout).Msg("auth collaborator client created")
	return &AuthClient{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		logger: logger,
	}
}

func (c *AuthClient) Register(ctx context.Context, walletID, pin string) (models.Token, error) {
	return c.issueToken(ctx, "/register", walletID, pin)
}

func (c *AuthClient) Login(ctx context.Context, walletID, pin string) (models.Token, error) {
	return c.issueToken(ctx, "/login", walletID, pin)
}

// issueToken posts credentials to path and returns the collaborator's token
// payload verbatim. Register and login share the same wire contract.
func (c *AuthClient) issueToken(ctx context.Context, path, walletID, pin string) (models.Token, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.Credential{WalletID: walletID, Pin: pin}).
		Post(path)
	if err != nil {
		return models.Token{}, transportError(err)
	}
	if resp.IsError() {
		return models.Token{}, collaboratorError(resp)
	}

	return models.Token{Raw: append(json.RawMessage(nil), resp.Body()...)}, nil
}

func (c *AuthClient) Exists(ctx context.Context, walletID string) (bool, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("wallet_id", walletID).
		Get("/exist")
	if err != nil {
		return false, transportError(err)
	}
	if resp.IsError() {
		return false, collaboratorError(resp)
	}

	var exists bool
	if err := json.Unmarshal(resp.Body(), &exists); err != nil {
		return false, fmt.Errorf("error decoding existence response: %w", err)
	}

	return exists, nil
}

func (c *AuthClient) DisablePin(ctx context.Context, walletID, pin string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.Credential{WalletID: walletID, Pin: pin}).
		Delete("/pin")
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return collaboratorError(resp)
	}

	return nil
}

func (c *AuthClient) ResetPin(ctx context.Context, walletID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.Credential{WalletID: walletID}).
		Post("/reset")
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return collaboratorError(resp)
	}

	return nil
}
