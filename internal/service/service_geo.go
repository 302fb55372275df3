package service

import (
	"context"
	"encoding/json"

	"github.com/walletgw/go-wallet-gateway/internal/config"
	"github.com/walletgw/go-wallet-gateway/internal/logger"
	"github.com/walletgw/go-wallet-gateway/internal/utils"
)

// geoPayload is the wire form of a save or search call: coordinates travel
// positionally, the attribute bag stays opaque to the gateway.
type geoPayload struct {
	Lat    float64        `json:"lat"`
	Lon    float64        `json:"lon"`
	Record map[string]any `json:"record"`
}

// GeoClient is the HTTP adapter for the external geo collaborator.
type GeoClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewGeoClient(cfg config.Collaborator, logger *logger.Logger) *GeoClient {
	logger.Info().Str("base_url", cfg.BaseURL).Dur("timeout", cfg.Timeout).Msg("geo collaborator client created")
	return &GeoClient{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		logger: logger,
	}
}

func (c *GeoClient) Save(ctx context.Context, lat, lon float64, record map[string]any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(geoPayload{Lat: lat, Lon: lon, Record: record}).
		Post("/location")
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return collaboratorError(resp)
	}

	return nil
}

func (c *GeoClient) Search(ctx context.Context, lat, lon float64, record map[string]any) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(geoPayload{Lat: lat, Lon: lon, Record: record}).
		Put("/location")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, collaboratorError(resp)
	}

	return append(json.RawMessage(nil), resp.Body()...), nil
}

func (c *GeoClient) Remove(ctx context.Context, handle string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("handle", handle).
		Delete("/location/{handle}")
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return collaboratorError(resp)
	}

	return nil
}
