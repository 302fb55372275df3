package service

import (
	"context"
	"encoding/json"

	"github.com/walletgw/go-wallet-gateway/models"
)

// AuthGateway is the consumed interface of the external authentication
// collaborator. The gateway forwards credentials and translates results; PIN
// hashing and token issuance happen on the collaborator's side.
//
// Every method reports collaborator failures as a *models.CollaboratorError
// so the transport layer can pass the payload through to the client.
type AuthGateway interface {
	// Register creates a wallet and returns the issued token verbatim.
	Register(ctx context.Context, walletID, pin string) (models.Token, error)

	// Login authenticates a wallet and returns the issued token verbatim.
	Login(ctx context.Context, walletID, pin string) (models.Token, error)

	// Exists reports whether a wallet with the given identifier exists.
	Exists(ctx context.Context, walletID string) (bool, error)

	// DisablePin turns off PIN protection for the wallet.
	DisablePin(ctx context.Context, walletID, pin string) error

	// ResetPin starts a PIN reset for the wallet.
	ResetPin(ctx context.Context, walletID string) error
}

// GeoGateway is the consumed interface of the external geo collaborator.
// Coordinates travel positionally; the record is an opaque attribute bag
// keyed by the session's anonymous handle.
type GeoGateway interface {
	// Save stores a proximity record at the given coordinates.
	Save(ctx context.Context, lat, lon float64, record map[string]any) error

	// Search queries records near the given coordinates and returns the
	// collaborator's results verbatim.
	Search(ctx context.Context, lat, lon float64, record map[string]any) (json.RawMessage, error)

	// Remove deletes all records keyed by handle.
	Remove(ctx context.Context, handle string) error
}
