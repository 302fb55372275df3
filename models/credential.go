package models

// Credential carries the identifiers a caller presents when registering or
// logging in a wallet. The gateway validates the shape, forwards the values to
// the authentication collaborator, and discards them; nothing here is stored.
type Credential struct {
	// WalletID is the caller-supplied wallet identifier.
	WalletID string `json:"wallet_id"`

	// Pin is the wallet PIN. Whether it may be absent depends on the
	// operation: login tolerates a missing PIN, registration does not.
	Pin string `json:"pin"`
}

// PinDisableRequest is the body of a DELETE /pin call. The id must match the
// authenticated identity held in the caller's session.
type PinDisableRequest struct {
	ID  string `json:"id"`
	Pin string `json:"pin"`
}
