package models

import (
	"encoding/json"
	"fmt"
)

// CollaboratorError is the structural form of a failure reported by an
// external collaborator (authentication or geo). Its JSON form is what the
// gateway returns to the client on a 400: the error contract between the
// collaborators and their callers passes through the gateway unmodified.
//
// Transport-level failures (timeouts, unreachable collaborator) are expressed
// in the same shape so the client sees a single error contract.
type CollaboratorError struct {
	// Code is a short machine-readable failure identifier.
	Code string `json:"code,omitempty"`

	// Message is the human-readable description supplied by the collaborator.
	Message string `json:"message,omitempty"`

	// Detail is any additional payload the collaborator attached. When a
	// collaborator responds with a body that does not match this structure,
	// the whole body is preserved here.
	Detail json.RawMessage `json:"detail,omitempty"`
}

func (e *CollaboratorError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
