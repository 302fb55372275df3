package models

// APIError is the structured body returned for failures the gateway detects
// locally, before any collaborator is called.
type APIError struct {
	Error string `json:"error"`
}

// BadRequest is the fixed validation-failure body. Every malformed or
// incomplete request gets this exact payload with HTTP 400.
var BadRequest = APIError{Error: "Bad request"}
