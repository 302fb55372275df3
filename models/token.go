package models

import "encoding/json"

// Token is the opaque value issued by the authentication collaborator on a
// successful register or login. The gateway hands it to the caller verbatim;
// it is never parsed, inspected, or stored server-side.
type Token struct {
	// Raw is the collaborator's response payload, byte for byte.
	Raw json.RawMessage
}
