package models

// LocationSample is the decoded body of a location write or query. Lat and Lon
// are passed positionally to the geo collaborator; everything else travels in
// the opaque attribute bag, to which the session's anonymous handle is
// attached under the "id" key. A sample exists only for the duration of one
// request.
type LocationSample struct {
	Lat        float64
	Lon        float64
	Attributes map[string]any
}
