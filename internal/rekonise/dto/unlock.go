package dto

// UnlockResponse represents the deserialized payload of the unlock endpoint.
//
// The endpoint answers with a JSON object whose url field carries the
// download URL released for the plug. Other fields in the payload are
// ignored.
type UnlockResponse struct {
	URL string `json:"url"`
}
