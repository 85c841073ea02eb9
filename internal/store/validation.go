package store

// ValidationError reports a single invalid field in a request payload.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
