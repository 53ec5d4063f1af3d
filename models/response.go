package models

// ApiResponse is the envelope every backend endpoint wraps its payload
// in. Responses are decoded into a typed envelope at the network
// boundary so malformed or missing fields fail loudly instead of
// silently falling back.
type ApiResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
