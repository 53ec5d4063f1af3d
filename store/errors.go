// Package store holds the client-side state the screens render:
// sensor readings, thresholds and notifications. Each store owns its
// slice of state exclusively behind a mutex and refreshes it from the
// backend, either on demand or on a polling ticker.
package store

import (
	"errors"
	"net/http"

	"github.com/iroro1/et-mobile-new/client"
)

// errorMessage turns a client error into the string shown to the user.
// Server-reported messages pass through verbatim; transport failures
// collapse into the store's fallback message.
func errorMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// isNotFound reports whether the error is a server 404.
func isNotFound(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
