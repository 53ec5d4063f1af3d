package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iroro1/et-mobile-new/models"
)

// GetSensorReadings fetches the full current reading set.
func (c *Client) GetSensorReadings(ctx context.Context) ([]models.SensorReading, error) {
	return requestJSON[[]models.SensorReading](ctx, c, http.MethodGet, "/sensors/readings", nil)
}

// GetSensorReadingsByType fetches readings for a single sensor type.
func (c *Client) GetSensorReadingsByType(ctx context.Context, sensorType models.SensorType) ([]models.SensorReading, error) {
	return requestJSON[[]models.SensorReading](ctx, c, http.MethodGet, "/sensors/readings/"+string(sensorType), nil)
}

// GetThresholds fetches all configured thresholds. A backend with no
// thresholds configured yet answers 404, surfaced as an *APIError.
func (c *Client) GetThresholds(ctx context.Context) ([]models.SensorThreshold, error) {
	return requestJSON[[]models.SensorThreshold](ctx, c, http.MethodGet, "/sensors/thresholds", nil)
}

// UpdateThreshold sends a partial edit for an existing threshold and
// returns the server's representation.
func (c *Client) UpdateThreshold(ctx context.Context, id uint, update models.ThresholdUpdate) (models.SensorThreshold, error) {
	return requestJSON[models.SensorThreshold](ctx, c, http.MethodPut, fmt.Sprintf("/sensors/thresholds/%d", id), update)
}

// CreateThreshold sends a new threshold (no client-assigned id) and
// returns the created entity.
func (c *Client) CreateThreshold(ctx context.Context, draft models.ThresholdDraft) (models.SensorThreshold, error) {
	return requestJSON[models.SensorThreshold](ctx, c, http.MethodPost, "/sensors/thresholds", draft)
}
