package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iroro1/et-mobile-new/models"
)

// GetNotifications fetches the server-emitted alert history.
func (c *Client) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return requestJSON[[]models.Notification](ctx, c, http.MethodGet, "/notifications", nil)
}

// MarkNotificationRead flags one notification as read and returns the
// updated entity.
func (c *Client) MarkNotificationRead(ctx context.Context, id uint) (models.Notification, error) {
	return requestJSON[models.Notification](ctx, c, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil)
}

// MarkAllNotificationsRead flags every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := requestJSON[json.RawMessage](ctx, c, http.MethodPut, "/notifications/read-all", nil)
	return err
}
