package store

import (
	"context"
	"sync"
	"time"

	"github.com/iroro1/et-mobile-new/client"
	"github.com/iroro1/et-mobile-new/models"
)

// DefaultNotificationInterval is how often the feed is re-fetched
// while polling.
const DefaultNotificationInterval = 60 * time.Second

// NotificationFeed mirrors the server-emitted alert history with local
// read/unread state. Unlike readings, a failed fetch keeps the last
// known list; notification history does not go stale the way a live
// value does.
type NotificationFeed struct {
	client   *client.Client
	interval time.Duration

	mu            sync.Mutex
	notifications []models.Notification
	errMsg        string
}

func NewNotificationFeed(c *client.Client, interval time.Duration) *NotificationFeed {
	if interval <= 0 {
		interval = DefaultNotificationInterval
	}
	return &NotificationFeed{client: c, interval: interval}
}

// Fetch replaces the local list with the server's.
func (f *NotificationFeed) Fetch(ctx context.Context) {
	notifications, err := f.client.GetNotifications(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.errMsg = errorMessage(err, "Failed to fetch notifications.")
		return
	}
	f.notifications = notifications
	f.errMsg = ""
}

// MarkAsRead flags one notification as read on the server, then flips
// the local entry. The local flag changes only after the server
// confirms, so a failed call leaves the item unread. An id not present
// locally still issues the server call but changes nothing here.
func (f *NotificationFeed) MarkAsRead(ctx context.Context, id uint) error {
	_, err := f.client.MarkNotificationRead(ctx, id)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.errMsg = errorMessage(err, "Failed to mark notification as read.")
		return err
	}
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Read = true
		}
	}
	f.errMsg = ""
	return nil
}

// MarkAllAsRead flags the whole feed as read with a single server
// call.
func (f *NotificationFeed) MarkAllAsRead(ctx context.Context) error {
	err := f.client.MarkAllNotificationsRead(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.errMsg = errorMessage(err, "Failed to mark all notifications as read.")
		return err
	}
	for i := range f.notifications {
		f.notifications[i].Read = true
	}
	f.errMsg = ""
	return nil
}

// Notifications returns a copy of the current feed.
func (f *NotificationFeed) Notifications() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.notifications))
	copy(out, f.notifications)
	return out
}

// UnreadCount is recomputed from the list on every call; it can never
// drift from the underlying feed.
func (f *NotificationFeed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, n := range f.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Err returns the message recorded by the last failed operation.
func (f *NotificationFeed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// ClearError drops the recorded error message.
func (f *NotificationFeed) ClearError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = ""
}

// Poll fetches immediately and then on every interval tick until the
// context is cancelled.
func (f *NotificationFeed) Poll(ctx context.Context) {
	f.Fetch(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Fetch(ctx)
		}
	}
}
