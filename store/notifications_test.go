package store

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/iroro1/et-mobile-new/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedHandler(markCalls *int32) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []models.Notification{
			{ID: 1, SensorType: models.Temperature, Severity: models.SeverityWarning, Read: false},
			{ID: 2, SensorType: models.FireDetection, Severity: models.SeverityCritical, Read: false},
			{ID: 3, SensorType: models.Humidity, Severity: models.SeverityWarning, Read: true},
		}, "OK")
	})
	mux.HandleFunc("/notifications/", func(w http.ResponseWriter, r *http.Request) {
		if markCalls != nil {
			atomic.AddInt32(markCalls, 1)
		}
		writeEnvelope(w, http.StatusOK, models.Notification{ID: 99, Read: true}, "Notification marked as read")
	})
	mux.HandleFunc("/notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, nil, "All notifications marked as read")
	})
	return mux
}

func TestUnreadCountIsDerived(t *testing.T) {
	c := testClient(t, feedHandler(nil))
	f := NewNotificationFeed(c, 0)

	assert.Zero(t, f.UnreadCount())
	f.Fetch(context.Background())
	assert.Equal(t, 2, f.UnreadCount())
}

func TestMarkAsReadFlipsLocalEntryAfterSuccess(t *testing.T) {
	c := testClient(t, feedHandler(nil))
	f := NewNotificationFeed(c, 0)
	f.Fetch(context.Background())

	require.NoError(t, f.MarkAsRead(context.Background(), 1))
	assert.Equal(t, 1, f.UnreadCount())
	for _, n := range f.Notifications() {
		if n.ID == 1 {
			assert.True(t, n.Read)
		}
	}
}

func TestMarkAsReadUnknownIDIsLocalNoOp(t *testing.T) {
	var markCalls int32
	c := testClient(t, feedHandler(&markCalls))
	f := NewNotificationFeed(c, 0)
	f.Fetch(context.Background())

	before := f.Notifications()
	require.NoError(t, f.MarkAsRead(context.Background(), 99))

	// The server call is still issued, local state is unchanged.
	assert.Equal(t, int32(1), atomic.LoadInt32(&markCalls))
	assert.Equal(t, before, f.Notifications())
}

func TestMarkAllAsReadZeroesUnreadCount(t *testing.T) {
	c := testClient(t, feedHandler(nil))
	f := NewNotificationFeed(c, 0)
	f.Fetch(context.Background())
	require.Equal(t, 2, f.UnreadCount())

	require.NoError(t, f.MarkAllAsRead(context.Background()))
	assert.Zero(t, f.UnreadCount())
	for _, n := range f.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestFetchErrorKeepsLastKnownFeed(t *testing.T) {
	fail := false
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeEnvelope(w, http.StatusInternalServerError, nil, "backend exploded")
			return
		}
		writeEnvelope(w, http.StatusOK, []models.Notification{{ID: 1}}, "OK")
	})
	c := testClient(t, mux)

	f := NewNotificationFeed(c, 0)
	f.Fetch(context.Background())
	require.Len(t, f.Notifications(), 1)

	// Notification history is kept on a failed refresh, unlike live
	// readings.
	fail = true
	f.Fetch(context.Background())
	assert.Len(t, f.Notifications(), 1)
	assert.Equal(t, "backend exploded", f.Err())
}
