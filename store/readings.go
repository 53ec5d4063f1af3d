package store

import (
	"context"
	"sync"
	"time"

	"github.com/iroro1/et-mobile-new/client"
	"github.com/iroro1/et-mobile-new/models"
)

// DefaultReadingInterval is how often the reading set is re-fetched
// while polling.
const DefaultReadingInterval = 30 * time.Second

// ReadingStore holds the most recently fetched reading collection.
// Every fetch replaces the collection wholesale; readings are never
// merged. A fetch that fails blanks the collection and records an
// error so the screens never present stale values as live.
type ReadingStore struct {
	client   *client.Client
	interval time.Duration

	mu       sync.Mutex
	readings []models.SensorReading
	errMsg   string

	// Fetches are tagged with a sequence number so a slow response can
	// never overwrite the result of a newer one.
	fetchSeq   uint64
	appliedSeq uint64
}

func NewReadingStore(c *client.Client, interval time.Duration) *ReadingStore {
	if interval <= 0 {
		interval = DefaultReadingInterval
	}
	return &ReadingStore{client: c, interval: interval}
}

// Fetch replaces the in-memory collection with the backend's current
// reading set. Errors are recorded, not returned; read Err afterwards.
func (s *ReadingStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	readings, err := s.client.GetSensorReadings(ctx)
	s.apply(seq, readings, err)
}

func (s *ReadingStore) apply(seq uint64, readings []models.SensorReading, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.appliedSeq {
		// A newer fetch already landed.
		return
	}
	s.appliedSeq = seq

	if err != nil {
		s.readings = nil
		s.errMsg = errorMessage(err, "Failed to fetch sensor readings.")
		return
	}
	s.readings = readings
	s.errMsg = ""
}

// Readings returns a copy of the current collection.
func (s *ReadingStore) Readings() []models.SensorReading {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SensorReading, len(s.readings))
	copy(out, s.readings)
	return out
}

// Latest returns the reading with the newest timestamp for the given
// sensor type, and false when the collection has no matching entry.
func (s *ReadingStore) Latest(sensorType models.SensorType) (models.SensorReading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest models.SensorReading
	found := false
	for _, r := range s.readings {
		if r.SensorType != sensorType {
			continue
		}
		if !found || r.Timestamp.After(latest.Timestamp) {
			latest = r
			found = true
		}
	}
	return latest, found
}

// Err returns the message recorded by the last failed fetch, or ""
// when the last fetch succeeded.
func (s *ReadingStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError drops the recorded error message.
func (s *ReadingStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// Poll fetches immediately and then on every interval tick until the
// context is cancelled.
func (s *ReadingStore) Poll(ctx context.Context) {
	s.Fetch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Fetch(ctx)
		}
	}
}
