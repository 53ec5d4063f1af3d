package store

import (
	"context"
	"sync"

	"github.com/iroro1/et-mobile-new/catalog"
	"github.com/iroro1/et-mobile-new/client"
	"github.com/iroro1/et-mobile-new/models"
	"github.com/iroro1/et-mobile-new/utils"
)

// ThresholdStore holds the configured alert range per sensor type.
// State is keyed by sensor type, so "at most one threshold per type"
// is structurally true rather than a convention the UI has to trust.
type ThresholdStore struct {
	client *client.Client

	mu     sync.Mutex
	byType map[models.SensorType]models.SensorThreshold
	errMsg string
}

func NewThresholdStore(c *client.Client) *ThresholdStore {
	return &ThresholdStore{
		client: c,
		byType: make(map[models.SensorType]models.SensorThreshold),
	}
}

// Fetch loads all thresholds from the backend. A 404 means nothing is
// configured yet; in that case one unpersisted threshold per catalog
// entry is synthesized from the catalog defaults so the screens have
// something to render.
func (s *ThresholdStore) Fetch(ctx context.Context) {
	thresholds, err := s.client.GetThresholds(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to fetch thresholds.")
		if isNotFound(err) {
			s.byType = make(map[models.SensorType]models.SensorThreshold)
			for _, t := range catalog.DefaultThresholds() {
				s.byType[t.SensorType] = t
			}
		}
		return
	}

	s.byType = make(map[models.SensorType]models.SensorThreshold, len(thresholds))
	for _, t := range thresholds {
		s.byType[t.SensorType] = t
	}
	s.errMsg = ""
}

// Update sends a partial edit for the threshold with the given id and
// replaces the local entry with the server's representation. On
// failure local state is left untouched and the error is both recorded
// and returned, so an edit form can stay open.
func (s *ThresholdStore) Update(ctx context.Context, id uint, update models.ThresholdUpdate) error {
	updated, err := s.client.UpdateThreshold(ctx, id, update)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to update threshold.")
		return err
	}

	for sensorType, t := range s.byType {
		if t.ID == id && sensorType != updated.SensorType {
			delete(s.byType, sensorType)
		}
	}
	s.byType[updated.SensorType] = updated
	s.errMsg = ""
	return nil
}

// Create persists a new threshold and keys the returned entity by its
// sensor type, replacing any synthesized default for that type.
func (s *ThresholdStore) Create(ctx context.Context, draft models.ThresholdDraft) error {
	created, err := s.client.CreateThreshold(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to create threshold.")
		return err
	}
	s.byType[created.SensorType] = created
	s.errMsg = ""
	return nil
}

// Get returns the threshold for one sensor type.
func (s *ThresholdStore) Get(sensorType models.SensorType) (models.SensorThreshold, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byType[sensorType]
	return t, ok
}

// Thresholds returns the current set in catalog display order.
func (s *ThresholdStore) Thresholds() []models.SensorThreshold {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SensorThreshold, 0, len(s.byType))
	for _, sensorType := range catalog.Types {
		if t, ok := s.byType[sensorType]; ok {
			out = append(out, t)
		}
	}
	return out
}

// IsReadingAlert reports whether the reading breaches its configured
// threshold. No configured threshold means no alert.
func (s *ThresholdStore) IsReadingAlert(reading models.SensorReading) bool {
	return utils.IsReadingAlert(reading, s.Thresholds())
}

// Err returns the message recorded by the last failed operation.
func (s *ThresholdStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError drops the recorded error message.
func (s *ThresholdStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
