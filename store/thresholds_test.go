package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/iroro1/et-mobile-new/catalog"
	"github.com/iroro1/et-mobile-new/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchNotFoundSynthesizesDefaults(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "No thresholds configured")
	}))

	s := NewThresholdStore(c)
	s.Fetch(context.Background())

	thresholds := s.Thresholds()
	require.Len(t, thresholds, len(catalog.Types))
	for i, threshold := range thresholds {
		info := catalog.Lookup(catalog.Types[i])
		assert.Zero(t, threshold.ID, "synthesized threshold must not carry a server id")
		assert.Equal(t, info.DefaultMin, threshold.MinValue)
		assert.Equal(t, info.DefaultMax, threshold.MaxValue)
	}
}

func TestFetchLoadsByType(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []models.SensorThreshold{
			{ID: 4, SensorType: models.Temperature, MinValue: 5, MaxValue: 25, Unit: "°C"},
		}, "OK")
	}))

	s := NewThresholdStore(c)
	s.Fetch(context.Background())

	threshold, ok := s.Get(models.Temperature)
	require.True(t, ok)
	assert.Equal(t, uint(4), threshold.ID)
	_, ok = s.Get(models.Humidity)
	assert.False(t, ok)
}

func TestUpdateReplacesEntryOnSuccess(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeEnvelope(w, http.StatusOK, []models.SensorThreshold{
				{ID: 4, SensorType: models.Temperature, MinValue: 5, MaxValue: 25, Unit: "°C"},
			}, "OK")
		case http.MethodPut:
			assert.Equal(t, "/sensors/thresholds/4", r.URL.Path)
			writeEnvelope(w, http.StatusOK, models.SensorThreshold{
				ID: 4, SensorType: models.Temperature, MinValue: 8, MaxValue: 28, Unit: "°C",
			}, "Threshold updated successfully")
		}
	}))

	s := NewThresholdStore(c)
	s.Fetch(context.Background())

	min, max := 8.0, 28.0
	require.NoError(t, s.Update(context.Background(), 4, models.ThresholdUpdate{MinValue: &min, MaxValue: &max}))

	threshold, ok := s.Get(models.Temperature)
	require.True(t, ok)
	assert.Equal(t, 8.0, threshold.MinValue)
	assert.Equal(t, 28.0, threshold.MaxValue)
}

func TestUpdateFailureLeavesStateUntouched(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeEnvelope(w, http.StatusOK, []models.SensorThreshold{
				{ID: 4, SensorType: models.Temperature, MinValue: 5, MaxValue: 25, Unit: "°C"},
			}, "OK")
		case http.MethodPut:
			writeEnvelope(w, http.StatusUnprocessableEntity, nil, "min_value must not exceed max_value")
		}
	}))

	s := NewThresholdStore(c)
	s.Fetch(context.Background())

	min := 99.0
	err := s.Update(context.Background(), 4, models.ThresholdUpdate{MinValue: &min})
	require.Error(t, err)

	threshold, _ := s.Get(models.Temperature)
	assert.Equal(t, 5.0, threshold.MinValue, "failed update must not touch local state")
	assert.Equal(t, "min_value must not exceed max_value", s.Err())
}

func TestCreateKeysByType(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeEnvelope(w, http.StatusNotFound, nil, "No thresholds configured")
		case http.MethodPost:
			writeEnvelope(w, http.StatusCreated, models.SensorThreshold{
				ID: 11, SensorType: models.Humidity, MinValue: 35, MaxValue: 65, Unit: "%",
			}, "Threshold created successfully")
		}
	}))

	s := NewThresholdStore(c)
	s.Fetch(context.Background())

	require.NoError(t, s.Create(context.Background(), models.ThresholdDraft{
		SensorType: models.Humidity, MinValue: 35, MaxValue: 65, Unit: "%",
	}))

	// The persisted entity replaces the synthesized default for its
	// type; there is still exactly one threshold per type.
	threshold, ok := s.Get(models.Humidity)
	require.True(t, ok)
	assert.Equal(t, uint(11), threshold.ID)
	assert.Len(t, s.Thresholds(), len(catalog.Types))
}
