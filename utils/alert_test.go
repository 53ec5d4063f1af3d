package utils

import (
	"testing"

	"github.com/iroro1/et-mobile-new/models"

	"github.com/stretchr/testify/assert"
)

func thresholds() []models.SensorThreshold {
	return []models.SensorThreshold{
		{ID: 1, SensorType: models.Temperature, MinValue: 10, MaxValue: 30, Unit: "°C"},
		{ID: 2, SensorType: models.Humidity, MinValue: 30, MaxValue: 70, Unit: "%"},
		{ID: 3, SensorType: models.FireDetection, MinValue: 0, MaxValue: 0, Unit: ""},
	}
}

func reading(sensorType models.SensorType, value float64) models.SensorReading {
	return models.SensorReading{SensorType: sensorType, Value: value}
}

func TestIsReadingAlert(t *testing.T) {
	tests := []struct {
		name    string
		reading models.SensorReading
		alert   bool
	}{
		{"inside range", reading(models.Temperature, 20), false},
		{"below min", reading(models.Temperature, 9.99), true},
		{"above max", reading(models.Temperature, 30.01), true},
		{"exactly min", reading(models.Temperature, 10), false},
		{"exactly max", reading(models.Temperature, 30), false},
		{"other type inside", reading(models.Humidity, 45), false},
		{"other type above", reading(models.Humidity, 71), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.alert, IsReadingAlert(tt.reading, thresholds()))
		})
	}
}

func TestIsReadingAlertNoThreshold(t *testing.T) {
	// No configured threshold for the type means no alert.
	r := reading(models.WaterLevel, 9000)
	assert.False(t, IsReadingAlert(r, thresholds()))
	assert.False(t, IsReadingAlert(r, nil))
}

func TestIsReadingAlertFireDetection(t *testing.T) {
	// The default fire threshold is [0, 0]: any non-zero value is a
	// breach, zero is not.
	assert.False(t, IsReadingAlert(reading(models.FireDetection, 0), thresholds()))
	assert.True(t, IsReadingAlert(reading(models.FireDetection, 1), thresholds()))
}

func TestFindThreshold(t *testing.T) {
	found, ok := FindThreshold(thresholds(), models.Humidity)
	assert.True(t, ok)
	assert.Equal(t, uint(2), found.ID)

	_, ok = FindThreshold(thresholds(), models.LightIntensity)
	assert.False(t, ok)
}

func TestAlertSeverity(t *testing.T) {
	assert.Equal(t, models.SeverityCritical, AlertSeverity(reading(models.FireDetection, 1)))
	// Outside the physical domain of the sensor.
	assert.Equal(t, models.SeverityCritical, AlertSeverity(reading(models.Temperature, 75)))
	// Breach inside the domain.
	assert.Equal(t, models.SeverityWarning, AlertSeverity(reading(models.Temperature, 35)))
}
