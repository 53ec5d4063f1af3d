package utils

import (
	"github.com/iroro1/et-mobile-new/catalog"
	"github.com/iroro1/et-mobile-new/models"
)

// IsReadingAlert determines whether the reading breaches the threshold
// configured for its sensor type. Values exactly on a bound are inside
// the acceptable range. A reading with no matching threshold is never
// an alert.
func IsReadingAlert(reading models.SensorReading, thresholds []models.SensorThreshold) bool {
	for _, t := range thresholds {
		if t.SensorType == reading.SensorType {
			return reading.Value < t.MinValue || reading.Value > t.MaxValue
		}
	}
	return false
}

// FindThreshold returns the threshold matching the sensor type, if any.
func FindThreshold(thresholds []models.SensorThreshold, sensorType models.SensorType) (models.SensorThreshold, bool) {
	for _, t := range thresholds {
		if t.SensorType == sensorType {
			return t, true
		}
	}
	return models.SensorThreshold{}, false
}

// AlertSeverity grades a breaching reading. Fire detection and values
// outside the sensor's physical domain are critical, everything else
// is a warning.
func AlertSeverity(reading models.SensorReading) string {
	if reading.SensorType == models.FireDetection {
		return models.SeverityCritical
	}
	info := catalog.Lookup(reading.SensorType)
	if reading.Value < info.MinValue || reading.Value > info.MaxValue {
		return models.SeverityCritical
	}
	return models.SeverityWarning
}
