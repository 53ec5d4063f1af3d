package models

import "time"

// SensorType tags every reading, threshold and notification with the
// kind of physical sensor it belongs to.
type SensorType string

const (
	Temperature         SensorType = "temperature"
	Humidity            SensorType = "humidity"
	SoilMoisture        SensorType = "soil_moisture"
	AtmosphericPressure SensorType = "atmospheric_pressure"
	WaterLevel          SensorType = "water_level"
	LightIntensity      SensorType = "light_intensity"
	FireDetection       SensorType = "fire_detection"
)

// SensorReading is one timestamped observation from a physical sensor.
// Readings are immutable once received; the client replaces the whole
// collection on every fetch.
type SensorReading struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SensorID   uint       `json:"sensor_id" gorm:"not null"`
	SensorType SensorType `json:"sensor_type" gorm:"index"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	Timestamp  time.Time  `json:"timestamp" gorm:"index"`
}

// SensorThreshold is the configured acceptable range for one sensor
// type. A value inside [MinValue, MaxValue] (bounds included) is
// normal; anything outside is an alert.
type SensorThreshold struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SensorType SensorType `json:"sensor_type" gorm:"uniqueIndex"`
	MinValue   float64    `json:"min_value"`
	MaxValue   float64    `json:"max_value"`
	Unit       string     `json:"unit"`
}

// ThresholdDraft is the body of a threshold create request; the id is
// assigned by the server.
type ThresholdDraft struct {
	SensorType SensorType `json:"sensor_type" binding:"required"`
	MinValue   float64    `json:"min_value"`
	MaxValue   float64    `json:"max_value"`
	Unit       string     `json:"unit"`
}

// ThresholdUpdate is a partial threshold edit. Nil fields are left
// untouched by the server.
type ThresholdUpdate struct {
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
}
