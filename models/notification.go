package models

import "time"

const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Notification is a server-emitted record of a threshold breach. The
// read flag is the only client-mutable field.
type Notification struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SensorType SensorType `json:"sensor_type" gorm:"index"`
	Message    string     `json:"message"`
	Severity   string     `json:"severity"`
	Timestamp  time.Time  `json:"timestamp" gorm:"index"`
	Read       bool       `json:"read" gorm:"default:false"`
}
