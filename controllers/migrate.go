package controllers

import (
	"github.com/iroro1/et-mobile-new/config"
	"github.com/iroro1/et-mobile-new/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) error {
	config.DB = db
	return db.AutoMigrate(
		&models.User{},
		&models.SensorReading{},
		&models.SensorThreshold{},
		&models.Notification{},
	)
}
