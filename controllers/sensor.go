package controllers

import (
	"net/http"

	"github.com/iroro1/et-mobile-new/config"
	"github.com/iroro1/et-mobile-new/models"

	"github.com/gin-gonic/gin"
)

// GetReadings returns the full current reading set, newest first.
func GetReadings(c *gin.Context) {
	var readings []models.SensorReading
	if err := config.DB.Order("timestamp desc").Find(&readings).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to fetch readings")
		return
	}
	respond(c, http.StatusOK, readings, "OK")
}

// GetReadingsByType returns the readings of one sensor type.
func GetReadingsByType(c *gin.Context) {
	sensorType := c.Param("type")

	var readings []models.SensorReading
	if err := config.DB.Where("sensor_type = ?", sensorType).Order("timestamp desc").Find(&readings).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to fetch readings")
		return
	}
	respond(c, http.StatusOK, readings, "OK")
}

// GetThresholds returns all configured thresholds. An empty table
// answers 404 so the client knows nothing has been configured yet.
func GetThresholds(c *gin.Context) {
	var thresholds []models.SensorThreshold
	if err := config.DB.Order("id asc").Find(&thresholds).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to fetch thresholds")
		return
	}
	if len(thresholds) == 0 {
		respond(c, http.StatusNotFound, nil, "No thresholds configured")
		return
	}
	respond(c, http.StatusOK, thresholds, "OK")
}

// UpdateThreshold applies a partial edit to an existing threshold and
// returns the stored representation.
func UpdateThreshold(c *gin.Context) {
	id := c.Param("id")

	var threshold models.SensorThreshold
	if err := config.DB.First(&threshold, "id = ?", id).Error; err != nil {
		respond(c, http.StatusNotFound, nil, "Threshold not found")
		return
	}

	var update models.ThresholdUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid input")
		return
	}

	if update.MinValue != nil {
		threshold.MinValue = *update.MinValue
	}
	if update.MaxValue != nil {
		threshold.MaxValue = *update.MaxValue
	}
	if update.Unit != nil {
		threshold.Unit = *update.Unit
	}
	if threshold.MinValue > threshold.MaxValue {
		respond(c, http.StatusUnprocessableEntity, nil, "min_value must not exceed max_value")
		return
	}

	if err := config.DB.Save(&threshold).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to update threshold")
		return
	}
	respond(c, http.StatusOK, threshold, "Threshold updated successfully")
}

// CreateThreshold stores a new threshold. One threshold per sensor
// type; a duplicate type is rejected by the unique index.
func CreateThreshold(c *gin.Context) {
	var draft models.ThresholdDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid input")
		return
	}
	if draft.MinValue > draft.MaxValue {
		respond(c, http.StatusUnprocessableEntity, nil, "min_value must not exceed max_value")
		return
	}

	threshold := models.SensorThreshold{
		SensorType: draft.SensorType,
		MinValue:   draft.MinValue,
		MaxValue:   draft.MaxValue,
		Unit:       draft.Unit,
	}
	if err := config.DB.Create(&threshold).Error; err != nil {
		respond(c, http.StatusConflict, nil, "Threshold for this sensor type already exists")
		return
	}
	respond(c, http.StatusCreated, threshold, "Threshold created successfully")
}
