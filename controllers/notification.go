package controllers

import (
	"net/http"

	"github.com/iroro1/et-mobile-new/config"
	"github.com/iroro1/et-mobile-new/models"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the alert history, newest first.
func GetNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := config.DB.Order("timestamp desc").Find(&notifications).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to fetch notifications")
		return
	}
	respond(c, http.StatusOK, notifications, "OK")
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")

	var notification models.Notification
	if err := config.DB.First(&notification, "id = ?", id).Error; err != nil {
		respond(c, http.StatusNotFound, nil, "Notification not found")
		return
	}

	notification.Read = true
	if err := config.DB.Save(&notification).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to mark notification as read")
		return
	}
	respond(c, http.StatusOK, notification, "Notification marked as read")
}

// MarkAllNotificationsRead flags every notification as read.
func MarkAllNotificationsRead(c *gin.Context) {
	if err := config.DB.Model(&models.Notification{}).Where("read = ?", false).Update("read", true).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to mark notifications as read")
		return
	}
	respond(c, http.StatusOK, nil, "All notifications marked as read")
}
