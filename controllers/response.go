package controllers

import "github.com/gin-gonic/gin"

// respond wraps every payload in the envelope the mobile client
// decodes: {data, message, status}.
func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{"data": data, "message": message, "status": status})
}
