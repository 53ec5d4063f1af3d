package middlewares

import (
	"net/http"
	"strings"

	"github.com/iroro1/et-mobile-new/config"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the user id in
// the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"data": nil, "message": "Authorization token required", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return config.JWTSecret(), nil
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"data": nil, "message": "Invalid or expired token", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"]
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"data": nil, "message": "Invalid token payload", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
