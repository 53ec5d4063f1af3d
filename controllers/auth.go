package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/iroro1/et-mobile-new/config"
	"github.com/iroro1/et-mobile-new/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account and returns a session token.
func Register(c *gin.Context) {
	var data models.RegisterData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid input")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		respond(c, http.StatusInternalServerError, nil, "Error hashing password")
		return
	}

	user := models.User{
		Name:     data.Name,
		Email:    data.Email,
		Password: string(hashedPassword),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		respond(c, http.StatusConflict, nil, "User already exists")
		return
	}

	token, err := issueToken(user.ID)
	if err != nil {
		respond(c, http.StatusInternalServerError, nil, "Error generating token")
		return
	}
	respond(c, http.StatusCreated, models.AuthSession{User: user, Token: token}, "User registered successfully")
}

// Login authenticates a user and returns a JWT token.
func Login(c *gin.Context) {
	var credentials models.LoginCredentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", credentials.Email).First(&user).Error; err != nil {
		respond(c, http.StatusUnauthorized, nil, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)); err != nil {
		respond(c, http.StatusUnauthorized, nil, "Invalid credentials")
		return
	}

	token, err := issueToken(user.ID)
	if err != nil {
		respond(c, http.StatusInternalServerError, nil, "Error generating token")
		return
	}
	respond(c, http.StatusOK, models.AuthSession{User: user, Token: token}, "Login successful")
}

// ForgotPassword issues a reset token for the account. A real backend
// would mail it; the simulator logs it instead.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Do not reveal whether the address exists.
		respond(c, http.StatusOK, nil, "If the address exists, a reset link has been sent")
		return
	}

	buf := make([]byte, 16)
	rand.Read(buf)
	user.ResetToken = hex.EncodeToString(buf)
	if err := config.DB.Save(&user).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to issue reset token")
		return
	}

	log.Printf("password reset token for %s: %s", user.Email, user.ResetToken)
	respond(c, http.StatusOK, nil, "If the address exists, a reset link has been sent")
}

// ResetPassword completes a reset started by ForgotPassword.
func ResetPassword(c *gin.Context) {
	var data models.ResetPasswordData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND reset_token = ?", data.Email, data.Token).First(&user).Error; err != nil {
		respond(c, http.StatusUnauthorized, nil, "Invalid reset token")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		respond(c, http.StatusInternalServerError, nil, "Error hashing password")
		return
	}
	user.Password = string(hashedPassword)
	user.ResetToken = ""
	if err := config.DB.Save(&user).Error; err != nil {
		respond(c, http.StatusInternalServerError, nil, "Failed to reset password")
		return
	}
	respond(c, http.StatusOK, nil, "Password reset successfully")
}

// Logout acknowledges the logout. Tokens are stateless JWTs, so the
// client dropping its copy is what ends the session.
func Logout(c *gin.Context) {
	respond(c, http.StatusOK, nil, "Logged out")
}

// GetUser returns the authenticated user's profile.
func GetUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}
	respond(c, http.StatusOK, user, "OK")
}

// currentUser loads the user identified by the token claims.
func currentUser(c *gin.Context) (models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return models.User{}, false
	}
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

func issueToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Expires in 24 hours
	})
	return token.SignedString(config.JWTSecret())
}
