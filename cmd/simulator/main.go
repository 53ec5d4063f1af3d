package main

import (
	"context"
	"log"
	"time"

	"github.com/iroro1/et-mobile-new/config"
	"github.com/iroro1/et-mobile-new/controllers"
	"github.com/iroro1/et-mobile-new/generator"
	"github.com/iroro1/et-mobile-new/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	dsn := config.GetEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=et_mobile port=5432 sslmode=disable")
	db, err := config.Connect(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := controllers.MigrateModels(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Background reading producer
	interval, err := time.ParseDuration(config.GetEnv("GENERATOR_INTERVAL", "10s"))
	if err != nil {
		log.Fatal("Invalid GENERATOR_INTERVAL: ", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go generator.New(db, interval).Run(ctx)

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8081", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	api := r.Group("/api")
	api.POST("/auth/register", controllers.Register)
	api.POST("/auth/login", controllers.Login)
	api.POST("/auth/forgot-password", controllers.ForgotPassword)
	api.POST("/auth/reset-password", controllers.ResetPassword)

	// Protected routes using auth middleware
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	auth.POST("/auth/logout", controllers.Logout)
	auth.GET("/auth/user", controllers.GetUser)
	auth.GET("/sensors/readings", controllers.GetReadings)
	auth.GET("/sensors/readings/:type", controllers.GetReadingsByType)
	auth.GET("/sensors/thresholds", controllers.GetThresholds)
	auth.PUT("/sensors/thresholds/:id", controllers.UpdateThreshold)
	auth.POST("/sensors/thresholds", controllers.CreateThreshold)
	auth.GET("/notifications", controllers.GetNotifications)
	auth.PUT("/notifications/:id/read", controllers.MarkNotificationRead)
	auth.PUT("/notifications/read-all", controllers.MarkAllNotificationsRead)
	auth.GET("/ws", controllers.HandleWebSocket)

	port := config.GetEnv("PORT", "8000")
	r.Run(":" + port)
}
