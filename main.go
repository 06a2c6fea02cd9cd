package main

import (
	"InboxMobile/config"
	"InboxMobile/controllers"
	"InboxMobile/repositories/impl"
	"InboxMobile/routes"
	"InboxMobile/services"
	"InboxMobile/websocket"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Initialize database and Firebase
	config.InitDatabase()
	config.InitFirebase()

	// Initialize repositories
	remoteStore := impl.NewFirebaseStore(config.FirebaseDB)
	moderationRepo := impl.NewModerationRepository(config.DB)

	// Initialize websocket hub
	hub := websocket.NewHub()

	// Initialize services
	feedService := services.NewFeedService(remoteStore, hub)
	moderationService := services.NewModerationService(moderationRepo)
	actionService := services.NewActionService(remoteStore, feedService, hub)
	presenceService := services.NewPresenceService(remoteStore, moderationService)

	feedService.SetBannedProvider(moderationService)
	moderationService.SetFeed(feedService)
	hub.OnUserGone = feedService.Stop

	// Set services in controllers
	controllers.SetWebSocketHub(hub)
	controllers.SetFeedService(feedService)
	controllers.SetActionService(actionService)
	controllers.SetPresenceService(presenceService)
	controllers.SetModerationService(moderationService)

	// Initialize Gin router
	r := gin.Default()

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
