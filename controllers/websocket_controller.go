package controllers

import (
	"InboxMobile/websocket"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var WebSocketHub *websocket.Hub

func SetWebSocketHub(hub *websocket.Hub) {
	WebSocketHub = hub
	go WebSocketHub.Run()
}

// ServeWs upgrades the connection and attaches the device to the user's inbox
// push channel. The first device of a user also starts the feed subscription.
func ServeWs(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := websocket.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WebSocket] Upgrade error for user %s: %v", userID.(string), err)
		return
	}

	client := websocket.NewClient(WebSocketHub, conn, userID.(string))
	WebSocketHub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	if err := feedService.EnsureStarted(userID.(string)); err != nil {
		log.Printf("[WebSocket] Error starting feed for user %s: %v", userID.(string), err)
	}
}
