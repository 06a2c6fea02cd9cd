package routes

import (
	"InboxMobile/controllers"
	"InboxMobile/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// WebSocket push channel for inbox updates
	r.GET("/ws", middlewares.AuthMiddleware(), controllers.ServeWs)

	// Inbox routes
	inbox := r.Group("/inbox")
	inbox.Use(middlewares.AuthMiddleware())
	{
		inbox.GET("", controllers.GetInbox)
		inbox.POST("/refresh", controllers.RefreshInbox)
		inbox.DELETE("/chats/:chat_id", controllers.DeleteChat)
		inbox.POST("/chats/:chat_id/open", controllers.OpenChat)
		inbox.GET("/partners/:partner_id", controllers.GetPartnerStatus)
		inbox.POST("/partners/:partner_id/chat", controllers.EnsureChat)
	}

	// Moderation routes
	moderation := r.Group("/moderation")
	moderation.Use(middlewares.AuthMiddleware())
	{
		moderation.POST("/toggle", controllers.ToggleBan)
		moderation.GET("/banned", controllers.GetBannedUsers)
	}
}
