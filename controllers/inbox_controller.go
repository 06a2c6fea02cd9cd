package controllers

import (
	"InboxMobile/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var feedService *services.FeedService
var actionService *services.ActionService
var presenceService *services.PresenceService

func SetFeedService(service *services.FeedService) {
	feedService = service
}

func SetActionService(service *services.ActionService) {
	actionService = service
}

func SetPresenceService(service *services.PresenceService) {
	presenceService = service
}

// GetInbox returns the caller's current projected chat list.
func GetInbox(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	chats, totalUnread := feedService.Inbox(userID.(string))

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"chats":        chats,
		"total_unread": totalUnread,
	}})
}

// RefreshInbox restarts the caller's feed subscription.
func RefreshInbox(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := feedService.Start(userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "subscription restarted"})
}

// DeleteChat removes a conversation: remote metadata, remote thread, then the
// local list entry.
func DeleteChat(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	chatID := c.Param("chat_id")

	err := actionService.DeleteChat(c.Request.Context(), userID.(string), chatID)
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "chat deleted"})
}

// OpenChat clears the entry's unread count and emits the navigation intent
// for the conversation screen.
func OpenChat(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		PartnerID     string `json:"partner_id" binding:"required"`
		PartnerName   string `json:"partner_name"`
		PartnerAvatar string `json:"partner_avatar"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, err := actionService.OpenChat(
		userID.(string),
		c.Param("chat_id"),
		input.PartnerID,
		input.PartnerName,
		input.PartnerAvatar)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"screen": services.PrivateChatScreen,
		"params": params,
	}})
}

// EnsureChat resolves or mints the thread id for a conversation with the
// partner, so a chat can be opened before the first message exists.
func EnsureChat(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	chatID, err := actionService.EnsureChatID(c.Request.Context(), userID.(string), c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"chat_id": chatID}})
}

// GetPartnerStatus returns the private-chat header view model for a partner.
func GetPartnerStatus(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := presenceService.GetPartnerStatus(c.Request.Context(), userID.(string), c.Param("partner_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}
