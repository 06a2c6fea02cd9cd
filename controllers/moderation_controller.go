package controllers

import (
	"InboxMobile/interfaces"
	"InboxMobile/services"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

var moderationService *services.ModerationService

func SetModerationService(service *services.ModerationService) {
	moderationService = service
}

// requestConfirmer answers the confirmation prompt with whatever the client
// already decided. It is the HTTP rendition of the blocking confirm dialog:
// the first request returns the prompt, the confirmed retry applies it.
type requestConfirmer struct {
	confirmed bool
}

func (r requestConfirmer) Confirm(prompt interfaces.ConfirmPrompt) bool {
	return r.confirmed
}

// ToggleBan flips a partner's ban state. Without confirmed=true the handler
// only returns the prompt to show; nothing is persisted.
func ToggleBan(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		PartnerID string `json:"partner_id" binding:"required"`
		Confirmed bool   `json:"confirmed"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.Confirmed {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"applied": false,
			"prompt":  moderationService.TogglePrompt(userID.(string), input.PartnerID),
		}})
		return
	}

	banned, err := moderationService.Toggle(userID.(string), input.PartnerID, requestConfirmer{confirmed: true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"applied": true,
		"banned":  banned,
	}})
}

// GetBannedUsers returns the caller's banned set.
func GetBannedUsers(c *gin.Context) {
	userID, exists := c.Get("firebase_uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	set, err := moderationService.BannedSet(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	banned := make([]string, 0, len(set))
	for partnerID := range set {
		banned = append(banned, partnerID)
	}
	sort.Strings(banned)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"banned_users": banned}})
}
