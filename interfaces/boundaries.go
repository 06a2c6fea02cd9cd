package interfaces

import (
	"InboxMobile/models"
	"time"
)

// Navigator is the navigation boundary of the mobile client. The service only
// emits navigation intents; routing itself happens on the device, so the
// intent is addressed to all of the user's connected devices.
type Navigator interface {
	NavigateTo(userID, screen string, params map[string]interface{})
}

// ConfirmAction is one button of a confirmation prompt.
type ConfirmAction struct {
	Label string `json:"label"`
	Style string `json:"style"`
}

// ConfirmPrompt describes a blocking yes/no/cancel prompt shown to the user
// before a destructive or moderation action is applied.
type ConfirmPrompt struct {
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Actions []ConfirmAction `json:"actions"`
}

// Confirmer answers a confirmation prompt. True means the user picked the
// confirming action; false means cancel.
type Confirmer interface {
	Confirm(prompt ConfirmPrompt) bool
}

// InboxPusher delivers a freshly projected inbox to every connected client of
// a user.
type InboxPusher interface {
	PushInbox(userID string, chats []models.ChatSummary, totalUnread int)
}

// WebSocketMessage is the envelope pushed to connected clients.
type WebSocketMessage struct {
	Type        string                 `json:"type"`
	UserID      string                 `json:"user_id,omitempty"`
	Chats       []models.ChatSummary   `json:"chats,omitempty"`
	TotalUnread int                    `json:"total_unread"`
	Screen      string                 `json:"screen,omitempty"`
	Params      map[string]interface{} `json:"params,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}
