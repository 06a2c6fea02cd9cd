package models

import "encoding/json"

// Fallback values for display fields missing from a raw record
const (
	DefaultLastMessage = "No messages yet"
	DefaultUserName    = "Unknown"
	DefaultAvatar      = "/images/default_avatar.png"
)

// ChatSummary is one row of the projected inbox list. It is rebuilt from the
// raw feed snapshot on every update and never persisted.
type ChatSummary struct {
	ChatID               string `json:"chat_id"`
	OtherUserID          string `json:"other_user_id"`
	LastMessage          string `json:"last_message"`
	LastMessageTimestamp int64  `json:"last_message_timestamp"`
	UnreadCount          int    `json:"unread_count"`
	OtherUserAvatar      string `json:"other_user_avatar"`
	OtherUserName        string `json:"other_user_name"`
}

// PartnerStatus is the view model for the private-chat header.
type PartnerStatus struct {
	PartnerID string `json:"partner_id"`
	Online    bool   `json:"online"`
	LastSeen  int64  `json:"last_seen"`
	Blocked   bool   `json:"blocked"`
}

// DecodeChatRecord builds a ChatSummary from one raw record of the remote
// chat_meta_data collection. Returns false when the record is not an object;
// missing fields are replaced with defaults.
func DecodeChatRecord(partnerID string, raw interface{}) (ChatSummary, bool) {
	record, ok := raw.(map[string]interface{})
	if !ok {
		return ChatSummary{}, false
	}

	summary := ChatSummary{
		ChatID:               stringField(record, "chatId", ""),
		OtherUserID:          partnerID,
		LastMessage:          stringField(record, "lastMessage", DefaultLastMessage),
		LastMessageTimestamp: intField(record, "lastMessageTimestamp"),
		UnreadCount:          int(intField(record, "unreadCount")),
		OtherUserAvatar:      stringField(record, "otherUserAvatar", DefaultAvatar),
		OtherUserName:        stringField(record, "otherUserName", DefaultUserName),
	}

	if summary.UnreadCount < 0 {
		summary.UnreadCount = 0
	}

	return summary, true
}

func stringField(record map[string]interface{}, key, fallback string) string {
	if v, ok := record[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intField tolerates the numeric types the RTDB decoder may produce.
func intField(record map[string]interface{}, key string) int64 {
	switch v := record[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
