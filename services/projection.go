package services

import (
	"InboxMobile/models"
	"sort"
)

// ProjectChatList turns one raw chat_meta_data snapshot into the inbox view
// model: one summary per well-formed record, banned partners forced to zero
// unread, sorted newest first. Malformed input degrades to an empty list, it
// never fails.
func ProjectChatList(raw map[string]interface{}, banned map[string]bool) ([]models.ChatSummary, int) {
	chats := make([]models.ChatSummary, 0, len(raw))

	for partnerID, record := range raw {
		summary, ok := models.DecodeChatRecord(partnerID, record)
		if !ok {
			// A single broken record must not poison the batch.
			continue
		}

		if banned[partnerID] {
			summary.UnreadCount = 0
		}

		chats = append(chats, summary)
	}

	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].LastMessageTimestamp > chats[j].LastMessageTimestamp
	})

	totalUnread := 0
	for _, chat := range chats {
		totalUnread += chat.UnreadCount
	}

	return chats, totalUnread
}

// DecodeFeedSnapshot normalizes a raw subscription value into a per-partner
// record map. Absent or non-object values become an empty map.
func DecodeFeedSnapshot(value interface{}) map[string]interface{} {
	raw, ok := value.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return raw
}
