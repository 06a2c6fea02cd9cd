package services

import (
	"InboxMobile/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(chatID string, unread int, timestamp int64) map[string]interface{} {
	return map[string]interface{}{
		"chatId":               chatID,
		"unreadCount":          float64(unread),
		"lastMessageTimestamp": float64(timestamp),
		"lastMessage":          "hello",
		"otherUserName":        "Partner",
		"otherUserAvatar":      "/a.png",
	}
}

func TestProjectChatListSortsAndSuppressesBanned(t *testing.T) {
	raw := map[string]interface{}{
		"A": record("c1", 5, 100),
		"B": record("c2", 3, 200),
	}

	chats, total := ProjectChatList(raw, map[string]bool{"A": true})

	assert.Len(t, chats, 2)
	assert.Equal(t, "B", chats[0].OtherUserID)
	assert.Equal(t, 3, chats[0].UnreadCount)
	assert.Equal(t, "A", chats[1].OtherUserID)
	assert.Equal(t, 0, chats[1].UnreadCount)
	assert.Equal(t, 3, total)
}

func TestProjectChatListDropsMalformedRecords(t *testing.T) {
	raw := map[string]interface{}{
		"A": record("c1", 1, 10),
		"B": "not an object",
		"C": record("c3", 2, 30),
		"D": nil,
		"E": float64(42),
	}

	chats, total := ProjectChatList(raw, nil)

	// Only the two well-formed records survive, newest first.
	assert.Len(t, chats, 2)
	assert.Equal(t, "C", chats[0].OtherUserID)
	assert.Equal(t, "A", chats[1].OtherUserID)
	assert.Equal(t, 3, total)
}

func TestProjectChatListTiedTimestampsKeepAllEntries(t *testing.T) {
	raw := map[string]interface{}{
		"A": record("c1", 1, 100),
		"B": record("c2", 2, 100),
		"C": record("c3", 3, 200),
	}

	chats, total := ProjectChatList(raw, nil)

	require.Len(t, chats, 3)
	assert.Equal(t, "C", chats[0].OtherUserID)
	// Entries sharing a timestamp all stay in the list right after the
	// newer one; their relative order is unspecified.
	assert.ElementsMatch(t, []string{"A", "B"},
		[]string{chats[1].OtherUserID, chats[2].OtherUserID})
	assert.Equal(t, int64(100), chats[1].LastMessageTimestamp)
	assert.Equal(t, int64(100), chats[2].LastMessageTimestamp)
	assert.Equal(t, 6, total)
}

func TestProjectChatListTotalEqualsSum(t *testing.T) {
	raw := map[string]interface{}{
		"A": record("c1", 4, 10),
		"B": record("c2", 0, 20),
		"C": record("c3", 7, 30),
	}

	chats, total := ProjectChatList(raw, map[string]bool{"C": true})

	sum := 0
	for _, chat := range chats {
		sum += chat.UnreadCount
	}
	assert.Equal(t, sum, total)
	assert.Equal(t, 4, total)
}

func TestProjectChatListAppliesFallbacks(t *testing.T) {
	raw := map[string]interface{}{
		"A": map[string]interface{}{"chatId": "c1"},
	}

	chats, total := ProjectChatList(raw, nil)

	assert.Len(t, chats, 1)
	assert.Equal(t, models.DefaultLastMessage, chats[0].LastMessage)
	assert.Equal(t, models.DefaultUserName, chats[0].OtherUserName)
	assert.Equal(t, models.DefaultAvatar, chats[0].OtherUserAvatar)
	assert.Equal(t, int64(0), chats[0].LastMessageTimestamp)
	assert.Equal(t, 0, total)
}

func TestProjectChatListEmptyInput(t *testing.T) {
	chats, total := ProjectChatList(map[string]interface{}{}, nil)

	assert.Empty(t, chats)
	assert.Equal(t, 0, total)
}

func TestDecodeFeedSnapshotToleratesAbsentValues(t *testing.T) {
	assert.Empty(t, DecodeFeedSnapshot(nil))
	assert.Empty(t, DecodeFeedSnapshot("garbage"))
	assert.Empty(t, DecodeFeedSnapshot([]interface{}{1, 2}))

	raw := DecodeFeedSnapshot(map[string]interface{}{"A": record("c1", 1, 1)})
	assert.Len(t, raw, 1)
}
