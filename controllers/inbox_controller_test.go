package controllers

import (
	"InboxMobile/repositories"
	"InboxMobile/services"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore feeds the services with scripted snapshots instead of Firebase.
type testStore struct {
	snapshots chan repositories.Snapshot
}

func newTestStore() *testStore {
	return &testStore{snapshots: make(chan repositories.Snapshot, 8)}
}

func (s *testStore) Subscribe(ctx context.Context, path string) (<-chan repositories.Snapshot, error) {
	out := make(chan repositories.Snapshot)
	go func() {
		defer close(out)
		for {
			select {
			case snapshot := <-s.snapshots:
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *testStore) Once(ctx context.Context, path string, v interface{}) error { return nil }

func (s *testStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	return nil
}

func (s *testStore) Remove(ctx context.Context, path string) error { return nil }

// testRouter registers the real routes behind a stub auth middleware that
// injects the user id.
func testRouter(uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	if uid != "" {
		r.Use(func(c *gin.Context) {
			c.Set("firebase_uid", uid)
			c.Next()
		})
	}

	r.GET("/inbox", GetInbox)
	r.DELETE("/inbox/chats/:chat_id", DeleteChat)
	r.POST("/inbox/chats/:chat_id/open", OpenChat)
	return r
}

func TestGetInboxReturnsProjection(t *testing.T) {
	store := newTestStore()
	feed := services.NewFeedService(store, nil)
	SetFeedService(feed)
	t.Cleanup(feed.StopAll)

	require.NoError(t, feed.Start("u1"))
	store.snapshots <- repositories.Snapshot{Exists: true, Value: map[string]interface{}{
		"B": map[string]interface{}{
			"chatId":               "c2",
			"unreadCount":          float64(3),
			"lastMessageTimestamp": float64(200),
		},
	}}

	require.Eventually(t, func() bool {
		chats, _ := feed.Inbox("u1")
		return len(chats) == 1
	}, time.Second, 5*time.Millisecond)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/inbox", nil)
	testRouter("u1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Chats       []map[string]interface{} `json:"chats"`
			TotalUnread int                      `json:"total_unread"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Len(t, body.Data.Chats, 1)
	assert.Equal(t, "c2", body.Data.Chats[0]["chat_id"])
	assert.Equal(t, 3, body.Data.TotalUnread)
}

func TestGetInboxUnauthorizedWithoutToken(t *testing.T) {
	SetFeedService(services.NewFeedService(newTestStore(), nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/inbox", nil)
	testRouter("").ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteChatUnknownChatReturnsNotFound(t *testing.T) {
	store := newTestStore()
	feed := services.NewFeedService(store, nil)
	SetFeedService(feed)
	SetActionService(services.NewActionService(store, feed, nil))
	t.Cleanup(feed.StopAll)

	require.NoError(t, feed.Start("u1"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/inbox/chats/unknown", nil)
	testRouter("u1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOpenChatRequiresPartnerID(t *testing.T) {
	store := newTestStore()
	feed := services.NewFeedService(store, nil)
	SetFeedService(feed)
	SetActionService(services.NewActionService(store, feed, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/inbox/chats/c2/open", nil)
	testRouter("u1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
