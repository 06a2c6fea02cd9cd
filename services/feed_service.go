package services

import (
	"InboxMobile/interfaces"
	"InboxMobile/models"
	"InboxMobile/repositories"
	"context"
	"errors"
	"log"
	"sync"
)

// BannedProvider exposes the current banned set to the feed so that every
// snapshot is projected against up-to-date moderation state.
type BannedProvider interface {
	BannedSet(userID string) (map[string]bool, error)
}

// FeedService keeps one live subscription to each connected user's
// chat_meta_data collection. Every snapshot is re-projected as a whole, pushed
// to the user's websocket clients, and checked for banned partners whose
// stored unread count still needs a best-effort reset.
type FeedService struct {
	Store repositories.RemoteStore
	Hub   interfaces.InboxPusher

	banned BannedProvider

	// startMu serializes the stop-subscribe-insert sequence of Start, Stop
	// and Restart. Without it two concurrent Starts for the same user can
	// both subscribe while only one handle lands in feeds, leaking the
	// other listener.
	startMu sync.Mutex

	mu    sync.Mutex
	feeds map[string]*inboxFeed
}

// inboxFeed is the owned state of one user's subscription. The run goroutine
// is the only writer of chats/totalUnread from the feed side; HTTP reads and
// the optimistic action patches go through the same mutex.
type inboxFeed struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	chats       []models.ChatSummary
	totalUnread int
}

func NewFeedService(store repositories.RemoteStore, hub interfaces.InboxPusher) *FeedService {
	return &FeedService{
		Store: store,
		Hub:   hub,
		feeds: make(map[string]*inboxFeed),
	}
}

// SetBannedProvider wires the moderation service in after construction.
func (s *FeedService) SetBannedProvider(p BannedProvider) {
	s.banned = p
}

// Start subscribes to the user's chat-metadata collection. Any previous
// subscription for the same user is fully released first, so there is never
// more than one live listener per user.
func (s *FeedService) Start(userID string) error {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	return s.startLocked(userID)
}

func (s *FeedService) startLocked(userID string) error {
	if userID == "" {
		return errors.New("user id is required")
	}

	s.stopLocked(userID)

	ctx, cancel := context.WithCancel(context.Background())
	snapshots, err := s.Store.Subscribe(ctx, chatMetaPath(userID))
	if err != nil {
		cancel()
		return err
	}

	feed := &inboxFeed{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	s.feeds[userID] = feed
	s.mu.Unlock()

	go s.run(ctx, userID, feed, snapshots)

	log.Printf("[Feed] Subscription started for user %s", userID)
	return nil
}

// Stop releases the user's subscription and waits for its goroutine to
// finish. Safe to call when no subscription exists and safe to call twice.
func (s *FeedService) Stop(userID string) {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.stopLocked(userID)
}

func (s *FeedService) stopLocked(userID string) {
	s.mu.Lock()
	feed := s.feeds[userID]
	delete(s.feeds, userID)
	s.mu.Unlock()

	if feed == nil {
		return
	}

	feed.cancel()
	<-feed.done
	log.Printf("[Feed] Subscription stopped for user %s", userID)
}

// StopAll tears down every live subscription. Used on shutdown.
func (s *FeedService) StopAll() {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.mu.Lock()
	users := make([]string, 0, len(s.feeds))
	for userID := range s.feeds {
		users = append(users, userID)
	}
	s.mu.Unlock()

	for _, userID := range users {
		s.stopLocked(userID)
	}
}

// EnsureStarted subscribes the user unless a subscription is already live.
// Used on websocket connect so a second device does not reset the first.
func (s *FeedService) EnsureStarted(userID string) error {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.mu.Lock()
	_, active := s.feeds[userID]
	s.mu.Unlock()

	if active {
		return nil
	}
	return s.startLocked(userID)
}

// Restart re-subscribes a user whose feed is already live, so the next
// snapshot is evaluated against changed moderation state. Without a live feed
// it does nothing.
func (s *FeedService) Restart(userID string) {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.mu.Lock()
	_, active := s.feeds[userID]
	s.mu.Unlock()

	if !active {
		return
	}

	if err := s.startLocked(userID); err != nil {
		log.Printf("[Feed] Error restarting subscription for user %s: %v", userID, err)
	}
}

func (s *FeedService) run(ctx context.Context, userID string, feed *inboxFeed, snapshots <-chan repositories.Snapshot) {
	defer close(feed.done)

	for snapshot := range snapshots {
		s.handleSnapshot(ctx, userID, feed, snapshot)
	}
}

func (s *FeedService) handleSnapshot(ctx context.Context, userID string, feed *inboxFeed, snapshot repositories.Snapshot) {
	// An absent collection projects like an empty one.
	raw := map[string]interface{}{}
	if snapshot.Exists {
		raw = DecodeFeedSnapshot(snapshot.Value)
	}
	banned := s.bannedSet(userID)

	chats, totalUnread := ProjectChatList(raw, banned)

	feed.mu.Lock()
	feed.chats = chats
	feed.totalUnread = totalUnread
	feed.mu.Unlock()

	s.push(userID, chats, totalUnread)
	s.correctBannedUnread(ctx, userID, raw, banned)
}

// correctBannedUnread resets the stored unread count of banned partners back
// to zero. Zero is a fixed point, so repeating the pass issues no extra
// writes. Failures are logged and dropped.
func (s *FeedService) correctBannedUnread(ctx context.Context, userID string, raw map[string]interface{}, banned map[string]bool) {
	for partnerID, record := range raw {
		if !banned[partnerID] {
			continue
		}

		summary, ok := models.DecodeChatRecord(partnerID, record)
		if !ok || summary.UnreadCount == 0 {
			continue
		}

		fields := map[string]interface{}{"unreadCount": 0}
		if err := s.Store.Update(ctx, chatMetaEntryPath(userID, partnerID), fields); err != nil {
			log.Printf("[Feed] Error resetting unread count for banned partner %s: %v", partnerID, err)
		}
	}
}

func (s *FeedService) bannedSet(userID string) map[string]bool {
	if s.banned == nil {
		return map[string]bool{}
	}

	banned, err := s.banned.BannedSet(userID)
	if err != nil {
		log.Printf("[Feed] Error loading banned users for %s: %v", userID, err)
		return map[string]bool{}
	}
	return banned
}

func (s *FeedService) push(userID string, chats []models.ChatSummary, totalUnread int) {
	if s.Hub == nil {
		return
	}
	s.Hub.PushInbox(userID, chats, totalUnread)
}

// Inbox returns a copy of the user's current projection.
func (s *FeedService) Inbox(userID string) ([]models.ChatSummary, int) {
	s.mu.Lock()
	feed := s.feeds[userID]
	s.mu.Unlock()

	if feed == nil {
		return []models.ChatSummary{}, 0
	}

	feed.mu.Lock()
	defer feed.mu.Unlock()

	chats := make([]models.ChatSummary, len(feed.chats))
	copy(chats, feed.chats)
	return chats, feed.totalUnread
}

// FindChat looks up an entry of the current projection by its thread id.
func (s *FeedService) FindChat(userID, chatID string) (models.ChatSummary, bool) {
	chats, _ := s.Inbox(userID)
	for _, chat := range chats {
		if chat.ChatID == chatID {
			return chat, true
		}
	}
	return models.ChatSummary{}, false
}

// RemoveChat drops the matching entry from the owned projection. Reports
// whether an entry was removed.
func (s *FeedService) RemoveChat(userID, chatID string) bool {
	return s.patch(userID, chatID, nil)
}

// ZeroUnread optimistically clears the unread count of the matching entry.
func (s *FeedService) ZeroUnread(userID, chatID string) bool {
	return s.patch(userID, chatID, func(chat *models.ChatSummary) {
		chat.UnreadCount = 0
	})
}

// patch applies an update keyed by chat id to the owned collection; a nil
// update removes the entry. The patched projection is pushed to the hub.
func (s *FeedService) patch(userID, chatID string, update func(*models.ChatSummary)) bool {
	s.mu.Lock()
	feed := s.feeds[userID]
	s.mu.Unlock()

	if feed == nil {
		return false
	}

	feed.mu.Lock()

	patched := false
	chats := make([]models.ChatSummary, 0, len(feed.chats))
	for _, chat := range feed.chats {
		if chat.ChatID == chatID {
			patched = true
			if update == nil {
				continue
			}
			update(&chat)
		}
		chats = append(chats, chat)
	}

	if !patched {
		feed.mu.Unlock()
		return false
	}

	totalUnread := 0
	for _, chat := range chats {
		totalUnread += chat.UnreadCount
	}

	feed.chats = chats
	feed.totalUnread = totalUnread
	feed.mu.Unlock()

	s.push(userID, chats, totalUnread)
	return true
}
