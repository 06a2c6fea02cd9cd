package services

import (
	"InboxMobile/interfaces"
	"InboxMobile/models"
	"InboxMobile/repositories"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// ErrChatNotFound marks a user action whose target is not present in the
// current projection. Callers treat it as a precondition failure, not as a
// remote error.
var ErrChatNotFound = errors.New("chat not found in current list")

// PrivateChatScreen is the navigation target for an opened conversation.
const PrivateChatScreen = "PrivateChat"

// ActionService executes the user intents dispatched from the inbox: deleting
// a conversation and opening one. Both operate on the projection owned by the
// feed service.
type ActionService struct {
	Store repositories.RemoteStore
	Feed  *FeedService
	Nav   interfaces.Navigator
}

func NewActionService(store repositories.RemoteStore, feed *FeedService, nav interfaces.Navigator) *ActionService {
	return &ActionService{
		Store: store,
		Feed:  feed,
		Nav:   nav,
	}
}

// DeleteChat removes the caller's metadata record and the full message thread
// from the remote store, then drops the entry from the local projection. The
// local removal is optimistic and happens only after both remote steps
// succeed; a failed step aborts the rest and surfaces to the caller.
func (s *ActionService) DeleteChat(ctx context.Context, userID, chatID string) error {
	if userID == "" || chatID == "" {
		log.Printf("[Action] Delete rejected: missing user or chat id")
		return ErrChatNotFound
	}

	chat, ok := s.Feed.FindChat(userID, chatID)
	if !ok || chat.OtherUserID == "" {
		log.Printf("[Action] Delete rejected: chat %s not in list for user %s", chatID, userID)
		return ErrChatNotFound
	}

	// Step 1: remove the caller's metadata record, but only when it exists.
	metaPath := chatMetaEntryPath(userID, chat.OtherUserID)
	var meta map[string]interface{}
	if err := s.Store.Once(ctx, metaPath, &meta); err != nil {
		return fmt.Errorf("error checking chat metadata: %w", err)
	}

	if meta != nil {
		if err := s.Store.Remove(ctx, metaPath); err != nil {
			return fmt.Errorf("error deleting chat metadata: %w", err)
		}
	}

	// Step 2: remove the whole thread. On failure the local entry stays.
	if err := s.Store.Remove(ctx, privateMessagesPath(chatID)); err != nil {
		return fmt.Errorf("error deleting chat thread: %w", err)
	}

	s.Feed.RemoveChat(userID, chatID)
	log.Printf("[Action] Chat %s deleted for user %s", chatID, userID)
	return nil
}

// OpenChat clears the unread count of the matching entry optimistically and
// emits the navigation intent for the conversation screen. The remote unread
// value is not touched here; the feed's correction pass and the server own
// that.
func (s *ActionService) OpenChat(userID, chatID, partnerID, partnerName, partnerAvatar string) (map[string]interface{}, error) {
	if userID == "" || chatID == "" || partnerID == "" {
		log.Printf("[Action] Open rejected: missing identifiers")
		return nil, ErrChatNotFound
	}

	if partnerName == "" {
		partnerName = models.DefaultUserName
	}
	if partnerAvatar == "" {
		partnerAvatar = models.DefaultAvatar
	}

	s.Feed.ZeroUnread(userID, chatID)

	params := map[string]interface{}{
		"selectedUser": map[string]interface{}{
			"senderId": partnerID,
			"sender":   partnerName,
			"avatar":   partnerAvatar,
		},
	}

	if s.Nav != nil {
		s.Nav.NavigateTo(userID, PrivateChatScreen, params)
	}

	return params, nil
}

// EnsureChatID returns the thread id already assigned to the conversation
// with the partner, or mints a new one when the pair has never exchanged a
// message.
func (s *ActionService) EnsureChatID(ctx context.Context, userID, partnerID string) (string, error) {
	if userID == "" || partnerID == "" {
		return "", errors.New("user and partner ids are required")
	}

	var meta map[string]interface{}
	if err := s.Store.Once(ctx, chatMetaEntryPath(userID, partnerID), &meta); err != nil {
		return "", fmt.Errorf("error reading chat metadata: %w", err)
	}

	if chatID, ok := meta["chatId"].(string); ok && chatID != "" {
		return chatID, nil
	}

	return uuid.NewString(), nil
}
