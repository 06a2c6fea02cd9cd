package services

import (
	"InboxMobile/interfaces"
	"InboxMobile/repositories"
	"errors"
	"log"
	"sync"
)

// FeedRestarter lets the moderation service nudge the feed after a toggle so
// the next snapshot is evaluated against the new banned set.
type FeedRestarter interface {
	Restart(userID string)
}

// ModerationService owns the locally persisted banned set. The set is loaded
// once per user session and cached; every toggle rewrites it as a whole.
type ModerationService struct {
	Repo repositories.ModerationRepository

	feed FeedRestarter

	mu    sync.Mutex
	cache map[string]map[string]bool
}

func NewModerationService(repo repositories.ModerationRepository) *ModerationService {
	return &ModerationService{
		Repo:  repo,
		cache: make(map[string]map[string]bool),
	}
}

// SetFeed wires the feed service in after construction.
func (s *ModerationService) SetFeed(feed FeedRestarter) {
	s.feed = feed
}

// BannedSet returns the user's banned set as a membership map.
func (s *ModerationService) BannedSet(userID string) (map[string]bool, error) {
	s.mu.Lock()
	cached, ok := s.cache[userID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	banned, err := s.Repo.GetBannedUsers(userID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(banned))
	for _, partnerID := range banned {
		set[partnerID] = true
	}

	s.mu.Lock()
	s.cache[userID] = set
	s.mu.Unlock()

	return set, nil
}

// IsBanned reports the partner's membership in the banned set. A load error
// degrades to "not banned".
func (s *ModerationService) IsBanned(userID, partnerID string) bool {
	set, err := s.BannedSet(userID)
	if err != nil {
		log.Printf("[Moderation] Error loading banned users for %s: %v", userID, err)
		return false
	}
	return set[partnerID]
}

// TogglePrompt builds the confirmation prompt for the partner's next
// transition: "Block" when unbanned, "Unblock" when banned.
func (s *ModerationService) TogglePrompt(userID, partnerID string) interfaces.ConfirmPrompt {
	if s.IsBanned(userID, partnerID) {
		return interfaces.ConfirmPrompt{
			Title:   "Unblock user",
			Message: "You will start receiving messages and unread counts from this user again.",
			Actions: []interfaces.ConfirmAction{
				{Label: "Unblock", Style: "default"},
				{Label: "Cancel", Style: "cancel"},
			},
		}
	}

	return interfaces.ConfirmPrompt{
		Title:   "Block user",
		Message: "Blocked users stay in your inbox but no longer count toward unread messages.",
		Actions: []interfaces.ConfirmAction{
			{Label: "Block", Style: "destructive"},
			{Label: "Cancel", Style: "cancel"},
		},
	}
}

// Toggle flips the partner's ban state after the confirmer approves. The new
// set is persisted as a whole; downstream effects (unread suppression, badge,
// stored-count correction) follow reactively from the changed set. Returns
// the resulting ban state.
func (s *ModerationService) Toggle(userID, partnerID string, confirmer interfaces.Confirmer) (bool, error) {
	if userID == "" || partnerID == "" {
		return false, errors.New("user and partner ids are required")
	}

	wasBanned := s.IsBanned(userID, partnerID)

	if confirmer == nil || !confirmer.Confirm(s.TogglePrompt(userID, partnerID)) {
		return wasBanned, nil
	}

	current, err := s.Repo.GetBannedUsers(userID)
	if err != nil {
		return wasBanned, err
	}

	banned := make([]string, 0, len(current)+1)
	for _, id := range current {
		if id != partnerID {
			banned = append(banned, id)
		}
	}
	if !wasBanned {
		banned = append(banned, partnerID)
	}

	if err := s.Repo.SaveBannedUsers(userID, banned); err != nil {
		return wasBanned, err
	}

	set := make(map[string]bool, len(banned))
	for _, id := range banned {
		set[id] = true
	}

	s.mu.Lock()
	s.cache[userID] = set
	s.mu.Unlock()

	if s.feed != nil {
		s.feed.Restart(userID)
	}

	log.Printf("[Moderation] User %s toggled ban for %s: banned=%v", userID, partnerID, !wasBanned)
	return !wasBanned, nil
}
