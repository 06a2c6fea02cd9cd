package services

import (
	"InboxMobile/models"
	"InboxMobile/repositories"
	"context"
	"encoding/json"
	"fmt"
)

// PresenceService reads a single partner's presence record for the private
// chat header and combines it with the caller's moderation state.
type PresenceService struct {
	Store      repositories.RemoteStore
	Moderation *ModerationService
}

func NewPresenceService(store repositories.RemoteStore, moderation *ModerationService) *PresenceService {
	return &PresenceService{
		Store:      store,
		Moderation: moderation,
	}
}

// GetPartnerStatus resolves the header view model. An absent presence record
// means offline, not an error.
func (s *PresenceService) GetPartnerStatus(ctx context.Context, userID, partnerID string) (models.PartnerStatus, error) {
	status := models.PartnerStatus{PartnerID: partnerID}

	if partnerID == "" {
		return status, fmt.Errorf("partner id is required")
	}

	var raw map[string]interface{}
	if err := s.Store.Once(ctx, statusPath(partnerID), &raw); err != nil {
		return status, fmt.Errorf("error reading presence for %s: %w", partnerID, err)
	}

	if raw != nil {
		if online, ok := raw["online"].(bool); ok {
			status.Online = online
		}
		status.LastSeen = presenceTimestamp(raw["lastSeen"])
	}

	if s.Moderation != nil {
		status.Blocked = s.Moderation.IsBanned(userID, partnerID)
	}

	return status, nil
}

func presenceTimestamp(v interface{}) int64 {
	switch value := v.(type) {
	case float64:
		return int64(value)
	case int64:
		return value
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
