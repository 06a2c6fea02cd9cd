package impl

import (
	"InboxMobile/models"
	"errors"

	"gorm.io/gorm"
)

type ModerationRepositoryImpl struct {
	DB *gorm.DB
}

func NewModerationRepository(db *gorm.DB) *ModerationRepositoryImpl {
	return &ModerationRepositoryImpl{DB: db}
}

// GetBannedUsers returns the stored banned set for the user. A user without a
// moderation row has an empty set.
func (r *ModerationRepositoryImpl) GetBannedUsers(userID string) ([]string, error) {
	var state models.ModerationState
	err := r.DB.Where("user_id = ?", userID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	return state.BannedList(), nil
}

// SaveBannedUsers overwrites the whole banned set for the user.
func (r *ModerationRepositoryImpl) SaveBannedUsers(userID string, banned []string) error {
	var state models.ModerationState
	err := r.DB.Where("user_id = ?", userID).First(&state).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	state.UserID = userID
	if err := state.SetBannedList(banned); err != nil {
		return err
	}

	return r.DB.Save(&state).Error
}
