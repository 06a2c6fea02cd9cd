package models

import (
	"encoding/json"
	"time"
)

// ModerationState stores the locally persisted moderation data for one user.
// BannedUsers holds the whole banned set as a JSON array of partner ids; the
// set is always written as a whole, never as a delta.
type ModerationState struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      string    `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	BannedUsers string    `gorm:"column:banned_users" json:"banned_users"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BannedList decodes the stored JSON array. An empty or broken column decodes
// to an empty list rather than an error.
func (m *ModerationState) BannedList() []string {
	if m.BannedUsers == "" {
		return []string{}
	}

	var banned []string
	if err := json.Unmarshal([]byte(m.BannedUsers), &banned); err != nil {
		return []string{}
	}
	return banned
}

// SetBannedList encodes the whole set back into the JSON column.
func (m *ModerationState) SetBannedList(banned []string) error {
	data, err := json.Marshal(banned)
	if err != nil {
		return err
	}
	m.BannedUsers = string(data)
	return nil
}
