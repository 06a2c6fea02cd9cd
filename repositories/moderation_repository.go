package repositories

// ModerationRepository persists the locally owned banned set per user. The
// set is read and written as a whole.
type ModerationRepository interface {
	GetBannedUsers(userID string) ([]string, error)
	SaveBannedUsers(userID string, banned []string) error
}
