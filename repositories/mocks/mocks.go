package mocks

import (
	"InboxMobile/repositories"
	"context"

	"github.com/stretchr/testify/mock"
)

// RemoteStore is a testify mock of repositories.RemoteStore.
type RemoteStore struct {
	mock.Mock
}

func (m *RemoteStore) Subscribe(ctx context.Context, path string) (<-chan repositories.Snapshot, error) {
	args := m.Called(ctx, path)
	ch, _ := args.Get(0).(<-chan repositories.Snapshot)
	return ch, args.Error(1)
}

func (m *RemoteStore) Once(ctx context.Context, path string, v interface{}) error {
	args := m.Called(ctx, path, v)
	return args.Error(0)
}

func (m *RemoteStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	args := m.Called(ctx, path, fields)
	return args.Error(0)
}

func (m *RemoteStore) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// ModerationRepository is a testify mock of repositories.ModerationRepository.
type ModerationRepository struct {
	mock.Mock
}

func (m *ModerationRepository) GetBannedUsers(userID string) ([]string, error) {
	args := m.Called(userID)
	banned, _ := args.Get(0).([]string)
	return banned, args.Error(1)
}

func (m *ModerationRepository) SaveBannedUsers(userID string, banned []string) error {
	args := m.Called(userID, banned)
	return args.Error(0)
}
