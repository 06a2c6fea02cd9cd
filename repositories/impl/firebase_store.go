package impl

import (
	"InboxMobile/repositories"
	"context"
	"log"
	"reflect"
	"time"

	"firebase.google.com/go/v4/db"
)

const defaultPollInterval = 3 * time.Second

// FirebaseStore implements repositories.RemoteStore on top of the Firebase
// Realtime Database admin client. The admin SDK has no listener API, so
// Subscribe polls the path and emits a snapshot whenever the value changes.
type FirebaseStore struct {
	Client       *db.Client
	PollInterval time.Duration
}

func NewFirebaseStore(client *db.Client) *FirebaseStore {
	return &FirebaseStore{
		Client:       client,
		PollInterval: defaultPollInterval,
	}
}

// Subscribe reads the path immediately and then on every poll tick, sending a
// snapshot on change. The channel is closed when ctx is done.
func (s *FirebaseStore) Subscribe(ctx context.Context, path string) (<-chan repositories.Snapshot, error) {
	out := make(chan repositories.Snapshot, 1)

	go func() {
		defer close(out)

		interval := s.PollInterval
		if interval <= 0 {
			interval = defaultPollInterval
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last interface{}
		first := true

		for {
			var value interface{}
			if err := s.Client.NewRef(path).Get(ctx, &value); err != nil {
				if ctx.Err() != nil {
					return
				}
				// Treat a failed poll like an absent path; the next tick retries.
				log.Printf("[RemoteStore] Error reading %s: %v", path, err)
				value = nil
			}

			if first || !reflect.DeepEqual(value, last) {
				first = false
				last = value
				select {
				case out <- repositories.Snapshot{Exists: value != nil, Value: value}:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Once reads the path a single time into v.
func (s *FirebaseStore) Once(ctx context.Context, path string, v interface{}) error {
	return s.Client.NewRef(path).Get(ctx, v)
}

// Update merges partial fields into the path.
func (s *FirebaseStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	return s.Client.NewRef(path).Update(ctx, fields)
}

// Remove deletes the path and everything under it.
func (s *FirebaseStore) Remove(ctx context.Context, path string) error {
	return s.Client.NewRef(path).Delete(ctx)
}
