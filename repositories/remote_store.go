package repositories

import "context"

// Snapshot is one delivered state of a remote path. Exists is false when the
// path holds no data; Value is the decoded JSON-like value otherwise.
type Snapshot struct {
	Exists bool
	Value  interface{}
}

// RemoteStore is the boundary to the hosted realtime database. The schema
// behind it (chat_meta_data/{userId}/{partnerId}, private_messages/{chatId},
// status/{userId}) is an external contract, not owned here.
type RemoteStore interface {
	// Subscribe delivers snapshots of the path until ctx is done. The
	// returned channel is closed on teardown.
	Subscribe(ctx context.Context, path string) (<-chan Snapshot, error)
	// Once reads the path a single time into v.
	Once(ctx context.Context, path string, v interface{}) error
	// Update merges partial fields into the path.
	Update(ctx context.Context, path string, fields map[string]interface{}) error
	// Remove deletes the path and everything under it.
	Remove(ctx context.Context, path string) error
}
