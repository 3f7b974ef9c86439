package ports

import "context"

// SessionStorage is the key-value store a session record is persisted in.
// Get returns domain.ErrNotFound when the key is absent.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
