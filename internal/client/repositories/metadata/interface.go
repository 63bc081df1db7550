// Package metadata is the durable client-side key-value store. The only key
// the application persists across restarts is the credential token; the rest
// of client state is rebuilt from backend fetches on every run.
package metadata

import (
	"context"
)

// Repository is a small durable key-value store.
type Repository interface {
	// Get returns the stored value, or "" with no error when the key is
	// absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
