package repository

import "context"

// CacheRepository stores computed results by key. Expiry is up to the
// implementation.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
