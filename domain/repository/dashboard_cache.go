package repository

import (
	"context"
	"time"
)

// IDashboardCache memoizes rendered fetch results for a fixed time window.
// Keys are the full (operation, parameters) tuple; values are the serialized
// payload so repeated hits within the TTL are byte-identical.
type IDashboardCache interface {
	// Get returns the cached payload and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores the payload with a TTL from now.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
	// InvalidateAll clears every entry unconditionally (manual refresh).
	InvalidateAll(ctx context.Context) error
}
