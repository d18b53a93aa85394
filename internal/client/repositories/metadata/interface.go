// Package metadata is a durable key/value repository over the local
// metadata table. Values are opaque bytes; callers own the encoding.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
