// Package store persists the lock-logger document. The whole document is a
// single JSON blob kept under a fixed key in a sqlite key/value table.
package store

import "context"

// Repository is raw key/value access to the documents table.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
