package storage

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
	// GetOrCreate returns the value under key, storing the result of create
	// first if the key is absent. The check and insert are atomic.
	GetOrCreate(ctx context.Context, key string, create func() ([]byte, error)) ([]byte, error)
}
