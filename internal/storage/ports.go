package storage

import "context"

// KV is the port for the durable key-value byte store backing the ledger.
// Load reports absence with ok=false rather than an error; every error
// returned by either method is a persistence failure.
type KV interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
