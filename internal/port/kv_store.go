package port

import "context"

type KeyValueStore interface {
	// Get returns the value stored under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error

	// SetMulti writes every entry in one atomic step
	SetMulti(ctx context.Context, entries map[string]string) error
}

// SessionStoreResolver returns the store scoped to one shopper session.
type SessionStoreResolver func(sessionID string) KeyValueStore
