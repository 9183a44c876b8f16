package storage

import (
	"context"

	"github.com/rl1809/storefront/internal/port"
)

const sessionKeyPrefix = "session:"

// NamespacedStore prefixes every key before delegating to the wrapped store.
type NamespacedStore struct {
	inner  port.KeyValueStore
	prefix string
}

func NewNamespacedStore(inner port.KeyValueStore, prefix string) *NamespacedStore {
	return &NamespacedStore{inner: inner, prefix: prefix}
}

func (n *NamespacedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *NamespacedStore) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *NamespacedStore) SetMulti(ctx context.Context, entries map[string]string) error {
	prefixed := make(map[string]string, len(entries))
	for key, value := range entries {
		prefixed[n.prefix+key] = value
	}
	return n.inner.SetMulti(ctx, prefixed)
}

// SessionScoped scopes stores to "<base>session:<id>:" inside backend.
func SessionScoped(backend port.KeyValueStore, base string) port.SessionStoreResolver {
	return func(sessionID string) port.KeyValueStore {
		return NewNamespacedStore(backend, base+sessionKeyPrefix+sessionID+":")
	}
}
