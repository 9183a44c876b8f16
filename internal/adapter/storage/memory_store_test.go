package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "cart", "[]"))
	value, ok, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)

	require.NoError(t, store.SetMulti(ctx, map[string]string{"cart": "[1]", "order": "{}"}))
	assert.Equal(t, 2, store.Len())
	value, _, _ = store.Get(ctx, "cart")
	assert.Equal(t, "[1]", value)
}

func TestSessionScoped_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStore()
	resolve := SessionScoped(backend, "shop:")

	alice := resolve("alice")
	bob := resolve("bob")

	require.NoError(t, alice.Set(ctx, "cart", "alice-cart"))
	require.NoError(t, bob.SetMulti(ctx, map[string]string{"cart": "bob-cart", "order": "bob-order"}))

	v, ok, _ := alice.Get(ctx, "cart")
	assert.True(t, ok)
	assert.Equal(t, "alice-cart", v)

	_, ok, _ = alice.Get(ctx, "order")
	assert.False(t, ok)

	raw, ok, _ := backend.Get(ctx, "shop:session:bob:order")
	assert.True(t, ok)
	assert.Equal(t, "bob-order", raw)
}
