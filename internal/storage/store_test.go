package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var out []string
	found, err := store.Get(ctx, KeyCustomers, &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, KeyCustomers, []string{"a", "b"}))
	found, err = store.Get(ctx, KeyCustomers, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, store.Remove(ctx, KeyCustomers))
	found, err = store.Get(ctx, KeyCustomers, &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, key := range Keys() {
		require.NoError(t, store.Set(ctx, key, "x"))
	}
	require.NoError(t, store.Clear(ctx))

	var out string
	for _, key := range Keys() {
		found, err := store.Get(ctx, key, &out)
		require.NoError(t, err)
		require.False(t, found)
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)
	ctx := context.Background()

	var out map[string]int
	found, err := store.Get(ctx, KeySettings, &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, KeySettings, map[string]int{"n": 7}))
	found, err = store.Get(ctx, KeySettings, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, map[string]int{"n": 7}, out)

	require.NoError(t, store.Remove(ctx, KeySettings))
	found, err = store.Get(ctx, KeySettings, &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisStoreClear(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyProducts, []int{1}))
	require.NoError(t, store.Set(ctx, KeySales, []int{2}))
	require.NoError(t, store.Clear(ctx))

	var out []int
	found, err := store.Get(ctx, KeyProducts, &out)
	require.NoError(t, err)
	require.False(t, found)
}
