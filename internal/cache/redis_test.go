package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	client := newTestRedis(t)
	store := NewRedisStore(client, RegionContent, time.Hour)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_ClearOnlyOwnPrefix(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	contentStore := NewRedisStore(client, RegionContent, time.Hour)
	templateStore := NewRedisStore(client, RegionTemplates, time.Hour)

	require.NoError(t, contentStore.Set(ctx, "a", []byte("1")))
	require.NoError(t, contentStore.Set(ctx, "b", []byte("2")))
	require.NoError(t, templateStore.Set(ctx, "a", []byte("3")))

	require.NoError(t, contentStore.Clear(ctx))

	n, err := contentStore.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = templateStore.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "clearing content must not touch the templates namespace")
}

func TestRedisStore_SameKeyDifferentRegions(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	contentStore := NewRedisStore(client, RegionContent, time.Hour)
	classificationStore := NewRedisStore(client, RegionClassification, time.Hour)

	require.NoError(t, contentStore.Set(ctx, "shared", []byte("content")))
	require.NoError(t, classificationStore.Set(ctx, "shared", []byte("classification")))

	value, found, err := contentStore.Get(ctx, "shared")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("content"), value)

	value, found, err = classificationStore.Get(ctx, "shared")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("classification"), value)
}

func TestRedisRegions_Stats(t *testing.T) {
	client := newTestRedis(t)
	regions := NewRedisRegions(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, regions.Content.Set(ctx, "a", []byte("1")))
	require.NoError(t, regions.Content.Set(ctx, "b", []byte("2")))
	require.NoError(t, regions.Templates.Set(ctx, "c", []byte("3")))

	stats, err := regions.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats["classification"])
	assert.Equal(t, 2, stats["content"])
	assert.Equal(t, 1, stats["templates"])
}
