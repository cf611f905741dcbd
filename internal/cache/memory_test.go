package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
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

func TestMemoryStore_SetCopiesValue(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	buf := []byte("original")
	require.NoError(t, store.Set(ctx, "k", buf))
	buf[0] = 'X'

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("original"), value)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	time.Sleep(40 * time.Millisecond)
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found, "entry should expire after the TTL")
}

func TestMemoryStore_ClearAndLen(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx), "clear is idempotent")

	n, err = store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMemoryRegions_ClearIsRegionIsolated(t *testing.T) {
	regions := NewMemoryRegions(0)
	defer regions.Close()
	ctx := context.Background()

	require.NoError(t, regions.Classification.Set(ctx, ClassificationKey("text").String(), []byte("a")))
	require.NoError(t, regions.Content.Set(ctx, ContentKey("v1", "dentistry", "text", "").String(), []byte("b")))
	require.NoError(t, regions.Templates.Set(ctx, TemplateKey("{{x}}").String(), []byte("c")))

	require.NoError(t, regions.ClearRegion(ctx, RegionContent))

	stats, err := regions.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["classification"], "clearing content must not touch classification")
	assert.Equal(t, 0, stats["content"])
	assert.Equal(t, 1, stats["templates"], "clearing content must not touch templates")
}

func TestRegions_ClearAll(t *testing.T) {
	regions := NewMemoryRegions(0)
	defer regions.Close()
	ctx := context.Background()

	require.NoError(t, regions.Classification.Set(ctx, "k1", []byte("a")))
	require.NoError(t, regions.Templates.Set(ctx, "k2", []byte("b")))

	require.NoError(t, regions.ClearAll(ctx))

	stats, err := regions.Stats(ctx)
	require.NoError(t, err)
	for region, n := range stats {
		assert.Zero(t, n, "region %s should be empty", region)
	}
}

func TestRegions_StoreUnknownRegion(t *testing.T) {
	regions := NewMemoryRegions(0)
	defer regions.Close()

	_, err := regions.Store(Region("bogus"))
	assert.Error(t, err)
}
