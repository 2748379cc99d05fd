package storage

import (
	"context"
	"strings"
	"testing"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*blobStore, *blob.Bucket) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{Storage: &config.StorageConfig{MediaRoot: dir}}

	store, err := NewBlobStore(cfg)
	require.NoError(t, err)

	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return store.(*blobStore), bucket
}

func TestBlobStore_StoreWritesContent(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	locator, err := store.Store(ctx, "cover.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(locator, "/cover.png"))

	data, err := bucket.ReadAll(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestBlobStore_StoreKeysNeverCollide(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Store(ctx, "cover.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Store(ctx, "cover.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobStore_DiscardRelocates(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	locator, err := store.Store(ctx, "cover.png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Discard(ctx, locator))

	exists, err := bucket.Exists(ctx, locator)
	require.NoError(t, err)
	assert.False(t, exists)

	moved, err := bucket.Exists(ctx, "deleted/"+locator)
	require.NoError(t, err)
	assert.True(t, moved)
}

func TestBlobStore_DiscardMissingFileFails(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Discard(context.Background(), "nope/missing.png")
	assert.Error(t, err)
}

func TestBlobStore_Delete(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	locator, err := store.Store(ctx, "cover.png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, locator))

	exists, err := bucket.Exists(ctx, locator)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewBlobStore_RequiresMediaRoot(t *testing.T) {
	_, err := NewBlobStore(&config.Config{})
	assert.Error(t, err)
}
