package kvstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetAbsent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_PutGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyCart, []byte(`[{"id":"1"}]`)))

	data, ok, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	// Overwrite replaces the entry wholesale.
	require.NoError(t, store.Put(ctx, KeyCart, []byte(`[]`)))
	data, _, err = store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFileStore_Delete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyOrders, []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, KeyOrders))

	_, ok, err := store.Get(ctx, KeyOrders)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, KeyOrders))
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyProducts, []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyProducts+".json", entries[0].Name())
}

func TestMemStore_CopiesValues(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	buf := []byte(`[1,2]`)
	require.NoError(t, store.Put(ctx, KeyCart, buf))
	buf[1] = 'x'

	data, ok, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(data))
}
