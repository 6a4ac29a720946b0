package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaamo/storefront-api/internal/kvstore"
	"github.com/aaamo/storefront-api/internal/model"
)

func TestProductRepository_EnsureSeed(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeed(ctx))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)

	// Seeding twice changes nothing.
	require.NoError(t, repo.EnsureSeed(ctx))
	products, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestProductRepository_EnsureSeed_RespectsEmptyCatalog(t *testing.T) {
	store := kvstore.NewMemStore()
	ctx := context.Background()
	// An admin who deleted every product should not get the samples back.
	require.NoError(t, store.Put(ctx, kvstore.KeyProducts, []byte("[]")))

	repo := NewProductRepository(store, testLogger())
	require.NoError(t, repo.EnsureSeed(ctx))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_AddAssignsID(t *testing.T) {
	repo := NewProductRepository(kvstore.NewMemStore(), testLogger())
	ctx := context.Background()

	p := &model.Product{Name: "حامل مكتبي", Price: decimal.NewFromInt(90), Category: "حوامل"}
	require.NoError(t, repo.Add(ctx, p))
	assert.NotEmpty(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "حامل مكتبي", got.Name)
}

func TestProductRepository_GetByID_Missing(t *testing.T) {
	repo := NewProductRepository(kvstore.NewMemStore(), testLogger())
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_Update(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store, testLogger())
	ctx := context.Background()
	require.NoError(t, repo.EnsureSeed(ctx))

	got, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, got)

	got.Price = decimal.NewFromInt(199)
	updated, err := repo.Update(ctx, *got)
	require.NoError(t, err)
	require.NotNil(t, updated)

	reloaded, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, reloaded.Price.Equal(decimal.NewFromInt(199)))
}

func TestProductRepository_Update_Missing(t *testing.T) {
	repo := NewProductRepository(kvstore.NewMemStore(), testLogger())
	updated, err := repo.Update(context.Background(), model.Product{ID: "nope"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestProductRepository_Delete(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store, testLogger())
	ctx := context.Background()
	require.NoError(t, repo.EnsureSeed(ctx))

	ok, err := repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "3")
	require.NoError(t, err)
	assert.False(t, ok)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 7)
}

func TestProductRepository_MalformedEntryResets(t *testing.T) {
	store := kvstore.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, kvstore.KeyProducts, []byte("{broken")))

	repo := NewProductRepository(store, testLogger())
	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// The corrupted entry was replaced with an empty list, not left behind.
	data, ok, err := store.Get(ctx, kvstore.KeyProducts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", string(data))
}

func TestProductRepository_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewProductRepository(newFileStore(t, dir), testLogger())
	require.NoError(t, repo.EnsureSeed(ctx))
	p := &model.Product{Name: "سماعة سلكية", Price: decimal.NewFromInt(120), Category: "إكسسوارات صوت"}
	require.NoError(t, repo.Add(ctx, p))

	// A fresh repository over the same directory sees the same catalog.
	reopened := NewProductRepository(newFileStore(t, dir), testLogger())
	products, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 9)

	got, err := reopened.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(120)))
}
