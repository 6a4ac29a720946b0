package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaamo/storefront-api/internal/kvstore"
	"github.com/aaamo/storefront-api/internal/model"
)

func sampleOrder(userID string) *model.Order {
	return &model.Order{
		UserID: userID,
		Items: []model.CartItem{
			{Product: model.Product{ID: "1", Name: "جراب", Price: decimal.NewFromInt(250)}, Quantity: 1},
		},
		Address: model.OrderAddress{
			FullName:    "سارة إبراهيم",
			Phone:       "01198765432",
			Governorate: "الجيزة",
			AddressLine: "٧ شارع الهرم، الطابق الأول",
		},
		PaymentMethod: model.PaymentCashOnDelivery,
		TotalAmount:   decimal.NewFromInt(285),
		ShippingCost:  decimal.NewFromInt(35),
		Status:        model.OrderStatusPending,
	}
}

func TestOrderRepository_CreateStampsIDAndTime(t *testing.T) {
	repo := NewOrderRepository(kvstore.NewMemStore(), testLogger())
	ctx := context.Background()

	order := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, order))
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	second := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEqual(t, order.ID, second.ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository(kvstore.NewMemStore(), testLogger())
	ctx := context.Background()

	order := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, order))

	updated, err := repo.UpdateStatus(ctx, order.ID, model.OrderStatusProcessing)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.OrderStatusProcessing, updated.Status)

	// Only the status changed.
	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(order.TotalAmount))
	assert.Equal(t, order.Address, got.Address)
}

func TestOrderRepository_UpdateStatus_Missing(t *testing.T) {
	repo := NewOrderRepository(kvstore.NewMemStore(), testLogger())
	ctx := context.Background()

	order := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, order))

	updated, err := repo.UpdateStatus(ctx, "order_missing", model.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Nil(t, updated)

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestOrderRepository_ListByUser_SortedNewestFirst(t *testing.T) {
	store := kvstore.NewMemStore()
	log := testLogger()
	ctx := context.Background()

	// Drive the clock by hand so the sort has distinct timestamps to work
	// with, regardless of insertion order in the stored list.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo := &kvOrderRepo{store: store, log: log, now: func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}}

	first := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, first))
	other := sampleOrder("u2")
	require.NoError(t, repo.Create(ctx, other))
	second := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, second))

	orders, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[2].ID)
}

func TestOrderRepository_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewOrderRepository(newFileStore(t, dir), testLogger())
	order := sampleOrder("u1")
	require.NoError(t, repo.Create(ctx, order))
	_, err := repo.UpdateStatus(ctx, order.ID, model.OrderStatusShipped)
	require.NoError(t, err)

	reopened := NewOrderRepository(newFileStore(t, dir), testLogger())
	got, err := reopened.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.OrderStatusShipped, got.Status)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(285)))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "جراب", got.Items[0].Name)
}

func TestOrderRepository_MalformedEntryResets(t *testing.T) {
	store := kvstore.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, kvstore.KeyOrders, []byte("no json here")))

	repo := NewOrderRepository(store, testLogger())
	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// The ledger works normally after the reset.
	require.NoError(t, repo.Create(ctx, sampleOrder("u1")))
	orders, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
