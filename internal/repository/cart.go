package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaamo/storefront-api/internal/kvstore"
	"github.com/aaamo/storefront-api/internal/model"
)

type CartRepository interface {
	Items(ctx context.Context) ([]model.CartItem, error)
	// Replace persists the whole item list; the aggregator mutates in memory
	// and writes back after every call.
	Replace(ctx context.Context, items []model.CartItem) error
	Clear(ctx context.Context) error
}

type kvCartRepo struct {
	store kvstore.Store
	log   *slog.Logger
}

func NewCartRepository(store kvstore.Store, log *slog.Logger) CartRepository {
	return &kvCartRepo{store: store, log: log}
}

func (r *kvCartRepo) Items(ctx context.Context) ([]model.CartItem, error) {
	items, err := loadList[model.CartItem](ctx, r.store, kvstore.KeyCart, r.log)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return items, nil
}

func (r *kvCartRepo) Replace(ctx context.Context, items []model.CartItem) error {
	if err := saveList(ctx, r.store, kvstore.KeyCart, items); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

func (r *kvCartRepo) Clear(ctx context.Context) error {
	return r.Replace(ctx, nil)
}
