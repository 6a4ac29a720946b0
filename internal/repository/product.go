package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aaamo/storefront-api/internal/kvstore"
	"github.com/aaamo/storefront-api/internal/model"
)

type ProductRepository interface {
	// EnsureSeed writes the built-in sample catalog when no products entry
	// exists yet. A present-but-empty catalog is left alone.
	EnsureSeed(ctx context.Context) error
	Add(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type kvProductRepo struct {
	store kvstore.Store
	log   *slog.Logger
}

func NewProductRepository(store kvstore.Store, log *slog.Logger) ProductRepository {
	return &kvProductRepo{store: store, log: log}
}

func (r *kvProductRepo) EnsureSeed(ctx context.Context) error {
	_, ok, err := r.store.Get(ctx, kvstore.KeyProducts)
	if err != nil {
		return fmt.Errorf("check products entry: %w", err)
	}
	if ok {
		return nil
	}
	if err := saveList(ctx, r.store, kvstore.KeyProducts, sampleProducts()); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	r.log.Info("seeded product catalog", "count", len(sampleProducts()))
	return nil
}

func (r *kvProductRepo) load(ctx context.Context) ([]model.Product, error) {
	products, err := loadList[model.Product](ctx, r.store, kvstore.KeyProducts, r.log)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func (r *kvProductRepo) Add(ctx context.Context, product *model.Product) error {
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	product.ID = "prod_" + uuid.NewString()
	products = append(products, *product)
	if err := saveList(ctx, r.store, kvstore.KeyProducts, products); err != nil {
		return fmt.Errorf("persist products: %w", err)
	}
	return nil
}

func (r *kvProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *kvProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return r.load(ctx)
}

func (r *kvProductRepo) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			if err := saveList(ctx, r.store, kvstore.KeyProducts, products); err != nil {
				return nil, fmt.Errorf("persist products: %w", err)
			}
			return &product, nil
		}
	}
	return nil, nil
}

func (r *kvProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	products, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return false, nil
	}
	if err := saveList(ctx, r.store, kvstore.KeyProducts, kept); err != nil {
		return false, fmt.Errorf("persist products: %w", err)
	}
	return true, nil
}
