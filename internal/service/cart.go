package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aaamo/storefront-api/internal/model"
	"github.com/aaamo/storefront-api/internal/repository"
)

// CartService owns the single active cart. Mutations read the persisted
// list, change it in memory and write it straight back; derived values
// (total, item count, minimum check) are recomputed on demand, never cached.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	minOrder    decimal.Decimal
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, minOrder decimal.Decimal) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo, minOrder: minOrder}
}

func (s *CartService) Items(ctx context.Context) ([]model.CartItem, error) {
	return s.cartRepo.Items(ctx)
}

// Add merges by product id: an already-present product gets its quantity
// incremented, otherwise a snapshot of the product is appended.
func (s *CartService) Add(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity += quantity
			return s.cartRepo.Replace(ctx, items)
		}
	}
	items = append(items, model.CartItem{Product: *product, Quantity: quantity})
	return s.cartRepo.Replace(ctx, items)
}

// Remove is a no-op when the product is not in the cart.
func (s *CartService) Remove(ctx context.Context, productID string) error {
	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	return s.cartRepo.Replace(ctx, kept)
}

// SetQuantity overwrites the entry's quantity; zero or negative removes the
// entry entirely. An absent product id is a no-op.
func (s *CartService) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			return s.cartRepo.Replace(ctx, items)
		}
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

// Total is the product subtotal: sum of price times quantity. Shipping is
// never part of it.
func (s *CartService) Total(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return subtotal(items), nil
}

// ItemCount sums quantities, not distinct products.
func (s *CartService) ItemCount(ctx context.Context) (int, error) {
	items, err := s.cartRepo.Items(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// MinimumMet reports whether the product subtotal reaches the minimum order
// value. A subtotal exactly at the threshold passes.
func (s *CartService) MinimumMet(ctx context.Context) (bool, error) {
	total, err := s.Total(ctx)
	if err != nil {
		return false, err
	}
	return total.GreaterThanOrEqual(s.minOrder), nil
}

func subtotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
