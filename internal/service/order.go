package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/aaamo/storefront-api/internal/model"
	"github.com/aaamo/storefront-api/internal/repository"
	"github.com/aaamo/storefront-api/internal/shipping"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrBelowMinimumOrder  = errors.New("cart subtotal is below the minimum order value")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidPhone       = errors.New("phone is not a valid Egyptian mobile number")
	ErrUnknownGovernorate = errors.New("governorate is not in the shipping table")
)

// Egyptian mobile numbers: 010/011/012/015 plus eight digits.
var phonePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)

// OrderService is the order ledger plus the checkout flow that feeds it.
// Orders are append-only; status is the one field that ever changes.
type OrderService struct {
	orderRepo repository.OrderRepository
	cart      *CartService
}

func NewOrderService(orderRepo repository.OrderRepository, cart *CartService) *OrderService {
	return &OrderService{orderRepo: orderRepo, cart: cart}
}

// Checkout validates the address, recomputes the totals from the live cart,
// snapshots the items into a new pending order and clears the cart. The
// minimum-order gate applies to the product subtotal, before shipping.
func (s *OrderService) Checkout(ctx context.Context, address model.OrderAddress, method model.PaymentMethod, userID string) (*model.Order, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shippingCost, err := validateAddress(address)
	if err != nil {
		return nil, err
	}

	sub := subtotal(items)
	if sub.LessThan(s.cart.minOrder) {
		return nil, ErrBelowMinimumOrder
	}

	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)

	order := &model.Order{
		UserID:        userID,
		Items:         snapshot,
		Address:       address,
		PaymentMethod: method,
		TotalAmount:   sub.Add(shippingCost),
		ShippingCost:  shippingCost,
		Status:        model.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Cart and ledger live under independent keys; a crash between these two
	// writes is accepted, not mitigated.
	if err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}

func validateAddress(address model.OrderAddress) (decimal.Decimal, error) {
	if !phonePattern.MatchString(address.Phone) {
		return decimal.Zero, ErrInvalidPhone
	}
	if address.AlternativePhone != "" && !phonePattern.MatchString(address.AlternativePhone) {
		return decimal.Zero, ErrInvalidPhone
	}
	cost, ok := shipping.CostFor(address.Governorate)
	if !ok {
		return decimal.Zero, ErrUnknownGovernorate
	}
	return cost, nil
}

// UpdateStatus overwrites the status of one order. Any valid status may
// follow any other; transition legality is deliberately not enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	order, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}
