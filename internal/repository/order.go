package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aaamo/storefront-api/internal/kvstore"
	"github.com/aaamo/storefront-api/internal/model"
)

type OrderRepository interface {
	// Create assigns the order id and creation time, prepends the order to
	// the ledger and persists. Stored order of the list carries no meaning;
	// listings re-sort by date.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// UpdateStatus overwrites only the status field. Unknown id returns
	// (nil, nil) and leaves the ledger untouched.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
}

type kvOrderRepo struct {
	store kvstore.Store
	log   *slog.Logger
	now   func() time.Time
}

func NewOrderRepository(store kvstore.Store, log *slog.Logger) OrderRepository {
	return &kvOrderRepo{store: store, log: log, now: time.Now}
}

func (r *kvOrderRepo) load(ctx context.Context) ([]model.Order, error) {
	orders, err := loadList[model.Order](ctx, r.store, kvstore.KeyOrders, r.log)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// newOrderID keeps the `order_<unix-ms>_<suffix>` shape. Uniqueness is the
// only contract; the timestamp is not relied on for ordering.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("order_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}

func (r *kvOrderRepo) Create(ctx context.Context, order *model.Order) error {
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	now := r.now()
	order.ID = newOrderID(now)
	order.CreatedAt = now
	orders = append([]model.Order{*order}, orders...)
	if err := saveList(ctx, r.store, kvstore.KeyOrders, orders); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	return nil
}

func (r *kvOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *kvOrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := saveList(ctx, r.store, kvstore.KeyOrders, orders); err != nil {
				return nil, fmt.Errorf("persist orders: %w", err)
			}
			o := orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *kvOrderRepo) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Order
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (r *kvOrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(orders)
	return orders, nil
}

func sortByDateDesc(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
