// Package kvstore is the local persistence layer: independent JSON entries
// under string keys, one entry per collection. There are no transactions
// across keys; each repository owns exactly one key.
package kvstore

import "context"

// Store keys used by the repositories.
const (
	KeyProducts = "aaamo_products"
	KeyCart     = "aaamo_cart"
	KeyOrders   = "aaamo_orders"
)

type Store interface {
	// Get returns the raw entry for key, with false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
