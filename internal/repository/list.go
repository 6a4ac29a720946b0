package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aaamo/storefront-api/internal/kvstore"
)

// loadList reads the JSON list stored under key. An absent key yields an
// empty list. A malformed entry is discarded and reset to an empty list on
// the spot; the caller never sees the parse error.
func loadList[T any](ctx context.Context, store kvstore.Store, key string, log *slog.Logger) ([]T, error) {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("discarding malformed entry", "key", key, "error", err)
		if err := store.Put(ctx, key, []byte("[]")); err != nil {
			return nil, fmt.Errorf("reset entry %s: %w", key, err)
		}
		return nil, nil
	}
	return items, nil
}

func saveList[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", key, err)
	}
	return store.Put(ctx, key, data)
}
