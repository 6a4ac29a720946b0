package kvstore

import "context"

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	entries map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string][]byte)}
}

func (s *MemStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := s.entries[key]
	return data, ok, nil
}

func (s *MemStore) Put(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.entries[key] = cp
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	delete(s.entries, key)
	return nil
}
