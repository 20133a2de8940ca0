package objectstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used by unit tests. Objects are held as
// marshaled JSON so Get/Put round-trip the same way the real store does.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	GetErr error
	PutErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Seed stores value at key, failing the calling test on marshal errors is
// the caller's concern; Seed returns the error instead.
func (s *MemoryStore) Seed(key string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return nil
}

// Has reports whether an object exists at key.
func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) GetJSON(_ context.Context, key string, out any) error {
	if s.GetErr != nil {
		return s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.objects[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode object %s: %w", key, err)
	}
	return nil
}

func (s *MemoryStore) PutJSON(_ context.Context, key string, value any) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal object %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return nil
}

var _ Store = (*MemoryStore)(nil)
