// Package memory provides an in-process SlotStore. It is the default driver
// for local development and the storage double used throughout the tests.
package memory

import (
	"context"
	"sync"

	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// Store implements ports.SlotStore on a plain map.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, ports.ErrSlotEmpty
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *Store) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make([]byte, len(value))
	copy(data, value)
	s.slots[key] = data
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
