// Package memory provides an in-process snapshot store used by tests and
// throwaway runs; nothing survives a restart.
package memory

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Store keeps slot payloads in a map.
type Store struct {
	mu    sync.Mutex
	slots map[string]json.RawMessage
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		slots: make(map[string]json.RawMessage),
	}
}

func (s *Store) Load(slot string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, exists := s.slots[slot]
	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return true, nil
}

func (s *Store) Save(slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = payload
	return nil
}

func (s *Store) Close() error {
	return nil
}
