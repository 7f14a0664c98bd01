package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps records in a process-local map. It backs tests and the
// "memory" driver, where state lives only as long as the server.
type MemoryStore struct {
	notifier
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest interface{}) bool {
	s.mu.RLock()
	blob, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return decodeRecord(blob, dest) == nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[key] = blob
	s.mu.Unlock()
	s.publish(key)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	s.publish(key)
	return nil
}

func (s *MemoryStore) Subscribe(key string, fn func()) {
	s.subscribe(key, fn)
}

// SetRaw stores an unparsed blob. Tests use it to plant malformed records.
func (s *MemoryStore) SetRaw(key string, blob []byte) {
	s.mu.Lock()
	s.records[key] = blob
	s.mu.Unlock()
}
