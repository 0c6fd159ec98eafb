// Package apiserver implements the mock ingestion REST service: it accepts
// generated entities over HTTP, keeps per-entity counts, and can reset.
// Storage is pluggable; the default is in-memory, with an optional
// bbolt-backed store for persistence across restarts.
package apiserver

import (
	"encoding/json"
	"sync"
)

// Entity kinds accepted by the service.
const (
	KindUsers   = "users"
	KindOrders  = "orders"
	KindReviews = "reviews"
)

var kinds = []string{KindUsers, KindOrders, KindReviews}

// Store holds ingested records per entity kind.
type Store interface {
	// Append stores one record and returns the new count for that kind.
	Append(kind string, record json.RawMessage) (int, error)
	// Counts returns the per-kind record counts.
	Counts() (map[string]int, error)
	// Reset removes all stored records.
	Reset() error
	// Close releases underlying resources.
	Close() error
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]json.RawMessage
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]json.RawMessage)}
}

func (s *MemoryStore) Append(kind string, record json.RawMessage) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[kind] = append(s.records[kind], record)
	return len(s.records[kind]), nil
}

func (s *MemoryStore) Counts() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int, len(kinds))
	for _, k := range kinds {
		counts[k] = len(s.records[k])
	}
	return counts, nil
}

func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string][]json.RawMessage)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
