// Package store persists the engine snapshot as a single opaque blob.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no snapshot has been saved yet.
var ErrNotFound = errors.New("snapshot not found")

// Store is a key-value blob store holding the latest engine snapshot.
type Store interface {
	Save(blob []byte) error
	Load() ([]byte, error)
	Close() error
}

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save replaces the stored blob.
func (m *Memory) Save(blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
	return nil
}

// Load returns a copy of the stored blob.
func (m *Memory) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.blob...), nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
