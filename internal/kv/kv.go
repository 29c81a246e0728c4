// Package kv implements the local key-value store the ledger persists to.
package kv

import (
	"errors"
	"slices"
	"sync"
)

var ErrDatabase = errors.New("a database error occurred")

// Store is a local key-value store. Values are opaque byte slices.
type Store interface {
	// Get returns the value for the key. The boolean is false if the key
	// has never been set.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Ping() error
}

// Memory is a Store that keeps all values in process memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return slices.Clone(v), ok, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Ping() error {
	return nil
}
