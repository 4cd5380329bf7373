package storage

import (
	"encoding/json"

	"github.com/wolferonic/swiftbudget/internal/common"
)

// MemoryStore is an in-memory Store used by tests. It round-trips values
// through JSON so tests exercise the same serialization path as the real
// store.
type MemoryStore struct {
	values map[string][]byte
	// FailWrites makes Set drop writes silently, mimicking a persistence
	// fault at the store boundary.
	FailWrites bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get unmarshals the value under key into out.
func (m *MemoryStore) Get(key string, out any) bool {
	raw, ok := m.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		common.LogError(err, "corrupt collection value, treating as absent", common.Fields{"key": key})
		return false
	}
	return true
}

// Set stores the JSON encoding of value under key.
func (m *MemoryStore) Set(key string, value any) {
	if m.FailWrites {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		common.LogError(err, "failed to encode collection", common.Fields{"key": key})
		return
	}
	m.values[key] = raw
}

// Remove deletes the value under key.
func (m *MemoryStore) Remove(key string) {
	delete(m.values, key)
}

// Wipe removes every stored value.
func (m *MemoryStore) Wipe() {
	m.values = make(map[string][]byte)
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// Has reports whether any value is stored under key.
func (m *MemoryStore) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Corrupt replaces the value under key with bytes that do not parse as
// JSON, for exercising the corrupt-value-is-absent path.
func (m *MemoryStore) Corrupt(key string) {
	m.values[key] = []byte("{not json")
}

// Len reports how many keys currently hold values.
func (m *MemoryStore) Len() int {
	return len(m.values)
}
