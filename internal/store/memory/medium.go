// Package memory provides an in-memory key-value medium used for tests and
// ephemeral environments.
package memory

import (
	"sync"

	"fieldcrm/pkg/domain"
)

var _ domain.Medium = (*Medium)(nil)

// Medium is a map-backed medium. Payloads are copied on the way in and out so
// callers never alias internal state.
type Medium struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New constructs an empty in-memory medium.
func New() *Medium {
	return &Medium{data: make(map[string][]byte)}
}

// Read implements domain.Medium.
func (m *Medium) Read(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

// Write implements domain.Medium.
func (m *Medium) Write(key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), payload...)
	return nil
}

// Delete implements domain.Medium.
func (m *Medium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close implements domain.Medium.
func (m *Medium) Close() error { return nil }

// Len reports the number of stored keys, for tests.
func (m *Medium) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
