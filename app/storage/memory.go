package storage

import "sync"

// MemoryKV holds values in process memory. Used in tests and as the
// fallback when no durable backend is configured.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
