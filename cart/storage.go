package cart

import "sync"

// Storage is a browser's durable key/value area.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Backend hands out the Storage for one browser id.
type Backend interface {
	Scope(browserID string) Storage
}

type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// MemoryBackend keeps every browser's storage in process memory.
type MemoryBackend struct {
	mu       sync.Mutex
	browsers map[string]*MemoryStorage
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{browsers: make(map[string]*MemoryStorage)}
}

func (b *MemoryBackend) Scope(browserID string) Storage {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.browsers[browserID]
	if !ok {
		s = NewMemoryStorage()
		b.browsers[browserID] = s
	}
	return s
}
