package cart

import "sync"

type browserLock struct {
	mu   sync.Mutex
	refs int
}

// Manager serializes access to each browser's cart. A mutation loads the
// cart, applies fn and persists while the browser's lock is held. A lock
// lives only while some request holds or waits for it.
type Manager struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]*browserLock
}

func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend, locks: make(map[string]*browserLock)}
}

func (m *Manager) acquire(browserID string) *browserLock {
	m.mu.Lock()
	l, ok := m.locks[browserID]
	if !ok {
		l = &browserLock{}
		m.locks[browserID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return l
}

func (m *Manager) release(browserID string, l *browserLock) {
	l.mu.Unlock()

	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, browserID)
	}
	m.mu.Unlock()
}

// WithCart runs fn against the browser's cart under its lock.
func (m *Manager) WithCart(browserID string, fn func(*Store) error) error {
	l := m.acquire(browserID)
	defer m.release(browserID, l)

	s, err := Open(m.backend.Scope(browserID))
	if err != nil {
		return err
	}
	return fn(s)
}

// activeLocks reports how many browsers currently hold or wait for a lock.
func (m *Manager) activeLocks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
