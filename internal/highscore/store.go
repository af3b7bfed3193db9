// Package highscore persists the best score between runs.
//
// Stores never fail on read: a missing or unreadable value is reported as 0.
// Write failures are returned so the caller can log them.
package highscore

import "sync"

// Store loads and saves a single non-negative high score.
type Store interface {
	// Load returns the persisted high score, or 0 if none is available.
	Load() int
	// Save persists n, replacing any previous value.
	Save(n int) error
}

// MemoryStore keeps the score in memory. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore creates a store holding an initial score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: max(initial, 0)}
}

func (m *MemoryStore) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

func (m *MemoryStore) Save(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = n
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Monotonic wraps a store shared by several games so the persisted value
// only ever grows. Save re-reads the backing value and writes only when n
// beats it. A Save that does not beat it returns nil, so callers Load
// afterwards to learn the stored value.
type Monotonic struct {
	mu      sync.Mutex
	backing Store
}

// NewMonotonic wraps backing.
func NewMonotonic(backing Store) *Monotonic {
	return &Monotonic{backing: backing}
}

func (m *Monotonic) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backing.Load()
}

func (m *Monotonic) Save(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= m.backing.Load() {
		return nil
	}
	return m.backing.Save(n)
}
