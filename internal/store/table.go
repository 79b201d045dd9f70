package store

import (
	"sync"

	"github.com/google/uuid"
)

// Table is one concurrent id-keyed table. Safe for arbitrary concurrent
// readers and writers without caller-side locking. Entries are never
// deleted; stored values must be treated as immutable after Insert.
type Table[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[uuid.UUID]T)}
}

// Insert installs or overwrites the entry for id.
func (t *Table[T]) Insert(id uuid.UUID, value T) {
	t.mu.Lock()
	t.items[id] = value
	t.mu.Unlock()
}

func (t *Table[T]) Get(id uuid.UUID) (T, bool) {
	t.mu.RLock()
	value, ok := t.items[id]
	t.mu.RUnlock()
	return value, ok
}

// List returns a snapshot of all current values. Order is unspecified and
// callers must not rely on it.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.items))
	for _, v := range t.items {
		out = append(out, v)
	}
	t.mu.RUnlock()
	return out
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	n := len(t.items)
	t.mu.RUnlock()
	return n
}
