// Package memory is the ephemeral storage backend. Every repository owns its
// own table, so two repositories never share rows and tests can Clear freely.
package memory

import (
	"sync"

	"Postagram/internal/core/pagination"
)

// table keeps rows in insertion order and hands out copies, so callers can
// never mutate stored state behind the repository's back.
type table[T any] struct {
	mu   sync.RWMutex
	rows []*T
	id   func(*T) string
}

func newTable[T any](id func(*T) string) *table[T] {
	return &table[T]{id: id}
}

// insert stores a copy of row unless check rejects it against an existing row
func (t *table[T]) insert(row *T, check func(existing *T) error) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if check != nil {
		for _, existing := range t.rows {
			if err := check(existing); err != nil {
				return nil, err
			}
		}
	}

	stored := *row
	t.rows = append(t.rows, &stored)
	return clone(&stored), nil
}

func (t *table[T]) get(id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		return clone(t.rows[i]), true
	}
	return nil, false
}

// find returns copies of the matching rows in insertion order, windowed by page
func (t *table[T]) find(match func(*T) bool, page pagination.Page) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := make([]*T, 0)
	for _, row := range t.rows {
		if match == nil || match(row) {
			found = append(found, clone(row))
		}
	}
	return pagination.Apply(found, page)
}

// update applies fn to the stored row and returns a copy of the result
func (t *table[T]) update(id string, fn func(*T)) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, false
	}
	fn(t.rows[i])
	return clone(t.rows[i]), true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

func (t *table[T]) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
}

// indexOf must be called with mu held
func (t *table[T]) indexOf(id string) int {
	for i, row := range t.rows {
		if t.id(row) == id {
			return i
		}
	}
	return -1
}

func clone[T any](row *T) *T {
	c := *row
	return &c
}

// foreignKeyMatch builds the predicate behind every ListByForeignKey.
// Empty values never match, mirroring SQL NULL comparison.
func foreignKeyMatch[T any](value func(*T) (string, bool), id string) func(*T) bool {
	return func(row *T) bool {
		v, _ := value(row)
		return v != "" && v == id
	}
}
