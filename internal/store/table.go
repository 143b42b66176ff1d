package store

import (
	"slices"
	"sync"
)

// table is one entity collection: rows keyed by identity plus a counter that
// only moves forward, so removed identities are never handed out again.
type table[T any] struct {
	mu    sync.RWMutex
	last  int64
	rows  map[int64]T
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: make(map[int64]T), clone: clone}
}

// get returns a copy of the row with the given identity, or nil.
func (t *table[T]) get(id int64) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	row = t.clone(row)
	return &row
}

// ids returns the identities in ascending order. Caller holds the lock.
func (t *table[T]) ids() []int64 {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// scan returns copies of the rows matching the predicate in identity order.
// A nil predicate matches everything.
func (t *table[T]) scan(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, id := range t.ids() {
		row := t.rows[id]
		if match == nil || match(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// insert allocates the next identity and stores the row built for it. build
// runs under the write lock, so timestamps it takes follow identity order.
func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(build)
}

func (t *table[T]) insertLocked(build func(id int64) T) T {
	t.last++
	row := build(t.last)
	t.rows[t.last] = t.clone(row)
	return t.clone(row)
}

// insertUnless inserts only if no existing row matches conflict.
func (t *table[T]) insertUnless(conflict func(T) bool, build func(id int64) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, row := range t.rows {
		if conflict(row) {
			var zero T
			return zero, false
		}
	}
	return t.insertLocked(build), true
}

// update applies fn to the row with the given identity and returns a copy
// of the result, or nil if there is no such row.
func (t *table[T]) update(id int64, fn func(*T)) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	fn(&row)
	t.rows[id] = row
	row = t.clone(row)
	return &row
}

// updateWhere applies fn to every matching row and returns how many matched.
func (t *table[T]) updateWhere(match func(T) bool, fn func(*T)) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for id, row := range t.rows {
		if match(row) {
			fn(&row)
			t.rows[id] = row
			n++
		}
	}
	return n
}

// upsert updates the lowest-identity row matching match, or inserts a new one.
func (t *table[T]) upsert(match func(T) bool, fn func(*T), build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.ids() {
		row := t.rows[id]
		if match(row) {
			fn(&row)
			t.rows[id] = row
			return t.clone(row)
		}
	}
	return t.insertLocked(build)
}

// deleteFirst removes the lowest-identity row matching match.
func (t *table[T]) deleteFirst(match func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.ids() {
		if match(t.rows[id]) {
			delete(t.rows, id)
			return true
		}
	}
	return false
}
