// Package registry holds the registration table behind the dispatcher: an
// ordered sequence of values per key.
//
// A key is present in the table if and only if at least one value is
// registered under it. Keys are reported in the order they were first
// registered; values keep their insertion order within a key. Readers get
// copies, so callers may iterate a snapshot while the table changes under
// them.
package registry

import (
	"slices"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table is safe for concurrent use.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	entries *orderedmap.OrderedMap[K, []V]
	size    int
}

func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: orderedmap.New[K, []V](),
	}
}

// Append adds value at the end of the sequence for key, creating the sequence
// if needed. It returns the new length of that sequence.
func (t *Table[K, V]) Append(key K, value V) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	seq, _ := t.entries.Get(key)
	seq = append(seq, value)
	t.entries.Set(key, seq)
	t.size++
	return len(seq)
}

// Remove deletes the first value under key for which match returns true.
// When that empties the sequence the key itself is deleted.
func (t *Table[K, V]) Remove(key K, match func(V) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	seq, ok := t.entries.Get(key)
	if !ok {
		return false
	}
	idx := slices.IndexFunc(seq, match)
	if idx < 0 {
		return false
	}

	seq = slices.Delete(seq, idx, idx+1)
	if len(seq) == 0 {
		t.entries.Delete(key)
	} else {
		t.entries.Set(key, seq)
	}
	t.size--
	return true
}

// Snapshot returns a copy of the sequence for key, nil when absent.
func (t *Table[K, V]) Snapshot(key K) []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seq, ok := t.entries.Get(key)
	if !ok {
		return nil
	}
	return slices.Clone(seq)
}

// Count returns the number of values registered under key.
func (t *Table[K, V]) Count(key K) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seq, _ := t.entries.Get(key)
	return len(seq)
}

// Has reports whether key has at least one value.
func (t *Table[K, V]) Has(key K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.entries.Get(key)
	return ok
}

// Keys returns the present keys in first-registration order.
func (t *Table[K, V]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]K, 0, t.entries.Len())
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the total number of values across all keys.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Drain removes every value and every key, returning how many values were removed.
func (t *Table[K, V]) Drain() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := t.size
	t.entries = orderedmap.New[K, []V]()
	t.size = 0
	return removed
}
