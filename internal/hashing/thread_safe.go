package hashing

import (
	"sync"
)

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTable(maxCapacity),
	}
}

// Lookup returns the cached count for key at depth. It takes the write
// lock because lookups update the hit counters.
func (t *ThreadSafeTable) Lookup(key uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key, depth)
}

// Store records a node count.
func (t *ThreadSafeTable) Store(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, depth, nodes)
}

// Len returns the number of cached entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// LoadFromTable copies entries from an existing table. Call before concurrent use.
func (t *ThreadSafeTable) LoadFromTable(other *Table) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, n := range other.entries {
		t.table.entries[k] = n
	}
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
