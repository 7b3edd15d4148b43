package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
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

// Probe returns the cached node count of pos at depth.
func (t *ThreadSafeTable) Probe(pos *chess.Position, depth int) (uint64, bool) {
	hash, weak := GenerateZobristHash(pos), WeakHash(pos)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.probe(hash, weak, depth)
}

// Store records the node count of pos at depth.
func (t *ThreadSafeTable) Store(pos *chess.Position, depth int, nodes uint64) bool {
	e := Entry{Hash: GenerateZobristHash(pos), WeakHash: WeakHash(pos), Depth: depth, Nodes: nodes}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.store(e)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful probes.
func (t *ThreadSafeTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
