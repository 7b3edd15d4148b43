// Package hashing provides Zobrist hashing of positions and a perft
// transposition table keyed on it.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Table caches perft node counts by position and remaining depth.
type Table struct {
	// entries stores seen signatures by Zobrist hash
	entries map[uint64][]Entry
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	// size counts stored entries across all buckets
	size int
	// hits tracks successful probes
	hits int
}

// Entry is one cached perft result.
type Entry struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast secondary checksum for collision rejection
	WeakHash uint32
	// Depth is the remaining search depth the count was taken at
	Depth int
	// Nodes is the leaf count below the position at Depth
	Nodes uint64
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[uint64][]Entry),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the cached node count of pos at depth.
func (t *Table) Probe(pos *chess.Position, depth int) (uint64, bool) {
	return t.probe(GenerateZobristHash(pos), WeakHash(pos), depth)
}

func (t *Table) probe(hash uint64, weak uint32, depth int) (uint64, bool) {
	for _, e := range t.entries[hash] {
		if e.WeakHash == weak && e.Depth == depth {
			t.hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store records the node count of pos at depth. It reports false when
// the table is full and the entry was dropped.
func (t *Table) Store(pos *chess.Position, depth int, nodes uint64) bool {
	return t.store(Entry{
		Hash:     GenerateZobristHash(pos),
		WeakHash: WeakHash(pos),
		Depth:    depth,
		Nodes:    nodes,
	})
}

func (t *Table) store(e Entry) bool {
	bucket := t.entries[e.Hash]
	for i := range bucket {
		if bucket[i].WeakHash == e.WeakHash && bucket[i].Depth == e.Depth {
			bucket[i].Nodes = e.Nodes
			return true
		}
	}
	if t.IsFull() {
		return false
	}
	t.entries[e.Hash] = append(bucket, e)
	t.size++
	return true
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return t.size
}

// Hits returns the number of successful probes.
func (t *Table) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.entries = make(map[uint64][]Entry)
	t.size = 0
	t.hits = 0
}
