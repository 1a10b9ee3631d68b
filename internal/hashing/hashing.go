// Package hashing provides Zobrist position keys and a transposition table
// for caching node counts.
package hashing

import (
	"github.com/abarnes1/chess-sub000/internal/chess"
)

// zobrist holds the random keys XORed together to form a position key.
type zobrist struct {
	pieces    [2][7][chess.NumSquares]uint64
	blackMove uint64
	castling  [16]uint64
	epFile    [chess.BoardSize]uint64
}

var keys = newZobrist(0x9E3779B97F4A7C15)

// splitmix64 is a small deterministic generator, so keys are identical
// across runs and processes.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func newZobrist(seed uint64) *zobrist {
	rng := splitmix64(seed)
	z := &zobrist{}
	for c := range z.pieces {
		for k := range z.pieces[c] {
			for sq := range z.pieces[c][k] {
				z.pieces[c][k][sq] = rng.next()
			}
		}
	}
	z.blackMove = rng.next()
	for i := range z.castling {
		z.castling[i] = rng.next()
	}
	for i := range z.epFile {
		z.epFile[i] = rng.next()
	}
	return z
}

// PositionKey computes the Zobrist key of a position. castling is a four-bit
// rights mask and epCol is the en passant file, or 0 for none.
func PositionKey(b *chess.Board, toMove chess.Colour, castling uint8, epCol chess.Col) uint64 {
	var h uint64
	for _, p := range b.AllPieces() {
		h ^= keys.pieces[p.Colour][p.Kind][p.Position.Index()]
	}
	if toMove == chess.Black {
		h ^= keys.blackMove
	}
	h ^= keys.castling[castling&0xF]
	if epCol >= chess.FirstCol && epCol <= chess.LastCol {
		h ^= keys.epFile[epCol-chess.FirstCol]
	}
	return h
}

// entryKey identifies a cached node count.
type entryKey struct {
	hash  uint64
	depth int
}

// Table caches perft node counts by position key and remaining depth.
type Table struct {
	entries     map[entryKey]uint64
	maxCapacity int
	hits        int
	misses      int
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity; once
// a bounded table is full, Store ignores new entries.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached count for key at depth.
func (t *Table) Lookup(key uint64, depth int) (uint64, bool) {
	n, ok := t.entries[entryKey{key, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return n, ok
}

// Store records a node count.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[entryKey{key, depth}] = nodes
}

// Len returns the number of cached entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *Table) Misses() int {
	return t.misses
}

// IsFull reports whether a bounded table has reached its capacity.
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table and its counters.
func (t *Table) Reset() {
	t.entries = make(map[entryKey]uint64)
	t.hits, t.misses = 0, 0
}
