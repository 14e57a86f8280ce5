package board

import (
	"lukechampine.com/frand"

	"github.com/copperhead-games/gomoku-engine/player"
)

const hashBigNum = 1<<63 - 2

// Hasher is a Zobrist-style position hasher: a precomputed table of
// random 64-bit values, one per (cell, tile-state) pair, XORed together
// to fold a board position into a single key. It is sized for one board
// size and built once, the same way zobrist tables are built once per
// game in a turn-based engine.
type Hasher struct {
	size  int
	table [][3]uint64 // per cell: [empty unused, X, O]
}

// NewHasher builds a hasher for boards of the given size.
func NewHasher(size int) *Hasher {
	h := &Hasher{size: size, table: make([][3]uint64, size*size)}
	for i := range h.table {
		h.table[i] = [3]uint64{0, frand.Uint64n(hashBigNum) + 1, frand.Uint64n(hashBigNum) + 1}
	}
	return h
}

// Hash folds a board's current position into a single key. Empty cells
// do not contribute, so the key for an empty board is always 0.
func (h *Hasher) Hash(b *Board) uint64 {
	if b.Size() != h.size {
		panic("board: hasher size does not match board size")
	}
	var key uint64
	for i, t := range b.tiles {
		if p, ok := t.Player(); ok {
			key ^= h.table[i][p.Index()+1]
		}
	}
	return key
}

// Toggle returns the hash update for placing or removing the given
// player at flat index i: XOR it into an existing key to apply the
// change, XOR it again to undo it.
func (h *Hasher) Toggle(i int, p player.Player) uint64 {
	return h.table[i][p.Index()+1]
}
