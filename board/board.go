// Package board implements the Gomoku board: a fixed-size grid of tiles,
// the process-wide line index used to scan it, and the text formats used
// to move a board in and out of the engine.
package board

import (
	"fmt"

	"github.com/copperhead-games/gomoku-engine/player"
)

// Tile is an optional player: Empty, or the player occupying the cell.
type Tile int8

// Empty marks an unoccupied tile. It is not Tile's zero value: Tile(0)
// is an X stone.
const Empty Tile = -1

// TileOf wraps a player as an occupied tile.
func TileOf(p player.Player) Tile {
	return Tile(p)
}

// Player returns the occupying player and true, or false if the tile is
// empty.
func (t Tile) Player() (player.Player, bool) {
	if t == Empty {
		return 0, false
	}
	return player.Player(t), true
}

// Char renders the tile the way the text board format does.
func (t Tile) Char() byte {
	if p, ok := t.Player(); ok {
		return p.Char()
	}
	return '-'
}

// MinSize is the smallest board size the engine accepts.
const MinSize = 9

// Board is a square grid of tiles. Its size is fixed for the lifetime of
// the value; only individual tiles mutate. Cloning is a cheap deep copy
// of the backing array, since Tile is a plain value type.
type Board struct {
	size  int
	tiles []Tile
	seq   *Sequences
}

// New builds a board from a row-major grid of tiles. Every row must have
// the same width as the number of rows, and there must be at least
// MinSize rows.
func New(rows [][]Tile) (*Board, error) {
	n := len(rows)
	if n < MinSize {
		return nil, &ErrMisshapenBoard{Size: n, Line: 0, Width: n}
	}
	tiles := make([]Tile, n*n)
	for y, row := range rows {
		if len(row) != n {
			return nil, &ErrMisshapenBoard{Size: n, Line: y + 1, Width: len(row)}
		}
		copy(tiles[y*n:(y+1)*n], row)
	}
	return &Board{size: n, tiles: tiles, seq: sequencesFor(n)}, nil
}

// NewEmpty builds an empty board of the given size.
func NewEmpty(size int) (*Board, error) {
	rows := make([][]Tile, size)
	for y := range rows {
		row := make([]Tile, size)
		for x := range row {
			row[x] = Empty
		}
		rows[y] = row
	}
	return New(rows)
}

// Size returns N, the board's width and height.
func (b *Board) Size() int {
	return b.size
}

// Sequences returns the process-wide line index for this board's size.
func (b *Board) Sequences() *Sequences {
	return b.seq
}

// Clone returns a deep copy of the board. The two boards share no
// backing storage; mutating one never affects the other.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{size: b.size, tiles: tiles, seq: b.seq}
}

func (b *Board) index(x, y int) int {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		panic(fmt.Sprintf("board: coordinates (%d, %d) out of range for size %d", x, y, b.size))
	}
	return y*b.size + x
}

// At returns the tile at (x, y).
func (b *Board) At(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

// AtPointer is At addressed by TilePointer.
func (b *Board) AtPointer(t TilePointer) Tile {
	return b.At(t.X, t.Y)
}

// AtIndex returns the tile at a flat index into the backing array.
func (b *Board) AtIndex(i int) Tile {
	return b.tiles[i]
}

// Tiles returns the flat, row-major backing array. Callers must not
// mutate the returned slice; use SetTile.
func (b *Board) Tiles() []Tile {
	return b.tiles
}

// SetTile places or removes a tile at p. Exactly one of the following
// must hold: the cell is empty and new is a player (a placement), or the
// cell is occupied and new is Empty (a removal). Any other transition,
// including placing on an occupied cell or clearing an already-empty
// cell, is a contract violation and panics.
func (b *Board) SetTile(p TilePointer, new Tile) {
	i := b.index(p.X, p.Y)
	cur := b.tiles[i]
	switch {
	case cur == Empty && new != Empty:
		b.tiles[i] = new
	case cur != Empty && new == Empty:
		b.tiles[i] = Empty
	default:
		panic(fmt.Sprintf("board: invalid tile transition at %v: %v -> %v", p, cur, new))
	}
}

// EmptyTiles returns the pointers of every empty cell, in row-major
// order.
func (b *Board) EmptyTiles() []TilePointer {
	out := make([]TilePointer, 0, len(b.tiles))
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.tiles[y*b.size+x] == Empty {
				out = append(out, TilePointer{X: x, Y: y})
			}
		}
	}
	return out
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for _, t := range b.tiles {
		if t == Empty {
			return false
		}
	}
	return true
}

// SquaredDistanceFromCenter returns the squared Euclidean distance from
// (x, y) to the board's center, used to seed move ordering at the empty
// opening position.
func (b *Board) SquaredDistanceFromCenter(x, y int) float64 {
	c := float64(b.size-1) / 2
	dx := float64(x) - c
	dy := float64(y) - c
	return dx*dx + dy*dy
}
