package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/copperhead-games/gomoku-engine/player"
)

func TestSetUndoRoundTrip(t *testing.T) {
	is := is.New(t)
	b, err := NewEmpty(9)
	is.NoErr(err)

	before := append([]Tile(nil), b.tiles...)

	p := NewTilePointer(3, 4)
	b.SetTile(p, TileOf(player.X))
	b.SetTile(p, Empty)

	is.Equal(b.tiles, before)
}

func TestSetTileRejectsDoublePlacement(t *testing.T) {
	b, err := NewEmpty(9)
	assert.NoError(t, err)

	p := NewTilePointer(0, 0)
	b.SetTile(p, TileOf(player.X))

	assert.Panics(t, func() {
		b.SetTile(p, TileOf(player.O))
	})
}

func TestSetTileRejectsClearingEmpty(t *testing.T) {
	b, err := NewEmpty(9)
	assert.NoError(t, err)

	assert.Panics(t, func() {
		b.SetTile(NewTilePointer(0, 0), Empty)
	})
}

func TestNewRejectsSmallBoard(t *testing.T) {
	is := is.New(t)
	_, err := New([][]Tile{{Empty}})
	is.True(err != nil)
	var shapeErr *ErrMisshapenBoard
	is.True(asShapeErr(err, &shapeErr))
}

func asShapeErr(err error, target **ErrMisshapenBoard) bool {
	e, ok := err.(*ErrMisshapenBoard)
	if ok {
		*target = e
	}
	return ok
}

func TestCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	b, err := NewEmpty(9)
	is.NoErr(err)

	clone := b.Clone()
	clone.SetTile(NewTilePointer(0, 0), TileOf(player.X))

	is.Equal(b.At(0, 0), Empty)
	is.Equal(clone.At(0, 0), TileOf(player.X))
}

func TestEmptyTilesCount(t *testing.T) {
	is := is.New(t)
	b, err := NewEmpty(9)
	is.NoErr(err)
	is.Equal(len(b.EmptyTiles()), 81)

	b.SetTile(NewTilePointer(0, 0), TileOf(player.X))
	is.Equal(len(b.EmptyTiles()), 80)
	is.True(!b.IsFull())
}
