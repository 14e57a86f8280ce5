package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestTilePointerRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, p := range []TilePointer{{0, 0}, {7, 7}, {0, 14}, {25, 99}} {
		parsed, err := ParseTilePointer(p.String())
		is.NoErr(err)
		is.Equal(parsed, p)
	}
}

func TestTilePointerTextForm(t *testing.T) {
	is := is.New(t)
	is.Equal(NewTilePointer(7, 7).String(), "h8")
	is.Equal(NewTilePointer(0, 0).String(), "a1")
}

func TestParseTilePointerRejectsGarbage(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"", "8h", "h0", "H8", "hh"} {
		_, err := ParseTilePointer(s)
		is.True(err != nil)
	}
}
