package board

import (
	"fmt"
	"regexp"
	"strconv"
)

// TilePointer addresses a single cell by its zero-based (x, y)
// coordinates. Its text form is the one-letter column name followed by
// the one-based row number, e.g. "h8".
type TilePointer struct {
	X, Y int
}

var rePointer = regexp.MustCompile(`^([a-z])([0-9]+)$`)

// NewTilePointer builds a TilePointer, panicking if the coordinates are
// negative. Range against a particular board size is the caller's
// responsibility; TilePointer itself carries no size.
func NewTilePointer(x, y int) TilePointer {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("board: invalid tile pointer (%d, %d)", x, y))
	}
	return TilePointer{X: x, Y: y}
}

// String renders the pointer the way user-facing move text does.
func (t TilePointer) String() string {
	return fmt.Sprintf("%c%d", 'a'+t.X, t.Y+1)
}

// ParseTilePointer parses a pointer in the "<letter><row>" form. It
// accepts any letter a-z as a column name, not just those within a
// particular board's width; range-checking against a board happens at
// the call site.
func ParseTilePointer(s string) (TilePointer, error) {
	m := rePointer.FindStringSubmatch(s)
	if m == nil {
		return TilePointer{}, fmt.Errorf("board: invalid tile pointer %q", s)
	}
	x := int(m[1][0] - 'a')
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return TilePointer{}, fmt.Errorf("board: invalid tile pointer %q", s)
	}
	return TilePointer{X: x, Y: row - 1}, nil
}
