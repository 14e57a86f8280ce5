package board

import "fmt"

// ErrMisshapenBoard is returned by New/FromString when the requested
// board does not satisfy the size and shape invariants: N >= 9, square,
// every row the same width as the declared height.
type ErrMisshapenBoard struct {
	Size  int
	Line  int
	Width int
}

func (e *ErrMisshapenBoard) Error() string {
	return fmt.Sprintf("board: misshapen board (size=%d, line=%d, width=%d)", e.Size, e.Line, e.Width)
}

// ErrNoEmptyTiles is returned by callers that need at least one empty
// tile to proceed (the search driver's decide operation) when the board
// is full.
var ErrNoEmptyTiles = fmt.Errorf("board: no empty tiles")
