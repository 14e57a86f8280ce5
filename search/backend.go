package search

import (
	"context"

	"github.com/copperhead-games/gomoku-engine/board"
)

// Backend expands one node's children, returning the computed Stats. It
// is the seam between the default in-process goroutine pool and
// alternative fan-out strategies, such as the AWS Lambda backend in
// package cloud.
type Backend interface {
	Expand(ctx context.Context, n *Node, b *board.Board) (Stats, error)
}

// localBackend is the default Backend: it delegates straight back to
// Node's own goroutine-pool expansion.
type localBackend struct{}

// Local is the default, in-process Backend.
var Local Backend = localBackend{}

func (localBackend) Expand(ctx context.Context, n *Node, b *board.Board) (Stats, error) {
	dl := newDeadline()
	return n.expand(ctx, b, dl, DefaultThreads()), nil
}
