package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/eval"
	"github.com/copperhead-games/gomoku-engine/player"
)

// Node is one node of the search forest. A node owns its children;
// dropping the slice drops the whole subtree, since nothing else holds
// a reference to them.
type Node struct {
	Tile           board.TilePointer
	Player         player.Player
	Depth          int
	State          player.State
	Valid          bool
	Score          int32
	FirstScore     int32
	FirstScoreSqrt int32
	Children       []*Node
}

// NewNode builds a fresh, uninitialized node for the given move.
func NewNode(tile board.TilePointer, p player.Player) *Node {
	return &Node{Tile: tile, Player: p, Depth: 0, State: player.NotEnd, Valid: true}
}

// signedSqrt is sign(n) * floor(sqrt(|n|)), used to damp the first
// static score into a term that grows sublinearly.
func signedSqrt(n int32) int32 {
	if n == 0 {
		return 0
	}
	abs := n
	sign := int32(1)
	if abs < 0 {
		abs = -abs
		sign = -1
	}
	return sign * int32(math.Sqrt(float64(abs)))
}

// Initialize computes the depth-1 static score of a node from the four
// lines its tile touches: the signed delta between the position after
// the move and before it, taken from the mover's own perspective (a
// larger score is better for the mover, as Less and the driver assume),
// minus 20 times the squared distance from the board's center, which
// favors moves near the board's middle. It is a contract violation for
// both players to show a win from the same move.
func (n *Node) Initialize(before, after eval.Eval, mover player.Player, squaredDistFromCenter float64) {
	beforeScore, _ := before.ForPlayer(mover)
	afterScore, _ := after.ForPlayer(mover)
	delta := afterScore - beforeScore

	n.Score = delta - int32(20*squaredDistFromCenter)
	n.FirstScore = n.Score
	n.FirstScoreSqrt = signedSqrt(n.FirstScore)

	moverWins := after.Win.For(mover)
	opponentWins := after.Win.For(mover.Opponent())
	if moverWins && opponentWins {
		panic(fmt.Sprintf("search: move %v shows both players winning", n.Tile))
	}
	switch {
	case moverWins:
		n.State = player.Win
	case opponentWins:
		n.State = player.Lose
	default:
		n.State = player.NotEnd
	}
	n.Depth = 1
	n.Valid = true
}

// budget is the depth-indexed cap on how many children survive a
// generation's pruning.
func budget(depth, childCount int) int {
	switch {
	case depth == 2:
		if childCount/2 > 24 {
			return childCount / 2
		}
		return 24
	case depth == 3:
		return 16
	case depth >= 4 && depth <= 7:
		return 8
	case depth == 8:
		return 4
	default:
		return 2
	}
}

// Less implements the Node ordering used by every sort in the search: a
// Win-stated node beats any non-Win node; otherwise score decides.
func Less(a, b *Node) bool {
	aWin, bWin := a.State == player.Win, b.State == player.Win
	if aWin != bWin {
		return aWin
	}
	return a.Score > b.Score
}

// ComputeNext advances a node by one deepening generation: the first
// call (depth 1 -> 2) builds and initializes its children; every call
// after that deepens the existing children by one more generation and
// re-evaluates. It polls the deadline before doing any work; on a raised
// deadline it marks the node invalid and returns a zero Stats. threads
// caps how many of this node's children run concurrently, the same pool
// size the caller fixed via Driver.SetThreadCount; 0 or negative means
// unbounded.
func (n *Node) ComputeNext(ctx context.Context, b *board.Board, dl *deadline, threads int) Stats {
	if dl.Raised() {
		n.Valid = false
		return Stats{}
	}
	if n.Depth <= 1 {
		return n.expand(ctx, b, dl, threads)
	}
	n.Depth++

	childBoard := b.Clone()
	childBoard.SetTile(n.Tile, board.TileOf(n.Player))

	var (
		g     errgroup.Group
		stats = make([]Stats, len(n.Children))
	)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, c := range n.Children {
		i, c := i, c
		g.Go(func() error {
			stats[i] = c.ComputeNext(ctx, childBoard, dl, threads)
			return nil
		})
	}
	_ = g.Wait()

	n.evaluateChildren()
	return Sum(stats)
}

// expand places this node's tile on a clone of b, builds one child per
// remaining empty cell, and initializes each child's depth-1 score. A
// node whose own move already decided the game (Initialize found a
// winning or losing shape) has nothing left to search: it is left
// childless and its terminal state untouched.
func (n *Node) expand(ctx context.Context, b *board.Board, dl *deadline, threads int) Stats {
	if dl.Raised() {
		n.Valid = false
		return Stats{}
	}
	if n.State != player.NotEnd {
		n.Depth = 2
		n.Children = nil
		return Stats{}
	}
	after := b.Clone()
	after.SetTile(n.Tile, board.TileOf(n.Player))

	empties := after.EmptyTiles()
	n.Children = make([]*Node, len(empties))
	responder := n.Player.Opponent()

	var g errgroup.Group
	if threads > 0 {
		g.SetLimit(threads)
	}
	stats := make([]Stats, len(empties))
	for i, ep := range empties {
		i, ep := i, ep
		g.Go(func() error {
			before := eval.EvaluateSequencesRelevantTo(after, ep.X, ep.Y)
			placed := after.Clone()
			placed.SetTile(ep, board.TileOf(responder))
			post := eval.EvaluateSequencesRelevantTo(placed, ep.X, ep.Y)

			child := NewNode(ep, responder)
			child.Initialize(before, post, responder, after.SquaredDistanceFromCenter(ep.X, ep.Y))
			n.Children[i] = child
			stats[i] = Stats{NodesEvaluated: 1}
			return nil
		})
	}
	_ = g.Wait()

	n.Depth = 2
	n.evaluateChildren()
	return Sum(stats)
}

// evaluateChildren implements the parent-side half of a generation: if
// any child went invalid, so does the parent. Otherwise it sorts, caps
// the child list to the depth's budget, derives this node's state and
// score from the best surviving child, and either drops the child list
// (the node is now terminal) or keeps only the still-live children.
func (n *Node) evaluateChildren() {
	for _, c := range n.Children {
		if !c.Valid {
			n.Valid = false
			return
		}
	}
	if len(n.Children) == 0 {
		return
	}

	sort.SliceStable(n.Children, func(i, j int) bool {
		return Less(n.Children[i], n.Children[j])
	})

	b := budget(n.Depth, len(n.Children))
	if b < len(n.Children) {
		n.Children = n.Children[:b]
	}

	best := n.Children[0]
	n.State = best.State.Inversed()
	n.Score = n.FirstScoreSqrt - best.Score/2

	if n.State != player.NotEnd {
		n.Children = nil
		return
	}

	live := n.Children[:0]
	for _, c := range n.Children {
		if c.State == player.NotEnd {
			live = append(live, c)
		}
	}
	n.Children = live
}
