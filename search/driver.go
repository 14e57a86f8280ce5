package search

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/eval"
	"github.com/copperhead-games/gomoku-engine/player"
)

// ErrGameEnd is returned by Decide when the position handed to it is
// already terminal for the player about to move.
var ErrGameEnd = errors.New("search: position is already game over")

// ErrThreadCountAlreadySet is returned by SetThreadCount once a
// non-default thread count has been committed.
var ErrThreadCountAlreadySet = errors.New("search: thread count already set")

// Move is the result of a successful Decide call.
type Move struct {
	Tile   board.TilePointer
	Player player.Player
	Score  int32
}

// Driver runs the iterative-deepening best-first search described for
// the engine's decide operation. A Driver is reusable across calls; its
// thread count may be fixed once via SetThreadCount.
type Driver struct {
	threads    int
	threadsSet bool
}

// NewDriver builds a Driver with the default thread count.
func NewDriver() *Driver {
	return &Driver{threads: DefaultThreads()}
}

// SetThreadCount fixes the worker count used by future Decide calls. It
// may only be called once per Driver.
func (d *Driver) SetThreadCount(n int) error {
	if d.threadsSet {
		return ErrThreadCountAlreadySet
	}
	d.threads = n
	d.threadsSet = true
	return nil
}

// Decide chooses a move for player on board within timeLimit,
// mutating board by placing the chosen tile. It returns the move and
// search statistics, or an error if the board has no empty tiles, is
// already a terminal position, or the decide precondition is otherwise
// violated.
func (d *Driver) Decide(ctx context.Context, b *board.Board, p player.Player, timeLimit time.Duration) (Move, Stats, error) {
	empties := b.EmptyTiles()
	if len(empties) == 0 {
		return Move{}, Stats{}, board.ErrNoEmptyTiles
	}

	if b.IsGameEnd(p.Opponent()) {
		return Move{}, Stats{}, ErrGameEnd
	}

	dl := newDeadline()
	stop := dl.arm(timeLimit)
	defer stop()

	roots := make([]*Node, len(empties))
	for i, t := range empties {
		roots[i] = NewNode(t, p)
		before := eval.EvaluateSequencesRelevantTo(b, t.X, t.Y)
		placed := b.Clone()
		placed.SetTile(t, board.TileOf(p))
		after := eval.EvaluateSequencesRelevantTo(placed, t.X, t.Y)
		roots[i].Initialize(before, after, p, b.SquaredDistanceFromCenter(t.X, t.Y))
	}

	var total Stats
	depth := 1
	for !dl.Raised() {
		snapshot := cloneRoots(roots)

		var g errgroup.Group
		if d.threads > 0 {
			g.SetLimit(d.threads)
		}
		genStats := make([]Stats, len(roots))
		for i, r := range roots {
			i, r := i, r
			g.Go(func() error {
				genStats[i] = r.ComputeNext(ctx, b, dl, d.threads)
				return nil
			})
		}
		_ = g.Wait()
		total = total.Add(Sum(genStats))
		depth++

		if anyInvalid(roots) {
			roots = snapshot
			depth--
			break
		}

		sortNodes(roots)

		if roots[0].State == player.Win {
			log.Debug().Int("depth", depth).Msg("search: winning move found")
			break
		}
		if allState(roots, player.Lose) {
			log.Debug().Int("depth", depth).Msg("search: all roots losing")
			break
		}
		if allState(roots, player.Draw) {
			log.Debug().Int("depth", depth).Msg("search: all roots drawing")
			break
		}

		roots = dropLosing(roots)
		if len(roots) <= 1 {
			break
		}

		keep := int(math.Floor(2 * math.Sqrt(float64(len(roots)))))
		if keep < 3 {
			keep = 3
		}
		if keep < len(roots) {
			roots = roots[:keep]
		}
	}

	sortNodes(roots)
	best := roots[0]
	b.SetTile(best.Tile, board.TileOf(p))

	log.Info().
		Str("tile", best.Tile.String()).
		Int32("score", best.Score).
		Int("depth", depth).
		Uint64("nodes", total.NodesEvaluated).
		Msg("search: decide complete")

	return Move{Tile: best.Tile, Player: p, Score: best.Score}, total, nil
}

func cloneRoots(roots []*Node) []*Node {
	out := make([]*Node, len(roots))
	for i, r := range roots {
		out[i] = cloneNode(r)
	}
	return out
}

func cloneNode(n *Node) *Node {
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = cloneNode(ch)
		}
	}
	return &c
}

func anyInvalid(roots []*Node) bool {
	for _, r := range roots {
		if !r.Valid {
			return true
		}
	}
	return false
}

func sortNodes(roots []*Node) {
	// insertion sort is plenty for the handful of roots left after a
	// few generations of pruning, and keeps the comparator identical to
	// the one used inside Node.evaluateChildren.
	for i := 1; i < len(roots); i++ {
		j := i
		for j > 0 && Less(roots[j], roots[j-1]) {
			roots[j], roots[j-1] = roots[j-1], roots[j]
			j--
		}
	}
}

func allState(roots []*Node, s player.State) bool {
	for _, r := range roots {
		if r.State != s {
			return false
		}
	}
	return true
}

func dropLosing(roots []*Node) []*Node {
	out := roots[:0]
	for _, r := range roots {
		if r.State != player.Lose {
			out = append(out, r)
		}
	}
	return out
}
