package search

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/eval"
	"github.com/copperhead-games/gomoku-engine/player"
)

func boardFromRows(t *testing.T, rows []string) *board.Board {
	t.Helper()
	grid := make([][]board.Tile, len(rows))
	for y, row := range rows {
		line := make([]board.Tile, len(row))
		for x, c := range []byte(row) {
			switch c {
			case 'x':
				line[x] = board.TileOf(player.X)
			case 'o':
				line[x] = board.TileOf(player.O)
			default:
				line[x] = board.Empty
			}
		}
		grid[y] = line
	}
	b, err := board.New(grid)
	if err != nil {
		t.Fatalf("building board: %v", err)
	}
	return b
}

func TestNodeInitializeDetectsImmediateWin(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"-xxxx----",
		"---------",
		"---------",
		"---------",
		"---------",
	}
	b := boardFromRows(t, rows)
	tile := board.NewTilePointer(5, 4) // the open end completing five in a row

	before := eval.EvaluateSequencesRelevantTo(b, tile.X, tile.Y)
	placed := b.Clone()
	placed.SetTile(tile, board.TileOf(player.X))
	after := eval.EvaluateSequencesRelevantTo(placed, tile.X, tile.Y)

	n := NewNode(tile, player.X)
	n.Initialize(before, after, player.X, b.SquaredDistanceFromCenter(tile.X, tile.Y))

	is.Equal(n.State, player.Win)
	is.Equal(n.Depth, 1)
}

func TestNodeInitializeRejectsDoubleWinContractViolation(t *testing.T) {
	// A hand-built Eval with both players winning is a contract
	// violation that Initialize must catch rather than silently accept.
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for a both-players-win Eval")
		}
	}()
	after := eval.Eval{Win: eval.Win{X: true, O: true}}
	n := NewNode(board.NewTilePointer(0, 0), player.X)
	n.Initialize(eval.Eval{}, after, player.X, 0)
}

func TestExpandSkipsAlreadyTerminalNode(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"-xxxx----",
		"---------",
		"---------",
		"---------",
		"---------",
	}
	b := boardFromRows(t, rows)
	tile := board.NewTilePointer(5, 4)

	before := eval.EvaluateSequencesRelevantTo(b, tile.X, tile.Y)
	placed := b.Clone()
	placed.SetTile(tile, board.TileOf(player.X))
	after := eval.EvaluateSequencesRelevantTo(placed, tile.X, tile.Y)

	n := NewNode(tile, player.X)
	n.Initialize(before, after, player.X, b.SquaredDistanceFromCenter(tile.X, tile.Y))
	is.Equal(n.State, player.Win)

	dl := newDeadline()
	stats := n.ComputeNext(context.Background(), b, dl, 1)

	// A node that already decided the game at Initialize time has
	// nothing left to search: its terminal state must survive the
	// depth-1 -> depth-2 transition untouched, and no children appear.
	is.Equal(n.State, player.Win)
	is.Equal(len(n.Children), 0)
	is.Equal(stats.NodesEvaluated, uint64(0))
}

func TestBudgetScheduleMatchesDepthTable(t *testing.T) {
	is := is.New(t)
	is.Equal(budget(2, 10), 24)
	is.Equal(budget(2, 60), 30)
	is.Equal(budget(3, 100), 16)
	is.Equal(budget(4, 100), 8)
	is.Equal(budget(7, 100), 8)
	is.Equal(budget(8, 100), 4)
	is.Equal(budget(9, 100), 2)
	is.Equal(budget(20, 100), 2)
}

func TestLessOrdersWinAboveScore(t *testing.T) {
	is := is.New(t)
	winner := &Node{State: player.Win, Score: -1000}
	loser := &Node{State: player.NotEnd, Score: 1_000_000}
	is.True(Less(winner, loser))
	is.True(!Less(loser, winner))
}

func TestSignedSqrtPreservesSign(t *testing.T) {
	is := is.New(t)
	is.Equal(signedSqrt(0), int32(0))
	is.Equal(signedSqrt(16), int32(4))
	is.Equal(signedSqrt(-16), int32(-4))
	is.Equal(signedSqrt(15), int32(3))
}
