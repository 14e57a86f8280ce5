package eval

import (
	"testing"

	"github.com/matryer/is"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/player"
)

func mustBoardFromRows(t *testing.T, rows []string) *board.Board {
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

func swapPlayers(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		swapped := make([]byte, len(row))
		for j, c := range []byte(row) {
			switch c {
			case 'x':
				swapped[j] = 'o'
			case 'o':
				swapped[j] = 'x'
			default:
				swapped[j] = c
			}
		}
		out[i] = string(swapped)
	}
	return out
}

func TestEvalSymmetry(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"--xxoo---",
		"---------",
		"---------",
		"---------",
		"---------",
	}

	b := mustBoardFromRows(t, rows)
	swapped := mustBoardFromRows(t, swapPlayers(rows))

	for _, p := range []player.Player{player.X, player.O} {
		scoreBefore, _ := EvaluateFor(b, p)
		scoreAfter, _ := EvaluateFor(swapped, p)
		is.Equal(scoreAfter, -scoreBefore)
	}
}

func TestOpenThreeBeatsClosedThree(t *testing.T) {
	is := is.New(t)
	open := mustBoardFromRows(t, []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"---xxx---",
		"---------",
		"---------",
		"---------",
		"---------",
	})
	closed := mustBoardFromRows(t, []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"oxxx-----",
		"---------",
		"---------",
		"---------",
		"---------",
	})

	openScore, _ := EvaluateFor(open, player.X)
	closedScore, _ := EvaluateFor(closed, player.X)
	is.True(openScore > closedScore)
}

func TestEvaluateSequencesRelevantToMatchesFullEvalForIsolatedShape(t *testing.T) {
	is := is.New(t)
	b := mustBoardFromRows(t, []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"---xxx---",
		"---------",
		"---------",
		"---------",
		"---------",
	})

	full := Evaluate(b)
	relevant := EvaluateSequencesRelevantTo(b, 4, 4)
	// The middle cell of an isolated horizontal run participates in its
	// row (which carries the whole shape) plus three lines that see
	// only this cell. A lone stone scores nothing on those three lines
	// and every other line of the board is empty, so the four relevant
	// lines account for the whole evaluation.
	is.Equal(relevant, full)
}
