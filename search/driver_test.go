package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/eval"
	"github.com/copperhead-games/gomoku-engine/player"
)

func TestDecideRejectsFullBoard(t *testing.T) {
	is := is.New(t)
	rows := make([]string, 9)
	for y := range rows {
		rows[y] = "xoxoxoxox"
	}
	b := boardFromRows(t, rows)

	d := NewDriver()
	_, _, err := d.Decide(context.Background(), b, player.X, 50*time.Millisecond)
	is.True(errors.Is(err, board.ErrNoEmptyTiles))
}

func TestDecideRejectsAlreadyWonPosition(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"---------",
		"---------",
		"---------",
		"---------",
		"ooooo----",
		"---------",
		"---------",
		"---------",
		"---------",
	}
	b := boardFromRows(t, rows)

	d := NewDriver()
	_, _, err := d.Decide(context.Background(), b, player.X, 50*time.Millisecond)
	is.True(errors.Is(err, ErrGameEnd))
}

func TestDecidePlaysTheImmediateWin(t *testing.T) {
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

	d := NewDriver()
	is.NoErr(d.SetThreadCount(1))

	mv, _, err := d.Decide(context.Background(), b, player.X, 200*time.Millisecond)
	is.NoErr(err)

	// Either open end of the four completes five in a row; the engine
	// must pick one of the two, never anything else, since both are
	// Win-stated roots and Less sorts a Win-stated root ahead of every
	// other root.
	is.True(mv.Tile == board.NewTilePointer(0, 4) || mv.Tile == board.NewTilePointer(5, 4))

	_, state := eval.EvaluateFor(b, player.X)
	is.Equal(state, player.Win)
}

func TestSetThreadCountOnlyOnce(t *testing.T) {
	is := is.New(t)
	d := NewDriver()
	is.NoErr(d.SetThreadCount(2))
	err := d.SetThreadCount(4)
	is.True(errors.Is(err, ErrThreadCountAlreadySet))
}
