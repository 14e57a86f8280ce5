package player_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/copperhead-games/gomoku-engine/player"
)

func TestOpponentInvolution(t *testing.T) {
	is := is.New(t)
	is.Equal(player.X.Opponent(), player.O)
	is.Equal(player.O.Opponent(), player.X)
	is.Equal(player.X.Opponent().Opponent(), player.X)
}

func TestCharRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, p := range []player.Player{player.X, player.O} {
		parsed, ok := player.FromChar(p.Char())
		is.True(ok)
		is.Equal(parsed, p)
	}
}

func TestFromCharRejectsGarbage(t *testing.T) {
	is := is.New(t)
	_, ok := player.FromChar('z')
	is.True(!ok)
}

func TestStateInversion(t *testing.T) {
	is := is.New(t)
	is.Equal(player.Win.Inversed(), player.Lose)
	is.Equal(player.Lose.Inversed(), player.Win)
	is.Equal(player.NotEnd.Inversed(), player.NotEnd)
	is.Equal(player.Draw.Inversed(), player.Draw)
}

func TestStateIsEnd(t *testing.T) {
	is := is.New(t)
	is.True(!player.NotEnd.IsEnd())
	is.True(player.Win.IsEnd())
	is.True(player.Lose.IsEnd())
	is.True(player.Draw.IsEnd())
	is.True(player.Win.IsWin())
	is.True(!player.Lose.IsWin())
}
