// Package eval implements the shape scorer, the line evaluator, and the
// position evaluator used by the search driver to judge a board.
package eval

import "github.com/copperhead-games/gomoku-engine/player"

// Score holds each player's accumulated shape score.
type Score struct {
	X, O int32
}

// Add combines two scores componentwise. Score forms a commutative
// monoid under Add with the zero value as identity.
func (s Score) Add(o Score) Score {
	return Score{X: s.X + o.X, O: s.O + o.O}
}

// For returns the score belonging to p.
func (s Score) For(p player.Player) int32 {
	if p == player.X {
		return s.X
	}
	return s.O
}

// Win holds each player's accumulated win flag.
type Win struct {
	X, O bool
}

// Add ORs two win records componentwise. Win forms a commutative monoid
// under Add with the zero value as identity.
func (w Win) Add(o Win) Win {
	return Win{X: w.X || o.X, O: w.O || o.O}
}

// For returns the win flag belonging to p.
func (w Win) For(p player.Player) bool {
	if p == player.X {
		return w.X
	}
	return w.O
}

// Eval is the full per-player evaluation of a position or a sum of
// lines: a score and a win flag for each player. Eval is a commutative
// monoid under Add with identity Eval{}.
type Eval struct {
	Score Score
	Win   Win
}

// Add sums two evaluations.
func (e Eval) Add(o Eval) Eval {
	return Eval{Score: e.Score.Add(o.Score), Win: e.Win.Add(o.Win)}
}

// Sum reduces a slice of evaluations to their total via Add.
func Sum(evals []Eval) Eval {
	var total Eval
	for _, e := range evals {
		total = total.Add(e)
	}
	return total
}

// ForPlayer reduces a full-position Eval to one player's perspective: a
// signed score (this player's shapes minus the opponent's) and a
// terminal state.
func (e Eval) ForPlayer(p player.Player) (int32, player.State) {
	score := e.Score.For(p) - e.Score.For(p.Opponent())
	if e.Win.For(p) {
		return score, player.Win
	}
	return score, player.NotEnd
}
