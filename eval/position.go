package eval

import (
	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/player"
)

// Evaluate sums line evaluations over every line of the board's line
// index.
func Evaluate(b *board.Board) Eval {
	lines := b.Sequences().All()
	var total Eval
	for _, line := range lines {
		total = total.Add(EvaluateLine(b, line))
	}
	return total
}

// EvaluateFor reduces a full evaluation to one player's perspective.
func EvaluateFor(b *board.Board, p player.Player) (int32, player.State) {
	return Evaluate(b).ForPlayer(p)
}

// EvaluateSequencesRelevantTo sums only the four lines touching (x, y).
// This is the hot path during child generation: a single move can only
// change shapes on those four lines.
func EvaluateSequencesRelevantTo(b *board.Board, x, y int) Eval {
	lines := b.Sequences().Relevant(x, y)
	var total Eval
	for _, line := range lines {
		total = total.Add(EvaluateLine(b, line))
	}
	return total
}
