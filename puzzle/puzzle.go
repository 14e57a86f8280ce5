// Package puzzle extracts tactical puzzles from a recorded sequence of
// moves: positions where one candidate reply stands well clear of every
// other, the way the reference engine mined its own game history for
// positions with a single standout equity gap.
package puzzle

import (
	"sort"

	"github.com/samber/lo"

	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/eval"
	"github.com/copperhead-games/gomoku-engine/player"
)

// MarginThreshold is how far clear the best candidate must be of the
// second-best before a position counts as a puzzle.
const MarginThreshold int32 = 1_000_000

// Puzzle is one extracted position: the board at that point, whose turn
// it is, and the standout answer.
type Puzzle struct {
	TurnNumber int
	Board      string
	Player     player.Player
	Answer     board.TilePointer
	Margin     int32
}

// Move is one step of a recorded game: a tile placed by a player.
type Move struct {
	Tile   board.TilePointer
	Player player.Player
}

// FromGame replays a sequence of moves starting from an empty board of
// the given size and collects every position where the best immediate
// reply clears the runner-up by more than MarginThreshold.
func FromGame(size int, moves []Move) ([]Puzzle, error) {
	b, err := board.NewEmpty(size)
	if err != nil {
		return nil, err
	}

	var puzzles []Puzzle
	for i, m := range moves {
		best, second, ok := topTwoCandidates(b, m.Player)
		if ok {
			margin := best.score - second.score
			if margin > MarginThreshold {
				puzzles = append(puzzles, Puzzle{
					TurnNumber: i,
					Board:      b.String(),
					Player:     m.Player,
					Answer:     best.tile,
					Margin:     margin,
				})
			}
		}
		b.SetTile(m.Tile, board.TileOf(m.Player))
	}
	return puzzles, nil
}

// StrongestFirst filters puzzles down to those clearing minMargin and
// sorts the survivors by descending margin, for a caller that wants only
// the sharpest positions from a large batch of extracted puzzles.
func StrongestFirst(puzzles []Puzzle, minMargin int32) []Puzzle {
	strong := lo.Filter(puzzles, func(p Puzzle, _ int) bool {
		return p.Margin >= minMargin
	})
	sort.Slice(strong, func(i, j int) bool {
		return strong[i].Margin > strong[j].Margin
	})
	return strong
}

type candidate struct {
	tile  board.TilePointer
	score int32
}

// topTwoCandidates ranks every empty cell by its depth-1 heuristic score
// for p and returns the best two. This mirrors the search driver's own
// root initialization, without the iterative-deepening pass, since a
// puzzle only needs to know that one reply stands out, not how deep it
// was searched.
func topTwoCandidates(b *board.Board, p player.Player) (best, second candidate, ok bool) {
	empties := b.EmptyTiles()
	if len(empties) < 2 {
		return candidate{}, candidate{}, false
	}

	best.score = int32(-1) << 31
	second.score = int32(-1) << 31

	for _, t := range empties {
		before := eval.EvaluateSequencesRelevantTo(b, t.X, t.Y)
		placed := b.Clone()
		placed.SetTile(t, board.TileOf(p))
		after := eval.EvaluateSequencesRelevantTo(placed, t.X, t.Y)

		beforeScore, _ := before.ForPlayer(p)
		afterScore, _ := after.ForPlayer(p)
		score := afterScore - beforeScore

		c := candidate{tile: t, score: score}
		switch {
		case c.score > best.score:
			second = best
			best = c
		case c.score > second.score:
			second = c
		}
	}
	return best, second, true
}
