package eval

import (
	"github.com/copperhead-games/gomoku-engine/board"
	"github.com/copperhead-games/gomoku-engine/player"
)

// EvaluateLine walks one line of the board left to right and returns the
// Eval contributed by every run it contains. It never mutates the
// board.
func EvaluateLine(b *board.Board, line []int) Eval {
	var total Eval

	var (
		current  player.Player
		hasCur   bool
		run      uint8
		openEnds uint8
		hasHole  bool
	)

	close := func() {
		if run == 0 {
			return
		}
		score, isWin := ShapeScore(run, openEnds, hasHole)
		s := Score{}
		w := Win{}
		switch current {
		case player.X:
			s.X = score
			w.X = isWin
		case player.O:
			s.O = score
			w.O = isWin
		}
		total = total.Add(Eval{Score: s, Win: w})
	}

	for idx, cell := range line {
		owner, occupied := b.AtIndex(cell).Player()

		switch {
		case occupied && hasCur && owner == current && run > 0:
			run++

		case occupied && run > 0 && owner != current:
			close()
			current = owner
			hasCur = true
			run = 1
			openEnds = 0
			hasHole = false

		case occupied && run == 0:
			// openEnds is left untouched here: a preceding empty cell (or
			// the line's own edge) already set it, and a run beginning on
			// an occupied cell must carry that open end forward rather
			// than wipe it.
			current = owner
			hasCur = true
			run = 1
			hasHole = false

		case !occupied && run == 0:
			openEnds = 1
			hasHole = false

		case !occupied && run > 0:
			nextOccupiedBySame := false
			if !hasHole && run < 5 && idx+1 < len(line) {
				if nextOwner, nextOk := b.AtIndex(line[idx+1]).Player(); nextOk && hasCur && nextOwner == current {
					nextOccupiedBySame = true
				}
			}
			if nextOccupiedBySame {
				run++
				hasHole = true
			} else {
				openEnds++
				close()
				run = 0
				openEnds = 1
				hasHole = false
			}
		}
	}
	close()

	return total
}
