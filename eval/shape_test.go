package eval

import (
	"testing"

	"github.com/matryer/is"
)

type shapeCall struct {
	run      uint8
	openEnds uint8
	hasHole  bool
}

func TestMonotoneShapeOrdering(t *testing.T) {
	is := is.New(t)

	calls := []shapeCall{
		{0, 0, false}, {1, 0, false}, {2, 0, false}, {3, 0, false},
		{3, 0, true}, {0, 2, false}, {1, 2, false}, {4, 1, true},
		{2, 2, false}, {3, 1, false}, {4, 2, true}, {5, 1, true},
		{5, 2, true}, {4, 1, false}, {3, 2, false}, {4, 2, false},
		{5, 0, false}, {5, 1, false}, {5, 2, false}, {6, 2, false},
		{10, 2, false},
	}

	var prev int32 = -1
	for i, c := range calls {
		score, _ := ShapeScore(c.run, c.openEnds, c.hasHole)
		is.True(score >= prev)
		prev = score
		_ = i
	}
}

func TestWinOnlyForRunAtLeastFiveWithoutHole(t *testing.T) {
	is := is.New(t)
	for run := uint8(0); run < 12; run++ {
		for _, oe := range []uint8{0, 1, 2} {
			score, isWin := ShapeScore(run, oe, false)
			is.Equal(isWin, run >= 5)
			if run >= 5 {
				is.Equal(score, WinScore)
			}
		}
	}
}

func TestHoleShapesNeverWin(t *testing.T) {
	is := is.New(t)
	for run := uint8(0); run < 12; run++ {
		for _, oe := range []uint8{0, 1, 2} {
			_, isWin := ShapeScore(run, oe, true)
			is.True(!isWin)
		}
	}
}
