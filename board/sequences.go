package board

import (
	"fmt"
	"sync"
)

// Sequences is the process-wide line index: every row, column, and
// diagonal of a board of a given size, expressed as lists of flat cell
// indices. It is computed once per process, the first time a board of a
// given size is constructed, and never rebuilt afterward. A second
// construction at a different size is a contract violation, not a
// recoverable error, the same way macondo's board layouts are loaded
// once at init and never swapped mid-process.
type Sequences struct {
	size  int
	lines [][]int
}

var (
	sequencesOnce sync.Once
	sequences     *Sequences
)

// sequencesFor returns the process-wide line index for size n, building
// it on the first call. Every subsequent call must agree on n.
func sequencesFor(n int) *Sequences {
	sequencesOnce.Do(func() {
		sequences = buildSequences(n)
	})
	if sequences.size != n {
		panic(fmt.Sprintf("board: line index already initialized for size %d, cannot reinitialize for %d", sequences.size, n))
	}
	return sequences
}

// buildSequences lays out the 6N-2 lines in the order rows, columns,
// anti-diagonals, main diagonals. Anti-diagonals are grouped by constant
// x+y (the single-cell top-left corner is x+y=0, the single-cell
// bottom-right corner is x+y=2N-2); main diagonals are grouped by
// constant y-x, running from the single top-right corner to the single
// bottom-left corner. This produces, by construction, exactly the
// closed-form addressing promised for a cell (x,y): its row is lines[y],
// its column is lines[N+x], one diagonal is lines[2N+x+y], the other is
// lines[(5N-2)+y-x].
func buildSequences(n int) *Sequences {
	lines := make([][]int, 0, 6*n-2)

	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = y*n + x
		}
		lines = append(lines, row)
	}

	for x := 0; x < n; x++ {
		col := make([]int, n)
		for y := 0; y < n; y++ {
			col[y] = y*n + x
		}
		lines = append(lines, col)
	}

	for s := 0; s <= 2*n-2; s++ {
		lo := 0
		if s-(n-1) > 0 {
			lo = s - (n - 1)
		}
		hi := n - 1
		if s < hi {
			hi = s
		}
		line := make([]int, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			y := s - x
			line = append(line, y*n+x)
		}
		lines = append(lines, line)
	}

	for d := -(n - 1); d <= n-1; d++ {
		lo := 0
		if -d > 0 {
			lo = -d
		}
		hi := n - 1
		if n-1-d < hi {
			hi = n - 1 - d
		}
		line := make([]int, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			y := x + d
			line = append(line, y*n+x)
		}
		lines = append(lines, line)
	}

	return &Sequences{size: n, lines: lines}
}

// All returns every line in the fixed order described by buildSequences.
func (s *Sequences) All() [][]int {
	return s.lines
}

// Line returns the line at the given index into the flattened table.
func (s *Sequences) Line(i int) []int {
	return s.lines[i]
}

// Len returns 6N-2, the total number of lines.
func (s *Sequences) Len() int {
	return len(s.lines)
}

// RelevantIndices returns the four line-index positions of the lines
// passing through (x, y): row, column, and both diagonals.
func (s *Sequences) RelevantIndices(x, y int) [4]int {
	n := s.size
	return [4]int{y, n + x, 2*n + x + y, (5*n - 2) + y - x}
}

// Relevant returns the four lines passing through (x, y).
func (s *Sequences) Relevant(x, y int) [4][]int {
	idx := s.RelevantIndices(x, y)
	return [4][]int{s.lines[idx[0]], s.lines[idx[1]], s.lines[idx[2]], s.lines[idx[3]]}
}
