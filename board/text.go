package board

import (
	"fmt"
	"strconv"
	"strings"
)

// columnWidth is the field width used to right-pad row numbers so that
// they line up under the header letters.
func columnWidth(n int) int {
	if n >= 10 {
		return 2
	}
	return 1
}

// String renders the board in the text format used for both display and
// round-tripping through FromString: a header line of column letters,
// then one row per line with its 1-based row number right-padded to the
// header's column width.
func (b *Board) String() string {
	w := columnWidth(b.size)
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", w))
	for x := 0; x < b.size; x++ {
		sb.WriteByte(byte('a' + x))
	}

	for y := 0; y < b.size; y++ {
		sb.WriteByte('\n')
		rowNum := strconv.Itoa(y + 1)
		sb.WriteString(rowNum)
		sb.WriteString(strings.Repeat(" ", w-len(rowNum)))
		for x := 0; x < b.size; x++ {
			sb.WriteByte(b.At(x, y).Char())
		}
	}
	return sb.String()
}

// FromString parses the text format produced by String. It is strict:
// every row must carry the row number the header's width implies, and
// every cell must be one of 'x', 'o', '-'.
func FromString(s string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) < 1 {
		return nil, &ErrMisshapenBoard{Size: 0, Line: 0, Width: 0}
	}
	n := len(lines) - 1
	if n < MinSize {
		return nil, &ErrMisshapenBoard{Size: n, Line: 0, Width: n}
	}
	w := columnWidth(n)

	rows := make([][]Tile, n)
	for y := 0; y < n; y++ {
		line := lines[y+1]
		if len(line) != w+n {
			return nil, &ErrMisshapenBoard{Size: n, Line: y + 1, Width: len(line) - w}
		}
		if got := strings.TrimRight(line[:w], " "); got != strconv.Itoa(y+1) {
			return nil, fmt.Errorf("board: row %d carries row number %q", y+1, got)
		}
		row := make([]Tile, n)
		for x := 0; x < n; x++ {
			switch c := line[w+x]; c {
			case 'x', 'X':
				row[x] = TileOf(0)
			case 'o', 'O':
				row[x] = TileOf(1)
			case '-':
				row[x] = Empty
			default:
				return nil, fmt.Errorf("board: invalid cell character %q at row %d, col %d", c, y+1, x)
			}
		}
		rows[y] = row
	}
	return New(rows)
}
