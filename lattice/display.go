package lattice

import (
	"math"
	"strconv"
	"strings"
)

// Connector glyphs used by String.
const (
	glyphRight     = '-'
	glyphDown      = '|'
	glyphDownRight = '\\'
	glyphDownLeft  = '/'
	glyphCross     = 'x'
)

// String renders the lattice as a fixed-width ASCII grid for logs and tests.
//
// The first line holds column headers; every grid row is followed by a
// connector line. Each cell shows its row-major index in parentheses, and
// edges between present neighbours are drawn as '-' (right), '|' (down),
// '\' (down-right), '/' (down-left) and 'x' where both diagonals cross.
//
//	   0   1   2
//	0 (0)-(1)-(2)
//	   | x | x |
//	1 (3)-(4)-(5)
//
// The output starts with a newline so it lines up when appended to a message.
func (l *Lattice2D) String() string {
	if l.Size() == 0 {
		return "\n"
	}
	indexDigits := len(strconv.Itoa(l.Size()))
	rowDigits := len(strconv.Itoa(l.rows))
	indexMid := int(math.Round(float64(indexDigits) / 2))
	cellWidth := indexDigits + 3
	lineWidth := rowDigits + l.columns*cellWidth + 1
	lines := l.rows * 2

	buf := []byte(strings.Repeat(" ", lines*lineWidth))
	for line := 1; line <= lines; line++ {
		buf[line*lineWidth-1] = '\n'
	}
	// centred writes s into the indexDigits-wide field starting at base.
	centred := func(base int, s string) {
		copy(buf[base+(indexDigits-len(s))/2:], s)
	}

	// Column headers.
	for col := 0; col < l.columns; col++ {
		centred(rowDigits+2+col*cellWidth, strconv.Itoa(col))
	}

	// Row headers, right aligned.
	for row := 0; row < l.rows; row++ {
		s := strconv.Itoa(row)
		copy(buf[lineWidth+2*row*lineWidth+rowDigits-len(s):], s)
	}

	// Cells and connectors.
	start := lineWidth + rowDigits + 2
	for index := 0; index < l.Size(); index++ {
		v := l.ToVertexCoords(index)
		offset := start + 2*v.Row*lineWidth + v.Col*cellWidth
		centred(offset, strconv.Itoa(index))
		buf[offset-1] = '('
		buf[offset+indexDigits] = ')'

		for _, n := range l.Neighbours(v) {
			switch {
			case n.Col > v.Col && n.Row == v.Row:
				buf[offset+indexDigits+1] = glyphRight
			case n.Row > v.Row && n.Col == v.Col:
				buf[offset+lineWidth+indexMid-1] = glyphDown
			case n.Col > v.Col && n.Row > v.Row:
				buf[offset+lineWidth+indexDigits+1] = glyphDownRight
			case n.Col < v.Col && n.Row > v.Row:
				pos := offset + lineWidth - 2
				if buf[pos] == glyphDownRight {
					buf[pos] = glyphCross
				} else {
					buf[pos] = glyphDownLeft
				}
			}
		}
	}

	return "\n" + string(buf)
}
