package game

import (
	"fmt"
	"math"
	"strings"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31;1m"
	ansiBlue  = "\x1b[34;1m"
	ansiReset = "\x1b[0m"
)

// String renders the board in the same format ParseBoard reads, so a board
// survives a render/parse round trip.
func (b Board) String() string {
	return b.render(false)
}

// ColorString renders the board with ANSI colors: green empty cells, red Min
// stacks and blue Max stacks.
func (b Board) ColorString() string {
	return b.render(true)
}

func (b Board) render(colored bool) string {
	numRows := b.NumRows()
	rows := make([]string, 0, numRows)

	for r := 0; r < numRows; r++ {
		var sb strings.Builder
		// Undo the parse shear: the last row gets no indentation, each row
		// above it two more spaces.
		sb.WriteString(strings.Repeat(" ", (numRows-1-r)*2))

		for q := 0; q < b.rowLength; q++ {
			t := b.At(Coord{r, q})
			switch {
			case !t.IsBoardTile():
				sb.WriteString("    ")
			case t.IsEmpty():
				if colored {
					sb.WriteString(ansiGreen + " 0  " + ansiReset)
				} else {
					sb.WriteString(" 0  ")
				}
			default:
				sign, color := "+", ansiBlue
				if t.Owner() == Min {
					sign, color = "-", ansiRed
				}
				cell := fmt.Sprintf("%s%-3d", sign, t.Size())
				if colored {
					sb.WriteString(color + cell + ansiReset)
				} else {
					sb.WriteString(cell)
				}
			}
		}
		rows = append(rows, sb.String())
	}

	// Strip the indentation shared by every row, a whole step at a time.
	begin := math.MaxInt
	for _, row := range rows {
		lead := len(row) - len(strings.TrimLeft(row, " "))
		begin = min(begin, lead)
	}
	begin = begin / 2 * 2

	for i, row := range rows {
		rows[i] = strings.TrimRight(row[begin:], " ")
	}
	return strings.Join(rows, "\n")
}
