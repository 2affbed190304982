package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseBoard reads the textual hex grid format. Each tile is four characters
// wide: " 0" is an empty cell, "+N" and "-N" are Max and Min stacks of N
// sheep, and blank space is off the board. Every row is displayed two
// characters less indented than the one above it, which keeps the slanted
// column axis vertical on screen.
func ParseBoard(input string) (Board, error) {
	var rows []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Indenting row i by 2i squares the grid: column q then sits at the
		// same string offset in every row.
		rows = append(rows, strings.Repeat(" ", len(rows)*2)+strings.TrimRight(line, " \t\r"))
	}
	if len(rows) == 0 {
		return Board{}, errors.New("board is empty")
	}

	begin := math.MaxInt
	maxLen := 0
	for _, row := range rows {
		lead := len(row) - len(strings.TrimLeft(row, " "))
		begin = min(begin, lead)
		maxLen = max(maxLen, len(row))
	}
	// Round down to a whole indentation step so column parity is preserved.
	begin = begin / 2 * 2
	rowLength := (maxLen - begin + 3) / 4
	end := begin + rowLength*4

	tiles := make([]Tile, 0, rowLength*len(rows))
	for _, row := range rows {
		if len(row) < end {
			row += strings.Repeat(" ", end-len(row))
		}
		content := row[begin:end]
		for i := 0; i < len(content); i += 4 {
			tile, err := parseTile(strings.TrimRight(content[i:i+4], " "))
			if err != nil {
				return Board{}, err
			}
			tiles = append(tiles, tile)
		}
	}
	return Board{tiles: tiles, rowLength: rowLength}, nil
}

func parseTile(token string) (Tile, error) {
	switch {
	case token == "":
		return NoTile, nil
	case token == " 0":
		return Empty, nil
	case strings.HasPrefix(token, "+") || strings.HasPrefix(token, "-"):
		size, err := strconv.Atoi(token[1:])
		if err != nil {
			return 0, fmt.Errorf("invalid tile %q: %w", token, err)
		}
		if size < 1 || size > MaxStackSize {
			return 0, fmt.Errorf("invalid tile %q: stack size %d out of range", token, size)
		}
		owner := Max
		if token[0] == '-' {
			owner = Min
		}
		return NewStack(owner, size), nil
	default:
		return 0, fmt.Errorf("invalid tile %q", token)
	}
}
