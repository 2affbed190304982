package game

import "iter"

// Coord addresses a board cell by row and column. The column axis is slanted
// so that the six hex neighbors of a cell are exactly the cells offset by
// Directions.
type Coord struct {
	R, Q int
}

func (c Coord) Add(d Coord) Coord {
	return Coord{c.R + d.R, c.Q + d.Q}
}

// Directions holds the coordinate offsets of the six hex neighbors in
// clockwise order, starting from east. They are also the straight lines a
// stack can slide along.
var Directions = [6]Coord{{0, 1}, {1, 1}, {1, 0}, {0, -1}, {-1, -1}, {-1, 0}}

// Board is a hex grid of tiles stored in row-major order. Boards are treated
// as immutable: operations that change tiles return a fresh board, so a
// board handed to a search worker is never written to.
type Board struct {
	tiles     []Tile
	rowLength int
}

// NewBoard returns a board of the given dimensions with every cell outside
// the playable region.
func NewBoard(numRows, rowLength int) Board {
	tiles := make([]Tile, numRows*rowLength)
	for i := range tiles {
		tiles[i] = NoTile
	}
	return Board{tiles: tiles, rowLength: rowLength}
}

func (b Board) NumRows() int {
	return len(b.tiles) / b.rowLength
}

func (b Board) RowLength() int {
	return b.rowLength
}

// At returns the tile at the given coordinates. Coordinates outside the grid
// read as NoTile, so adjacency scans never need bounds checks.
func (b Board) At(c Coord) Tile {
	if c.R < 0 || c.Q < 0 || c.R >= b.NumRows() || c.Q >= b.rowLength {
		return NoTile
	}
	return b.tiles[b.rowLength*c.R+c.Q]
}

func (b Board) set(c Coord, t Tile) {
	b.tiles[b.rowLength*c.R+c.Q] = t
}

func (b Board) clone() Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return Board{tiles: tiles, rowLength: b.rowLength}
}

// WithTile returns a copy of the board with the tile at c replaced.
func (b Board) WithTile(c Coord, t Tile) Board {
	next := b.clone()
	next.set(c, t)
	return next
}

// All iterates over every cell in row-major order.
func (b Board) All() iter.Seq2[Coord, Tile] {
	return func(yield func(Coord, Tile) bool) {
		for i, t := range b.tiles {
			if !yield(Coord{i / b.rowLength, i % b.rowLength}, t) {
				return
			}
		}
	}
}

// Neighbors iterates over the six neighbors of c in clockwise order,
// including ones outside the playable region.
func (b Board) Neighbors(c Coord) iter.Seq2[Coord, Tile] {
	return func(yield func(Coord, Tile) bool) {
		for _, d := range Directions {
			n := c.Add(d)
			if !yield(n, b.At(n)) {
				return
			}
		}
	}
}

// runEnd returns the last cell of the straight run of empty cells from c in
// the given direction, or c itself when there is no run.
func (b Board) runEnd(c Coord, dir Coord) Coord {
	for {
		next := c.Add(dir)
		if !b.At(next).IsEmpty() {
			return c
		}
		c = next
	}
}

// EmptyRun returns the consecutive empty cells from c in the given
// direction, nearest first.
func (b Board) EmptyRun(c Coord, dir Coord) []Coord {
	var run []Coord
	for {
		next := c.Add(dir)
		if !b.At(next).IsEmpty() {
			return run
		}
		run = append(run, next)
		c = next
	}
}

// RunEnds returns the cells a split from c can land on: the far end of every
// straight run of empty cells out of c.
func (b Board) RunEnds(c Coord) []Coord {
	var ends []Coord
	for _, dir := range Directions {
		if end := b.runEnd(c, dir); end != c {
			ends = append(ends, end)
		}
	}
	return ends
}

// Split returns a new board with height sheep moved from the top of the
// stack at from onto the empty cell at to. The caller is responsible for the
// move being legal; a split that would empty the source stack panics.
func (b Board) Split(from, to Coord, height int) Board {
	stack := b.At(from)
	next := b.clone()
	next.set(to, NewStack(stack.Owner(), height))
	next.set(from, NewStack(stack.Owner(), stack.Size()-height))
	return next
}
