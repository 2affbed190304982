package game

import "fmt"

// Player identifies one of the two sides. It doubles as the negamax sign
// convention: Min's advantage is a negative score, Max's a positive one.
type Player uint8

const (
	Min Player = iota
	Max
)

// Sign returns -1 for Min and +1 for Max.
func (p Player) Sign() int {
	if p == Min {
		return -1
	}
	return 1
}

func (p Player) Opponent() Player {
	if p == Min {
		return Max
	}
	return Min
}

func (p Player) String() string {
	if p == Min {
		return "Min"
	}
	return "Max"
}

// Tile is the occupancy state of one board cell packed into a single byte:
// 0-31 is a Min stack of that size, 32-63 a Max stack, 64-127 a cell outside
// the playable region and 128-255 an empty playable cell.
type Tile uint8

const (
	NoTile Tile = 64
	Empty  Tile = 128
)

// MaxStackSize is the largest stack size the tile encoding can hold.
const MaxStackSize = 31

// NewStack packs a stack into a tile. A size outside 1..MaxStackSize is a
// bug in the caller.
func NewStack(owner Player, size int) Tile {
	if size < 1 || size > MaxStackSize {
		panic(fmt.Sprintf("stack size %d out of range", size))
	}
	return Tile(size) + Tile(owner)*32
}

func (t Tile) IsStack() bool {
	return t < 64
}

func (t Tile) IsEmpty() bool {
	return t >= 128
}

// IsBoardTile reports whether the cell is part of the playable region.
func (t Tile) IsBoardTile() bool {
	return t.IsStack() || t.IsEmpty()
}

// Owner returns the player owning a stack tile. It is only meaningful for
// tiles where IsStack is true.
func (t Tile) Owner() Player {
	if t < 32 {
		return Min
	}
	return Max
}

func (t Tile) Size() int {
	return int(t % 32)
}
