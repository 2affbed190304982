package ui

import (
	"math"

	"github.com/Tuupertunut/BattleSheepSolver/game"
)

// layout maps board coordinates onto the screen: originX/originY is the
// pixel center of hex (0,0) and tileHeight the corner-to-corner height of
// one pointy-top hexagon.
type layout struct {
	originX    float64
	originY    float64
	tileHeight float64
}

// boardLayout fits the board into a canvas, leaving a row of margin around
// it and room for the text line above.
func boardLayout(board game.Board, width, height float64) layout {
	// Track the board's extent in half columns: a cell spans half columns
	// 2q-r-1 to 2q-r+1.
	firstHalfCol, lastHalfCol := 0, 0
	for c, t := range board.All() {
		if t.IsBoardTile() {
			firstHalfCol = min(firstHalfCol, 2*c.Q-c.R-1)
			lastHalfCol = max(lastHalfCol, 2*c.Q-c.R+1)
		}
	}

	// Board size in units of tile height. Rows overlap by a quarter tile.
	boardWidth := float64(lastHalfCol-firstHalfCol) * math.Sqrt(3) / 4
	boardHeight := (float64(board.NumRows())*3 + 1) / 4

	tileHeight := math.Min(width/(boardWidth+2), height/(boardHeight+3))
	return layout{
		originX:    tileHeight * (1 - float64(firstHalfCol)*math.Sqrt(3)/4),
		originY:    tileHeight * 1.5,
		tileHeight: tileHeight,
	}
}

// hexToPixel returns the pixel center of a hex cell.
func (l layout) hexToPixel(c game.Coord) (float64, float64) {
	quarter := l.tileHeight / 4
	halfWidth := math.Sqrt(3) * quarter

	x := l.originX + 2*halfWidth*float64(c.Q) - halfWidth*float64(c.R)
	y := l.originY + 3*quarter*float64(c.R)
	return x, y
}

// pixelToHex returns the hex cell containing a point. The plane is cut into
// half-column rectangles; each rectangle holds one slanted hexagon edge, so
// a single slope test resolves the row.
func (l layout) pixelToHex(x, y float64) game.Coord {
	quarter := l.tileHeight / 4
	halfWidth := math.Sqrt(3) * quarter

	gridX := (x - l.originX) / halfWidth
	gridY := (y - l.originY) / (3 * quarter)
	cellX := math.Floor(gridX)
	cellY := math.Floor(gridY)
	fracX := gridX - cellX
	fracY := gridY - cellY

	// The edge slants down in one checkerboard color and up in the other.
	slope, intercept := -1.0/3, 2.0/3
	if math.Mod(cellX+cellY, 2) != 0 {
		slope, intercept = 1.0/3, 1.0/3
	}

	r := cellY
	if fracY > slope*fracX+intercept {
		r = cellY + 1
	}
	q := math.Ceil((cellX + r) / 2)
	return game.Coord{R: int(r), Q: int(q)}
}
