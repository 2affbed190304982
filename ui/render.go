package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/Tuupertunut/BattleSheepSolver/game"
)

var (
	colorBackground = color.RGBA{20, 24, 28, 255}
	colorTile       = color.RGBA{58, 142, 64, 255}
	colorTileEdge   = color.RGBA{30, 74, 34, 255}
	colorPath       = color.RGBA{120, 196, 96, 255}
	colorTarget     = color.RGBA{214, 214, 90, 255}
	colorMin        = color.RGBA{196, 57, 43, 255}
	colorMax        = color.RGBA{41, 98, 199, 255}
	colorText       = color.RGBA{230, 230, 230, 255}
)

var whiteImage = ebiten.NewImage(1, 1)

func init() {
	whiteImage.Fill(color.White)
}

// drawHexagon fills a pointy-top hexagon of the given corner-to-corner
// height centered on (cx, cy), as a fan of six triangles over a white pixel.
func drawHexagon(dst *ebiten.Image, cx, cy, height float64, fill color.Color) {
	quarter := height / 4
	halfWidth := math.Sqrt(3) * quarter

	points := [6][2]float64{
		{cx, cy - 2*quarter},
		{cx + halfWidth, cy - quarter},
		{cx + halfWidth, cy + quarter},
		{cx, cy + 2*quarter},
		{cx - halfWidth, cy + quarter},
		{cx - halfWidth, cy - quarter},
	}

	rgba := color.RGBA64Model.Convert(fill).(color.RGBA64)
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0,
			SrcY:   0,
			ColorR: float32(rgba.R) / 65535,
			ColorG: float32(rgba.G) / 65535,
			ColorB: float32(rgba.B) / 65535,
			ColorA: float32(rgba.A) / 65535,
		}
	}

	vertices := make([]ebiten.Vertex, 0, 7)
	vertices = append(vertices, vertex(cx, cy))
	for _, p := range points {
		vertices = append(vertices, vertex(p[0], p[1]))
	}

	indices := make([]uint16, 0, 18)
	for i := 0; i < 6; i++ {
		indices = append(indices, 0, uint16(i+1), uint16((i+1)%6+1))
	}
	dst.DrawTriangles(vertices, indices, whiteImage, nil)
}

// drawTile draws the cell background with a darker rim.
func drawTile(dst *ebiten.Image, cx, cy, height float64, fill color.Color) {
	drawHexagon(dst, cx, cy, height, colorTileEdge)
	drawHexagon(dst, cx, cy, height*0.92, fill)
}

// drawStack draws a stack as a smaller hexagon in the owner's color with its
// size printed in the middle.
func drawStack(dst *ebiten.Image, cx, cy, height float64, stack game.Tile) {
	fill := colorMax
	if stack.Owner() == game.Min {
		fill = colorMin
	}
	drawHexagon(dst, cx, cy, height*0.62, fill)

	label := fmt.Sprintf("%d", stack.Size())
	bounds := text.BoundString(basicfont.Face7x13, label)
	text.Draw(dst, label, basicfont.Face7x13,
		int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, color.White)
}
