package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/Tuupertunut/BattleSheepSolver/game"
)

func TestGenerateBoardIsConnected(t *testing.T) {
	for _, cells := range []int{1, 8, 32} {
		board := GenerateBoard(rand.New(rand.NewSource(99)), cells)

		empties := 0
		var first game.Coord
		for c, tile := range board.All() {
			require.False(t, tile.IsStack(), "generated boards hold no stacks")
			if tile.IsEmpty() {
				if empties == 0 {
					first = c
				}
				empties++
			}
		}
		require.Equal(t, cells, empties)

		// Flood fill must reach every playable cell.
		seen := map[game.Coord]bool{first: true}
		frontier := []game.Coord{first}
		for len(frontier) > 0 {
			c := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			for n, tile := range board.Neighbors(c) {
				if tile.IsEmpty() && !seen[n] {
					seen[n] = true
					frontier = append(frontier, n)
				}
			}
		}
		require.Len(t, seen, cells, "the region must be connected")
	}
}

func TestGenerateBoardIsReproducible(t *testing.T) {
	a := GenerateBoard(rand.New(rand.NewSource(boardSeed)), BoardCells)
	b := GenerateBoard(rand.New(rand.NewSource(boardSeed)), BoardCells)
	require.Equal(t, a.String(), b.String(), "the same seed grows the same region")
}
