package experiments

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/Tuupertunut/BattleSheepSolver/game"
)

// GenerateBoard grows a random connected playable region of the given number
// of cells, all empty. The same rand source always produces the same board.
func GenerateBoard(rng *rand.Rand, cells int) game.Board {
	if cells < 1 {
		panic("Must generate at least one cell")
	}

	region := map[game.Coord]bool{{R: 0, Q: 0}: true}
	grown := []game.Coord{{R: 0, Q: 0}}
	for len(region) < cells {
		c := grown[rng.Intn(len(grown))]
		n := c.Add(game.Directions[rng.Intn(len(game.Directions))])
		if !region[n] {
			region[n] = true
			grown = append(grown, n)
		}
	}

	minR, minQ := math.MaxInt, math.MaxInt
	maxR, maxQ := math.MinInt, math.MinInt
	for c := range region {
		minR = min(minR, c.R)
		minQ = min(minQ, c.Q)
		maxR = max(maxR, c.R)
		maxQ = max(maxQ, c.Q)
	}

	board := game.NewBoard(maxR-minR+1, maxQ-minQ+1)
	for c := range region {
		board = board.WithTile(game.Coord{R: c.R - minR, Q: c.Q - minQ}, game.Empty)
	}
	return board
}
