package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectMoves(b Board, p Player) []string {
	var moves []string
	for next := range b.PossibleMoves(p) {
		moves = append(moves, next.String())
	}
	return moves
}

func TestPossibleMovesMatchHandEnumeration(t *testing.T) {
	b := mustParse(t, `
   0  +2
-2   0  -3  +3
   0           0
`)

	want := []string{
		trimBoard(`
  +1  +1
-2   0  -3  +3
   0           0
`),
		trimBoard(`
   0  +1
-2   0  -3  +3
  +1           0
`),
		trimBoard(`
   0  +2
-2   0  -3  +2
   0          +1
`),
		trimBoard(`
   0  +2
-2   0  -3  +1
   0          +2
`),
	}
	require.ElementsMatch(t, want, collectMoves(b, Max))
}

func TestStartingMovesPlaceFullStackOnEdge(t *testing.T) {
	b := mustParse(t, `
   0   0
 0   0
`)

	moves := collectMoves(b, Min)
	require.Len(t, moves, 4, "every empty edge cell takes the starting stack")
	require.Contains(t, moves, trimBoard(`
   0  -16
 0   0
`))
	require.Contains(t, moves, trimBoard(`
   0   0
-16  0
`))
}

func TestStartingMovesSkipInnerCells(t *testing.T) {
	b := mustParse(t, `
     0   0   0
   0   0   0
 0   0   0
`)

	moves := collectMoves(b, Max)
	require.Len(t, moves, 8, "the center cell is not on the outer edge")
	for _, m := range moves {
		next := mustParse(t, m)
		require.NotEqual(t, NewStack(Max, StartingStackSize), next.At(Coord{1, 1}))
	}
}

func TestCorridorSplitsSlideToRunEnd(t *testing.T) {
	b := mustParse(t, "+3   0   0   0   0")

	require.ElementsMatch(t, []string{
		"+2   0   0   0  +1",
		"+1   0   0   0  +2",
	}, collectMoves(b, Max), "intermediate cells are not landing spots")
}

func TestMovesConserveSheep(t *testing.T) {
	b := mustParse(t, `
   0  +2
-2   0  -3  +3
   0           0
`)

	for _, p := range []Player{Min, Max} {
		for next := range b.PossibleMoves(p) {
			require.Equal(t, unitCount(b, p), unitCount(next, p), "splitting keeps the sheep count")
			require.Equal(t, unitCount(b, p.Opponent()), unitCount(next, p.Opponent()), "the opponent is untouched")
			require.Equal(t, stackCount(b, p)+1, stackCount(next, p), "a split adds exactly one stack")

			for c, tile := range b.All() {
				if !tile.IsBoardTile() {
					require.Equal(t, NoTile, next.At(c), "the playable region is fixed")
				}
				if next.At(c).IsStack() && !tile.IsStack() {
					require.Equal(t, Empty, tile, "stacks may only land on empty cells")
				}
			}
		}
	}
}

func TestPlacementAddsStartingStack(t *testing.T) {
	b := mustParse(t, `
   0   0
 0  +16
`)

	for next := range b.PossibleMoves(Min) {
		require.Equal(t, StartingStackSize, unitCount(next, Min))
		require.Equal(t, StartingStackSize, unitCount(next, Max))
	}
	require.Len(t, collectMoves(b, Min), 3, "the occupied corner is no placement spot")
}

func TestBlockedPlayersHaveNoMoves(t *testing.T) {
	t.Run("single sheep cannot split", func(t *testing.T) {
		b := mustParse(t, "-1  +2   0")
		require.Empty(t, collectMoves(b, Min))
	})
	t.Run("walled-in stack cannot move", func(t *testing.T) {
		b := mustParse(t, "-2  +2   0")
		require.Empty(t, collectMoves(b, Min))
	})
}

func TestPossibleMovesIsRestartable(t *testing.T) {
	b := mustParse(t, "+3   0   0   0   0")
	moves := b.PossibleMoves(Max)

	first := collectSeq(moves)
	for next := range moves {
		// Abandoning the sequence early must not corrupt later passes.
		_ = next
		break
	}
	second := collectSeq(moves)
	require.Equal(t, first, second)
}

func collectSeq(moves func(func(Board) bool)) []string {
	var out []string
	for next := range moves {
		out = append(out, next.String())
	}
	return out
}
