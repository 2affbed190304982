package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateCountsOpenNeighbors(t *testing.T) {
	// Min reaches one empty cell, Max two.
	b := mustParse(t, "-2   0  +2   0")

	require.Equal(t, 1, b.Evaluate(Min))
	require.Equal(t, 1, b.Evaluate(Max), "the mover does not change an undecided score")
}

func TestEvaluatePenalizesUnevenStacks(t *testing.T) {
	even := mustParse(t, "+2   0   0   0  +2")
	uneven := mustParse(t, "+3   0   0   0  +1")

	require.Equal(t, 2, even.Evaluate(Max))
	require.Equal(t, 1, uneven.Evaluate(Max))
	require.Greater(t, even.Evaluate(Max), uneven.Evaluate(Max), "even splits keep more options open")
}

func TestEvaluateCorridorSplitsTie(t *testing.T) {
	b := mustParse(t, "+3   0   0   0   0")

	var values []int
	for next := range b.PossibleMoves(Max) {
		values = append(values, next.Evaluate(Max))
	}
	require.Len(t, values, 2)
	require.Equal(t, values[0], values[1], "both splits leave the same mobility")
}

func TestEvaluateScoresStuckPlayerAsLost(t *testing.T) {
	minStuck := mustParse(t, "-1  +2   0   0")

	require.Equal(t, WinScore, minStuck.Evaluate(Min), "stuck Min loses")
	require.Equal(t, -WinScore, swapOwners(minStuck).Evaluate(Max), "stuck Max loses")

	// The same stacks with room to move score in the heuristic range.
	minOpen := mustParse(t, "-2   0  +2   0")
	require.Less(t, minOpen.Evaluate(Min), WinScore)
	require.Greater(t, minOpen.Evaluate(Min), -WinScore)
}

func TestEvaluateLabelSymmetry(t *testing.T) {
	boards := []string{
		`
   0  +2
-2   0  -3  +3
   0           0
`,
		"-2   0  +2   0",
		"+3   0  -4   0   0  +2",
		"-1  +2   0   0",
	}
	for _, s := range boards {
		b := mustParse(t, s)
		for _, toMove := range []Player{Min, Max} {
			require.Equal(t, -b.Evaluate(toMove), swapOwners(b).Evaluate(toMove.Opponent()),
				"swapping sides negates the score of %q", b.String())
		}
	}
}

func TestEvaluateCapsExtremeTerms(t *testing.T) {
	t.Run("mobility cap", func(t *testing.T) {
		// Pairs on every even-even cell of an open field never touch (every
		// neighbor offset has an odd component), so the 25 stacks reach 112
		// open neighbors between them, far past the cap.
		b := NewBoard(9, 9)
		for r := 0; r < 9; r++ {
			for q := 0; q < 9; q++ {
				b.set(Coord{r, q}, Empty)
			}
		}
		for r := 0; r < 9; r += 2 {
			for q := 0; q < 9; q += 2 {
				b.set(Coord{r, q}, NewStack(Max, 2))
			}
		}

		require.Equal(t, maxMobilityScore, b.Evaluate(Max))
		require.Equal(t, -maxMobilityScore, swapOwners(b).Evaluate(Min),
			"the cap applies to either side alike")
	})

	t.Run("evenness floor", func(t *testing.T) {
		b := mustParse(t, "+31  0   0  +1   0")
		// Mobility: the +31 sees one empty, the +1 two. Evenness floors at 7.
		require.Equal(t, 3-7, b.Evaluate(Max))
	})
}

func TestHasRegularMove(t *testing.T) {
	require.True(t, mustParse(t, "-2   0  +2   0").HasRegularMove(Min))
	require.False(t, mustParse(t, "-1  +2   0").HasRegularMove(Min), "single sheep cannot split")
	require.False(t, mustParse(t, "-2  +2   0").HasRegularMove(Min), "no empty neighbor to slide into")
	require.False(t, mustParse(t, " 0   0").HasRegularMove(Min), "no stacks placed yet")
}
