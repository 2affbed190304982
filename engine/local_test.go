package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
)

func mustParse(t *testing.T, s string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(strings.Trim(s, "\n"))
	require.NoError(t, err)
	return b
}

func unitCount(b game.Board, p game.Player) int {
	total := 0
	for _, tile := range b.All() {
		if tile.IsStack() && tile.Owner() == p {
			total += tile.Size()
		}
	}
	return total
}

func TestRunPlaysGameToVerdict(t *testing.T) {
	board := mustParse(t, `
   0   0   0   0
 0   0   0   0
`)

	agent := searcher.NewNegamax(2, searcher.WithDepth(3), searcher.WithMetrics())
	var output bytes.Buffer
	e := LocalEngine(board, agent, agent)
	e.Output = &output

	winner, gameMetric, moveMetrics := e.Run()

	require.Contains(t, []string{"Min", "Max", "Draw"}, winner)
	require.Equal(t, winner, gameMetric.Winner)
	require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
	require.GreaterOrEqual(t, len(moveMetrics), 2, "both players at least place their stack")

	require.Equal(t, 1, moveMetrics[0].Step)
	require.Equal(t, "Min", moveMetrics[0].Player, "Min always starts")
	require.Equal(t, "Max", moveMetrics[1].Player)
	for _, move := range moveMetrics {
		require.Positive(t, move.Boards, "every search visits at least one board")
	}

	require.Equal(t, game.StartingStackSize, unitCount(e.Board, game.Min), "sheep are conserved")
	require.Equal(t, game.StartingStackSize, unitCount(e.Board, game.Max))
	require.Contains(t, output.String(), "0", "positions are rendered to the output")
}

func TestRunStopsWhenMoverIsStuck(t *testing.T) {
	// Min's lone sheep cannot split, so the game is over immediately.
	board := mustParse(t, "-1  +2   0   0")

	e := LocalEngine(board, searcher.NewNegamax(1), searcher.NewNegamax(1))
	winner, gameMetric, moveMetrics := e.Run()

	require.Equal(t, "Max", winner)
	require.Empty(t, moveMetrics)
	require.Zero(t, gameMetric.TotalMoves)
	require.Equal(t, "-1  +2   0   0", e.Board.String(), "the board is left untouched")
}

func TestAdviseRecommendsMove(t *testing.T) {
	board := mustParse(t, "+2   0  -2   0")
	advisor := NewAdvisor(searcher.NewNegamax(1, searcher.WithDepth(2)))

	next, _, _, ok := advisor.Advise(board, game.Max)
	require.True(t, ok)
	require.NotEqual(t, board.String(), next.String())
	require.Equal(t, unitCount(board, game.Max), unitCount(next, game.Max))
}

func TestAdviseReportsStuckPlayer(t *testing.T) {
	board := mustParse(t, "-1  +2   0")
	advisor := NewAdvisor(searcher.NewNegamax(1))

	_, value, _, ok := advisor.Advise(board, game.Min)
	require.False(t, ok)
	require.Equal(t, game.WinScore, value, "a stuck Min scores as a Max win")
}
