package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
)

func TestRunGameRecordsEveryMove(t *testing.T) {
	board := GenerateBoard(rand.New(rand.NewSource(3)), 8)

	minSeat := speedupConfigs[0]
	minSeat.Depth = 2
	maxSeat := speedupConfigs[1]
	maxSeat.Depth = 2

	record, moves := runGame(minSeat, maxSeat, board)

	require.NotEmpty(t, record.ID)
	require.Equal(t, minSeat.ID, record.MinAgent)
	require.Equal(t, maxSeat.ID, record.MaxAgent)
	require.Contains(t, []string{"Min", "Max", "Draw"}, record.Winner)
	require.Equal(t, record.TotalMoves, len(moves))

	for i, move := range moves {
		require.Equal(t, record.ID, move.Game)
		require.Equal(t, i+1, move.Step)
		require.Positive(t, move.Boards, "metrics are always collected in experiments")
	}
}

func TestCreateNegamaxAppliesConfig(t *testing.T) {
	require.NotPanics(t, func() { createNegamax(speedupConfigs[0]) })
	require.Panics(t, func() {
		createNegamax(metrics.AgentConfig{ID: 1})
	}, "a config without workers is a bug")
}
