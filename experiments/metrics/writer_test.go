package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriterWritesRecords(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	w, err := NewWriter("unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Workers: 2, Depth: 3},
		{ID: 2, Workers: 8, Depth: 7},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{
			ID:       "g1",
			MinAgent: 1,
			MaxAgent: 2,
			GameMetric: GameMetric{
				Winner:     "Min",
				StartTime:  time.Unix(0, 0).UTC(),
				EndTime:    time.Unix(1, 0).UTC(),
				Duration:   time.Second,
				TotalMoves: 4,
			},
		},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{
			Game: "g1",
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "Min",
				Value:  3,
				SearchMetric: SearchMetric{
					Workers:  2,
					Depth:    3,
					Boards:   120,
					Duration: time.Millisecond,
				},
			},
		},
	}))

	configs, err := os.ReadFile(filepath.Join(w.Dir(), "agent_configs.csv"))
	require.NoError(t, err)
	require.Contains(t, string(configs), "id,workers,depth")
	require.Contains(t, string(configs), "2,8,7")

	games, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(games), "g1,1,2,Min")

	moves, err := os.ReadFile(filepath.Join(w.Dir(), "move_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(moves), "g1,1,Min,3,2,3,120")
}
