package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
	"github.com/Tuupertunut/BattleSheepSolver/game"
)

// RunThroughput measures raw search speed without game noise: every pool
// size searches the same suite of midgame positions from scratch, and each
// search becomes one record. Searches run one at a time so the pool under
// test has the machine to itself.
func RunThroughput(numBoards int) error {
	log.Info().Msg("starting throughput experiment...")

	rng := rand.New(rand.NewSource(boardSeed))
	positions := make([]game.Board, numBoards)
	for i := range positions {
		positions[i] = midgamePosition(rng, BoardCells)
	}

	moveRecords := []metrics.MoveRecord{}
	for _, config := range speedupConfigs {
		agent := createNegamax(config)
		log.Info().Msgf("searching %d positions with %+v...", len(positions), config)

		var boards int64
		var elapsed time.Duration
		for pi, position := range positions {
			decision, metric := agent.FindMove(position, game.Min)
			boards += metric.Boards
			elapsed += metric.Duration
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game: fmt.Sprintf("config-%d", config.ID),
				MoveMetric: metrics.MoveMetric{
					Step:         pi + 1,
					Player:       game.Min.String(),
					Value:        game.Min.Sign() * decision.Value,
					SearchMetric: metric,
				},
			})
		}
		log.Info().Msgf("completed %+v: %d boards in %v", config, boards, elapsed)
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter("throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(speedupConfigs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %d move records under %s", len(moveRecords), writer.Dir())

	return nil
}

// midgamePosition plays a few random moves from an empty arena so searches
// start where real games spend their time, with stacks already on the board.
func midgamePosition(rng *rand.Rand, cells int) game.Board {
	board := GenerateBoard(rng, cells)
	player := game.Min
	for i := 0; i < 4; i++ {
		moves := []game.Board{}
		for move := range board.PossibleMoves(player) {
			moves = append(moves, move)
		}
		if len(moves) == 0 {
			break
		}
		board = moves[rng.Intn(len(moves))]
		player = player.Opponent()
	}
	return board
}
