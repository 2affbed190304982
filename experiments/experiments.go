package experiments

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/Tuupertunut/BattleSheepSolver/engine"
	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
)

const (
	// BoardCells is the size of generated benchmark arenas, roughly two
	// official four-player board quarters.
	BoardCells = 32

	// boardSeed fixes the arena suite so runs stay comparable.
	boardSeed = 421
)

var speedupConfigs = []metrics.AgentConfig{
	{ID: 1, Workers: 1, Depth: searcher.DefaultDepth},
	{ID: 2, Workers: 2, Depth: searcher.DefaultDepth},
	{ID: 3, Workers: 4, Depth: searcher.DefaultDepth},
	{ID: 4, Workers: 8, Depth: searcher.DefaultDepth},
	{ID: 5, Workers: 16, Depth: searcher.DefaultDepth},
	{ID: 6, Workers: 32, Depth: searcher.DefaultDepth},
}

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Workers: 8, Depth: 3},
	{ID: 2, Workers: 8, Depth: 5},
	{ID: 3, Workers: 8, Depth: searcher.DefaultDepth},
}

// RunSpeedup plays self-matchups at growing pool sizes. Each matchup uses
// the same config on both sides for the same playing strength and similar
// game length; games run one at a time so wall times stay meaningful.
func RunSpeedup(numGames int) error {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range speedupConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return runExperiment("speedup", speedupConfigs, matchUps, numGames, 1)
}

// RunStrength pairs each depth config against the full-depth baseline.
// Games run a few at a time; each game already saturates several cores.
func RunStrength(numGames int) error {
	baseline := metrics.AgentConfig{ID: 0, Workers: 8, Depth: searcher.DefaultDepth}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range strengthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment("strength", append(strengthConfigs, baseline), matchUps, numGames, 4)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, numGames, parallelism int) error {
	log.Info().Msgf("starting %s experiment...", name)

	// The same board suite for every matchup keeps results comparable.
	rng := rand.New(rand.NewSource(boardSeed))
	boards := make([]game.Board, numGames)
	for i := range boards {
		boards[i] = GenerateBoard(rng, BoardCells)
	}

	type result struct {
		record metrics.GameRecord
		moves  []metrics.MoveRecord
	}
	results := make([]result, len(matchUps)*numGames)

	group := new(errgroup.Group)
	group.SetLimit(parallelism)
	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %+v and %+v...",
			mi+1, len(matchUps), matchup[0], matchup[1])

		for gi := 0; gi < numGames; gi++ {
			// Alternate seats so neither config always moves first.
			minSeat, maxSeat := matchup[0], matchup[1]
			if gi%2 == 1 {
				minSeat, maxSeat = maxSeat, minSeat
			}

			index := mi*numGames + gi
			board := boards[gi]
			group.Go(func() error {
				record, moves := runGame(minSeat, maxSeat, board)
				results[index] = result{record: record, moves: moves}
				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
					mi+1, len(matchUps), gi+1, numGames, record.Winner)
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.record)
		moveRecords = append(moveRecords, r.moves...)
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %d game records under %s", len(gameRecords), writer.Dir())

	return nil
}

// runGame plays a single game between two configs and flattens its metrics
// into records.
func runGame(minSeat, maxSeat metrics.AgentConfig, board game.Board) (metrics.GameRecord, []metrics.MoveRecord) {
	e := engine.LocalEngine(board, createNegamax(minSeat), createNegamax(maxSeat))
	_, gameMetric, moveMetrics := e.Run()

	record := metrics.GameRecord{
		ID:         uuid.NewString(),
		MinAgent:   minSeat.ID,
		MaxAgent:   maxSeat.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: record.ID, MoveMetric: mm}
	}
	return record, moves
}

func createNegamax(config metrics.AgentConfig) *searcher.Negamax {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewNegamax(config.Workers, options...)
}
