package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
	"github.com/Tuupertunut/BattleSheepSolver/game"
)

// MaxTurns stops a game that somehow fails to finish. Every move adds a
// stack, so real games end in far fewer turns.
const MaxTurns = 500

// Engine drives a full game between two agents in one process.
type Engine struct {
	Board  game.Board
	Agents [2]Agent // indexed by game.Player
	// Output, when set, receives a rendering of every position.
	Output  io.Writer
	Colored bool
}

// LocalEngine sets up a game on the given board. Min moves first.
func LocalEngine(board game.Board, minAgent, maxAgent Agent) *Engine {
	if minAgent == nil || maxAgent == nil {
		panic("Must have an agent for each player")
	}
	return &Engine{
		Board:  board,
		Agents: [2]Agent{minAgent, maxAgent},
	}
}

// Run plays the game out until the player to move has no legal move, and
// returns the winner ("Min", "Max" or "Draw") along with the collected
// metrics. The verdict comes from the searched value of the last move; a
// game cut off at MaxTurns falls back to the standings on the board.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", game.Min)
	e.print(e.Board)

	winner := ""
	player := game.Min
	for turn := 1; turn <= MaxTurns; turn++ {
		moveStart := time.Now()
		decision, metric := e.Agents[player].FindMove(e.Board, player)
		value := player.Sign() * decision.Value

		if !decision.HasMove {
			winner = verdict(value)
			break
		}

		log.Info().Msgf("turn %d: %v moved, value %d, %d boards in %v",
			turn, player, value, decision.Boards, time.Since(moveStart))
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Value:        value,
			SearchMetric: metric,
		})

		e.Board = decision.Successor
		e.print(e.Board)
		player = player.Opponent()
	}

	log.Info().Msgf("final standings: Min %d cells in fields up to %d, Max %d cells in fields up to %d",
		e.Board.ClaimedTiles(game.Min), e.Board.LargestField(game.Min),
		e.Board.ClaimedTiles(game.Max), e.Board.LargestField(game.Max))

	if winner == "" {
		log.Warn().Msgf("no finished game after %d turns, adjudicating by standings", MaxTurns)
		if w, ok := e.Board.Winner(); ok {
			winner = w.String()
		} else {
			winner = "Draw"
		}
	}
	log.Info().Msgf("winner: %s", winner)

	gameMetric := metrics.GameMetric{
		Winner:     winner,
		StartTime:  startTime,
		EndTime:    time.Now(),
		Duration:   time.Since(startTime),
		TotalMoves: len(moveMetrics),
	}
	return winner, gameMetric, moveMetrics
}

// verdict converts a final Max-relative value into a winner name.
func verdict(value int) string {
	switch {
	case value > 0:
		return game.Max.String()
	case value < 0:
		return game.Min.String()
	default:
		return "Draw"
	}
}

func (e *Engine) print(board game.Board) {
	if e.Output == nil {
		return
	}
	if e.Colored {
		fmt.Fprintf(e.Output, "\n%s\n", board.ColorString())
	} else {
		fmt.Fprintf(e.Output, "\n%s\n", board.String())
	}
}
