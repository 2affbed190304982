package engine

import (
	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
)

// Advisor recommends single moves without driving a whole game, for use on
// positions brought in from games played elsewhere.
type Advisor struct {
	agent Agent
}

func NewAdvisor(agent Agent) *Advisor {
	if agent == nil {
		panic("Must have an agent to advise with")
	}
	return &Advisor{agent: agent}
}

// Advise returns the best successor the agent found for the player, with its
// value from Max's point of view. ok is false when the player has no legal
// move, in which case the value still reports how the final position scores.
func (a *Advisor) Advise(board game.Board, player game.Player) (next game.Board, value int, metric metrics.SearchMetric, ok bool) {
	var decision searcher.Decision
	decision, metric = a.agent.FindMove(board, player)
	return decision.Successor, player.Sign() * decision.Value, metric, decision.HasMove
}
