package engine

import (
	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
	"github.com/Tuupertunut/BattleSheepSolver/game"
	"github.com/Tuupertunut/BattleSheepSolver/searcher"
)

// Agent picks a move for a player. *searcher.Negamax is the canonical
// implementation; the engine only cares about the decision.
type Agent interface {
	FindMove(board game.Board, player game.Player) (searcher.Decision, metrics.SearchMetric)
}
