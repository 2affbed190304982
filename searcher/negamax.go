package searcher

import (
	"cmp"
	"iter"
	"math"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Tuupertunut/BattleSheepSolver/experiments/metrics"
	"github.com/Tuupertunut/BattleSheepSolver/game"
)

// DefaultDepth is the search horizon in half moves. Seven plies keeps a full
// turn cycle for both players in view with a move to spare.
const DefaultDepth = 7

// Infinity bounds every alpha-beta window. Symmetric around zero, so a
// window negation can never overflow.
const Infinity = math.MaxInt32

// Negamax picks moves with a fixed-depth negamax search using fail-soft
// alpha-beta pruning, best-first move ordering and a parallel root.
type Negamax struct {
	workers int
	depth   int
	metrics metrics.Collector
}

type Option func(n *Negamax)

// WithDepth sets the search horizon in half moves.
func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.depth = depth
		}
	}
}

// WithMetrics makes the searcher collect per-search metrics instead of
// discarding them.
func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

// NewNegamax creates a searcher that fans the root moves out to the given
// number of workers.
func NewNegamax(workers int, options ...Option) *Negamax {
	n := &Negamax{
		workers: workers,
		depth:   DefaultDepth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	if n.workers < 1 {
		panic("Must have at least one search worker")
	}
	return n
}

// Decision is the outcome of one search. Value is from the point of view of
// the player who moved: a player about to lose sees -game.WinScore. When the
// player has no legal move, HasMove is false and Successor is meaningless.
type Decision struct {
	Successor game.Board
	Value     int
	Boards    int64
	HasMove   bool
}

// FindMove searches for the player's best move. The most promising successor
// is searched first on the calling goroutine to establish a lower bound,
// then the remaining successors are fanned out to the worker pool, each
// searched against that same fixed bound (the young brothers wait). Results
// reduce by value with ties going to the earliest successor in sorted order,
// so the decision depends on neither completion order nor pool size.
func (n *Negamax) FindMove(board game.Board, player game.Player) (Decision, metrics.SearchMetric) {
	n.metrics.Start(n.workers, n.depth)

	moves := sortedMoves(board, player)
	if len(moves) == 0 {
		// No legal moves: the position scores itself.
		value := player.Sign() * board.Evaluate(player)
		n.metrics.AddBoards(1)
		return Decision{Value: value, Boards: 1}, n.metrics.Complete()
	}

	opponent := player.Opponent()

	value, visited := negamaxValue(moves[0], opponent, n.depth-1, -Infinity, Infinity)
	bound := -value
	n.metrics.AddBoards(visited)

	bestIndex := 0
	bestValue := bound
	totalVisited := visited

	if len(moves) > 1 {
		type job struct {
			index int
			board game.Board
		}
		jobs := make(chan job, len(moves)-1)
		for i, move := range moves[1:] {
			jobs <- job{index: i + 1, board: move}
		}
		close(jobs)

		var mu sync.Mutex
		var wg sync.WaitGroup
		for w := 0; w < min(n.workers, len(moves)-1); w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := range jobs {
					v, jobVisited := negamaxValue(j.board, opponent, n.depth-1, -Infinity, -bound)
					v = -v
					n.metrics.AddBoards(jobVisited)

					mu.Lock()
					totalVisited += jobVisited
					if v > bestValue || (v == bestValue && j.index < bestIndex) {
						bestValue = v
						bestIndex = j.index
					}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
	}

	log.Debug().Msgf("searched %d boards to depth %d, value %d", totalVisited, n.depth, bestValue)

	decision := Decision{
		Successor: moves[bestIndex],
		Value:     bestValue,
		Boards:    totalVisited,
		HasMove:   true,
	}
	return decision, n.metrics.Complete()
}

// negamaxValue scores a board from the point of view of the player to move,
// searching depth more plies with fail-soft alpha-beta pruning. It also
// returns the number of boards evaluated.
func negamaxValue(board game.Board, toMove game.Player, depth, alpha, beta int) (int, int64) {
	if depth == 0 {
		return toMove.Sign() * board.Evaluate(toMove), 1
	}

	var moves iter.Seq[game.Board]
	if depth > 1 {
		moves = slices.Values(sortedMoves(board, toMove))
	} else {
		// Depth-1 successors are scored by the same heuristic that would
		// order them, so sorting cannot improve the cutoff order. Consuming
		// the raw sequence lets a cutoff stop generation early instead.
		moves = board.PossibleMoves(toMove)
	}

	opponent := toMove.Opponent()
	best := math.MinInt
	var visited int64

	for next := range moves {
		v, nextVisited := negamaxValue(next, opponent, depth-1, -beta, -alpha)
		v = -v
		visited += nextVisited

		if v > best {
			best = v
			if best >= beta {
				return best, visited
			}
			alpha = max(alpha, best)
		}
	}

	if best == math.MinInt {
		// No legal moves: the position scores itself, and the evaluator
		// scores a player who cannot move as lost.
		return toMove.Sign() * board.Evaluate(toMove), 1
	}
	return best, visited
}

// sortedMoves materializes the player's moves best-first: descending by the
// mover-relative heuristic value of the successor. The sort is stable over
// the generator's fixed emission order, so equal-valued moves keep a
// deterministic relative order.
func sortedMoves(board game.Board, player game.Player) []game.Board {
	opponent := player.Opponent()

	type scored struct {
		board game.Board
		key   int
	}
	var moves []scored
	for next := range board.PossibleMoves(player) {
		moves = append(moves, scored{board: next, key: player.Sign() * next.Evaluate(opponent)})
	}
	slices.SortStableFunc(moves, func(a, b scored) int {
		return cmp.Compare(b.key, a.key)
	})

	boards := make([]game.Board, len(moves))
	for i, move := range moves {
		boards[i] = move.board
	}
	return boards
}
