package engine

import (
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/hailam/alphalcazar/internal/game"
)

// NumWorkers is the size of the parallel root search pool.
var NumWorkers = runtime.GOMAXPROCS(0)

// Config holds the search knobs.
type Config struct {
	// Depth is the number of full rounds the search looks ahead.
	Depth int
	// Parallel fans the root moves out to a worker pool.
	Parallel bool
	// MoveTime bounds a single search; zero means unbounded. On expiry the
	// search returns the best move found so far.
	MoveTime time.Duration
	// Seed fixes the tie-break sampling; zero seeds from the clock.
	Seed int64
}

// Engine owns the search and its process-wide caches: the transposition
// table and the board score cache live for the lifetime of the engine, not
// in hidden globals.
type Engine struct {
	depth    int
	parallel bool
	moveTime time.Duration

	tt     *TranspositionTable
	scores *scoreCache
	rng    *rand.Rand
}

// New builds a search engine. The zero config searches two rounds deep,
// sequentially.
func New(cfg Config) *Engine {
	if cfg.Depth <= 0 {
		cfg.Depth = 2
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		depth:    cfg.Depth,
		parallel: cfg.Parallel,
		moveTime: cfg.MoveTime,
		tt:       NewTranspositionTable(),
		scores:   newScoreCache(),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Table exposes the transposition table, for persistence and tests.
func (e *Engine) Table() *TranspositionTable {
	return e.tt
}

// ClearCaches drops the transposition table and the board score cache.
func (e *Engine) ClearCaches() {
	e.tt.Clear()
	e.scores = newScoreCache()
}

// BestMoves runs the full-window search and returns the set of best moves
// with equal score, the score, and the kind of evaluation that produced it.
func (e *Engine) BestMoves(g *game.Game, player, opponent game.PlayerID, isFirst bool) ([]AbstractMove, int, EvaluationType) {
	alpha := -WinConditionScore - 1
	beta := WinConditionScore + 1
	var deadline time.Time
	if e.moveTime > 0 {
		deadline = time.Now().Add(e.moveTime)
	}
	if e.parallel {
		return e.rootParallel(g, player, opponent, e.depth, isFirst, alpha, beta, deadline)
	}
	return e.max(g, player, opponent, e.depth, isFirst, alpha, beta, deadline)
}

// BestMove samples uniformly among the best moves.
func (e *Engine) BestMove(g *game.Game, player, opponent game.PlayerID, isFirst bool) (AbstractMove, int) {
	moves, score, _ := e.BestMoves(g, player, opponent, isFirst)
	if len(moves) == 0 {
		return EmptyMove(player), score
	}
	return moves[e.rng.Intn(len(moves))], score
}

// Choose implements game.Strategy with the tree search. It passes when the
// player has no legal placement.
func (e *Engine) Choose(g *game.Game, player, opponent game.PlayerID, isStarting bool) (game.PlacementMove, bool) {
	if len(g.Board.LegalPlacements(player)) == 0 {
		return game.PlacementMove{}, false
	}
	move, score := e.BestMove(g, player, opponent, isStarting)
	placement, ok := move.ToPlacement(&g.Board)
	if !ok {
		return game.PlacementMove{}, false
	}
	log.Printf("[Search] player %d plays %s (score %d)", player, move, score)
	return placement, true
}
