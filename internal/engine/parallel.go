package engine

import (
	"sync"
	"time"

	"github.com/hailam/alphalcazar/internal/game"
)

// rootParallel dispatches the root moves to a worker pool. Every worker
// searches its move on an independent game clone with the full window;
// alpha/beta never tighten across workers, so the fold below reproduces the
// sequential maximiser's result up to choice among tied moves.
func (e *Engine) rootParallel(g *game.Game, player, opponent game.PlayerID, depth int, isFirst bool, alpha, beta int, deadline time.Time) ([]AbstractMove, int, EvaluationType) {
	moves := LegalAbstractMoves(g, player, true)

	type rootResult struct {
		score int
		kind  EvaluationType
	}
	results := make([]rootResult, len(moves))

	var wg sync.WaitGroup
	sem := make(chan struct{}, NumWorkers)
	for i, move := range moves {
		wg.Add(1)
		go func(i int, move AbstractMove) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			score, kind := e.exploreMove(g, move, player, opponent, depth, isFirst, alpha, beta, true, deadline)
			results[i] = rootResult{score: score, kind: kind}
		}(i, move)
	}
	wg.Wait()

	// Fold in move order, mirroring the sequential loop.
	best := -WinConditionScore * 10
	var bestMoves []AbstractMove
	kind := ExactEvaluation
	for i, move := range moves {
		r := results[i]
		switch {
		case r.score > best:
			best, bestMoves, kind = r.score, []AbstractMove{move}, r.kind
		case r.score == best && r.kind == ExactEvaluation:
			bestMoves = append(bestMoves, move)
		}
	}
	e.tt.Store(player, g.Board.Notation(), bestMoves, best, depth, kind, false)
	return bestMoves, best, kind
}
