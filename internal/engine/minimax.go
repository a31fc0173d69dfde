package engine

import (
	"time"

	"github.com/hailam/alphalcazar/internal/game"
)

// The search walks placement half-plies: each node places one piece, and
// the board only resolves a tick once both sides have placed. The isFirst
// flag tracks which placement of the round a node is considering; depth
// decrements once per resolved round.

// max explores player's placements and maximises the score from player's
// perspective.
func (e *Engine) max(g *game.Game, player, opponent game.PlayerID, remainingDepth int, isFirst bool, alpha, beta int, deadline time.Time) ([]AbstractMove, int, EvaluationType) {
	if isFirst && (remainingDepth == 0 || g.Board.Result(player, opponent) != game.Ongoing) {
		return nil, e.Evaluate(&g.Board, player, opponent), ExactEvaluation
	}
	notation := g.Board.Notation()
	if entry, ok := e.tt.Probe(player, notation, remainingDepth, alpha, beta, false); ok {
		return entry.Moves, entry.Score, entry.Kind
	}

	best := -WinConditionScore * 10
	var bestMoves []AbstractMove
	kind := ExactEvaluation
	for _, move := range LegalAbstractMoves(g, player, true) {
		if expired(deadline) {
			// Conservative bound; a timed-out result is never stored.
			return bestMoves, best, BetaCutoff
		}
		score, childKind := e.exploreMove(g, move, player, opponent, remainingDepth, isFirst, alpha, beta, true, deadline)
		switch {
		case score > best:
			best, bestMoves, kind = score, []AbstractMove{move}, childKind
		case score == best && childKind == ExactEvaluation:
			bestMoves = append(bestMoves, move)
		}
		if best > alpha {
			alpha = best
		}
		if alpha > beta {
			kind = BetaCutoff
			break
		}
	}
	e.tt.Store(player, notation, bestMoves, best, remainingDepth, kind, false)
	return bestMoves, best, kind
}

// min explores opponent's placements and minimises the score, still from
// player's perspective. Symmetric placements are not pruned here so that
// minimiser results never leak a pruned oracle into the transposition cache.
func (e *Engine) min(g *game.Game, player, opponent game.PlayerID, remainingDepth int, isFirst bool, alpha, beta int, deadline time.Time) ([]AbstractMove, int, EvaluationType) {
	if isFirst && (remainingDepth == 0 || g.Board.Result(player, opponent) != game.Ongoing) {
		return nil, e.Evaluate(&g.Board, player, opponent), ExactEvaluation
	}
	notation := g.Board.Notation()
	if entry, ok := e.tt.Probe(opponent, notation, remainingDepth, alpha, beta, true); ok {
		return entry.Moves, entry.Score, entry.Kind
	}

	best := WinConditionScore * 10
	var bestMoves []AbstractMove
	kind := ExactEvaluation
	for _, move := range LegalAbstractMoves(g, opponent, false) {
		if expired(deadline) {
			return bestMoves, best, AlphaCutoff
		}
		score, childKind := e.exploreMove(g, move, player, opponent, remainingDepth, isFirst, alpha, beta, false, deadline)
		switch {
		case score < best:
			best, bestMoves, kind = score, []AbstractMove{move}, childKind
		case score == best && childKind == ExactEvaluation:
			bestMoves = append(bestMoves, move)
		}
		if best < beta {
			beta = best
		}
		if alpha > beta {
			kind = AlphaCutoff
			break
		}
	}
	e.tt.Store(opponent, notation, bestMoves, best, remainingDepth, kind, true)
	return bestMoves, best, kind
}

// exploreMove clones the game, applies the move, and recurses. The first
// placement of a round hands over to the other side at the same depth; the
// second placement resolves a tick, swaps the starting player and descends
// one round deeper. Scores crossing a tick boundary pay one depth penalty
// step.
func (e *Engine) exploreMove(g *game.Game, move AbstractMove, player, opponent game.PlayerID, remainingDepth int, isFirst bool, alpha, beta int, fromMax bool, deadline time.Time) (int, EvaluationType) {
	clone := g.Clone()
	move.Execute(clone)

	if isFirst {
		var score int
		var kind EvaluationType
		if fromMax {
			_, score, kind = e.min(clone, player, opponent, remainingDepth, false, alpha, beta, deadline)
		} else {
			_, score, kind = e.max(clone, player, opponent, remainingDepth, false, alpha, beta, deadline)
		}
		return score, kind
	}

	clone.Board.ExecuteMovements(clone.StartingPlayer)
	clone.SwitchStartingPlayer()
	var score int
	var kind EvaluationType
	if fromMax {
		_, score, kind = e.max(clone, player, opponent, remainingDepth-1, true, alpha, beta, deadline)
	} else {
		_, score, kind = e.min(clone, player, opponent, remainingDepth-1, true, alpha, beta, deadline)
	}
	return depthAdjusted(score), kind
}

func expired(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}
