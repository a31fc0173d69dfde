package engine

import (
	"fmt"
	"sync"

	"github.com/hailam/alphalcazar/internal/game"
)

// scoreCache memoises static board evaluations, keyed by the scoring
// player's id prefixed to the board notation. Reads dominate writes once a
// search warms up, so a RWMutex keeps the parallel configuration cheap.
type scoreCache struct {
	mu     sync.RWMutex
	scores map[string]int
}

func newScoreCache() *scoreCache {
	return &scoreCache{scores: make(map[string]int)}
}

func (c *scoreCache) get(key string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	score, ok := c.scores[key]
	return score, ok
}

func (c *scoreCache) put(key string, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scores[key] = score
}

func (c *scoreCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}

// resultScore maps a terminal game result to its evaluation.
func resultScore(r game.GameResult) int {
	switch r {
	case game.Win:
		return WinConditionScore
	case game.Loss:
		return -WinConditionScore
	}
	return 0
}

// Evaluate statically scores the board from player's perspective. Terminal
// positions score the win condition; otherwise each inner-board piece
// contributes its type score shaped by the tile multiplier.
func (e *Engine) Evaluate(b *game.Board, player, opponent game.PlayerID) int {
	key := fmt.Sprintf("%d#%s", player, b.Notation())
	if score, ok := e.scores.get(key); ok {
		return score
	}

	score := 0
	if result := b.Result(player, opponent); result != game.Ongoing {
		score = resultScore(result)
	} else {
		for _, pid := range b.PiecesOnBoard(true) {
			p := b.PieceByID(pid)
			t := b.TileByID(p.Tile)
			multiplier := tileScoreMultiplier[t.X][t.Y][p.Direction]
			pieceScore := placedPieceScore[p.Type] * multiplier / 100
			if p.Owner == player {
				score += pieceScore
			} else {
				score -= pieceScore
			}
		}
	}
	e.scores.put(key, score)
	return score
}

// depthAdjusted shifts a score one penalty step towards zero, without
// crossing it. Applied once per tick boundary the score is backed across,
// it makes the search prefer the fastest win and the slowest loss.
func depthAdjusted(score int) int {
	offset := DepthPenalty
	if abs(score) < offset {
		offset = abs(score)
	}
	if score > 0 {
		return score - offset
	}
	return score + offset
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
