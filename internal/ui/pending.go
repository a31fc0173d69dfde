// Package ui implements the Alphalcazar front-end with Ebitengine.
package ui

import (
	"sync"

	"github.com/hailam/alphalcazar/internal/game"
)

// PendingMove is the one-shot gate between the UI thread and the game-logic
// goroutine. The UI posts the move a player dropped on the board; the input
// strategy waits for it and consumes it.
type PendingMove struct {
	mu   sync.Mutex
	cond *sync.Cond
	move game.PlacementMove
	set  bool
}

// NewPendingMove returns an empty gate.
func NewPendingMove() *PendingMove {
	p := &PendingMove{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Post publishes a move and wakes the waiting strategy. A move already
// pending is replaced.
func (p *PendingMove) Post(m game.PlacementMove) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.move = m
	p.set = true
	p.cond.Signal()
}

// Wait blocks until a move is posted, clears the gate and returns the move.
func (p *PendingMove) Wait() game.PlacementMove {
	p.mu.Lock()
	defer p.mu.Unlock()
	for !p.set {
		p.cond.Wait()
	}
	p.set = false
	return p.move
}
