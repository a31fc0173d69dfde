package ui

import "github.com/hailam/alphalcazar/internal/game"

// InputStrategy plays the moves a user drops on the board. It blocks the
// game-logic goroutine on the pending-move gate until a legal placement
// arrives.
type InputStrategy struct {
	Display *Display
}

// Choose implements game.Strategy.
func (s InputStrategy) Choose(g *game.Game, player, _ game.PlayerID, _ bool) (game.PlacementMove, bool) {
	s.Display.SetState(g.Clone())

	legal := g.Board.LegalPlacements(player)
	if len(legal) == 0 {
		return game.PlacementMove{}, false
	}

	s.Display.setAwaiting(player)
	defer s.Display.setAwaiting(game.NoPlayer)
	for {
		move := s.Display.pending.Wait()
		for _, m := range legal {
			if m == move {
				return move, true
			}
		}
	}
}

// SyncingStrategy wraps another strategy and publishes a board snapshot to
// the display before every choice, so the UI renders the opponent's
// placements while it thinks.
type SyncingStrategy struct {
	Inner   game.Strategy
	Display *Display
}

// Choose implements game.Strategy.
func (s SyncingStrategy) Choose(g *game.Game, player, opponent game.PlayerID, isStarting bool) (game.PlacementMove, bool) {
	s.Display.SetState(g.Clone())
	return s.Inner.Choose(g, player, opponent, isStarting)
}
