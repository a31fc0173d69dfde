package game

import "math/rand"

// RandomStrategy plays a uniformly random legal placement. Used for
// playouts and analytics baselines.
type RandomStrategy struct {
	Rng *rand.Rand
}

// Choose picks a random hand piece and a random free perimeter tile.
func (s RandomStrategy) Choose(g *Game, player, _ PlayerID, _ bool) (PlacementMove, bool) {
	hand := g.Board.PiecesInHand(player)
	tiles := g.Board.LegalPlacementTiles()
	if len(hand) == 0 || len(tiles) == 0 {
		return PlacementMove{}, false
	}
	return PlacementMove{
		Piece: hand[s.Rng.Intn(len(hand))],
		Tile:  tiles[s.Rng.Intn(len(tiles))],
	}, true
}
