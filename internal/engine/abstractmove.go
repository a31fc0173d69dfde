package engine

import (
	"fmt"

	"github.com/hailam/alphalcazar/internal/game"
)

// AbstractMove is a placement represented positionally: (owner, piece type,
// tile coordinates). It is independent of any concrete game instance, which
// is what lets the search store, order and compare moves across clones.
// The zero piece type marks the empty (pass) move.
type AbstractMove struct {
	X, Y      int8
	PieceType game.PieceType
	Owner     game.PlayerID
}

// EmptyMove returns the pass move for a player.
func EmptyMove(owner game.PlayerID) AbstractMove {
	return AbstractMove{Owner: owner}
}

// NewAbstractMove projects a concrete placement onto its positional form.
func NewAbstractMove(b *game.Board, m game.PlacementMove) AbstractMove {
	tile := b.TileByID(m.Tile)
	piece := b.PieceByID(m.Piece)
	return AbstractMove{
		X:         tile.X,
		Y:         tile.Y,
		PieceType: piece.Type,
		Owner:     piece.Owner,
	}
}

// IsEmpty reports whether this is the pass move.
func (m AbstractMove) IsEmpty() bool {
	return m.PieceType == game.NoPieceType
}

// ToPlacement resolves the move against a concrete board. The second return
// is false for the empty move.
func (m AbstractMove) ToPlacement(b *game.Board) (game.PlacementMove, bool) {
	if m.IsEmpty() {
		return game.PlacementMove{}, false
	}
	tid := b.TileIDAt(int(m.X), int(m.Y))
	if tid == game.NoTile {
		panic(fmt.Sprintf("engine: abstract move targets nonexistent tile (%d, %d)", m.X, m.Y))
	}
	return game.PlacementMove{Piece: b.PieceIDOf(m.Owner, m.PieceType), Tile: tid}, true
}

// Execute applies the move to a game, as a no-op for the empty move.
func (m AbstractMove) Execute(g *game.Game) {
	pm, ok := m.ToPlacement(&g.Board)
	if !ok {
		return
	}
	pm.Execute(&g.Board)
}

// String renders the move as "<type> -> (x, y)".
func (m AbstractMove) String() string {
	if m.IsEmpty() {
		return fmt.Sprintf("pass (player %d)", m.Owner)
	}
	return fmt.Sprintf("%d -> (%d, %d)", m.PieceType, m.X, m.Y)
}

// boardTarget returns the play-area tile the placed piece would move into on
// the next tick.
func (m AbstractMove) boardTarget(b *game.Board) *game.Tile {
	entry := b.Tile(int(m.X), int(m.Y)).Entry
	dx, dy := entry.Offsets()
	return b.Tile(int(m.X)+dx, int(m.Y)+dy)
}
