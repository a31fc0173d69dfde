package game

import "fmt"

// PieceID indexes a piece in the board's piece arena.
type PieceID int8

// NoPiece marks the absence of a piece on a tile.
const NoPiece PieceID = -1

// Piece is one of the ten game pieces. A piece is either on a tile (with a
// movement direction) or in its owner's hand (Tile == NoTile, no direction).
type Piece struct {
	Owner     PlayerID
	Type      PieceType
	Direction Direction
	Tile      TileID
}

// IsOnBoard reports whether the piece currently occupies a tile.
func (p *Piece) IsOnBoard() bool {
	return p.Tile != NoTile
}

// IsPushable reports whether the piece can be displaced by any other piece.
func (p *Piece) IsPushable() bool {
	return p.Type == PieceOne
}

// IsPusher reports whether the piece displaces chains of other pieces.
func (p *Piece) IsPusher() bool {
	return p.Type == PieceFour
}

// MovementOrder returns the piece's rank in the tick resolution order.
// Smaller types move first; among equal types the starting player moves first.
func (p *Piece) MovementOrder(starting PlayerID) int {
	order := int(p.Type) * 10
	if p.Owner != starting {
		order++
	}
	return order
}

// removeFromPlay returns the piece to its owner's hand.
func (p *Piece) removeFromPlay() {
	p.Tile = NoTile
	p.Direction = NoDirection
}

// String renders the piece as "<type><direction initial> (<owner>)".
func (p *Piece) String() string {
	dir := ""
	if p.Direction != NoDirection {
		dir = p.Direction.String()[:1]
	}
	return fmt.Sprintf("%d%s (%d)", p.Type, dir, p.Owner)
}

// pieceIndex returns the arena index of a player's piece of the given type.
func pieceIndex(owner PlayerID, pt PieceType) PieceID {
	return PieceID(owner-1)*PieceTypesPerPlayer + PieceID(pt-1)
}
