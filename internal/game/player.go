package game

// PlacementMove binds a hand piece to a free perimeter tile. Executing it
// forces the piece's direction to the tile's entry direction.
type PlacementMove struct {
	Piece PieceID
	Tile  TileID
}

// Execute places the piece and orients it towards the play area.
func (m PlacementMove) Execute(b *Board) {
	b.Place(m.Piece, m.Tile)
	b.pieces[m.Piece].Direction = b.tiles[m.Tile].Entry
}

// PiecesInHand returns the ids of a player's off-board pieces, by ascending
// type.
func (b *Board) PiecesInHand(owner PlayerID) []PieceID {
	var out []PieceID
	for pt := PieceOne; pt <= PieceFive; pt++ {
		id := pieceIndex(owner, pt)
		if !b.pieces[id].IsOnBoard() {
			out = append(out, id)
		}
	}
	return out
}

// LegalPlacements returns the cross product of a player's hand pieces and
// the free perimeter tiles.
func (b *Board) LegalPlacements(owner PlayerID) []PlacementMove {
	hand := b.PiecesInHand(owner)
	if len(hand) == 0 {
		return nil
	}
	tiles := b.LegalPlacementTiles()
	moves := make([]PlacementMove, 0, len(hand)*len(tiles))
	for _, pid := range hand {
		for _, tid := range tiles {
			moves = append(moves, PlacementMove{Piece: pid, Tile: tid})
		}
	}
	return moves
}
