package game

// TileID indexes a tile in the board's tile arena. Tiles are enumerated in
// lexicographic (x, y) order over the 21 existing coordinates.
type TileID int8

// NoTile marks the absence of a tile (off-grid, or a piece in hand).
const NoTile TileID = -1

// Tile is one square of the grid. Perimeter tiles carry the single direction
// a piece placed there is forced to move in (pointing into the play area).
type Tile struct {
	X, Y  int8
	Piece PieceID
	Entry Direction
}

// IsPerimeter reports whether the tile lies outside the 3x3 play area.
func (t *Tile) IsPerimeter() bool {
	return t.X == 0 || t.X == GridSize-1 || t.Y == 0 || t.Y == GridSize-1
}

// IsEmpty reports whether no piece occupies the tile.
func (t *Tile) IsEmpty() bool {
	return t.Piece == NoPiece
}

// IsPlacementLegal reports whether a hand piece may be placed on the tile.
func (t *Tile) IsPlacementLegal() bool {
	return t.IsPerimeter() && t.IsEmpty()
}

// entryDirection returns the forced placement direction of a perimeter tile,
// or NoDirection for play-area tiles.
func entryDirection(x, y int8) Direction {
	switch {
	case x == 0:
		return East
	case x == GridSize-1:
		return West
	case y == 0:
		return North
	case y == GridSize-1:
		return South
	}
	return NoDirection
}

// tileIndex maps (x, y) coordinates to tile ids; corners map to NoTile.
var tileIndex [GridSize][GridSize]TileID

func init() {
	var id TileID
	for x := int8(0); x < GridSize; x++ {
		for y := int8(0); y < GridSize; y++ {
			if isCorner(x, y) {
				tileIndex[x][y] = NoTile
				continue
			}
			tileIndex[x][y] = id
			id++
		}
	}
}

func isCorner(x, y int8) bool {
	return (x == 0 || x == GridSize-1) && (y == 0 || y == GridSize-1)
}
