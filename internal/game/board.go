package game

import (
	"fmt"
	"sort"
	"strings"
)

// Board owns the tile and piece arenas. Copying a Board copies the whole
// position; both arenas are fixed-size arrays.
type Board struct {
	tiles  [NumTiles]Tile
	pieces [NumPieces]Piece
}

// NewBoard returns an empty board with all ten pieces in hand.
func NewBoard() Board {
	var b Board
	var id TileID
	for x := int8(0); x < GridSize; x++ {
		for y := int8(0); y < GridSize; y++ {
			if isCorner(x, y) {
				continue
			}
			b.tiles[id] = Tile{X: x, Y: y, Piece: NoPiece, Entry: entryDirection(x, y)}
			id++
		}
	}
	for _, owner := range []PlayerID{Player1, Player2} {
		for pt := PieceOne; pt <= PieceFive; pt++ {
			b.pieces[pieceIndex(owner, pt)] = Piece{Owner: owner, Type: pt, Tile: NoTile}
		}
	}
	return b
}

// Tile returns the tile at (x, y), or nil for off-grid or corner coordinates.
func (b *Board) Tile(x, y int) *Tile {
	if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
		return nil
	}
	id := tileIndex[x][y]
	if id == NoTile {
		return nil
	}
	return &b.tiles[id]
}

// TileByID returns the tile with the given id.
func (b *Board) TileByID(id TileID) *Tile {
	return &b.tiles[id]
}

// Tiles returns all 21 tiles in notation order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, NumTiles)
	for i := range b.tiles {
		out[i] = &b.tiles[i]
	}
	return out
}

// PieceByID returns the piece with the given id.
func (b *Board) PieceByID(id PieceID) *Piece {
	return &b.pieces[id]
}

// Piece returns a player's piece of the given type.
func (b *Board) Piece(owner PlayerID, pt PieceType) *Piece {
	return &b.pieces[pieceIndex(owner, pt)]
}

// PieceIDOf returns the arena id of a player's piece of the given type.
func (b *Board) PieceIDOf(owner PlayerID, pt PieceType) PieceID {
	return pieceIndex(owner, pt)
}

// TileIDAt returns the arena id of the tile at (x, y), or NoTile for
// off-grid or corner coordinates.
func (b *Board) TileIDAt(x, y int) TileID {
	if x < 0 || x >= GridSize || y < 0 || y >= GridSize {
		return NoTile
	}
	return tileIndex[x][y]
}

// Place puts a piece on a tile and links both sides of the relation.
// Placing onto an occupied tile is a programmer error and panics.
func (b *Board) Place(pid PieceID, tid TileID) {
	tile := &b.tiles[tid]
	if tile.Piece != NoPiece {
		panic(fmt.Sprintf("game: tile (%d, %d) is already occupied by %s",
			tile.X, tile.Y, b.pieces[tile.Piece].String()))
	}
	tile.Piece = pid
	b.pieces[pid].Tile = tid
}

// removeFromPlay unlinks a piece from its tile and returns it to hand.
func (b *Board) removeFromPlay(pid PieceID) {
	p := &b.pieces[pid]
	if p.Tile != NoTile {
		b.tiles[p.Tile].Piece = NoPiece
	}
	p.removeFromPlay()
}

// IsExitingBoard reports whether an on-board piece faces the nearest board
// edge from an inner edge tile, so that its next movement leaves the play
// area.
func (b *Board) IsExitingBoard(pid PieceID) bool {
	p := &b.pieces[pid]
	if p.Tile == NoTile {
		return false
	}
	t := &b.tiles[p.Tile]
	return (t.X == 1 && p.Direction == West) ||
		(t.X == PlayAreaSize && p.Direction == East) ||
		(t.Y == 1 && p.Direction == South) ||
		(t.Y == PlayAreaSize && p.Direction == North)
}

// PiecesOnBoard returns the ids of all pieces currently on a tile, in
// notation order of their tiles.
func (b *Board) PiecesOnBoard(excludePerimeter bool) []PieceID {
	var out []PieceID
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.Piece == NoPiece {
			continue
		}
		if excludePerimeter && t.IsPerimeter() {
			continue
		}
		out = append(out, t.Piece)
	}
	return out
}

// LegalPlacementTiles returns the free perimeter tiles.
func (b *Board) LegalPlacementTiles() []TileID {
	var out []TileID
	for i := range b.tiles {
		if b.tiles[i].IsPlacementLegal() {
			out = append(out, TileID(i))
		}
	}
	return out
}

// IsFull reports whether every play-area tile is occupied.
func (b *Board) IsFull() bool {
	for i := range b.tiles {
		if !b.tiles[i].IsPerimeter() && b.tiles[i].Piece == NoPiece {
			return false
		}
	}
	return true
}

// movementOrderedPieces returns the on-board pieces in tick resolution order.
func (b *Board) movementOrderedPieces(starting PlayerID) []PieceID {
	pieces := b.PiecesOnBoard(false)
	sort.SliceStable(pieces, func(i, j int) bool {
		return b.pieces[pieces[i]].MovementOrder(starting) < b.pieces[pieces[j]].MovementOrder(starting)
	})
	return pieces
}

// ExecuteMovements resolves one board tick in place and returns the number
// of committed sub-movements.
func (b *Board) ExecuteMovements(starting PlayerID) int {
	executed := 0
	for _, pid := range b.movementOrderedPieces(starting) {
		// The piece may have been removed from the board by an earlier movement.
		if !b.pieces[pid].IsOnBoard() {
			continue
		}
		executed += b.executePieceMovement(pid)
	}
	return executed
}

// pushMovement is one link of a push chain. A NoTile target pushes the piece
// off the grid.
type pushMovement struct {
	from, to TileID
}

// executePieceMovement resolves a single piece's movement and returns the
// number of committed sub-movements.
func (b *Board) executePieceMovement(pid PieceID) int {
	p := &b.pieces[pid]
	dx, dy := p.Direction.Offsets()
	source := &b.tiles[p.Tile]
	target := b.Tile(int(source.X)+dx, int(source.Y)+dy)

	switch {
	case target == nil || target.IsEmpty():
		// An off-grid or perimeter target commits as an exit from play.
		b.commitMovement(pid, tileIDOf(target))
		return 1

	case p.IsPusher():
		chain := b.chainedPushMovements(p.Tile, tileIDOf(target))
		for i := len(chain) - 1; i >= 0; i-- {
			b.commitMovement(b.tiles[chain[i].from].Piece, chain[i].to)
		}
		return len(chain)

	case b.pieces[target.Piece].IsPushable() && !p.IsPushable():
		displaced := target.Piece
		displacedTarget := b.Tile(int(target.X)+dx, int(target.Y)+dy)
		if displacedTarget == nil || displacedTarget.IsEmpty() {
			b.commitMovement(displaced, tileIDOf(displacedTarget))
			b.commitMovement(pid, tileIDOf(target))
			return 2
		}
		b.removeStuckInPerimeter(pid)
		return 0

	default:
		b.removeStuckInPerimeter(pid)
		return 0
	}
}

// removeStuckInPerimeter removes a blocked piece from play if it failed to
// enter the board from a perimeter tile.
func (b *Board) removeStuckInPerimeter(pid PieceID) {
	if b.tiles[b.pieces[pid].Tile].IsPerimeter() {
		b.removeFromPlay(pid)
	}
}

// chainedPushMovements computes the push chain starting at source towards
// target. Each occupied tile pushes the next one along the same direction;
// a chain running off the grid ends with a NoTile target.
func (b *Board) chainedPushMovements(source, target TileID) []pushMovement {
	src := &b.tiles[source]
	tgt := &b.tiles[target]
	dx, dy := int(tgt.X-src.X), int(tgt.Y-src.Y)

	var chain []pushMovement
	pushSource, pushTarget := src, tgt
	for pushSource != nil && pushSource.Piece != NoPiece {
		chain = append(chain, pushMovement{from: tileIDOf(pushSource), to: tileIDOf(pushTarget)})
		pushSource = pushTarget
		if pushSource == nil {
			break
		}
		pushTarget = b.Tile(int(pushSource.X)+dx, int(pushSource.Y)+dy)
		if pushTarget == nil && pushSource.Piece != NoPiece {
			chain = append(chain, pushMovement{from: tileIDOf(pushSource), to: NoTile})
			break
		}
	}
	return chain
}

// commitMovement moves a piece from its tile to the target. Pieces committed
// to NoTile or to a perimeter tile are removed from play.
func (b *Board) commitMovement(pid PieceID, target TileID) {
	b.removeFromPlay(pid)
	if target == NoTile || b.tiles[target].IsPerimeter() {
		return
	}
	b.Place(pid, target)
}

// tileIDOf converts a tile pointer back to its id; nil maps to NoTile.
func tileIDOf(t *Tile) TileID {
	if t == nil {
		return NoTile
	}
	return tileIndex[t.X][t.Y]
}

// Result returns the game outcome from player's perspective after a tick.
// Both players completing a row simultaneously is a draw.
func (b *Board) Result(player, opponent PlayerID) GameResult {
	playerWins := b.hasCompleteRow(player)
	opponentWins := b.hasCompleteRow(opponent)
	switch {
	case playerWins && opponentWins:
		return Draw
	case playerWins:
		return Win
	case opponentWins:
		return Loss
	}
	return Ongoing
}

// hasCompleteRow reports whether the player owns a full row, column or
// diagonal of the play area.
func (b *Board) hasCompleteRow(owner PlayerID) bool {
	for main := 1; main <= PlayAreaSize; main++ {
		if b.checkLineCompleteness(owner, main, false) || b.checkLineCompleteness(owner, main, true) {
			return true
		}
	}
	// Both diagonals run through the center tile.
	if !b.tileOwnedBy(CenterCoordinate, CenterCoordinate, owner) {
		return false
	}
	diagonals := [2][2][2]int{
		{{-1, -1}, {1, 1}},
		{{-1, 1}, {1, -1}},
	}
	for _, ends := range diagonals {
		complete := true
		for _, offset := range ends {
			if !b.tileOwnedBy(CenterCoordinate+offset[0], CenterCoordinate+offset[1], owner) {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

func (b *Board) checkLineCompleteness(owner PlayerID, main int, vertical bool) bool {
	for secondary := 1; secondary <= PlayAreaSize; secondary++ {
		x, y := main, secondary
		if vertical {
			x, y = secondary, main
		}
		if !b.tileOwnedBy(x, y, owner) {
			return false
		}
	}
	return true
}

func (b *Board) tileOwnedBy(x, y int, owner PlayerID) bool {
	t := b.Tile(x, y)
	return t != nil && t.Piece != NoPiece && b.pieces[t.Piece].Owner == owner
}

// String renders the 3x3 play area, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := PlayAreaSize; y >= 1; y-- {
		if y < PlayAreaSize {
			sb.WriteString("\n---------------------\n")
		}
		for x := 1; x <= PlayAreaSize; x++ {
			if x > 1 {
				sb.WriteString(" | ")
			}
			t := b.Tile(x, y)
			if t.Piece == NoPiece {
				sb.WriteString("       ")
			} else {
				sb.WriteString(b.pieces[t.Piece].String())
			}
		}
	}
	return sb.String()
}
