package engine

import (
	"sort"

	"github.com/hailam/alphalcazar/internal/game"
)

// LegalAbstractMoves enumerates a player's legal placements as abstract
// moves, optionally prunes symmetric duplicates, and sorts them best first.
// A player with no legal placement gets the single empty move.
func LegalAbstractMoves(g *game.Game, owner game.PlayerID, filterSymmetric bool) []AbstractMove {
	placements := g.Board.LegalPlacements(owner)
	moves := make([]AbstractMove, 0, len(placements))
	for _, pm := range placements {
		moves = append(moves, NewAbstractMove(&g.Board, pm))
	}
	if filterSymmetric {
		moves = filterSymmetricMoves(moves, &g.Board)
	}
	if len(moves) == 0 {
		moves = append(moves, EmptyMove(owner))
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return sortingOrder(moves[i], &g.Board) > sortingOrder(moves[j], &g.Board)
	})
	return moves
}

// sortingOrder buckets a move for descending exploration order. Moves whose
// piece appears unable to enter the board next tick rank last.
func sortingOrder(m AbstractMove, b *game.Board) int {
	if m.IsEmpty() {
		return orderEmptyMove
	}
	if entryAppearsBlocked(m, b) {
		return orderEntryBlocked
	}
	central := m.X == game.CenterCoordinate || m.Y == game.CenterCoordinate
	switch {
	case m.PieceType == game.PieceFour && central:
		return orderFourCentralRow
	case m.PieceType == game.PieceFour:
		return orderFourCornerRow
	case central:
		return orderCentralRow
	case m.PieceType == game.PieceOne:
		return orderOneCornerRow
	default:
		return orderCornerRow
	}
}

// entryAppearsBlocked reports whether the placed piece's target square is
// held by a piece it can neither push nor expect to evade: a same-or-greater
// type that is not about to exit the board.
func entryAppearsBlocked(m AbstractMove, b *game.Board) bool {
	if m.PieceType == game.PieceFour {
		return false
	}
	target := m.boardTarget(b)
	if target == nil || target.Piece == game.NoPiece {
		return false
	}
	occupant := b.PieceByID(target.Piece)
	if occupant.IsPushable() {
		return false
	}
	return occupant.Type >= m.PieceType && !b.IsExitingBoard(target.Piece)
}

// filterSymmetricMoves drops placements that are reflections of others when
// the position is symmetric around a center axis. On an empty board only the
// two representative tiles (4, 2) and (4, 3) remain.
func filterSymmetricMoves(moves []AbstractMove, b *game.Board) []AbstractMove {
	pieces := b.PiecesOnBoard(false)
	xSymmetric, ySymmetric := true, true
	for _, pid := range pieces {
		p := b.PieceByID(pid)
		t := b.TileByID(p.Tile)
		if t.Y != game.CenterCoordinate || p.Direction == game.North || p.Direction == game.South {
			xSymmetric = false
		}
		if t.X != game.CenterCoordinate || p.Direction == game.East || p.Direction == game.West {
			ySymmetric = false
		}
	}

	keep := func(m AbstractMove) bool {
		switch {
		case len(pieces) == 0:
			return m.X == game.GridSize-1 && (m.Y == game.CenterCoordinate || m.Y == game.CenterCoordinate+1)
		case xSymmetric:
			return m.Y >= game.CenterCoordinate
		case ySymmetric:
			return m.X >= game.CenterCoordinate
		}
		return true
	}

	filtered := moves[:0]
	for _, m := range moves {
		if keep(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
