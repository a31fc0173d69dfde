package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNotation is returned when a game notation string cannot be
// parsed.
var ErrInvalidNotation = errors.New("invalid game notation")

// tileNotation renders a tile as "<type>|<owner>|<direction>", or "" when
// empty.
func (b *Board) tileNotation(t *Tile) string {
	if t.Piece == NoPiece {
		return ""
	}
	p := &b.pieces[t.Piece]
	return fmt.Sprintf("%d|%d|%s", p.Type, p.Owner, p.Direction)
}

// Notation renders the board as the comma-separated tile list, in
// lexicographic (x, y) order over the 21 existing coordinates.
func (b *Board) Notation() string {
	var sb strings.Builder
	for i := range b.tiles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(b.tileNotation(&b.tiles[i]))
	}
	return sb.String()
}

// Notation renders the full game state as
// "<starting_player>#<tile_0>,...,<tile_20>". The string uniquely identifies
// a (position, side-to-move) pair and doubles as the cache hash key.
func (g *Game) Notation() string {
	return fmt.Sprintf("%d#%s", g.StartingPlayer, g.Board.Notation())
}

// ParseGame reconstructs a game from its string notation.
func ParseGame(notation string) (*Game, error) {
	head, boardPart, found := strings.Cut(notation, "#")
	if !found {
		return nil, fmt.Errorf("%w: missing # separator", ErrInvalidNotation)
	}
	starting, err := parsePlayerID(head)
	if err != nil {
		return nil, err
	}

	g := NewGame()
	g.StartingPlayer = starting

	fields := strings.Split(boardPart, ",")
	if len(fields) != NumTiles {
		return nil, fmt.Errorf("%w: expected %d tiles, got %d", ErrInvalidNotation, NumTiles, len(fields))
	}
	for i, field := range fields {
		if field == "" {
			continue
		}
		if err := g.Board.parseTilePiece(TileID(i), field); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (b *Board) parseTilePiece(tid TileID, field string) error {
	parts := strings.Split(field, "|")
	if len(parts) != 3 {
		return fmt.Errorf("%w: malformed tile %q", ErrInvalidNotation, field)
	}
	pt, err := parsePieceType(parts[0])
	if err != nil {
		return err
	}
	owner, err := parsePlayerID(parts[1])
	if err != nil {
		return err
	}
	dir, err := ParseDirection(parts[2])
	if err != nil {
		return err
	}

	pid := pieceIndex(owner, pt)
	if b.pieces[pid].IsOnBoard() {
		return fmt.Errorf("%w: piece %d of player %d appears twice", ErrInvalidNotation, pt, owner)
	}
	b.Place(pid, tid)
	b.pieces[pid].Direction = dir
	return nil
}

func parsePlayerID(s string) (PlayerID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || (n != int(Player1) && n != int(Player2)) {
		return NoPlayer, fmt.Errorf("%w: unknown player id %q", ErrInvalidNotation, s)
	}
	return PlayerID(n), nil
}

func parsePieceType(s string) (PieceType, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(PieceOne) || n > int(PieceFive) {
		return NoPieceType, fmt.Errorf("%w: unknown piece type %q", ErrInvalidNotation, s)
	}
	return PieceType(n), nil
}
