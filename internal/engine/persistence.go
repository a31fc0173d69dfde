package engine

import (
	"log"

	"github.com/hailam/alphalcazar/internal/game"
	"github.com/hailam/alphalcazar/internal/storage"
)

// AllAbstractMoves enumerates every legal abstract placement of both
// players plus the two pass moves, in a fixed order. The slice index is the
// move's persistent id.
func AllAbstractMoves() []AbstractMove {
	b := game.NewBoard()
	var moves []AbstractMove
	for _, owner := range []game.PlayerID{game.Player1, game.Player2} {
		for pt := game.PieceOne; pt <= game.PieceFive; pt++ {
			for _, tid := range b.LegalPlacementTiles() {
				t := b.TileByID(tid)
				moves = append(moves, AbstractMove{X: t.X, Y: t.Y, PieceType: pt, Owner: owner})
			}
		}
	}
	moves = append(moves, EmptyMove(game.Player1), EmptyMove(game.Player2))
	return moves
}

// moveRows converts the move dictionary to its storage form. The empty move
// serialises with -1 coordinates and piece type.
func moveRows(moves []AbstractMove) []storage.MoveRow {
	rows := make([]storage.MoveRow, len(moves))
	for id, m := range moves {
		row := storage.MoveRow{ID: id, X: int(m.X), Y: int(m.Y), PieceType: int(m.PieceType), OwnerID: int(m.Owner)}
		if m.IsEmpty() {
			row.X, row.Y, row.PieceType = -1, -1, -1
		}
		rows[id] = row
	}
	return rows
}

func moveFromRow(row storage.MoveRow) AbstractMove {
	if row.PieceType < 0 {
		return EmptyMove(game.PlayerID(row.OwnerID))
	}
	return AbstractMove{
		X:         int8(row.X),
		Y:         int8(row.Y),
		PieceType: game.PieceType(row.PieceType),
		Owner:     game.PlayerID(row.OwnerID),
	}
}

// Hydrate loads persisted transposition entries into the in-memory table.
// It is skipped when the table already holds entries, and any storage
// failure is a warning: the engine keeps running from memory.
func (e *Engine) Hydrate(st *storage.Store) {
	if e.tt.Len() > 0 {
		log.Printf("[Persistence] transposition cache already hydrated, skipping")
		return
	}
	log.Printf("[Persistence] hydrating transposition cache...")

	storedMoves, err := st.LoadMoves()
	if err != nil {
		log.Printf("[Persistence] error loading moves table: %v", err)
		return
	}
	movesByID := make(map[int]AbstractMove, len(storedMoves))
	for _, row := range storedMoves {
		movesByID[row.ID] = moveFromRow(row)
	}

	rows, err := st.ReadAllEntries()
	if err != nil {
		log.Printf("[Persistence] error reading transposition cache: %v", err)
		return
	}
	entries := make(map[string]Entry, len(rows))
	for _, row := range rows {
		moves := make([]AbstractMove, 0, len(row.MoveIDs))
		for _, id := range row.MoveIDs {
			move, ok := movesByID[id]
			if !ok {
				log.Printf("[Persistence] unknown move id %d in entry %q, skipping entry", id, row.HashKey)
				moves = nil
				break
			}
			moves = append(moves, move)
		}
		if moves == nil && len(row.MoveIDs) > 0 {
			continue
		}
		entries[row.HashKey] = Entry{
			Moves: moves,
			Score: row.Score,
			Depth: row.Depth,
			Kind:  EvaluationType(row.Kind),
		}
	}
	e.tt.Load(entries)
	log.Printf("[Persistence] hydrated transposition cache with %d entries", len(entries))
}

// Persist flushes the exact, deep-enough transposition entries to the
// store. Failures are logged and swallowed.
func (e *Engine) Persist(st *storage.Store) {
	snapshot := e.tt.Snapshot()
	log.Printf("[Persistence] persisting transposition cache with %d entries", len(snapshot))

	dictionary := AllAbstractMoves()
	if err := st.EnsureMoves(moveRows(dictionary)); err != nil {
		log.Printf("[Persistence] error populating moves table: %v", err)
		return
	}
	idsByMove := make(map[AbstractMove]int, len(dictionary))
	for id, m := range dictionary {
		idsByMove[m] = id
	}

	var rows []storage.EntryRow
	for key, entry := range snapshot {
		// Only exact evaluations of sufficient depth are worth keeping.
		if entry.Kind != ExactEvaluation || entry.Depth < MinDepthToPersist {
			continue
		}
		ids := make([]int, 0, len(entry.Moves))
		for _, m := range entry.Moves {
			ids = append(ids, idsByMove[m])
		}
		rows = append(rows, storage.EntryRow{
			HashKey: key,
			MoveIDs: ids,
			Score:   entry.Score,
			Depth:   entry.Depth,
			Kind:    uint8(entry.Kind),
		})
	}
	if err := st.UpsertEntries(rows); err != nil {
		log.Printf("[Persistence] error persisting transposition cache: %v", err)
		return
	}
	log.Printf("[Persistence] persisted %d exact entries", len(rows))
}
