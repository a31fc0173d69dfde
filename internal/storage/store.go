package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes. Moves are written once, keyed by their compact ids, so the
// transposition rows only carry id references.
const (
	movePrefix        = "move:"
	entryPrefix       = "tt:"
	keyMovesPopulated = "moves_populated"
)

// MoveRow is one row of the moves table. Coordinates and piece type are -1
// for the empty (pass) move.
type MoveRow struct {
	ID        int `json:"id"`
	X         int `json:"x"`
	Y         int `json:"y"`
	PieceType int `json:"piece_type"`
	OwnerID   int `json:"owner_id"`
}

// EntryRow is one persisted transposition entry. Moves are referenced by
// their ids in the moves table.
type EntryRow struct {
	HashKey string `json:"board_hash_key"`
	MoveIDs []int  `json:"best_move_ids"`
	Score   int    `json:"score"`
	Depth   int    `json:"depth"`
	Kind    uint8  `json:"evaluation_type"`
}

// Store wraps BadgerDB for durable transposition storage. It is opened for
// the duration of a hydrate or flush and closed before returning.
type Store struct {
	db *badger.DB
}

// Open opens the store at the given directory. An empty dsn falls back to
// the default database directory under the OS data dir.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dir, err := GetDatabaseDir()
		if err != nil {
			return nil, err
		}
		dsn = dir
	}

	opts := badger.DefaultOptions(dsn)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// EnsureMoves populates the moves table on first use. Subsequent calls are
// no-ops.
func (s *Store) EnsureMoves(moves []MoveRow) error {
	populated := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyMovesPopulated))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		populated = true
		return nil
	})
	if err != nil || populated {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, row := range moves {
			data, err := json.Marshal(row)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(moveKey(row.ID)), data); err != nil {
				return err
			}
		}
		return txn.Set([]byte(keyMovesPopulated), []byte("done"))
	})
}

// LoadMoves reads the full moves table.
func (s *Store) LoadMoves() ([]MoveRow, error) {
	var moves []MoveRow
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(movePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var row MoveRow
				if err := json.Unmarshal(val, &row); err != nil {
					return err
				}
				moves = append(moves, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return moves, err
}

// UpsertEntries writes transposition rows, replacing existing ones with the
// same hash key.
func (s *Store) UpsertEntries(rows []EntryRow) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if err := wb.Set([]byte(entryPrefix+row.HashKey), data); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// ReadAllEntries reads every persisted transposition row.
func (s *Store) ReadAllEntries() ([]EntryRow, error) {
	var rows []EntryRow
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var row EntryRow
				if err := json.Unmarshal(val, &row); err != nil {
					return err
				}
				rows = append(rows, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

func moveKey(id int) string {
	return fmt.Sprintf("%s%04d", movePrefix, id)
}
