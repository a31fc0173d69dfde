package engine

import (
	"fmt"
	"sync"

	"github.com/hailam/alphalcazar/internal/game"
)

// EvaluationType classifies a transposition entry: the true minimax score,
// or a bound produced by a window cutoff.
type EvaluationType uint8

const (
	ExactEvaluation EvaluationType = iota
	AlphaCutoff
	BetaCutoff
)

// String returns the evaluation type name.
func (t EvaluationType) String() string {
	switch t {
	case ExactEvaluation:
		return "exact"
	case AlphaCutoff:
		return "alpha_cutoff"
	case BetaCutoff:
		return "beta_cutoff"
	}
	return "unknown"
}

// inverse mirrors the bound when a score flips sign for the opposite side.
func (t EvaluationType) inverse() EvaluationType {
	switch t {
	case AlphaCutoff:
		return BetaCutoff
	case BetaCutoff:
		return AlphaCutoff
	}
	return t
}

// Entry is one transposition record: the set of best moves with the stored
// score, the depth it was searched to, and the kind of bound.
type Entry struct {
	Moves []AbstractMove
	Score int
	Depth int
	Kind  EvaluationType
}

// TranspositionTable caches search results keyed by (side to move, board
// notation). Accesses are serialised for the parallel root configuration;
// the workload is read-mostly.
type TranspositionTable struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[string]Entry)}
}

// HashKey builds the cache key for a side-to-move and board notation.
func HashKey(side game.PlayerID, notation string) string {
	return fmt.Sprintf("%d#%s", side, notation)
}

// Probe looks up an entry usable at the given remaining depth and window.
// An entry qualifies when it was searched at least as deep as required and
// is either exact or a cutoff that the current window would reproduce.
// With inverse set, the stored score is negated and its bound mirrored
// before the window check, for cross-side reuse.
func (t *TranspositionTable) Probe(side game.PlayerID, notation string, remainingDepth, alpha, beta int, inverse bool) (Entry, bool) {
	t.mu.RLock()
	entry, ok := t.entries[HashKey(side, notation)]
	t.mu.RUnlock()
	if !ok || entry.Depth < remainingDepth {
		return Entry{}, false
	}

	score, kind := entry.Score, entry.Kind
	if inverse {
		score, kind = -score, kind.inverse()
	}
	usable := kind == ExactEvaluation ||
		(kind == BetaCutoff && score > beta) ||
		(kind == AlphaCutoff && score < alpha)
	if !usable {
		return Entry{}, false
	}
	return Entry{Moves: entry.Moves, Score: score, Depth: entry.Depth, Kind: kind}, true
}

// Store records a search result. An existing entry is only overwritten by a
// strictly deeper one, or by an exact evaluation at equal depth when the
// stored entry is a cutoff; an exact entry is never downgraded. With
// inverse set, the score is negated and the bound mirrored so the entry is
// stored from the keyed side's viewpoint.
func (t *TranspositionTable) Store(side game.PlayerID, notation string, moves []AbstractMove, score, depth int, kind EvaluationType, inverse bool) {
	if inverse {
		score, kind = -score, kind.inverse()
	}
	key := HashKey(side, notation)

	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.entries[key]; ok {
		deeper := depth > existing.Depth
		upgrade := depth == existing.Depth && kind == ExactEvaluation && existing.Kind != ExactEvaluation
		if !deeper && !upgrade {
			return
		}
	}
	t.entries[key] = Entry{Moves: moves, Score: score, Depth: depth, Kind: kind}
}

// Len returns the number of cached entries.
func (t *TranspositionTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Clear drops every entry.
func (t *TranspositionTable) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[string]Entry)
}

// Snapshot copies the table for persistence flushes.
func (t *TranspositionTable) Snapshot() map[string]Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]Entry, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Load merges hydrated entries into the table, keyed by their hash keys.
func (t *TranspositionTable) Load(entries map[string]Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range entries {
		t.entries[k] = v
	}
}
