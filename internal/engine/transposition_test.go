package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/alphalcazar/internal/game"
)

func someMoves(g *game.Game, n int) []AbstractMove {
	return LegalAbstractMoves(g, game.Player1, false)[:n]
}

func TestStoreAndProbeConsistency(t *testing.T) {
	g := game.NewGame()
	tt := NewTranspositionTable()
	notation := g.Board.Notation()
	moves := someMoves(g, 1)

	tt.Store(game.Player1, notation, moves, 20, 2, ExactEvaluation, false)

	entry, ok := tt.Probe(game.Player1, notation, 1, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, 20, entry.Score)
	assert.Equal(t, ExactEvaluation, entry.Kind)
	assert.Equal(t, moves, entry.Moves)

	// A probe requiring more depth than stored misses.
	_, ok = tt.Probe(game.Player1, notation, 3, 0, 0, false)
	assert.False(t, ok)

	// Another side's key is a different position.
	_, ok = tt.Probe(game.Player2, notation, 1, 0, 0, false)
	assert.False(t, ok)
}

func TestStoreOverwriteRules(t *testing.T) {
	g := game.NewGame()
	tt := NewTranspositionTable()
	notation := g.Board.Notation()
	moves := someMoves(g, 1)

	tt.Store(game.Player1, notation, moves, 20, 2, ExactEvaluation, false)

	// Same depth never downgrades an exact entry to a cutoff.
	tt.Store(game.Player1, notation, nil, 50, 2, BetaCutoff, false)
	// A shallower entry never overwrites.
	tt.Store(game.Player1, notation, nil, 50, 1, BetaCutoff, false)

	entry, ok := tt.Probe(game.Player1, notation, 1, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, 20, entry.Score)
	assert.Len(t, entry.Moves, 1)

	// A deeper exact entry replaces the stored one.
	tt.Store(game.Player1, notation, nil, 30, 4, ExactEvaluation, false)
	entry, ok = tt.Probe(game.Player1, notation, 1, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, 30, entry.Score)

	// An exact entry at equal depth upgrades a cutoff.
	other := g.Clone()
	placePiece(t, other, game.Player1, game.PieceTwo, 2, 2, game.North)
	otherNotation := other.Board.Notation()
	tt.Store(game.Player1, otherNotation, nil, 15, 2, AlphaCutoff, false)
	tt.Store(game.Player1, otherNotation, moves, 18, 2, ExactEvaluation, false)
	entry, ok = tt.Probe(game.Player1, otherNotation, 2, 0, 0, false)
	require.True(t, ok)
	assert.Equal(t, 18, entry.Score)
	assert.Equal(t, ExactEvaluation, entry.Kind)
}

func TestProbeCutoffWindowRules(t *testing.T) {
	g := game.NewGame()
	tt := NewTranspositionTable()
	notation := g.Board.Notation()

	// A beta cutoff entry only means "35 or higher". With beta = 50 the
	// node might be relevant after all, so the entry cannot be reused;
	// with beta = 30 it would be discarded again, so it can.
	tt.Store(game.Player1, notation, someMoves(g, 1), 35, 2, BetaCutoff, false)

	_, ok := tt.Probe(game.Player1, notation, 2, 0, 50, false)
	assert.False(t, ok)

	entry, ok := tt.Probe(game.Player1, notation, 2, 0, 30, false)
	require.True(t, ok)
	assert.Equal(t, 35, entry.Score)

	// Symmetrically for alpha cutoffs.
	other := g.Clone()
	placePiece(t, other, game.Player2, game.PieceTwo, 2, 2, game.North)
	otherNotation := other.Board.Notation()
	tt.Store(game.Player1, otherNotation, nil, -35, 2, AlphaCutoff, false)

	_, ok = tt.Probe(game.Player1, otherNotation, 2, -50, 0, false)
	assert.False(t, ok)

	entry, ok = tt.Probe(game.Player1, otherNotation, 2, -30, 0, false)
	require.True(t, ok)
	assert.Equal(t, -35, entry.Score)
}

func TestCrossSideProbeNegatesScore(t *testing.T) {
	g := game.NewGame()
	tt := NewTranspositionTable()
	notation := g.Board.Notation()

	tt.Store(game.Player1, notation, someMoves(g, 1), 40, 2, ExactEvaluation, false)

	entry, ok := tt.Probe(game.Player1, notation, 2, 0, 0, true)
	require.True(t, ok)
	assert.Equal(t, -40, entry.Score)
	assert.Equal(t, ExactEvaluation, entry.Kind)
}

func TestCrossSideStoreNegatesAndMirrors(t *testing.T) {
	g := game.NewGame()
	tt := NewTranspositionTable()
	notation := g.Board.Notation()

	// Stored from the opposite viewpoint: the keyed side sees -25 as an
	// alpha cutoff.
	tt.Store(game.Player2, notation, nil, 25, 2, BetaCutoff, true)

	entry, ok := tt.Probe(game.Player2, notation, 2, -20, 0, false)
	require.True(t, ok)
	assert.Equal(t, -25, entry.Score)
	assert.Equal(t, AlphaCutoff, entry.Kind)

	// Probing it back with inversion recovers the original bound.
	entry, ok = tt.Probe(game.Player2, notation, 2, 0, 20, true)
	require.True(t, ok)
	assert.Equal(t, 25, entry.Score)
	assert.Equal(t, BetaCutoff, entry.Kind)
}

func TestClearAndLen(t *testing.T) {
	g := game.NewGame()
	tt := NewTranspositionTable()
	tt.Store(game.Player1, g.Board.Notation(), nil, 1, 1, ExactEvaluation, false)
	assert.Equal(t, 1, tt.Len())
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
}
