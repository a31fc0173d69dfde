package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementForcesEntryDirection(t *testing.T) {
	cases := []struct {
		x, y int
		dir  Direction
	}{
		{0, 2, East},
		{4, 1, West},
		{2, 0, North},
		{3, 4, South},
	}
	for _, tc := range cases {
		b := NewBoard()
		move := PlacementMove{Piece: b.PieceIDOf(Player1, PieceThree), Tile: b.TileIDAt(tc.x, tc.y)}
		move.Execute(&b)
		piece := b.Piece(Player1, PieceThree)
		assert.Equal(t, tc.dir, piece.Direction, "entry direction at (%d, %d)", tc.x, tc.y)
		assert.Equal(t, b.TileIDAt(tc.x, tc.y), piece.Tile)
	}
}

func TestLegalPlacementsCrossProduct(t *testing.T) {
	g := NewGame()
	assert.Len(t, g.Board.LegalPlacements(Player1), PieceTypesPerPlayer*NumPerimeterTiles)

	// One piece on a perimeter tile: one fewer tile, one fewer hand piece.
	move := PlacementMove{Piece: g.Board.PieceIDOf(Player1, PieceTwo), Tile: g.Board.TileIDAt(0, 2)}
	move.Execute(&g.Board)
	assert.Len(t, g.Board.LegalPlacements(Player1), 4*(NumPerimeterTiles-1))
	assert.Len(t, g.Board.LegalPlacements(Player2), 5*(NumPerimeterTiles-1))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame()
	placePiece(t, &g.Board, Player1, PieceFive, 2, 2, North)
	g.StartingPlayer = Player2

	clone := g.Clone()
	require.Equal(t, g.Notation(), clone.Notation())

	// Mutating the clone leaves the original untouched.
	clone.Board.ExecuteMovements(Player2)
	clone.SwitchStartingPlayer()
	assert.Equal(t, g.Board.TileIDAt(2, 2), g.Board.Piece(Player1, PieceFive).Tile)
	assert.Equal(t, Player2, g.StartingPlayer)
	assert.NotEqual(t, g.Notation(), clone.Notation())
}

func TestPlayRoundSwitchesStartingPlayer(t *testing.T) {
	g := NewGame()
	rng := rand.New(rand.NewSource(1))
	random := RandomStrategy{Rng: rng}

	require.Equal(t, Player1, g.StartingPlayer)
	g.PlayRound(random, random)
	if g.Result == Ongoing {
		assert.Equal(t, Player2, g.StartingPlayer)
	}
	assert.Equal(t, 1, g.Turns)
	assert.Len(t, g.MovesOf(Player1), 1)
	assert.Len(t, g.MovesOf(Player2), 1)
}

func TestRandomGamesTerminate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := RandomStrategy{Rng: rng}
	results := map[GameResult]int{}
	for i := 0; i < 50; i++ {
		g := NewGame()
		for rounds := 0; g.Result == Ongoing && rounds < 1000; rounds++ {
			g.PlayRound(random, random)
		}
		require.NotEqual(t, Ongoing, g.Result, "random game %d did not terminate", i)
		results[g.Result]++
	}
	// Both players win some random games.
	assert.Greater(t, results[Win], 0)
	assert.Greater(t, results[Loss], 0)
}

func TestPassingStrategyIsRecorded(t *testing.T) {
	g := NewGame()
	// Fill every perimeter tile so neither player can place.
	perimeter := g.Board.LegalPlacementTiles()
	require.Len(t, perimeter, NumPerimeterTiles)
	types := []PieceType{PieceOne, PieceTwo, PieceThree, PieceFour, PieceFive}
	for i, tid := range perimeter {
		if i >= NumPieces {
			break
		}
		owner := Player1
		if i >= PieceTypesPerPlayer {
			owner = Player2
		}
		move := PlacementMove{Piece: g.Board.PieceIDOf(owner, types[i%PieceTypesPerPlayer]), Tile: tid}
		move.Execute(&g.Board)
	}

	rng := rand.New(rand.NewSource(3))
	random := RandomStrategy{Rng: rng}
	move, ok := random.Choose(g, Player1, Player2, true)
	assert.False(t, ok)
	assert.Equal(t, PlacementMove{}, move)

	g.executePlacement(random, Player1, Player2, true)
	require.Len(t, g.MovesOf(Player1), 1)
	assert.True(t, g.MovesOf(Player1)[0].Passed)
}
