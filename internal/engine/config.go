// Package engine implements the Alphalcazar adversarial search: alpha-beta
// minimax over placement half-plies with a transposition table, a board
// score cache, symmetry pruning and optional parallel root search.
package engine

import "github.com/hailam/alphalcazar/internal/game"

// WinConditionScore is the terminal score magnitude.
const WinConditionScore = 1000

// DepthPenalty nudges the search towards faster wins and slower losses.
// It must stay low enough to never alter the result of a position.
const DepthPenalty = 1

// MinDepthToPersist is the minimum explored depth for a transposition entry
// to be written to the durable store.
const MinDepthToPersist = 2

// placedPieceScore is the value of each piece type while on the inner board.
var placedPieceScore = [game.PieceTypesPerPlayer + 1]int{
	game.PieceOne:   80,
	game.PieceTwo:   120,
	game.PieceThree: 140,
	game.PieceFour:  -80,
	game.PieceFive:  100,
}

// Tile multipliers, in hundredths. Piece scores are multiples of 20 and the
// multipliers multiples of 5, so every product divides evenly by 100.
const (
	neutralMultiplier         = 100
	centerPieceMultiplier     = 200
	aboutToExitMultiplier     = 70
	freshCornerMultiplier     = 155
	freshCenterLaneMultiplier = 170
)

// tileScoreMultiplier is indexed by play-area (x, y) and direction. It
// encodes the strategic shaping of the inner board: center bonus, exit
// penalty, fresh corner and fresh center-lane entry bonuses.
var tileScoreMultiplier [game.PlayAreaSize + 1][game.PlayAreaSize + 1][5]int

func init() {
	for x := 1; x <= game.PlayAreaSize; x++ {
		for y := 1; y <= game.PlayAreaSize; y++ {
			for _, d := range []game.Direction{game.North, game.South, game.East, game.West} {
				tileScoreMultiplier[x][y][d] = multiplierFor(x, y, d)
			}
		}
	}
}

func multiplierFor(x, y int, d game.Direction) int {
	if x == game.CenterCoordinate && y == game.CenterCoordinate {
		return centerPieceMultiplier
	}
	// A piece facing the nearest edge is about to leave the board.
	if (x == 1 && d == game.West) || (x == game.PlayAreaSize && d == game.East) ||
		(y == 1 && d == game.South) || (y == game.PlayAreaSize && d == game.North) {
		return aboutToExitMultiplier
	}
	corner := x != game.CenterCoordinate && y != game.CenterCoordinate
	if corner {
		// Inner corners reward pieces that just entered along either axis.
		return freshCornerMultiplier
	}
	// Edge centers reward pieces that just entered the center lane.
	entering := (x == 1 && d == game.East) || (x == game.PlayAreaSize && d == game.West) ||
		(y == 1 && d == game.North) || (y == game.PlayAreaSize && d == game.South)
	if entering {
		return freshCenterLaneMultiplier
	}
	return neutralMultiplier
}

// Move ordering buckets, sorted descending. Pushers are explored first,
// center-lane entries before corner entries, piece one last, and moves whose
// entry appears blocked dead last.
const (
	orderEmptyMove      = 0
	orderEntryBlocked   = 1
	orderOneCornerRow   = 2
	orderCornerRow      = 3
	orderCentralRow     = 4
	orderFourCornerRow  = 5
	orderFourCentralRow = 6
)
