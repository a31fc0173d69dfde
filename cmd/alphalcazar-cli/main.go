// Command alphalcazar-cli plays Alphalcazar games in the terminal: engine
// against engine, random playout batches with analytics, or a human against
// the engine through text prompts.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/alphalcazar/internal/engine"
	"github.com/hailam/alphalcazar/internal/game"
	"github.com/hailam/alphalcazar/internal/storage"
)

var (
	mode       = flag.String("mode", "strategic", "game mode: strategic, random or human")
	depth      = flag.Int("depth", 2, "tree search depth")
	parallel   = flag.Bool("parallel", false, "parallel root search")
	games      = flag.Int("games", 500, "number of games in random mode")
	db         = flag.String("db", "", "transposition store directory (empty: no persistence)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	switch *mode {
	case "strategic":
		runStrategic()
	case "random":
		runRandom()
	case "human":
		runHuman()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// runStrategic plays one engine-vs-engine game, hydrating and flushing the
// transposition store when one is configured.
func runStrategic() {
	search := engine.New(engine.Config{Depth: *depth, Parallel: *parallel})
	withStore(search, func() {
		g := game.NewGame()
		result := g.Play(search, search)
		fmt.Println(g.Board.String())
		fmt.Printf("Result: %s after %d turns.\n", result, g.Turns)
	})
}

// runRandom plays a batch of random games and prints the analytics the way
// the original playout harness did.
func runRandom() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	random := game.RandomStrategy{Rng: rng}

	played := make([]*game.Game, 0, *games)
	for i := 0; i < *games; i++ {
		g := game.NewGame()
		g.Play(random, random)
		played = append(played, g)
	}
	analyzeGames(played)
}

// runHuman prompts for placements and answers with the engine.
func runHuman() {
	search := engine.New(engine.Config{Depth: *depth, Parallel: *parallel})
	withStore(search, func() {
		g := game.NewGame()
		result := g.Play(humanStrategy{}, search)
		fmt.Println(g.Board.String())
		fmt.Printf("Result: %s after %d turns.\n", result, g.Turns)
	})
}

// withStore hydrates the engine before fn and flushes after it. Persistence
// problems never stop a game.
func withStore(search *engine.Engine, fn func()) {
	if *db == "" {
		fn()
		return
	}
	st, err := storage.Open(*db)
	if err != nil {
		log.Printf("[Persistence] could not open store at %q: %v", *db, err)
		fn()
		return
	}
	search.Hydrate(st)
	st.Close()

	fn()

	st, err = storage.Open(*db)
	if err != nil {
		log.Printf("[Persistence] could not open store at %q: %v", *db, err)
		return
	}
	defer st.Close()
	search.Persist(st)
}

// analyzeGames prints per-result counts and average turn lengths.
func analyzeGames(played []*game.Game) {
	count := map[game.GameResult]int{}
	turns := map[game.GameResult]int{}
	for _, g := range played {
		count[g.Result]++
		turns[g.Result] += g.Turns
	}
	average := func(r game.GameResult) float64 {
		if count[r] == 0 {
			return 0
		}
		return float64(turns[r]) / float64(count[r])
	}
	fmt.Printf("Total games: %d.\n", len(played))
	fmt.Printf("Starting player wins: %d. Average turns: %.2f.\n", count[game.Win], average(game.Win))
	fmt.Printf("Second player wins: %d. Average turns: %.2f.\n", count[game.Loss], average(game.Loss))
	fmt.Printf("Draws: %d. Average turns: %.2f.\n", count[game.Draw], average(game.Draw))
}

// humanStrategy reads placements from stdin.
type humanStrategy struct{}

func (humanStrategy) Choose(g *game.Game, player, _ game.PlayerID, _ bool) (game.PlacementMove, bool) {
	legal := g.Board.LegalPlacements(player)
	if len(legal) == 0 {
		fmt.Println("You have no legal moves, skipping.")
		return game.PlacementMove{}, false
	}

	fmt.Println(g.Board.String())
	for {
		var pieceType, x, y int
		fmt.Print("Piece type: ")
		if _, err := fmt.Scan(&pieceType); err != nil {
			continue
		}
		fmt.Print("X coordinate: ")
		if _, err := fmt.Scan(&x); err != nil {
			continue
		}
		fmt.Print("Y coordinate: ")
		if _, err := fmt.Scan(&y); err != nil {
			continue
		}

		tid := g.Board.TileIDAt(x, y)
		if tid == game.NoTile || pieceType < int(game.PieceOne) || pieceType > int(game.PieceFive) {
			fmt.Printf("Invalid move (piece: %d, x: %d, y: %d), try again.\n", pieceType, x, y)
			continue
		}
		move := game.PlacementMove{Piece: g.Board.PieceIDOf(player, game.PieceType(pieceType)), Tile: tid}
		for _, m := range legal {
			if m == move {
				return move, true
			}
		}
		fmt.Printf("Invalid move (piece: %d, x: %d, y: %d), try again.\n", pieceType, x, y)
	}
}
