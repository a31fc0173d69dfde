// Command persist-transpositions fills the durable transposition store: for
// every legal opening move it plays out a full game with the tree-search
// strategy, then flushes the exact cache entries.
package main

import (
	"flag"
	"log"

	"github.com/hailam/alphalcazar/internal/engine"
	"github.com/hailam/alphalcazar/internal/game"
	"github.com/hailam/alphalcazar/internal/storage"
)

var (
	depth = flag.Int("depth", 2, "tree search depth")
	db    = flag.String("db", "", "transposition store directory (empty: default data dir)")
)

func main() {
	flag.Parse()

	search := engine.New(engine.Config{Depth: *depth})
	openings := engine.LegalAbstractMoves(game.NewGame(), game.Player1, false)

	for i, opening := range openings {
		log.Printf("[Persist] opening %d/%d: %s", i+1, len(openings), opening)

		g := game.NewGame()
		opening.Execute(g)
		g.Play(search, search)

		st, err := storage.Open(*db)
		if err != nil {
			log.Printf("[Persistence] could not open store: %v", err)
			continue
		}
		search.Persist(st)
		st.Close()
	}
}
