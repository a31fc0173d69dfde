// Alphalcazar - the board game, with a tree-search opponent.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/alphalcazar/internal/engine"
	"github.com/hailam/alphalcazar/internal/game"
	"github.com/hailam/alphalcazar/internal/ui"
)

var (
	depth    = flag.Int("depth", 2, "search depth of the computer opponent")
	parallel = flag.Bool("parallel", false, "parallel root search")
)

func main() {
	flag.Parse()

	g := game.NewGame()
	pending := ui.NewPendingMove()
	display := ui.NewDisplay(pending)
	display.SetState(g.Clone())

	search := engine.New(engine.Config{Depth: *depth, Parallel: *parallel})

	go func() {
		log.Printf("[Game] starting, player 1 is human")
		human := ui.InputStrategy{Display: display}
		computer := ui.SyncingStrategy{Inner: search, Display: display}
		result := g.Play(human, computer)
		display.SetState(g.Clone())
		log.Printf("[Game] finished after %d turns: %s", g.Turns, result)
	}()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Alphalcazar")
	if err := ebiten.RunGame(display); err != nil {
		log.Fatal(err)
	}
}
