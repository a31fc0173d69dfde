package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/alphalcazar/internal/game"
)

// pieceSVG is the disc-with-pointer sprite, drawn pointing north and rotated
// at draw time. The fill color is substituted per player.
const pieceSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <polygon points="50,2 28,34 72,34" fill="%s"/>
  <circle cx="50" cy="58" r="36" fill="%s"/>
</svg>`

var playerColors = map[game.PlayerID]string{
	game.Player1: "#3a6ea5",
	game.Player2: "#b23a48",
}

// SpriteManager rasterises and caches the per-player piece sprites.
type SpriteManager struct {
	pieces map[game.PlayerID]*ebiten.Image
	size   int
}

// NewSpriteManager renders the sprites at the given pixel size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces: make(map[game.PlayerID]*ebiten.Image),
		size:   size,
	}
	for owner, color := range playerColors {
		img, err := renderSVG(fmt.Sprintf(pieceSVG, color, color), size)
		if err != nil {
			log.Printf("[UI] failed to render piece sprite for player %d: %v", owner, err)
			continue
		}
		sm.pieces[owner] = img
	}
	return sm
}

// Piece returns the sprite of a player's pieces.
func (sm *SpriteManager) Piece(owner game.PlayerID) *ebiten.Image {
	return sm.pieces[owner]
}

// renderSVG rasterises an SVG document into an ebiten image.
func renderSVG(svg string, size int) (*ebiten.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return ebiten.NewImageFromImage(rgba), nil
}
