package ui

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/hailam/alphalcazar/internal/game"
)

// Screen layout.
const (
	ScreenWidth  = 800
	ScreenHeight = 600

	boardOffsetX = ScreenWidth * 0.15
	boardOffsetY = ScreenHeight * 0.05
	tileDX       = ScreenWidth * 0.7 / game.GridSize
	tileDY       = ScreenHeight * 0.9 / game.GridSize
	tileBorder   = 5
)

var (
	backgroundColor    = color.RGBA{0x20, 0x24, 0x2a, 0xff}
	tileColor          = color.RGBA{0xd8, 0xcf, 0xb8, 0xff}
	perimeterTileColor = color.RGBA{0x6b, 0x70, 0x78, 0xff}
	labelColor         = color.RGBA{0x20, 0x24, 0x2a, 0xff}
)

// Display renders the board and turns mouse input into placement moves. It
// runs on the Ebitengine thread and shares only snapshots and the pending
// gate with the game-logic goroutine.
type Display struct {
	pending *PendingMove
	sprites *SpriteManager
	face    text.Face

	mu       sync.Mutex
	state    *game.Game
	awaiting game.PlayerID

	selected game.PieceID
	dragging bool
}

// NewDisplay builds the front-end around a pending-move gate.
func NewDisplay(pending *PendingMove) *Display {
	spriteSize := tileDX * 0.8
	return &Display{
		pending:  pending,
		sprites:  NewSpriteManager(int(spriteSize)),
		face:     text.NewGoXFace(basicfont.Face7x13),
		selected: game.NoPiece,
	}
}

// SetState publishes a fresh game snapshot for rendering and hit testing.
func (d *Display) SetState(g *game.Game) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = g
}

// setAwaiting marks whose hand pieces are draggable.
func (d *Display) setAwaiting(p game.PlayerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.awaiting = p
}

func (d *Display) snapshot() (*game.Game, game.PlayerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.awaiting
}

// Update implements ebiten.Game.
func (d *Display) Update() error {
	g, awaiting := d.snapshot()
	if g == nil {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && awaiting != game.NoPlayer {
		d.selected = d.handPieceAt(g, awaiting, mx, my)
		d.dragging = d.selected != game.NoPiece
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if d.dragging && d.selected != game.NoPiece {
			if tid := d.tileAt(g, mx, my); tid != game.NoTile {
				move := game.PlacementMove{Piece: d.selected, Tile: tid}
				if g.Board.TileByID(tid).IsPlacementLegal() {
					d.pending.Post(move)
				}
			}
		}
		d.selected = game.NoPiece
		d.dragging = false
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g, _ := d.snapshot()
	if g == nil {
		return
	}

	for _, t := range g.Board.Tiles() {
		x, y := tileOrigin(t.X, t.Y)
		c := tileColor
		if t.IsPerimeter() {
			c = perimeterTileColor
		}
		vector.DrawFilledRect(screen,
			float32(x+tileBorder), float32(y+tileBorder),
			float32(tileDX-2*tileBorder), float32(tileDY-2*tileBorder), c, false)

		if t.Piece != game.NoPiece && !(d.dragging && t.Piece == d.selected) {
			d.drawPieceAt(screen, g, t.Piece, x, y)
		}
	}

	for _, owner := range []game.PlayerID{game.Player1, game.Player2} {
		for _, pid := range g.Board.PiecesInHand(owner) {
			if d.dragging && pid == d.selected {
				cx, cy := ebiten.CursorPosition()
				d.drawPieceAt(screen, g, pid, float64(cx)-tileDX/2, float64(cy)-tileDY/2)
				continue
			}
			x, y := handOrigin(g.Board.PieceByID(pid))
			d.drawPieceAt(screen, g, pid, x, y)
		}
	}
}

// Layout implements ebiten.Game.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (d *Display) drawPieceAt(screen *ebiten.Image, g *game.Game, pid game.PieceID, x, y float64) {
	p := g.Board.PieceByID(pid)
	sprite := d.sprites.Piece(p.Owner)
	if sprite == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	size := float64(sprite.Bounds().Dx())
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Rotate(rotationFor(p.Direction))
	op.GeoM.Translate(x+tileDX/2, y+tileDY/2)
	screen.DrawImage(sprite, op)

	top := &text.DrawOptions{}
	top.GeoM.Translate(x+tileDX/2-4, y+tileDY/2-6)
	top.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, p.Type.String(), d.face, top)
}

// rotationFor maps a direction to the sprite rotation; the sprite points
// north at rest, and the board renders y upwards.
func rotationFor(dir game.Direction) float64 {
	const quarter = math.Pi / 2
	switch dir {
	case game.East:
		return quarter
	case game.South:
		return 2 * quarter
	case game.West:
		return 3 * quarter
	}
	return 0
}

// tileOrigin maps board coordinates to the screen, with north up.
func tileOrigin(x, y int8) (float64, float64) {
	sx := boardOffsetX + float64(x)*tileDX
	sy := boardOffsetY + float64(game.GridSize-1-y)*tileDY
	return sx, sy
}

// handOrigin stacks a player's hand pieces along their side column.
func handOrigin(p *game.Piece) (float64, float64) {
	x := 0.0
	if p.Owner == game.Player2 {
		x = ScreenWidth * 0.86
	}
	y := boardOffsetY + float64(p.Type-1)*tileDY
	return x, y
}

// handPieceAt hit-tests the awaiting player's hand column.
func (d *Display) handPieceAt(g *game.Game, owner game.PlayerID, mx, my int) game.PieceID {
	for _, pid := range g.Board.PiecesInHand(owner) {
		x, y := handOrigin(g.Board.PieceByID(pid))
		if float64(mx) >= x && float64(mx) < x+tileDX && float64(my) >= y && float64(my) < y+tileDY {
			return pid
		}
	}
	return game.NoPiece
}

// tileAt hit-tests the board grid.
func (d *Display) tileAt(g *game.Game, mx, my int) game.TileID {
	for _, t := range g.Board.Tiles() {
		x, y := tileOrigin(t.X, t.Y)
		if float64(mx) >= x && float64(mx) < x+tileDX && float64(my) >= y && float64(my) < y+tileDY {
			return g.Board.TileIDAt(int(t.X), int(t.Y))
		}
	}
	return game.NoTile
}
