// Package window provides the windowed frontend using ebiten.
package window

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/samdwyer/zombiescape/internal/entity"
	"github.com/samdwyer/zombiescape/internal/game"
	"github.com/samdwyer/zombiescape/internal/ui"
	"github.com/samdwyer/zombiescape/internal/world"
)

// Debug font cell size used to center labels.
const (
	charWidth  = 6
	charHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
	floorColor      = color.RGBA{R: 0x3A, G: 0x3A, B: 0x40, A: 0xFF}
	floorEdgeColor  = color.RGBA{R: 0x2A, G: 0x2A, B: 0x30, A: 0xFF}
	buttonColor     = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xFF}
	shadowColor     = color.RGBA{A: 0x60}
)

// keyBindings maps key presses to actions, checked in order.
var keyBindings = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeyArrowUp, game.ActionUp},
	{ebiten.KeyArrowDown, game.ActionDown},
	{ebiten.KeyArrowLeft, game.ActionLeft},
	{ebiten.KeyArrowRight, game.ActionRight},
	{ebiten.KeyEnter, game.ActionConfirm},
	{ebiten.KeyM, game.ActionToggleSound},
	{ebiten.KeyEscape, game.ActionExit},
}

// Game adapts a session to ebiten. Update is the tick source.
type Game struct {
	ctx     context.Context
	session *game.Session
	menu    ui.MenuLayout
}

// New creates a windowed frontend for the session.
func New(ctx context.Context, session *game.Session) *Game {
	return &Game{
		ctx:     ctx,
		session: session,
		menu:    ui.DefaultMenu(),
	}
}

// Run opens the window and blocks until the player exits or the window is
// closed.
func Run(ctx context.Context, session *game.Session, tickRate int) error {
	ebiten.SetWindowSize(world.ScreenWidth, world.ScreenHeight)
	ebiten.SetWindowTitle(session.Snapshot().Title)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}
	return ebiten.RunGame(New(ctx, session))
}

// Update handles input and advances the session by one tick.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	for _, a := range pressedActions(inpututil.IsKeyJustPressed) {
		g.session.Handle(g.ctx, a)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Handle(g.ctx, g.clickAction(x, y))
	}

	g.session.Tick(g.ctx)

	if g.session.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

// clickAction resolves a click in window pixels. Only the menu is clickable.
func (g *Game) clickAction(x, y int) game.Action {
	if g.session.Mode() != game.ModeMenu {
		return game.ActionNone
	}
	return g.menu.ActionAt(x, y)
}

// pressedActions returns the actions whose keys were pressed this frame.
func pressedActions(justPressed func(ebiten.Key) bool) []game.Action {
	var actions []game.Action
	for _, b := range keyBindings {
		if justPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.session.Snapshot()
	switch snap.Mode {
	case game.ModeMenu:
		g.drawMenu(screen, snap)
	case game.ModeGameOver:
		drawCentered(screen, "GAME OVER", world.ScreenHeight/2-charHeight)
		drawCentered(screen, "Press ENTER to return to the menu", world.ScreenHeight/2+charHeight)
	default:
		drawBoard(screen, snap)
	}
}

// Layout fixes the logical screen to the grid size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return world.ScreenWidth, world.ScreenHeight
}

func (g *Game) drawMenu(screen *ebiten.Image, snap game.Snapshot) {
	drawCentered(screen, snap.Title, 100)

	for _, b := range g.menu.Buttons {
		r := b.Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), buttonColor, false)
		label := b.Label(snap.SoundEnabled)
		cx, cy := r.Center()
		ebitenutil.DebugPrintAt(screen, label, cx-len(label)*charWidth/2, cy-charHeight/2)
	}
}

func drawBoard(screen *ebiten.Image, snap game.Snapshot) {
	for row := 0; row < world.GridHeight; row++ {
		for col := 0; col < world.GridWidth; col++ {
			p := world.C(col, row).Pixel()
			vector.FillRect(screen, float32(p.X), float32(p.Y), world.TileSize, world.TileSize, floorColor, false)
			vector.StrokeRect(screen, float32(p.X), float32(p.Y), world.TileSize, world.TileSize, 1, floorEdgeColor, false)
		}
	}

	for _, e := range snap.Enemies {
		drawEntity(screen, e)
	}
	drawEntity(screen, snap.Hero)

	ebitenutil.DebugPrintAt(screen, snap.Title, 4, 4)
}

// drawEntity draws a coloured placeholder sprite. The body bobs with the
// animation frame, and walking entities get an outline.
func drawEntity(screen *ebiten.Image, e game.EntityView) {
	x, y, w, h := spriteRect(e)
	fill := e.Look.RGBA()

	vector.FillRect(screen, x+4, y+h-6, w-8, 6, shadowColor, false)
	vector.FillRect(screen, x, y, w, h-8, fill, false)
	if e.Set == entity.SetWalk {
		vector.StrokeRect(screen, x, y, w, h-8, 2, color.White, false)
	}
	ebitenutil.DebugPrintAt(screen, e.Look.Glyph, int(x+w/2)-charWidth/2, int(y+(h-8)/2)-charHeight/2)
}

// spriteRect returns the sprite bounds for an entity inside its tile.
func spriteRect(e game.EntityView) (x, y, w, h float32) {
	const inset = 12
	bob := float32(e.Frame%2) * 2
	return float32(e.Pixel.X + inset), float32(e.Pixel.Y+inset) - bob, world.TileSize - 2*inset, world.TileSize - 2*inset + 8
}

func drawCentered(screen *ebiten.Image, text string, y int) {
	ebitenutil.DebugPrintAt(screen, text, (world.ScreenWidth-len(text)*charWidth)/2, y)
}
