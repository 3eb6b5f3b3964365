package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zombiescape/internal/entity"
	"github.com/samdwyer/zombiescape/internal/game"
	"github.com/samdwyer/zombiescape/internal/world"
)

const (
	// Window pixels covered by one terminal cell. A tile is 4 columns by 2 rows.
	pxPerCol = 16
	pxPerRow = 32

	// BoardCols and BoardRows are the play field size in terminal cells.
	BoardCols = world.ScreenWidth / pxPerCol
	BoardRows = world.ScreenHeight / pxPerRow

	tileCols = world.TileSize / pxPerCol
	tileRows = world.TileSize / pxPerRow
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	menu   MenuLayout
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		menu:   DefaultMenu().Scale(pxPerCol, pxPerRow),
	}
}

// Menu returns the menu layout in terminal cell coordinates.
func (r *Renderer) Menu() MenuLayout {
	return r.menu
}

// Render draws one frame of the session.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()

	switch snap.Mode {
	case game.ModeMenu:
		r.renderMenu(snap)
	case game.ModeGameOver:
		r.renderGameOver()
	default:
		r.renderBoard(snap)
	}

	r.screen.Show()
}

func (r *Renderer) renderMenu(snap game.Snapshot) {
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.centered(100/pxPerRow, snap.Title, title)

	button := tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite)
	for _, b := range r.menu.Buttons {
		r.screen.Fill(b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height, ' ', button)
		label := b.Label(snap.SoundEnabled)
		_, cy := b.Rect.Center()
		r.screen.SetString(b.Rect.X+(b.Rect.Width-len(label))/2, cy, label, button)
	}

	hint := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.centered(BoardRows-2, "ENTER start  M music  Q quit", hint)
}

func (r *Renderer) renderGameOver() {
	r.centered(BoardRows/2, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	r.centered(BoardRows/2+2, "Press ENTER to return to the menu", tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (r *Renderer) renderBoard(snap game.Snapshot) {
	floor := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for row := 0; row < world.GridHeight; row++ {
		for col := 0; col < world.GridWidth; col++ {
			r.screen.Fill(col*tileCols, row*tileRows, tileCols, tileRows, world.TileFloor.Rune(), floor)
		}
	}

	for _, e := range snap.Enemies {
		r.renderEntity(e)
	}
	r.renderEntity(snap.Hero)

	sound := "off"
	if snap.SoundEnabled {
		sound = "on"
	}
	status := fmt.Sprintf("%s  tick %d  sound %s  arrows move", snap.Title, snap.Ticks, sound)
	r.screen.SetString(0, BoardRows, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// renderEntity draws a two-row sprite: the glyph as the body and the feet
// alternating with the animation frame.
func (r *Renderer) renderEntity(e game.EntityView) {
	x := e.Pixel.X / pxPerCol
	y := e.Pixel.Y / pxPerRow

	style := tcell.StyleDefault.Foreground(e.Look.TCellColor())
	if e.Set == entity.SetWalk {
		style = style.Bold(true)
	}

	glyph := e.Look.GlyphRune()
	r.screen.SetContent(x+1, y, glyph, style)
	r.screen.SetContent(x+2, y, glyph, style)

	feet := [2][2]rune{{'/', '\\'}, {'|', '|'}}[e.Frame%2]
	r.screen.SetContent(x+1, y+1, feet[0], style)
	r.screen.SetContent(x+2, y+1, feet[1], style)
}

func (r *Renderer) centered(y int, text string, style tcell.Style) {
	r.screen.SetString((BoardCols-len([]rune(text)))/2, y, text, style)
}
