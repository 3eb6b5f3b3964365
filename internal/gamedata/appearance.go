package gamedata

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Appearance describes how an entity is drawn: a glyph and color for the
// terminal, and idle/walk image sets for sprite renderers.
type Appearance struct {
	Glyph string   `json:"glyph"` // Single character for terminal rendering (e.g., "@")
	Color string   `json:"color"` // Hex color code (e.g., "#FFD700")
	Idle  []string `json:"idle"`  // Image names cycled while standing still
	Walk  []string `json:"walk"`  // Image names cycled while walking
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *Appearance) GlyphRune() rune {
	if len(a.Glyph) == 0 {
		return '?'
	}
	return rune(a.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (a *Appearance) TCellColor() tcell.Color {
	c, err := ParseHexColor(a.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return c
}

// RGBA returns the color for image based renderers.
func (a *Appearance) RGBA() color.RGBA {
	c, err := ParseHexRGBA(a.Color)
	if err != nil {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return c
}
