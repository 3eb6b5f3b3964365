package ui

import (
	"github.com/samdwyer/zombiescape/internal/game"
	"github.com/samdwyer/zombiescape/internal/world"
)

// Button is a clickable menu region mapped to a logical action.
type Button struct {
	Rect   world.Rect
	Action game.Action
}

// Label returns the button caption for the current session state.
func (b Button) Label(soundEnabled bool) string {
	switch b.Action {
	case game.ActionStart:
		return "START"
	case game.ActionToggleSound:
		if soundEnabled {
			return "Music: ON"
		}
		return "Music: OFF"
	case game.ActionExit:
		return "EXIT"
	default:
		return b.Action.String()
	}
}

// MenuLayout is the set of menu buttons in some coordinate space.
type MenuLayout struct {
	Buttons []Button
}

// DefaultMenu returns the menu buttons in window pixel coordinates.
func DefaultMenu() MenuLayout {
	return MenuLayout{Buttons: []Button{
		{Rect: world.Rect{X: 220, Y: 200, Width: 200, Height: 50}, Action: game.ActionStart},
		{Rect: world.Rect{X: 220, Y: 270, Width: 200, Height: 50}, Action: game.ActionToggleSound},
		{Rect: world.Rect{X: 220, Y: 340, Width: 200, Height: 50}, Action: game.ActionExit},
	}}
}

// ActionAt returns the action of the first button containing the point, or
// ActionNone if the point misses every button.
func (m MenuLayout) ActionAt(x, y int) game.Action {
	for _, b := range m.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Action
		}
	}
	return game.ActionNone
}

// Scale converts the layout into a coarser coordinate space where one unit
// covers sx by sy units of the current one.
func (m MenuLayout) Scale(sx, sy int) MenuLayout {
	out := MenuLayout{Buttons: make([]Button, len(m.Buttons))}
	for i, b := range m.Buttons {
		out.Buttons[i] = Button{Rect: b.Rect.Scale(sx, sy), Action: b.Action}
	}
	return out
}
