package game

import (
	"context"

	"github.com/samdwyer/zombiescape/internal/world"
)

// Action is a logical input already resolved by the frontend from a key
// press or pointer click.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionStart
	ActionToggleSound
	ActionExit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionConfirm:
		return "confirm"
	case ActionStart:
		return "start"
	case ActionToggleSound:
		return "toggle_sound"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Direction returns the movement direction for directional actions.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionUp:
		return world.Up, true
	case ActionDown:
		return world.Down, true
	case ActionLeft:
		return world.Left, true
	case ActionRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// Handle dispatches a logical action to the matching session input.
func (s *Session) Handle(ctx context.Context, a Action) {
	if d, ok := a.Direction(); ok {
		s.Direction(ctx, d)
		return
	}

	switch a {
	case ActionConfirm:
		s.Confirm(ctx)
	case ActionStart:
		s.Start(ctx)
	case ActionToggleSound:
		s.ToggleSound(ctx)
	case ActionExit:
		s.Exit()
	}
}
