// Package entity provides the hero and enemies that move on the grid.
package entity

import (
	"fmt"

	"github.com/samdwyer/zombiescape/internal/gamedata"
	"github.com/samdwyer/zombiescape/internal/world"
)

const (
	// DefaultSpeed is how many pixels an entity travels per tick.
	DefaultSpeed = 8

	// SmoothAnimationPeriod and StepAnimationPeriod are the ticks between image changes.
	SmoothAnimationPeriod = 10
	StepAnimationPeriod   = 15
)

// ImageSet selects which images an entity cycles through.
type ImageSet int

const (
	SetIdle ImageSet = iota
	SetWalk
)

// String returns the image set name.
func (s ImageSet) String() string {
	switch s {
	case SetIdle:
		return "idle"
	case SetWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// Entity is the movement and animation state shared by the hero and enemies.
//
// Cell is authoritative while the entity rests. A move sets Target to the
// destination tile and Advance walks Pixel toward it, x axis first, until the
// two meet and Cell catches up.
type Entity struct {
	Cell    world.Cell  // Resting cell
	Pixel   world.Pixel // Render position
	Target  world.Pixel // Destination of the current move
	Speed   int         // Pixels per tick
	Walking bool        // Pixel position changed during the last Advance
	Look    gamedata.Appearance

	frame      int
	imageIndex int
}

// NewEntity creates an idle entity resting on the given cell.
func NewEntity(cell world.Cell, look gamedata.Appearance) *Entity {
	e := &Entity{
		Cell:   cell,
		Pixel:  cell.Pixel(),
		Target: cell.Pixel(),
		Speed:  DefaultSpeed,
		Look:   look,
	}
	e.check()
	return e
}

// Moving returns true while a move is in flight.
func (e *Entity) Moving() bool {
	return e.Pixel != e.Target
}

// SetTarget starts a move toward the given cell. The move happens over the
// following calls to Advance.
func (e *Entity) SetTarget(c world.Cell) {
	e.Target = c.Pixel()
	e.check()
}

// JumpTo places the entity on the given cell immediately.
func (e *Entity) JumpTo(c world.Cell) {
	moved := c != e.Cell
	e.Cell = c
	e.Pixel = c.Pixel()
	e.Target = e.Pixel
	e.Walking = moved
	e.check()
}

// Advance moves the render position one step toward the target.
func (e *Entity) Advance() {
	switch {
	case e.Pixel.X != e.Target.X:
		e.Pixel.X = approach(e.Pixel.X, e.Target.X, e.Speed)
		e.Walking = true
	case e.Pixel.Y != e.Target.Y:
		e.Pixel.Y = approach(e.Pixel.Y, e.Target.Y, e.Speed)
		e.Walking = true
	default:
		e.Walking = false
	}

	if e.Pixel == e.Target {
		e.Cell = e.Target.Cell()
	}
	e.check()
}

// Animate advances the frame counter and, every period ticks, the image index.
// It runs every tick whether or not the entity is moving.
func (e *Entity) Animate(period int) {
	if period <= 0 {
		period = SmoothAnimationPeriod
	}
	e.frame = (e.frame + 1) % period
	if e.frame == 0 {
		if n := len(e.images()); n > 0 {
			e.imageIndex = (e.imageIndex + 1) % n
		}
	}
}

// ImageSet returns the active image set.
func (e *Entity) ImageSet() ImageSet {
	if e.Walking {
		return SetWalk
	}
	return SetIdle
}

// Frame returns the index into the active image set.
func (e *Entity) Frame() int {
	n := len(e.images())
	if n == 0 {
		return 0
	}
	return e.imageIndex % n
}

// Image returns the name of the image to draw, or "" if the set is empty.
func (e *Entity) Image() string {
	images := e.images()
	if len(images) == 0 {
		return ""
	}
	return images[e.Frame()]
}

func (e *Entity) images() []string {
	if e.Walking {
		return e.Look.Walk
	}
	return e.Look.Idle
}

// check panics when the grid invariants are broken. Any failure is a bug in
// the caller, never a user error.
func (e *Entity) check() {
	if !e.Cell.InBounds() {
		panic(fmt.Sprintf("entity: cell %v out of bounds", e.Cell))
	}
	if !e.Target.Aligned() || !e.Target.Cell().InBounds() {
		panic(fmt.Sprintf("entity: target %v is not a tile on the grid", e.Target))
	}
	if !e.Moving() && e.Cell.Pixel() != e.Pixel {
		panic(fmt.Sprintf("entity: idle at %v but cell %v", e.Pixel, e.Cell))
	}
}

// approach moves from toward to by at most step.
func approach(from, to, step int) int {
	if from < to {
		return min(from+step, to)
	}
	return max(from-step, to)
}
