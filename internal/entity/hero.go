package entity

import "github.com/samdwyer/zombiescape/internal/gamedata"

// Hero is the player-controlled entity.
type Hero struct {
	Entity
	Name string
}

// NewHero creates the hero at its spawn cell.
func NewHero(def *gamedata.HeroDef) *Hero {
	return &Hero{
		Entity: *NewEntity(def.Spawn.Cell(), def.Appearance),
		Name:   def.Name,
	}
}

// TryMove starts a one-cell move by (dx, dy). It returns false without
// touching any state if a move is already in flight or the destination is
// off the grid.
func (h *Hero) TryMove(dx, dy int) bool {
	if h.Moving() {
		return false
	}
	next := h.Cell.Add(dx, dy)
	if !next.InBounds() {
		return false
	}
	h.SetTarget(next)
	return true
}

// Jump moves the hero one cell by (dx, dy) immediately. It returns false if
// the destination is off the grid.
func (h *Hero) Jump(dx, dy int) bool {
	next := h.Cell.Add(dx, dy)
	if !next.InBounds() {
		return false
	}
	h.JumpTo(next)
	return true
}
