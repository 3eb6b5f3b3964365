package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/zombiescape/internal/world"
)

// CellDef is a [col, row] pair as written in JSON.
type CellDef [2]int

// Cell converts the definition to a grid cell.
func (c CellDef) Cell() world.Cell {
	return world.C(c[0], c[1])
}

// HeroDef defines the player character.
type HeroDef struct {
	Name  string  `json:"name"`
	Spawn CellDef `json:"spawn"`
	Appearance
}

// SpawnDef places one enemy on the grid.
type SpawnDef struct {
	Type  string    `json:"type"`  // EnemyDef ID
	Spawn CellDef   `json:"spawn"` // Starting cell
	Route []CellDef `json:"route"` // Patrol waypoints, walked cyclically
}

// RouteCells returns the patrol route as grid cells.
func (s *SpawnDef) RouteCells() []world.Cell {
	cells := make([]world.Cell, len(s.Route))
	for i, c := range s.Route {
		cells[i] = c.Cell()
	}
	return cells
}

// Layout is the fixed starting configuration of a session.
type Layout struct {
	Title       string     `json:"title"`
	Music       string     `json:"music"`       // Background track name
	MusicVolume float64    `json:"musicVolume"` // 0.0-1.0
	Hero        HeroDef    `json:"hero"`
	Enemies     []SpawnDef `json:"enemies"`
}

// LoadLayout loads the embedded layout.json file and validates it.
func LoadLayout() (*Layout, error) {
	layout, err := Load[Layout]("layout.json")
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout.json: %w", err)
	}
	return &layout, nil
}

// MustLoadLayout loads the layout, panicking on error.
func MustLoadLayout() *Layout {
	layout, err := LoadLayout()
	if err != nil {
		panic(err)
	}
	return layout
}

// Validate checks that every spawn cell and waypoint lies on the grid.
func (l *Layout) Validate() error {
	if !l.Hero.Spawn.Cell().InBounds() {
		return fmt.Errorf("hero spawn %v out of bounds", l.Hero.Spawn.Cell())
	}
	if len(l.Hero.Idle) == 0 || len(l.Hero.Walk) == 0 {
		return errors.New("hero needs idle and walk images")
	}
	for i := range l.Enemies {
		e := &l.Enemies[i]
		if !e.Spawn.Cell().InBounds() {
			return fmt.Errorf("enemy %d spawn %v out of bounds", i, e.Spawn.Cell())
		}
		for _, wp := range e.Route {
			if !wp.Cell().InBounds() {
				return fmt.Errorf("enemy %d waypoint %v out of bounds", i, wp.Cell())
			}
		}
	}
	return nil
}
