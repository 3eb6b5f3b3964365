package entity

import (
	"math/rand"

	"github.com/samdwyer/zombiescape/internal/gamedata"
	"github.com/samdwyer/zombiescape/internal/world"
)

// Behavior names an enemy movement strategy.
type Behavior int

const (
	// BehaviorPatrol walks a fixed cyclic route.
	BehaviorPatrol Behavior = iota
	// BehaviorWander steps in a random free direction.
	BehaviorWander
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "patrol"
	case BehaviorWander:
		return "wander"
	default:
		return "unknown"
	}
}

// ParseBehavior returns the behavior with the given name.
func ParseBehavior(s string) (Behavior, bool) {
	switch s {
	case "patrol":
		return BehaviorPatrol, true
	case "wander":
		return BehaviorWander, true
	default:
		return 0, false
	}
}

// Strategy picks the next cell for an enemy that is not moving.
// The returned cell is always on the grid and at most one step away.
type Strategy interface {
	Next(e *Entity) world.Cell
}

// Enemy is an autonomous entity driven by a Strategy.
type Enemy struct {
	Entity
	Def      *gamedata.EnemyDef
	Strategy Strategy
}

// NewEnemy creates an enemy of the given type at the spawn cell.
func NewEnemy(def *gamedata.EnemyDef, spawn world.Cell, strategy Strategy) *Enemy {
	return &Enemy{
		Entity:   *NewEntity(spawn, def.Appearance),
		Def:      def,
		Strategy: strategy,
	}
}

// Decide returns the enemy's next cell without moving it.
func (e *Enemy) Decide() world.Cell {
	if e.Strategy == nil {
		return e.Cell
	}
	return e.Strategy.Next(&e.Entity)
}

// Name returns the enemy's display name.
func (e *Enemy) Name() string {
	if e.Def != nil {
		return e.Def.Name
	}
	return "Enemy"
}

// Patrol walks a cyclic route of waypoints one cell at a time, x axis first.
type Patrol struct {
	Route []world.Cell
	Index int // Waypoint currently walked toward
}

// NewPatrol creates a patrol that heads for the second waypoint first, since
// enemies spawn on the first.
func NewPatrol(route []world.Cell) *Patrol {
	p := &Patrol{Route: route}
	if len(route) > 1 {
		p.Index = 1
	}
	return p
}

// Waypoint returns the waypoint currently walked toward.
func (p *Patrol) Waypoint() world.Cell {
	return p.Route[p.Index]
}

// Next returns one step toward the current waypoint, moving on to the
// following waypoint when the current one has been reached.
func (p *Patrol) Next(e *Entity) world.Cell {
	if len(p.Route) == 0 {
		return e.Cell
	}
	if e.Cell == p.Route[p.Index] {
		p.Index = (p.Index + 1) % len(p.Route)
	}
	return stepToward(e.Cell, p.Route[p.Index])
}

// Wander steps in a random direction that stays on the grid.
type Wander struct {
	rng *rand.Rand
}

// NewWander creates a wander strategy drawing from rng.
func NewWander(rng *rand.Rand) *Wander {
	return &Wander{rng: rng}
}

// Next shuffles the four directions and returns the first in-bounds neighbour.
// Other enemies are not considered; enemies may overlap.
func (w *Wander) Next(e *Entity) world.Cell {
	dirs := world.Cardinal()
	w.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		if next := e.Cell.Step(d); next.InBounds() {
			return next
		}
	}
	return e.Cell
}

// stepToward returns the neighbour of from that is one step closer to to,
// resolving the x axis before the y axis.
func stepToward(from, to world.Cell) world.Cell {
	switch {
	case from.Col < to.Col:
		return from.Add(1, 0)
	case from.Col > to.Col:
		return from.Add(-1, 0)
	case from.Row < to.Row:
		return from.Add(0, 1)
	case from.Row > to.Row:
		return from.Add(0, -1)
	default:
		return from
	}
}
