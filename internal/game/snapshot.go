package game

import (
	"github.com/samdwyer/zombiescape/internal/entity"
	"github.com/samdwyer/zombiescape/internal/gamedata"
	"github.com/samdwyer/zombiescape/internal/world"
)

// Kind tells renderers which entity they are drawing.
type Kind int

const (
	KindHero Kind = iota
	KindEnemy
)

// EntityView is the read-only render state of one entity.
type EntityView struct {
	Kind  Kind
	Name  string
	Cell  world.Cell
	Pixel world.Pixel
	Set   entity.ImageSet
	Frame int
	Image string
	Look  *gamedata.Appearance
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Title        string
	Mode         Mode
	SoundEnabled bool
	Ticks        uint64
	Hero         EntityView
	Enemies      []EntityView
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Title:        s.layout.Title,
		Mode:         s.mode,
		SoundEnabled: s.soundEnabled,
		Ticks:        s.ticks,
		Hero:         view(KindHero, s.hero.Name, &s.hero.Entity),
		Enemies:      make([]EntityView, len(s.enemies)),
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = view(KindEnemy, e.Name(), &e.Entity)
	}
	return snap
}

func view(kind Kind, name string, e *entity.Entity) EntityView {
	return EntityView{
		Kind:  kind,
		Name:  name,
		Cell:  e.Cell,
		Pixel: e.Pixel,
		Set:   e.ImageSet(),
		Frame: e.Frame(),
		Image: e.Image(),
		Look:  &e.Look,
	}
}
