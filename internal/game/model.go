package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/zombiescape/internal/entity"
	"github.com/samdwyer/zombiescape/internal/world"
)

// Movement model names accepted by NewModel.
const (
	ModelSmooth = "smooth"
	ModelStep   = "step"
)

// MovementModel decides how hero input and ticks move entities. The session
// only calls it while playing.
type MovementModel interface {
	Name() string
	AnimationPeriod() int
	Move(ctx context.Context, s *Session, d world.Direction)
	Tick(ctx context.Context, s *Session)
}

// NewModel returns the movement model with the given name.
func NewModel(name string) (MovementModel, error) {
	switch name {
	case ModelSmooth:
		return Smooth{}, nil
	case ModelStep:
		return Stepwise{}, nil
	default:
		return nil, fmt.Errorf("unknown movement model %q", name)
	}
}

// Smooth interpolates every entity across the tile in pixel steps. Enemies
// choose a new target whenever they come to rest, and collisions are checked
// once per tick.
type Smooth struct{}

// Name returns "smooth".
func (Smooth) Name() string { return ModelSmooth }

// AnimationPeriod returns the ticks between image changes.
func (Smooth) AnimationPeriod() int { return entity.SmoothAnimationPeriod }

// Move starts a one-cell hero move unless one is already in flight.
func (Smooth) Move(_ context.Context, s *Session, d world.Direction) {
	dx, dy := d.Delta()
	if s.hero.TryMove(dx, dy) {
		s.play(CueMove)
	}
}

// Tick advances and animates every entity, then checks for collision.
func (m Smooth) Tick(ctx context.Context, s *Session) {
	period := m.AnimationPeriod()

	s.hero.Advance()
	s.hero.Animate(period)

	for _, e := range s.enemies {
		e.Advance()
		e.Animate(period)
		if !e.Moving() {
			e.SetTarget(e.Decide())
		}
	}

	s.checkCollision(ctx)
}

// Stepwise jumps the hero one cell per key press and answers each step with
// one enemy step, checking collision immediately. Ticks only animate.
type Stepwise struct{}

// Name returns "step".
func (Stepwise) Name() string { return ModelStep }

// AnimationPeriod returns the ticks between image changes.
func (Stepwise) AnimationPeriod() int { return entity.StepAnimationPeriod }

// Move jumps the hero, advances every enemy one cell and checks collision.
func (Stepwise) Move(ctx context.Context, s *Session, d world.Direction) {
	dx, dy := d.Delta()
	if !s.hero.Jump(dx, dy) {
		return
	}
	s.play(CueMove)

	for _, e := range s.enemies {
		e.JumpTo(e.Decide())
	}

	s.checkCollision(ctx)
}

// Tick animates every entity. The walk set shows until the tick after a jump.
func (m Stepwise) Tick(ctx context.Context, s *Session) {
	period := m.AnimationPeriod()

	s.hero.Animate(period)
	s.hero.Walking = false
	for _, e := range s.enemies {
		e.Animate(period)
		e.Walking = false
	}

	s.checkCollision(ctx)
}
