package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zombiescape/internal/telemetry"
	"github.com/samdwyer/zombiescape/internal/world"
)

// Direction forwards a directional input to the movement model. Ignored
// unless playing.
func (s *Session) Direction(ctx context.Context, d world.Direction) {
	if s.mode != ModePlaying {
		return
	}
	s.model.Move(ctx, s, d)
}

// Confirm starts play from the menu, or returns to the menu after game over.
func (s *Session) Confirm(ctx context.Context) {
	switch s.mode {
	case ModeMenu:
		s.Start(ctx)
	case ModeGameOver:
		s.reset(ctx)
	}
}

// Start begins play. Only valid from the menu.
func (s *Session) Start(ctx context.Context) {
	if s.mode != ModeMenu {
		return
	}

	_, span := telemetry.Tracer("session").Start(ctx, "session.start")
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Bool("sound", s.soundEnabled),
	)
	span.End()

	s.mode = ModePlaying
}

// ToggleSound flips the sound flag from the menu and starts or stops the
// background track to match. Cues already playing are not affected.
func (s *Session) ToggleSound(ctx context.Context) {
	if s.mode != ModeMenu {
		return
	}
	s.soundEnabled = !s.soundEnabled
	if s.soundEnabled {
		s.audio.Play(CueBackground)
	} else {
		s.audio.Stop(CueBackground)
	}
}

// Exit asks the frontend to terminate. Only valid from the menu.
func (s *Session) Exit() {
	if s.mode != ModeMenu {
		return
	}
	s.exitRequested = true
}

// reset respawns every entity and returns to the menu.
func (s *Session) reset(ctx context.Context) {
	_, span := telemetry.Tracer("session").Start(ctx, "session.reset")
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int64("ticks", int64(s.ticks)),
	)
	defer span.End()

	s.spawn()
	s.mode = ModeMenu
	if s.soundEnabled {
		s.audio.Play(CueBackground)
	}
}
