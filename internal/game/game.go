package game

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zombiescape/internal/entity"
	"github.com/samdwyer/zombiescape/internal/gamedata"
	"github.com/samdwyer/zombiescape/internal/telemetry"
)

// Session holds the entire game state: the hero, the enemies and the current
// mode. It is owned by a single frontend loop and is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	cfg      Config
	layout   *gamedata.Layout
	registry *gamedata.EnemyRegistry
	behavior entity.Behavior
	model    MovementModel
	audio    Audio
	rng      *rand.Rand

	hero          *entity.Hero
	enemies       []*entity.Enemy
	mode          Mode
	soundEnabled  bool
	exitRequested bool
	ticks         uint64
}

// New creates a session in menu mode using the embedded game data, or the
// layout file named in the config.
func New(ctx context.Context, cfg Config, audio Audio) (*Session, error) {
	layout, err := loadLayout(cfg.LayoutFile)
	if err != nil {
		return nil, err
	}
	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	return NewWithData(ctx, cfg, layout, registry, audio)
}

// NewWithData creates a session from explicit game data.
func NewWithData(ctx context.Context, cfg Config, layout *gamedata.Layout, registry *gamedata.EnemyRegistry, audio Audio) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if err := registry.Resolve(layout); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	model, _ := NewModel(cfg.Movement)
	behavior, _ := entity.ParseBehavior(cfg.EnemyBehavior)
	if audio == nil {
		audio = NopAudio{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		ID:           uuid.New(),
		cfg:          cfg,
		layout:       layout,
		registry:     registry,
		behavior:     behavior,
		model:        model,
		audio:        audio,
		rng:          rand.New(rand.NewSource(seed)),
		mode:         ModeMenu,
		soundEnabled: cfg.Sound,
	}
	s.spawn()

	_, span := telemetry.Tracer("session").Start(ctx, "session.new")
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("movement.model", model.Name()),
		attribute.String("enemy.behavior", behavior.String()),
		attribute.Int("enemy.count", len(s.enemies)),
		attribute.Int64("seed", seed),
	)
	span.End()

	if s.soundEnabled {
		s.audio.Play(CueBackground)
	}
	return s, nil
}

func loadLayout(path string) (*gamedata.Layout, error) {
	if path == "" {
		return gamedata.LoadLayout()
	}
	layout, err := gamedata.LoadFrom[gamedata.Layout](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

// spawn replaces the hero and enemies with the layout's starting configuration.
func (s *Session) spawn() {
	s.hero = entity.NewHero(&s.layout.Hero)

	s.enemies = make([]*entity.Enemy, 0, len(s.layout.Enemies))
	for i := range s.layout.Enemies {
		def := &s.layout.Enemies[i]
		s.enemies = append(s.enemies, entity.NewEnemy(s.registry.GetByID(def.Type), def.Spawn.Cell(), s.strategyFor(def)))
	}
}

func (s *Session) strategyFor(def *gamedata.SpawnDef) entity.Strategy {
	if s.behavior == entity.BehaviorPatrol && len(def.Route) > 0 {
		return entity.NewPatrol(def.RouteCells())
	}
	return entity.NewWander(s.rng)
}

// Tick runs one simulation step. Outside of play it does nothing.
func (s *Session) Tick(ctx context.Context) {
	if s.mode != ModePlaying {
		return
	}
	s.ticks++
	s.model.Tick(ctx, s)
}

// checkCollision ends the game if any enemy shares the hero's cell.
func (s *Session) checkCollision(ctx context.Context) bool {
	if s.mode != ModePlaying {
		return false
	}
	for _, e := range s.enemies {
		if e.Cell == s.hero.Cell {
			s.gameOver(ctx, e)
			return true
		}
	}
	return false
}

func (s *Session) gameOver(ctx context.Context, by *entity.Enemy) {
	_, span := telemetry.Tracer("session").Start(ctx, "session.game_over")
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("enemy", by.Name()),
		attribute.String("hero.cell", s.hero.Cell.String()),
		attribute.Int64("ticks", int64(s.ticks)),
	)
	defer span.End()

	s.mode = ModeGameOver
	s.audio.Stop(CueBackground)
	s.play(CueGameOver)
}

// play requests a cue if sound is enabled.
func (s *Session) play(cue Cue) {
	if s.soundEnabled {
		s.audio.Play(cue)
	}
}

// Mode returns the current game mode.
func (s *Session) Mode() Mode { return s.mode }

// SoundEnabled reports whether cues are played.
func (s *Session) SoundEnabled() bool { return s.soundEnabled }

// ExitRequested reports whether the player chose to quit from the menu.
func (s *Session) ExitRequested() bool { return s.exitRequested }

// Ticks returns the number of ticks simulated while playing.
func (s *Session) Ticks() uint64 { return s.ticks }

// Hero returns the hero.
func (s *Session) Hero() *entity.Hero { return s.hero }

// Enemies returns the enemies in spawn order.
func (s *Session) Enemies() []*entity.Enemy { return s.enemies }

// Model returns the active movement model.
func (s *Session) Model() MovementModel { return s.model }

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }
