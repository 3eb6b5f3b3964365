package game

import (
	"context"
	"reflect"
	"testing"

	"github.com/samdwyer/zombiescape/internal/entity"
	"github.com/samdwyer/zombiescape/internal/gamedata"
	"github.com/samdwyer/zombiescape/internal/world"
)

// recordingAudio remembers every cue request in order.
type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) Play(c Cue) { a.calls = append(a.calls, "play:"+string(c)) }
func (a *recordingAudio) Stop(c Cue) { a.calls = append(a.calls, "stop:"+string(c)) }

func (a *recordingAudio) reset() { a.calls = nil }

func testConfig(movement, behavior string) Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Movement = movement
	cfg.EnemyBehavior = behavior
	return cfg
}

func newTestSession(t *testing.T, cfg Config) (*Session, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	s, err := NewWithData(context.Background(), cfg, gamedata.MustLoadLayout(), gamedata.MustLoadEnemyRegistry(), audio)
	if err != nil {
		t.Fatalf("NewWithData() error: %v", err)
	}
	return s, audio
}

func cells(s *Session) []world.Cell {
	out := []world.Cell{s.hero.Cell}
	for _, e := range s.enemies {
		out = append(out, e.Cell)
	}
	return out
}

func pixels(s *Session) []world.Pixel {
	out := []world.Pixel{s.hero.Pixel}
	for _, e := range s.enemies {
		out = append(out, e.Pixel)
	}
	return out
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeMenu, "menu"},
		{ModePlaying, "playing"},
		{ModeGameOver, "game_over"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))

	if s.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, want menu", s.Mode())
	}
	if !s.SoundEnabled() {
		t.Error("SoundEnabled() = false, want true")
	}
	want := []world.Cell{world.C(1, 1), world.C(5, 5), world.C(8, 2)}
	if got := cells(s); !reflect.DeepEqual(got, want) {
		t.Errorf("spawn cells = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(audio.calls, []string{"play:background"}) {
		t.Errorf("audio calls = %v, want [play:background]", audio.calls)
	}
	if s.Model().Name() != ModelSmooth {
		t.Errorf("Model().Name() = %q, want smooth", s.Model().Name())
	}
}

func TestNewSessionSilent(t *testing.T) {
	cfg := testConfig(ModelSmooth, "patrol")
	cfg.Sound = false
	s, audio := newTestSession(t, cfg)

	if s.SoundEnabled() {
		t.Error("SoundEnabled() = true, want false")
	}
	if len(audio.calls) != 0 {
		t.Errorf("audio calls = %v, want none", audio.calls)
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := testConfig("teleport", "patrol")
	_, err := NewWithData(context.Background(), cfg, gamedata.MustLoadLayout(), gamedata.MustLoadEnemyRegistry(), nil)
	if err == nil {
		t.Error("NewWithData with unknown model should fail")
	}
}

func TestNewSessionRejectsUnknownEnemyType(t *testing.T) {
	layout := gamedata.MustLoadLayout()
	layout.Enemies = []gamedata.SpawnDef{{Type: "vampire", Spawn: gamedata.CellDef{2, 2}}}
	_, err := NewWithData(context.Background(), testConfig(ModelSmooth, "patrol"), layout, gamedata.MustLoadEnemyRegistry(), nil)
	if err == nil {
		t.Error("NewWithData with unknown enemy type should fail")
	}
}

func TestTicksOutsidePlayAreNoops(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelSmooth, "wander"))
	ctx := context.Background()

	before := pixels(s)
	for i := 0; i < 50; i++ {
		s.Tick(ctx)
	}
	if got := pixels(s); !reflect.DeepEqual(got, before) {
		t.Errorf("ticks in menu moved entities: %v -> %v", before, got)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d in menu, want 0", s.Ticks())
	}
	if s.hero.Frame() != 0 {
		t.Errorf("hero animated in menu: frame %d", s.hero.Frame())
	}
}

func TestDirectionIgnoredInMenu(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	audio.reset()

	s.Direction(context.Background(), world.Right)
	if s.hero.Moving() {
		t.Error("hero started moving from the menu")
	}
	if len(audio.calls) != 0 {
		t.Errorf("audio calls = %v, want none", audio.calls)
	}
}

func TestSmoothMoveSetsTargetAndPlaysCue(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	audio.reset()

	s.Direction(ctx, world.Right)
	if s.hero.Target != world.C(2, 1).Pixel() {
		t.Errorf("Target = %v, want %v", s.hero.Target, world.C(2, 1).Pixel())
	}
	if s.hero.Cell != world.C(1, 1) {
		t.Errorf("Cell = %v, want (1,1) until ticks run", s.hero.Cell)
	}
	if !reflect.DeepEqual(audio.calls, []string{"play:move"}) {
		t.Errorf("audio calls = %v, want [play:move]", audio.calls)
	}

	// A second press while the move is in flight changes nothing.
	s.Direction(ctx, world.Down)
	if s.hero.Target != world.C(2, 1).Pixel() {
		t.Errorf("Target = %v after rejected move", s.hero.Target)
	}
	if len(audio.calls) != 1 {
		t.Errorf("rejected move played a cue: %v", audio.calls)
	}

	for i := 0; i < world.TileSize/entity.DefaultSpeed; i++ {
		s.Tick(ctx)
	}
	if s.hero.Cell != world.C(2, 1) || s.hero.Moving() {
		t.Errorf("after move: cell %v moving %v", s.hero.Cell, s.hero.Moving())
	}
}

func TestMoveWithoutSoundPlaysNothing(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.ToggleSound(ctx)
	s.Start(ctx)
	audio.reset()

	s.Direction(ctx, world.Down)
	if !s.hero.Moving() {
		t.Error("hero should move with sound off")
	}
	if len(audio.calls) != 0 {
		t.Errorf("audio calls = %v, want none", audio.calls)
	}
}

func TestOutOfBoundsMoveIgnored(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.hero.JumpTo(world.C(0, 0))
	audio.reset()

	s.Direction(ctx, world.Left)
	s.Direction(ctx, world.Up)
	if s.hero.Moving() || s.hero.Cell != world.C(0, 0) {
		t.Errorf("out of bounds move changed hero: cell %v moving %v", s.hero.Cell, s.hero.Moving())
	}
	if len(audio.calls) != 0 {
		t.Errorf("audio calls = %v, want none", audio.calls)
	}
}

func TestTileAlignmentInvariant(t *testing.T) {
	for _, behavior := range []string{"patrol", "wander"} {
		s, _ := newTestSession(t, testConfig(ModelSmooth, behavior))
		ctx := context.Background()
		s.Start(ctx)
		// Keep the hero out of the enemies' reach so play continues.
		s.enemies = s.enemies[1:]

		dirs := []world.Direction{world.Right, world.Down, world.Left, world.Up}
		for tick := 0; tick < 2000 && s.Mode() == ModePlaying; tick++ {
			if tick%3 == 0 {
				s.Direction(ctx, dirs[(tick/3)%len(dirs)])
			}
			s.Tick(ctx)

			all := append([]*entity.Entity{&s.hero.Entity}, enemyEntities(s)...)
			for i, e := range all {
				if !e.Cell.InBounds() {
					t.Fatalf("%s tick %d: entity %d at %v off the grid", behavior, tick, i, e.Cell)
				}
				if !e.Moving() && e.Pixel != e.Cell.Pixel() {
					t.Fatalf("%s tick %d: idle entity %d at pixel %v, cell %v", behavior, tick, i, e.Pixel, e.Cell)
				}
			}
		}
	}
}

func enemyEntities(s *Session) []*entity.Entity {
	out := make([]*entity.Entity, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = &e.Entity
	}
	return out
}

func TestPatrolEnemyInSession(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Start(ctx)

	enemy := s.enemies[0]
	patrol, ok := enemy.Strategy.(*entity.Patrol)
	if !ok {
		t.Fatalf("enemy strategy = %T, want *entity.Patrol", enemy.Strategy)
	}
	if patrol.Index != 1 {
		t.Fatalf("initial patrol index = %d, want 1", patrol.Index)
	}

	reached := false
	for tick := 0; tick < 200 && !reached; tick++ {
		s.Tick(ctx)
		reached = enemy.Cell == world.C(7, 5)
	}
	if !reached {
		t.Fatalf("enemy never reached (7,5), at %v", enemy.Cell)
	}
	if patrol.Index != 0 {
		t.Errorf("patrol index at (7,5) = %d, want 0", patrol.Index)
	}

	back := false
	for tick := 0; tick < 200 && !back; tick++ {
		s.Tick(ctx)
		back = enemy.Cell == world.C(5, 5)
	}
	if !back {
		t.Errorf("enemy never returned to (5,5), at %v", enemy.Cell)
	}
	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, want playing", s.Mode())
	}
}

func TestCollisionEndsGameAndFreezes(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.hero.JumpTo(world.C(5, 5))
	audio.reset()

	s.Tick(ctx)
	if s.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v after collision, want game_over", s.Mode())
	}
	if want := []string{"stop:background", "play:game_over"}; !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}

	frozen := pixels(s)
	frozenCells := cells(s)
	for i := 0; i < 30; i++ {
		s.Tick(ctx)
		s.Direction(ctx, world.Right)
	}
	if got := pixels(s); !reflect.DeepEqual(got, frozen) {
		t.Errorf("positions changed after game over: %v -> %v", frozen, got)
	}
	if got := cells(s); !reflect.DeepEqual(got, frozenCells) {
		t.Errorf("cells changed after game over: %v -> %v", frozenCells, got)
	}
}

func TestCollisionSilentWithoutSound(t *testing.T) {
	cfg := testConfig(ModelSmooth, "patrol")
	cfg.Sound = false
	s, audio := newTestSession(t, cfg)
	ctx := context.Background()
	s.Start(ctx)
	s.hero.JumpTo(world.C(8, 2))

	s.Tick(ctx)
	if s.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, want game_over", s.Mode())
	}
	if want := []string{"stop:background"}; !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}
}

func TestResetFromGameOver(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.hero.JumpTo(world.C(5, 5))
	s.Tick(ctx)
	if s.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, want game_over", s.Mode())
	}
	oldHero := s.hero
	audio.reset()

	s.Confirm(ctx)

	if s.Mode() != ModeMenu {
		t.Errorf("Mode() = %v after confirm, want menu", s.Mode())
	}
	if s.hero == oldHero {
		t.Error("hero was not replaced on reset")
	}
	want := []world.Cell{world.C(1, 1), world.C(5, 5), world.C(8, 2)}
	if got := cells(s); !reflect.DeepEqual(got, want) {
		t.Errorf("cells after reset = %v, want %v", got, want)
	}
	for i, e := range s.enemies {
		if e.Moving() {
			t.Errorf("enemy %d moving after reset", i)
		}
		if p := e.Strategy.(*entity.Patrol); p.Index != 1 {
			t.Errorf("enemy %d patrol index = %d after reset, want 1", i, p.Index)
		}
	}
	if !reflect.DeepEqual(audio.calls, []string{"play:background"}) {
		t.Errorf("audio calls = %v, want [play:background]", audio.calls)
	}

	s.Confirm(ctx)
	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v after second confirm, want playing", s.Mode())
	}
}

func TestConfirmWhilePlayingIgnored(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Confirm(ctx)
	s.Confirm(ctx)
	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, want playing", s.Mode())
	}
}

func TestToggleSound(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	audio.reset()

	s.ToggleSound(ctx)
	if s.SoundEnabled() {
		t.Error("SoundEnabled() = true after toggle")
	}
	s.ToggleSound(ctx)
	if !s.SoundEnabled() {
		t.Error("SoundEnabled() = false after second toggle")
	}
	if want := []string{"stop:background", "play:background"}; !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}

	s.Start(ctx)
	s.ToggleSound(ctx)
	if !s.SoundEnabled() {
		t.Error("ToggleSound while playing should be ignored")
	}
}

func TestExitOnlyFromMenu(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()

	s.Start(ctx)
	s.Exit()
	if s.ExitRequested() {
		t.Error("Exit while playing should be ignored")
	}

	s.hero.JumpTo(world.C(5, 5))
	s.Tick(ctx)
	s.Confirm(ctx)
	s.Exit()
	if !s.ExitRequested() {
		t.Error("Exit from menu should request termination")
	}
}

func TestHandleDispatch(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()

	s.Handle(ctx, ActionToggleSound)
	if s.SoundEnabled() {
		t.Error("ActionToggleSound did not toggle")
	}
	s.Handle(ctx, ActionNone)
	s.Handle(ctx, ActionStart)
	if s.Mode() != ModePlaying {
		t.Fatalf("ActionStart: Mode() = %v", s.Mode())
	}
	s.Handle(ctx, ActionDown)
	if s.hero.Target != world.C(1, 2).Pixel() {
		t.Errorf("ActionDown: target %v, want %v", s.hero.Target, world.C(1, 2).Pixel())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionUp, "up"},
		{ActionConfirm, "confirm"},
		{ActionToggleSound, "toggle_sound"},
		{ActionExit, "exit"},
		{Action(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}

	if _, ok := ActionExit.Direction(); ok {
		t.Error("ActionExit.Direction() should not be a direction")
	}
	if d, ok := ActionLeft.Direction(); !ok || d != world.Left {
		t.Errorf("ActionLeft.Direction() = %v,%v", d, ok)
	}
}

func TestWanderSessionsReproducible(t *testing.T) {
	run := func() []world.Cell {
		s, _ := newTestSession(t, testConfig(ModelSmooth, "wander"))
		ctx := context.Background()
		s.Start(ctx)
		s.hero.JumpTo(world.C(0, 9))
		for i := 0; i < 300 && s.Mode() == ModePlaying; i++ {
			s.Tick(ctx)
		}
		return cells(s)
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestStepwiseMoveAdvancesEnemies(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelStep, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	audio.reset()

	s.Direction(ctx, world.Right)

	if s.hero.Cell != world.C(2, 1) || s.hero.Moving() {
		t.Errorf("hero cell %v moving %v, want (2,1) at rest", s.hero.Cell, s.hero.Moving())
	}
	want := []world.Cell{world.C(2, 1), world.C(6, 5), world.C(8, 3)}
	if got := cells(s); !reflect.DeepEqual(got, want) {
		t.Errorf("cells = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(audio.calls, []string{"play:move"}) {
		t.Errorf("audio calls = %v, want [play:move]", audio.calls)
	}
	if s.hero.ImageSet() != entity.SetWalk {
		t.Errorf("hero image set = %v right after a jump, want walk", s.hero.ImageSet())
	}

	s.Tick(ctx)
	if s.hero.ImageSet() != entity.SetIdle {
		t.Errorf("hero image set = %v after a tick, want idle", s.hero.ImageSet())
	}
	if got := cells(s); !reflect.DeepEqual(got, want) {
		t.Errorf("tick moved entities in step mode: %v", got)
	}
}

func TestStepwiseRejectedMoveLeavesEnemies(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelStep, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.hero.JumpTo(world.C(0, 0))

	before := cells(s)
	s.Direction(ctx, world.Up)
	if got := cells(s); !reflect.DeepEqual(got, before) {
		t.Errorf("rejected step moved entities: %v -> %v", before, got)
	}
}

func TestStepwiseCollisionIsSynchronous(t *testing.T) {
	s, audio := newTestSession(t, testConfig(ModelStep, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.hero.JumpTo(world.C(6, 6))
	audio.reset()

	// The hero steps onto (6,5) while the first enemy patrols into it.
	s.Direction(ctx, world.Up)

	if s.Mode() != ModeGameOver {
		t.Fatalf("Mode() = %v, want game_over without a tick", s.Mode())
	}
	if want := []string{"play:move", "stop:background", "play:game_over"}; !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}
}

func TestStepwiseAnimationPeriod(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelStep, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.enemies = nil

	for i := 0; i < entity.StepAnimationPeriod-1; i++ {
		s.Tick(ctx)
	}
	if s.hero.Frame() != 0 {
		t.Errorf("frame changed before %d ticks", entity.StepAnimationPeriod)
	}
	s.Tick(ctx)
	if s.hero.Frame() != 1 {
		t.Errorf("Frame() = %d after %d ticks, want 1", s.hero.Frame(), entity.StepAnimationPeriod)
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSession(t, testConfig(ModelSmooth, "patrol"))
	ctx := context.Background()
	s.Start(ctx)
	s.Direction(ctx, world.Right)
	s.Tick(ctx)

	snap := s.Snapshot()
	if snap.Mode != ModePlaying || !snap.SoundEnabled || snap.Ticks != 1 {
		t.Errorf("snapshot header = %v/%v/%d", snap.Mode, snap.SoundEnabled, snap.Ticks)
	}
	if snap.Title != "Zombie Scape" {
		t.Errorf("Title = %q", snap.Title)
	}
	if snap.Hero.Kind != KindHero || snap.Hero.Set != entity.SetWalk || snap.Hero.Image != "hero_walk1" {
		t.Errorf("hero view = %+v", snap.Hero)
	}
	if snap.Hero.Pixel.X != 64+entity.DefaultSpeed {
		t.Errorf("hero pixel = %v", snap.Hero.Pixel)
	}
	if len(snap.Enemies) != 2 || snap.Enemies[0].Kind != KindEnemy || snap.Enemies[0].Name != "Zombie" {
		t.Errorf("enemy views = %+v", snap.Enemies)
	}
	if snap.Hero.Look.GlyphRune() != '@' {
		t.Errorf("hero glyph = %c", snap.Hero.Look.GlyphRune())
	}
}
