package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zombiescape/internal/game"
)

// Terminal drives a session from terminal input at a fixed tick rate.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	interval time.Duration

	buttons tcell.ButtonMask
	running bool
}

// NewTerminal creates a terminal frontend for the session.
func NewTerminal(screen *Screen, session *game.Session, tickRate int) *Terminal {
	if tickRate <= 0 {
		tickRate = game.DefaultConfig().TickRate
	}
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		interval: time.Second / time.Duration(tickRate),
		running:  true,
	}
}

// Run executes the main loop until the player exits, the context is
// cancelled or the screen is closed. The session is only touched from the
// calling goroutine.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go t.pollEvents(events, done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.renderer.Render(t.session.Snapshot())
	for t.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.handleEvent(ctx, ev)
		case <-ticker.C:
			t.session.Tick(ctx)
		}
		if t.session.ExitRequested() {
			return nil
		}
		t.renderer.Render(t.session.Snapshot())
	}
	return nil
}

// pollEvents forwards terminal events until the screen is finalized.
func (t *Terminal) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *Terminal) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			t.running = false
			return
		}
		t.session.Handle(ctx, KeyAction(ev))
	case *tcell.EventMouse:
		t.handleMouse(ctx, ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// handleMouse fires menu buttons on the press of the primary button.
func (t *Terminal) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = ev.Buttons()
	if !pressed || t.session.Mode() != game.ModeMenu {
		return
	}
	x, y := ev.Position()
	t.session.Handle(ctx, t.renderer.Menu().ActionAt(x, y))
}

// KeyAction maps a key press to a logical action.
func KeyAction(ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ActionUp
	case tcell.KeyDown:
		return game.ActionDown
	case tcell.KeyLeft:
		return game.ActionLeft
	case tcell.KeyRight:
		return game.ActionRight
	case tcell.KeyEnter:
		return game.ActionConfirm
	case tcell.KeyEscape:
		return game.ActionExit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.ActionUp
		case 's', 'S':
			return game.ActionDown
		case 'a', 'A':
			return game.ActionLeft
		case 'd', 'D':
			return game.ActionRight
		case ' ':
			return game.ActionConfirm
		case 'm', 'M':
			return game.ActionToggleSound
		case 'q', 'Q':
			return game.ActionExit
		}
	}
	return game.ActionNone
}
