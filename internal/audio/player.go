// Package audio synthesizes the game's sound cues and plays them through the
// system speaker with beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/zombiescape/internal/game"
)

// Player implements game.Audio on top of a beep mixer.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	speaker     sync.Locker // guards mixer contents against the output goroutine
	initialized bool
}

// speakerLock adapts the speaker's package-level lock to sync.Locker.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// NewPlayer creates a player. Call Init before expecting sound.
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:     cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		mixer:   &beep.Mixer{},
		speaker: speakerLock{},
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(withVolume(p.mixer, p.cfg.MasterVolume))
	p.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.speaker.Lock()
	p.mixer.Clear()
	p.speaker.Unlock()
	p.music = nil

	speaker.Close()
	p.initialized = false
}

// Play starts a cue. The background track resumes where it was stopped.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.speaker.Lock()
	defer p.speaker.Unlock()

	switch cue {
	case game.CueMove:
		p.mixer.Add(moveSound(p.rate))
	case game.CueGameOver:
		p.mixer.Add(gameOverSound(p.rate))
	case game.CueBackground:
		if p.music == nil {
			p.music = &beep.Ctrl{Streamer: withVolume(backgroundTrack(p.rate), p.cfg.MusicVolume)}
			p.mixer.Add(p.music)
		}
		p.music.Paused = false
	}
}

// Stop pauses the background track. One-shot cues always play to the end.
func (p *Player) Stop(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cue != game.CueBackground || p.music == nil {
		return
	}

	p.speaker.Lock()
	p.music.Paused = true
	p.speaker.Unlock()
}

// MusicPlaying reports whether the background track is audible.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil && !p.music.Paused
}

var _ game.Audio = (*Player)(nil)
