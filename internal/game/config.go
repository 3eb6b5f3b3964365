package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/zombiescape/internal/entity"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed          = "ZOMBIESCAPE_SEED"
	EnvMovement      = "ZOMBIESCAPE_MOVEMENT"
	EnvEnemyBehavior = "ZOMBIESCAPE_ENEMY_BEHAVIOR"
	EnvSound         = "ZOMBIESCAPE_SOUND"
	EnvTickRate      = "ZOMBIESCAPE_TICK_RATE"
	EnvFrontend      = "ZOMBIESCAPE_FRONTEND"
	EnvLayout        = "ZOMBIESCAPE_LAYOUT"
)

// Frontend names.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible enemy wandering.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Movement selects the movement model: "smooth" or "step".
	Movement string

	// EnemyBehavior selects the enemy strategy: "patrol" or "wander".
	EnemyBehavior string

	// Sound is the initial state of the menu's sound toggle.
	Sound bool

	// TickRate is the number of simulation ticks per second.
	TickRate int

	// Frontend selects the renderer: "terminal" or "window".
	Frontend string

	// LayoutFile, if set, replaces the embedded spawn layout.
	LayoutFile string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Movement:      ModelSmooth,
		EnemyBehavior: entity.BehaviorWander.String(),
		Sound:         true,
		TickRate:      60,
		Frontend:      FrontendTerminal,
	}
}

// LoadConfig builds a Config from the defaults and ZOMBIESCAPE_* environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvMovement); v != "" {
		cfg.Movement = v
	}
	if v := os.Getenv(EnvEnemyBehavior); v != "" {
		cfg.EnemyBehavior = v
	}
	if v := os.Getenv(EnvSound); v != "" {
		sound, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvSound, err)
		}
		cfg.Sound = sound
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvTickRate, err)
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv(EnvFrontend); v != "" {
		cfg.Frontend = v
	}
	if v := os.Getenv(EnvLayout); v != "" {
		cfg.LayoutFile = v
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if _, err := NewModel(c.Movement); err != nil {
		return err
	}
	if _, ok := entity.ParseBehavior(c.EnemyBehavior); !ok {
		return fmt.Errorf("unknown enemy behavior %q", c.EnemyBehavior)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}
