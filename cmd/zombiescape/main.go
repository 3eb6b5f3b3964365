// Package main is the entry point for Zombie Scape.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/zombiescape/internal/audio"
	"github.com/samdwyer/zombiescape/internal/game"
	"github.com/samdwyer/zombiescape/internal/telemetry"
	"github.com/samdwyer/zombiescape/internal/ui"
	"github.com/samdwyer/zombiescape/internal/ui/window"
)

// envLog names the file that receives log output while the terminal frontend
// owns the screen.
const envLog = "ZOMBIESCAPE_LOG"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	parseFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry.ConfigureEnv()
	shutdown, err := telemetry.Setup(ctx)
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	default:
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	var sound game.Audio = game.NopAudio{}
	audioCfg, err := audio.LoadConfig()
	if err != nil {
		log.Printf("Warning: %v, using default audio settings", err)
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Init(); err != nil {
		log.Printf("Warning: audio unavailable: %v", err)
		log.Printf("Game will run silent")
	} else {
		defer player.Close()
		sound = player
	}

	session, err := game.New(ctx, cfg, sound)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	log.Printf("Session %s: movement=%s enemies=%s frontend=%s",
		session.ID, cfg.Movement, cfg.EnemyBehavior, cfg.Frontend)

	if cfg.Frontend == game.FrontendWindow {
		err = window.Run(ctx, session, cfg.TickRate)
	} else {
		err = runTerminal(ctx, session, cfg.TickRate)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Game error: %v", err)
	}
}

// parseFlags applies command line overrides on top of the environment.
func parseFlags(cfg *game.Config) {
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for enemy wandering (0 = random)")
	flag.StringVar(&cfg.Movement, "movement", cfg.Movement, "movement model: smooth or step")
	flag.StringVar(&cfg.EnemyBehavior, "enemies", cfg.EnemyBehavior, "enemy behavior: patrol or wander")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "start with sound enabled")
	flag.IntVar(&cfg.TickRate, "tps", cfg.TickRate, "simulation ticks per second")
	flag.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend: terminal or window")
	flag.StringVar(&cfg.LayoutFile, "layout", cfg.LayoutFile, "spawn layout JSON file (default embedded)")
	flag.Parse()
}

func runTerminal(ctx context.Context, session *game.Session, tickRate int) error {
	// tcell owns the terminal, so logs go to a file or nowhere.
	out := io.Discard
	if path := os.Getenv(envLog); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	log.SetOutput(out)
	defer log.SetOutput(os.Stderr)

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	return ui.NewTerminal(screen, session, tickRate).Run(ctx)
}
