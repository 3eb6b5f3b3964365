package audio

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvSampleRate = "ZOMBIESCAPE_SAMPLE_RATE"
	EnvVolume     = "ZOMBIESCAPE_VOLUME"
)

// Config holds audio settings.
type Config struct {
	SampleRate   int     // Output sample rate in Hz
	MasterVolume float64 // 0.0-1.0, applied to every cue
	MusicVolume  float64 // 0.0-1.0, applied on top of MasterVolume to the background track
}

// DefaultConfig returns the default audio settings.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		MasterVolume: 1.0,
		MusicVolume:  0.3,
	}
}

// LoadConfig loads audio settings from environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSampleRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return cfg, fmt.Errorf("invalid %s %q", EnvSampleRate, v)
		}
		cfg.SampleRate = rate
	}

	// Master volume is given as 0-100
	if v := os.Getenv(EnvVolume); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvVolume, err)
		}
		cfg.MasterVolume = clamp01(float64(vol) / 100.0)
	}

	return cfg, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
