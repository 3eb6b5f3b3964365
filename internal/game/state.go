// Package game provides the game session: mode transitions, movement models
// and collision detection.
package game

// Mode is the top-level game phase.
type Mode int

const (
	// ModeMenu is the initial mode; the start button begins play.
	ModeMenu Mode = iota
	// ModePlaying is the only mode in which ticks move entities.
	ModePlaying
	// ModeGameOver is entered when an enemy reaches the hero. Entities are frozen.
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
