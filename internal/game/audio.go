package game

// Cue names a sound the audio collaborator can play.
type Cue string

const (
	CueMove       Cue = "move"
	CueGameOver   Cue = "game_over"
	CueBackground Cue = "background"
)

// Audio plays and stops cues. Implementations must not block the tick.
type Audio interface {
	Play(cue Cue)
	Stop(cue Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(Cue) {}

// Stop does nothing.
func (NopAudio) Stop(Cue) {}
