package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is a pitch held for a duration. A zero frequency is a rest.
type note struct {
	freq     float64
	duration time.Duration
}

// tone returns a sine tone of the given length shaped by a short attack and release.
func tone(rate beep.SampleRate, n note) beep.Streamer {
	samples := rate.N(n.duration)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(rate, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	return newEnvelope(beep.Take(samples, sine), samples, rate.N(5*time.Millisecond), rate.N(n.duration/3))
}

// melody plays notes back to back.
func melody(rate beep.SampleRate, notes []note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = tone(rate, n)
	}
	return beep.Seq(parts...)
}

// envelope fades a stream in over attack samples and out over the final
// release samples.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; 0 silences it.
// math.Log2(0) is -Inf, so zero volume is handled through Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// moveSound is a short rising blip.
func moveSound(rate beep.SampleRate) beep.Streamer {
	return melody(rate, []note{
		{660, 40 * time.Millisecond},
		{880, 40 * time.Millisecond},
	})
}

// gameOverSound is a slow descending phrase.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return melody(rate, []note{
		{440, 220 * time.Millisecond},
		{370, 220 * time.Millisecond},
		{311, 220 * time.Millisecond},
		{220, 600 * time.Millisecond},
	})
}

// mysteryTheme is one bar of the background track.
var mysteryTheme = []note{
	{220, 300 * time.Millisecond},
	{261.63, 300 * time.Millisecond},
	{329.63, 300 * time.Millisecond},
	{0, 150 * time.Millisecond},
	{311.13, 300 * time.Millisecond},
	{261.63, 300 * time.Millisecond},
	{196, 450 * time.Millisecond},
	{0, 300 * time.Millisecond},
}

// backgroundTrack renders the theme once into a buffer and loops it forever.
func backgroundTrack(rate beep.SampleRate) beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(melody(rate, mysteryTheme))
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}
