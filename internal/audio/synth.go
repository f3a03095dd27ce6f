package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// envelope fades a stream in and out over a fixed length.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, length, attack, release time.Duration) *envelope {
	return &envelope{
		streamer: s,
		total:    sr.N(length),
		attack:   sr.N(attack),
		release:  sr.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// noise is a decaying burst of white noise over a low thump.
type noise struct {
	sr  beep.SampleRate
	rng *rand.Rand
	pos int
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		decay := math.Exp(-t * 12)
		v := decay * (0.5*(g.rng.Float64()*2-1) + 0.5*math.Sin(2*math.Pi*90*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// melody plays a note sequence on a soft square wave, forever.
type melody struct {
	sr      beep.SampleRate
	notes   []float64 // Hz; zero is a rest
	perNote int
	pos     int
	phase   float64
}

func newMelody(sr beep.SampleRate, noteLen time.Duration, notes []float64) *melody {
	return &melody{sr: sr, notes: notes, perNote: sr.N(noteLen)}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.perNote) % len(m.notes)
		within := m.pos % m.perNote
		freq := m.notes[idx]

		var v float64
		if freq > 0 {
			if m.phase < 0.5 {
				v = 0.2
			} else {
				v = -0.2
			}
			// Short decay per note keeps the square wave from droning.
			v *= 1 - 0.6*float64(within)/float64(m.perNote)
			m.phase += freq / float64(m.sr)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// withVolume scales a stream by a linear factor.
func withVolume(s beep.Streamer, v float64) *effects.Volume {
	vol := &effects.Volume{Streamer: s, Base: 2}
	setVolume(vol, v)
	return vol
}

func setVolume(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Silent = true
		vol.Volume = 0
		return
	}
	vol.Silent = false
	vol.Volume = math.Log2(v)
}

// coinSound is a rising two note chime.
func coinSound(sr beep.SampleRate) (beep.Streamer, error) {
	lo, err := generators.SineTone(sr, 987.77)
	if err != nil {
		return nil, err
	}
	hi, err := generators.SineTone(sr, 1318.51)
	if err != nil {
		return nil, err
	}
	first := newEnvelope(lo, sr, 70*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond)
	second := newEnvelope(hi, sr, 180*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond)
	return withVolume(beep.Seq(first, second), 0.4), nil
}

// hitSound is a short crunchy thud.
func hitSound(sr beep.SampleRate, seed int64) beep.Streamer {
	burst := &noise{sr: sr, rng: rand.New(rand.NewSource(seed))}
	return withVolume(beep.Take(sr.N(200*time.Millisecond), burst), 0.5)
}

// tracks maps a music name to its note sequence.
var tracks = map[string][]float64{
	"bg_music": {
		523.25, 659.25, 783.99, 659.25,
		587.33, 698.46, 880.00, 698.46,
		523.25, 659.25, 783.99, 1046.50,
		493.88, 587.33, 783.99, 0,
	},
}
