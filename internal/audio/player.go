// Package audio plays Coin Quest's sound effects and background music
// through the beep speaker. Every sound is synthesized, so no asset files
// are needed.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/coin-quest/internal/game"
)

var (
	// ErrMusicNotPlaying is returned by StopMusic when nothing is playing.
	ErrMusicNotPlaying = errors.New("music is not playing")
	// ErrUnknownTrack is returned by PlayMusic for a name with no track.
	ErrUnknownTrack = errors.New("unknown music track")
)

// Player mixes effects and music into a single speaker stream.
type Player struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume *effects.Volume
	level  float64
	hits   int64

	// lock and unlock guard streamers shared with the speaker goroutine.
	lock   func()
	unlock func()
}

// New initializes the speaker at the given sample rate and starts the mixer.
func New(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(sr, speaker.Lock, speaker.Unlock)
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(sr beep.SampleRate, lock, unlock func()) *Player {
	return &Player{
		sr:     sr,
		mixer:  &beep.Mixer{},
		level:  1,
		lock:   lock,
		unlock: unlock,
	}
}

// PlaySound starts a one-shot effect. Unknown sounds are ignored.
func (p *Player) PlaySound(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var st beep.Streamer
	switch s {
	case game.SoundCoin:
		var err error
		if st, err = coinSound(p.sr); err != nil {
			return
		}
	case game.SoundHit:
		p.hits++
		st = hitSound(p.sr, p.hits)
	default:
		return
	}

	p.lock()
	p.mixer.Add(st)
	p.unlock()
}

// PlayMusic starts the named track from the beginning, replacing any track
// already playing.
func (p *Player) PlayMusic(name string) error {
	notes, ok := tracks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	vol := withVolume(newMelody(p.sr, 150*time.Millisecond, notes), p.level)
	ctrl := &beep.Ctrl{Streamer: vol}

	p.lock()
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.music = ctrl
	p.volume = vol
	p.mixer.Add(ctrl)
	p.unlock()
	return nil
}

// StopMusic stops the current track.
func (p *Player) StopMusic() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return ErrMusicNotPlaying
	}
	p.lock()
	// A Ctrl without a streamer ends, so the mixer drops it.
	p.music.Streamer = nil
	p.unlock()
	p.music = nil
	p.volume = nil
	return nil
}

// SetMusicVolume sets the music level from 0 (silent) to 1 (full).
func (p *Player) SetMusicVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.level = v
	if p.volume == nil {
		return
	}
	p.lock()
	setVolume(p.volume, v)
	p.unlock()
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.music = nil
	p.volume = nil
	speaker.Close()
}

// Nop is a silent backend used when no audio device is available.
type Nop struct{}

// PlaySound does nothing.
func (Nop) PlaySound(game.Sound) {}

// PlayMusic does nothing and reports success.
func (Nop) PlayMusic(string) error { return nil }

// StopMusic does nothing and reports success.
func (Nop) StopMusic() error { return nil }

// SetMusicVolume does nothing.
func (Nop) SetMusicVolume(float64) {}

var (
	_ game.Audio = (*Player)(nil)
	_ game.Audio = Nop{}
)
