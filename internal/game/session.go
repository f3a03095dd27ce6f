// Package game implements the Coin Quest simulation: the session state,
// level loading, the per-frame play rules and the scene state machine.
// It is headless; hosts feed it input frames and give it a Canvas to draw on.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-quest/internal/catalog"
	"github.com/vovakirdan/coin-quest/internal/config"
	"github.com/vovakirdan/coin-quest/internal/core"
)

// Options configures a new Session.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Levels  catalog.Catalog
	Audio   Audio       // nil means silent
	Logger  *log.Logger // nil discards
}

// Session holds everything one running game needs: the current level's
// entities, the hero, the sound toggle and the random source.
type Session struct {
	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	levels     catalog.Catalog
	rng        *rand.Rand
	audio      Audio
	logger     *log.Logger
	difficulty *config.DifficultyManager

	// SoundEnabled gates every audio call.
	SoundEnabled bool
	musicStarted bool
	quit         bool

	levelIndex int
	hero       *Hero
	platforms  []*Platform
	coins      []*Coin
	enemies    []*Enemy
	paused     bool
}

// NewSession creates a session. No level is loaded until play starts.
func NewSession(opts Options) (*Session, error) {
	if opts.Levels.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Audio == nil {
		opts.Audio = silentAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Runtime.TickRate = opts.Runtime.Rate()

	return &Session{
		cfg:          opts.Config,
		runtime:      opts.Runtime,
		levels:       opts.Levels,
		rng:          rand.New(rand.NewSource(opts.Runtime.Seed)),
		audio:        opts.Audio,
		logger:       opts.Logger,
		difficulty:   config.NewDifficultyManager(opts.Config.Difficulty),
		SoundEnabled: opts.Config.Audio.Enabled,
	}, nil
}

// Config returns the game configuration in use.
func (s *Session) Config() config.GameConfig { return s.cfg }

// Hero returns the current hero, or nil before play has started.
func (s *Session) Hero() *Hero { return s.hero }

// LevelIndex returns the zero-based index of the loaded level.
func (s *Session) LevelIndex() int { return s.levelIndex }

// LevelCount returns the number of levels in the catalog.
func (s *Session) LevelCount() int { return s.levels.Len() }

// Platforms returns the platforms of the current level.
func (s *Session) Platforms() []*Platform { return s.platforms }

// Coins returns the coins still to be collected on the current level.
func (s *Session) Coins() []*Coin { return s.coins }

// Enemies returns the enemies of the current level.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Paused reports whether play is paused.
func (s *Session) Paused() bool { return s.paused }

// MusicStarted reports whether background music is believed to be playing.
func (s *Session) MusicStarted() bool { return s.musicStarted }

// newHero creates a hero with full lives at the spawn point.
func (s *Session) newHero() *Hero {
	hc := s.cfg.Hero
	w := s.cfg.World
	return &Hero{
		Rect:       core.RectAt(w.Width/2, w.Height-w.SpawnOffset, hc.Width, hc.Height),
		SpeedX:     hc.SpeedX,
		SpeedY:     hc.SpeedY,
		Lives:      hc.Lives,
		frames:     []string{SpriteHero1, SpriteHero2},
		animEvery:  hc.AnimEvery,
		area:       bounds{w: w.Width, h: w.Height, pad: w.Padding},
		knockbackX: hc.KnockbackX,
		knockbackY: hc.KnockbackY,
	}
}

func (s *Session) playSound(snd Sound) {
	if s.SoundEnabled {
		s.audio.PlaySound(snd)
	}
}

// startMusic starts background music if sound is on and it is not playing.
func (s *Session) startMusic() {
	if !s.SoundEnabled || s.musicStarted {
		return
	}
	if err := s.audio.PlayMusic(s.cfg.Audio.Music); err != nil {
		s.logger.Warn("music unavailable", "track", s.cfg.Audio.Music, "err", err)
		return
	}
	s.audio.SetMusicVolume(s.cfg.Audio.MusicVolume)
	s.musicStarted = true
}

// ToggleSound flips SoundEnabled, starting or stopping the music.
// A failing stop is ignored and the music is considered stopped either way.
func (s *Session) ToggleSound() {
	s.SoundEnabled = !s.SoundEnabled
	if s.SoundEnabled {
		s.startMusic()
		return
	}
	if err := s.audio.StopMusic(); err != nil {
		s.logger.Debug("stop music", "err", err)
	}
	s.musicStarted = false
}
