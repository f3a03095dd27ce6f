package game

import "github.com/vovakirdan/coin-quest/internal/core"

// Sprite identifiers understood by every Canvas implementation.
const (
	SpriteHero1       = "hero1"
	SpriteHero2       = "hero2"
	SpriteHeroCollect = "hero_collect_coin"
	SpriteHeroPain    = "hero_pain"
	SpriteEnemy1      = "enemy1"
	SpriteEnemy2      = "enemy2"
	SpriteCoin        = "coin"
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size  int // Nominal font size in world units
	Color core.Color
}

// Canvas is the set of drawing primitives a host provides.
// Coordinates are world units; hosts scale as needed.
type Canvas interface {
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	DrawText(x, y int, text string, style TextStyle)
	DrawTextCentered(cx, cy int, text string, style TextStyle)
	DrawSprite(id string, r core.Rect)
}

// Sound names a one-shot sound effect.
type Sound string

const (
	SoundCoin Sound = "coin"
	SoundHit  Sound = "hit"
)

// Audio is the playback backend. Implementations must not block.
type Audio interface {
	PlaySound(s Sound)
	PlayMusic(name string) error
	StopMusic() error
	SetMusicVolume(v float64)
}

// Input is the per-tick keyboard view handed to scenes.
type Input interface {
	IsDown(a core.Action) bool
	WasPressed(a core.Action) bool
}

// silentAudio is used when no backend is supplied.
type silentAudio struct{}

func (silentAudio) PlaySound(Sound) {}
func (silentAudio) PlayMusic(string) error { return nil }
func (silentAudio) StopMusic() error { return nil }
func (silentAudio) SetMusicVolume(float64) {}
