package game

import (
	"github.com/vovakirdan/coin-quest/internal/core"
)

// Platform is a static rectangle the hero can stand on.
type Platform struct {
	Rect core.Rect
}

// Coin is a collectible; it is removed from the level when collected.
type Coin struct {
	Rect core.Rect
}

// bounds is the area the hero may move in.
type bounds struct {
	w, h, pad int
}

// Hero is the player character.
type Hero struct {
	Rect   core.Rect
	SpeedX int
	SpeedY int
	Lives  int
	Coins  int
	PrevY  int // Center y before this frame's movement

	frames      []string
	frame       int
	animCounter int
	animEvery   int

	collecting   bool
	collectTicks int
	painTicks    int

	area       bounds
	knockbackX int
	knockbackY int
}

// Collecting reports whether the hero is in the coin collecting pose.
func (h *Hero) Collecting() bool {
	return h.collecting
}

// Hurt reports whether the pain pose is showing.
func (h *Hero) Hurt() bool {
	return h.painTicks > 0
}

// Sprite returns the image the hero is currently shown with.
func (h *Hero) Sprite() string {
	switch {
	case h.Collecting():
		return SpriteHeroCollect
	case h.Hurt():
		return SpriteHeroPain
	default:
		return h.frames[h.frame]
	}
}

// tickTimers counts down the temporary poses.
func (h *Hero) tickTimers() {
	if h.painTicks > 0 {
		h.painTicks--
	}
	if h.collectTicks > 0 {
		h.collectTicks--
		if h.collectTicks == 0 {
			h.collecting = false
		}
	}
}

// Animate advances timers and the idle animation. The idle frame does not
// advance while collecting.
func (h *Hero) Animate() {
	h.tickTimers()
	if h.collecting {
		return
	}
	h.animCounter++
	if h.animCounter%h.animEvery == 0 {
		h.frame = (h.frame + 1) % len(h.frames)
	}
}

// MoveRight steps right by SpeedX, stopping at the right padding.
func (h *Hero) MoveRight() {
	h.Rect.X += h.SpeedX
	if limit := h.area.w - h.area.pad; h.Rect.Right() >= limit {
		h.Rect.SetRight(limit)
	}
}

// MoveLeft steps left by SpeedX, stopping at the left padding.
func (h *Hero) MoveLeft() {
	h.Rect.X -= h.SpeedX
	if h.Rect.Left() <= h.area.pad {
		h.Rect.SetLeft(h.area.pad)
	}
}

// MoveUp steps up by SpeedY, stopping at the top padding.
func (h *Hero) MoveUp() {
	h.Rect.Y -= h.SpeedY
	if h.Rect.Top() <= h.area.pad {
		h.Rect.SetTop(h.area.pad)
	}
}

// MoveDown steps down by SpeedY, stopping at the bottom padding.
func (h *Hero) MoveDown() {
	h.Rect.Y += h.SpeedY
	if limit := h.area.h - h.area.pad; h.Rect.Bottom() >= limit {
		h.Rect.SetBottom(limit)
	}
}

// Collect counts a coin and shows the collecting pose for the given ticks.
func (h *Hero) Collect(ticks int) {
	h.Coins++
	h.collecting = true
	h.collectTicks = ticks
}

// TakeDamage removes a life, shows the pain pose for the given ticks and
// knocks the hero up and away from enemyX.
func (h *Hero) TakeDamage(enemyX int, ticks int) {
	if h.Lives > 0 {
		h.Lives--
	}
	h.painTicks = ticks
	if h.Rect.CenterX() < enemyX {
		h.Rect.X -= h.knockbackX
	} else {
		h.Rect.X += h.knockbackX
	}
	h.Rect.Y -= h.knockbackY
}

// Enemy patrols back and forth along one platform.
type Enemy struct {
	Rect     core.Rect
	Speed    int // Signed; zero means stationary
	Platform *Platform

	image       string
	frames      []string
	frame       int
	animCounter int
	animEvery   int
}

// Sprite returns the image the enemy is currently shown with.
func (e *Enemy) Sprite() string {
	return e.image
}

// Animate advances the patrol animation.
func (e *Enemy) Animate() {
	e.animCounter++
	if e.animCounter%e.animEvery == 0 {
		e.frame = (e.frame + 1) % len(e.frames)
		e.image = e.frames[e.frame]
	}
}

// Move steps the enemy along its platform, reversing at either end.
// The usable span is inset by half the enemy's width on both sides.
func (e *Enemy) Move() {
	if e.Speed == 0 {
		return
	}
	e.Rect.X += e.Speed

	half := e.Rect.W / 2
	leftBound := e.Platform.Rect.Left() + half
	rightBound := e.Platform.Rect.Right() - half

	if e.Rect.Left() <= leftBound {
		e.Rect.SetLeft(leftBound)
		e.Speed = -e.Speed
	} else if e.Rect.Right() >= rightBound {
		e.Rect.SetRight(rightBound)
		e.Speed = -e.Speed
	}
}
