package game

import (
	"fmt"

	"github.com/vovakirdan/coin-quest/internal/core"
)

// stepPlay runs one frame of play and returns the scene that should be active
// afterwards.
func (s *Session) stepPlay(in Input) SceneKind {
	if in.WasPressed(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return ScenePlay
	}

	h := s.hero
	h.PrevY = h.Rect.CenterY()
	h.Animate()

	if in.IsDown(core.ActionLeft) {
		h.MoveLeft()
	}
	if in.IsDown(core.ActionRight) {
		h.MoveRight()
	}
	if in.IsDown(core.ActionUp) {
		h.MoveUp()
	}
	if in.IsDown(core.ActionDown) {
		h.MoveDown()
	}

	s.landOnPlatforms()
	s.updateEnemies()
	s.collectCoins()

	if len(s.coins) == 0 {
		next := s.levelIndex + 1
		if next >= s.levels.Len() {
			return SceneWin
		}
		if err := s.LoadLevel(next); err != nil {
			s.logger.Error("advance level", "level", next, "err", err)
			panic(fmt.Sprintf("advance to level %d: %v", next, err))
		}
	}

	if h.Lives <= 0 || h.Rect.Bottom() >= s.cfg.World.Height {
		return SceneGameOver
	}
	return ScenePlay
}

// landOnPlatforms resolves vertical contact only; the hero walks through
// platforms sideways.
func (s *Session) landOnPlatforms() {
	h := s.hero
	for _, p := range s.platforms {
		if !h.Rect.Overlaps(p.Rect) {
			continue
		}
		if h.Rect.Bottom() >= p.Rect.Top() && h.PrevY <= p.Rect.Top() {
			h.Rect.SetBottom(p.Rect.Top())
		} else if h.Rect.Top() <= p.Rect.Bottom() && h.PrevY >= p.Rect.Bottom() {
			h.Rect.SetTop(p.Rect.Bottom())
		}
	}
}

func (s *Session) updateEnemies() {
	h := s.hero
	pain := s.runtime.SecondsToTicks(s.cfg.Timers.PainSeconds)
	for _, e := range s.enemies {
		e.Animate()
		e.Move()
		if h.Rect.Overlaps(e.Rect) {
			h.TakeDamage(e.Rect.CenterX(), pain)
			s.playSound(SoundHit)
		}
	}
}

func (s *Session) collectCoins() {
	h := s.hero
	ticks := s.runtime.SecondsToTicks(s.cfg.Timers.CollectSeconds)
	kept := s.coins[:0]
	for _, c := range s.coins {
		if h.Rect.Overlaps(c.Rect) {
			h.Collect(ticks)
			s.playSound(SoundCoin)
			continue
		}
		kept = append(kept, c)
	}
	s.coins = kept
}

// drawPlay renders the level, the entities and the HUD.
func (s *Session) drawPlay(c Canvas) {
	c.Clear(core.ColorBlack)
	for _, p := range s.platforms {
		c.FillRect(p.Rect, core.ColorBrown)
	}
	for _, coin := range s.coins {
		c.DrawSprite(SpriteCoin, coin.Rect)
	}
	for _, e := range s.enemies {
		c.DrawSprite(e.Sprite(), e.Rect)
	}
	c.DrawSprite(s.hero.Sprite(), s.hero.Rect)

	c.DrawText(10, 10, fmt.Sprintf("Lives: %d", s.hero.Lives), TextStyle{Size: 15, Color: core.ColorWhite})
	c.DrawText(10, 40, fmt.Sprintf("Coins: %d", s.hero.Coins), TextStyle{Size: 15, Color: core.ColorYellow})
	c.DrawText(10, 70, fmt.Sprintf("Level: %d", s.levelIndex+1), TextStyle{Size: 15, Color: core.ColorCyan})

	if s.paused {
		w, h := s.cfg.World.Width, s.cfg.World.Height
		c.DrawTextCentered(w/2, h/2, "PAUSED", TextStyle{Size: 48, Color: core.ColorYellow})
	}
}
