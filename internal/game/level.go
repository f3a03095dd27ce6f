package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/coin-quest/internal/core"
)

var (
	// ErrLevelOutOfRange is returned by LoadLevel for an index outside the catalog.
	ErrLevelOutOfRange = errors.New("level index out of range")
	// ErrBadPlatformIndex is returned when an enemy references a missing platform.
	ErrBadPlatformIndex = errors.New("enemy platform index out of range")
)

// LoadLevel replaces the platforms, coins and enemies with those of the
// level at index and moves the hero back to the spawn point. Lives and coins
// are kept. On error nothing is replaced.
func (s *Session) LoadLevel(index int) error {
	def, err := s.levels.Level(index)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLevelOutOfRange, err)
	}
	for i, e := range def.Enemies {
		if e.Platform < 0 || e.Platform >= len(def.Platforms) {
			return fmt.Errorf("%w: level %d enemy %d wants platform %d of %d",
				ErrBadPlatformIndex, index, i, e.Platform, len(def.Platforms))
		}
	}

	world := s.cfg.World

	platforms := make([]*Platform, 0, len(def.Platforms))
	for _, p := range def.Platforms {
		platforms = append(platforms, &Platform{Rect: core.NewRect(p.X, p.Y, p.W, p.H)})
	}

	coins := make([]*Coin, 0, len(def.Coins))
	for _, pt := range def.Coins {
		coins = append(coins, &Coin{Rect: core.RectAt(pt.X, pt.Y, s.cfg.Coin.Width, s.cfg.Coin.Height)})
	}

	speed := s.difficulty.EnemySpeed(s.cfg.Enemy.Speed, index)
	enemies := make([]*Enemy, 0, len(def.Enemies))
	for _, e := range def.Enemies {
		enemies = append(enemies, s.spawnEnemy(e.Sprite, platforms[e.Platform], speed))
	}

	s.deconflict(coins, enemies)

	if s.hero == nil {
		s.hero = s.newHero()
	} else {
		s.hero.Rect.SetCenter(world.Width/2, world.Height-world.SpawnOffset)
	}
	s.levelIndex = index
	s.platforms = platforms
	s.coins = coins
	s.enemies = enemies

	s.logger.Debug("level loaded", "index", index, "name", def.Name,
		"platforms", len(platforms), "coins", len(coins), "enemies", len(enemies))
	return nil
}

// spawnEnemy places an enemy standing on p at a random x inside the
// platform's patrol span. Platforms too narrow for a span get a stationary
// enemy at their center.
func (s *Session) spawnEnemy(sprite string, p *Platform, speed int) *Enemy {
	ec := s.cfg.Enemy
	half := ec.Width / 2
	lo := p.Rect.Left() + half + ec.Margin
	hi := p.Rect.Right() - half - ec.Margin

	var cx, v int
	if lo >= hi {
		cx = p.Rect.CenterX()
	} else {
		cx = lo + s.rng.Intn(hi-lo+1)
		v = speed
		if s.rng.Intn(2) == 0 {
			v = -v
		}
	}

	r := core.RectAt(cx, 0, ec.Width, ec.Height)
	r.SetBottom(p.Rect.Top())
	return &Enemy{
		Rect:      r,
		Speed:     v,
		Platform:  p,
		image:     sprite,
		frames:    []string{SpriteEnemy1, SpriteEnemy2},
		animEvery: ec.AnimEvery,
	}
}

// deconflict moves coins off enemies, then keeps every coin inside the
// screen inset. Overlaps that survive are accepted.
func (s *Session) deconflict(coins []*Coin, enemies []*Enemy) {
	cc := s.cfg.Coin
	width, height := s.cfg.World.Width, s.cfg.World.Height
	shift := s.cfg.Enemy.Width + 10

	for i, c := range coins {
		for _, e := range enemies {
			for n := 0; n < cc.NudgeAttempts && c.Rect.Overlaps(e.Rect); n++ {
				c.Rect.Y -= c.Rect.H + 5
			}
			if c.Rect.Overlaps(e.Rect) {
				c.Rect.X += shift
				if c.Rect.Left() <= 0 || c.Rect.Right() >= width {
					c.Rect.X -= 2 * shift
				}
			}
		}

		inset := cc.EdgeInset
		if c.Rect.Top() < inset {
			c.Rect.SetTop(inset)
		}
		if c.Rect.Left() < inset {
			c.Rect.SetLeft(inset)
		}
		if c.Rect.Right() > width-inset {
			c.Rect.SetRight(width - inset)
		}
		if c.Rect.Bottom() > height-inset {
			c.Rect.SetBottom(height - inset)
		}

		for _, e := range enemies {
			if c.Rect.Overlaps(e.Rect) {
				s.logger.Debug("coin still overlaps enemy", "coin", i, "x", c.Rect.X, "y", c.Rect.Y)
				break
			}
		}
	}
}
