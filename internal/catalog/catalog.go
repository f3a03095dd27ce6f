// Package catalog holds the ordered level definitions of Coin Quest and
// the codecs used to read and write them as JSON or YAML.
package catalog

import (
	"errors"
	"fmt"
)

// Default platform size used when a definition leaves width or height at zero.
const (
	DefaultPlatformW = 120
	DefaultPlatformH = 20
)

var (
	// ErrEmptyCatalog is returned when a catalog has no levels.
	ErrEmptyCatalog = errors.New("catalog has no levels")
	// ErrInvalidLevel is returned when a level definition is malformed.
	ErrInvalidLevel = errors.New("invalid level")
)

// RectDef is a platform rectangle in world units (top-left + size).
type RectDef struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// Point is a coin spawn point; coins are centered on it.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// EnemyDef assigns an enemy sprite to the platform it patrols.
type EnemyDef struct {
	Sprite   string `json:"sprite" yaml:"sprite"`
	Platform int    `json:"platform" yaml:"platform"` // Index into Level.Platforms
}

// Level is a single immutable level definition.
type Level struct {
	Name      string     `json:"name" yaml:"name"`
	Platforms []RectDef  `json:"platforms" yaml:"platforms"`
	Coins     []Point    `json:"coins" yaml:"coins"`
	Enemies   []EnemyDef `json:"enemies" yaml:"enemies"`
}

// Catalog is the ordered list of levels played in one game.
type Catalog struct {
	Levels []Level `json:"levels" yaml:"levels"`
}

// Len returns the number of levels.
func (c Catalog) Len() int {
	return len(c.Levels)
}

// Level returns the level at index.
func (c Catalog) Level(index int) (Level, error) {
	if index < 0 || index >= len(c.Levels) {
		return Level{}, fmt.Errorf("no level %d in a catalog of %d", index, len(c.Levels))
	}
	return c.Levels[index], nil
}

// normalize fills in default platform sizes.
func (c *Catalog) normalize() {
	for i := range c.Levels {
		for j := range c.Levels[i].Platforms {
			p := &c.Levels[i].Platforms[j]
			if p.W == 0 {
				p.W = DefaultPlatformW
			}
			if p.H == 0 {
				p.H = DefaultPlatformH
			}
		}
	}
}

// Validate checks every level for structural errors: positive platform
// sizes, at least one coin, and enemy platform indexes in range.
func Validate(c Catalog) error {
	if len(c.Levels) == 0 {
		return ErrEmptyCatalog
	}
	for i, lvl := range c.Levels {
		if len(lvl.Coins) == 0 {
			return fmt.Errorf("%w: level %d (%s) has no coins", ErrInvalidLevel, i, lvl.Name)
		}
		for j, p := range lvl.Platforms {
			if p.W <= 0 || p.H <= 0 {
				return fmt.Errorf("%w: level %d platform %d has size %dx%d", ErrInvalidLevel, i, j, p.W, p.H)
			}
		}
		for j, e := range lvl.Enemies {
			if e.Platform < 0 || e.Platform >= len(lvl.Platforms) {
				return fmt.Errorf("%w: level %d enemy %d references platform %d of %d",
					ErrInvalidLevel, i, j, e.Platform, len(lvl.Platforms))
			}
			if e.Sprite == "" {
				return fmt.Errorf("%w: level %d enemy %d has no sprite", ErrInvalidLevel, i, j)
			}
		}
	}
	return nil
}
