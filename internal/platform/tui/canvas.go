package tui

import (
	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
)

// glyph is how a sprite looks on a character grid.
type glyph struct {
	r rune
	c core.Color
}

var spriteGlyphs = map[string]glyph{
	game.SpriteHero1:       {'@', core.ColorBrightWhite},
	game.SpriteHero2:       {'@', core.ColorWhite},
	game.SpriteHeroCollect: {'@', core.ColorBrightYellow},
	game.SpriteHeroPain:    {'@', core.ColorBrightRed},
	game.SpriteEnemy1:      {'X', core.ColorMagenta},
	game.SpriteEnemy2:      {'x', core.ColorMagenta},
	game.SpriteCoin:        {'o', core.ColorYellow},
}

var unknownGlyph = glyph{'?', core.ColorGray}

// Canvas draws world coordinates onto a character screen, scaling each
// axis independently.
type Canvas struct {
	screen *core.Screen
	worldW int
	worldH int
}

// NewCanvas creates a canvas mapping a worldW x worldH world onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	return &Canvas{screen: screen, worldW: worldW, worldH: worldH}
}

func (c *Canvas) col(x int) int { return x * c.screen.Width() / c.worldW }
func (c *Canvas) row(y int) int { return y * c.screen.Height() / c.worldH }

// cells converts a world rectangle to the cells it covers, never less
// than one cell.
func (c *Canvas) cells(r core.Rect) core.Rect {
	x0, y0 := c.col(r.Left()), c.row(r.Top())
	x1, y1 := c.col(r.Right()), c.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear blanks the screen; terminal cells keep their own background.
func (c *Canvas) Clear(core.Color) {
	c.screen.Clear()
}

// FillRect fills the cells covered by r with solid blocks.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	c.screen.DrawRect(c.cells(r), '█', color)
}

// DrawText writes text from the cell holding (x, y). Size is ignored.
func (c *Canvas) DrawText(x, y int, text string, style game.TextStyle) {
	c.screen.DrawText(c.col(x), c.row(y), text, style.Color)
}

// DrawTextCentered centers text on the cell holding (cx, cy).
func (c *Canvas) DrawTextCentered(cx, cy int, text string, style game.TextStyle) {
	c.screen.DrawTextCentered(c.col(cx), c.row(cy), text, style.Color)
}

// DrawSprite fills r with the sprite's glyph, or '?' for unknown ids.
func (c *Canvas) DrawSprite(id string, r core.Rect) {
	g, ok := spriteGlyphs[id]
	if !ok {
		g = unknownGlyph
	}
	c.screen.DrawRect(c.cells(r), g.r, g.c)
}

var _ game.Canvas = (*Canvas)(nil)
