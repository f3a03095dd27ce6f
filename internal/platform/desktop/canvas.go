package desktop

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
)

// palette maps core colors to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {220, 220, 220, 255},
	core.ColorBlack:        {0, 0, 0, 255},
	core.ColorWhite:        {255, 255, 255, 255},
	core.ColorBrightWhite:  {255, 255, 255, 255},
	core.ColorGray:         {128, 128, 128, 255},
	core.ColorRed:          {150, 100, 100, 255},
	core.ColorBrightRed:    {255, 60, 60, 255},
	core.ColorGreen:        {100, 150, 100, 255},
	core.ColorYellow:       {200, 200, 50, 255},
	core.ColorBrightYellow: {255, 230, 60, 255},
	core.ColorCyan:         {0, 200, 200, 255},
	core.ColorMagenta:      {180, 60, 180, 255},
	core.ColorBrown:        {139, 69, 19, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// spriteColors gives every sprite a flat color; coins are drawn round.
var spriteColors = map[string]color.RGBA{
	game.SpriteHero1:       {70, 130, 230, 255},
	game.SpriteHero2:       {90, 150, 250, 255},
	game.SpriteHeroCollect: {255, 215, 0, 255},
	game.SpriteHeroPain:    {230, 50, 50, 255},
	game.SpriteEnemy1:      {150, 50, 170, 255},
	game.SpriteEnemy2:      {120, 40, 140, 255},
	game.SpriteCoin:        {255, 215, 0, 255},
}

// Canvas draws the game onto an ebiten image in world pixels.
type Canvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// NewCanvas loads the UI font. Without it text falls back to the debug font.
func NewCanvas() (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Canvas{source: src, faces: make(map[int]*text.GoTextFace)}, nil
}

// target sets the image drawn on by subsequent calls.
func (c *Canvas) target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) face(size int) *text.GoTextFace {
	if size <= 0 {
		size = 15
	}
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.source, Size: float64(size)}
		c.faces[size] = f
	}
	return f
}

// Clear fills the whole frame with clr.
func (c *Canvas) Clear(clr core.Color) {
	c.dst.Fill(rgba(clr))
}

// FillRect draws a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, clr core.Color) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(clr), false)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, style game.TextStyle) {
	if c.source == nil {
		ebitenutil.DebugPrintAt(c.dst, s, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	text.Draw(c.dst, s, c.face(style.Size), op)
}

// DrawTextCentered draws text centered on (cx, cy).
func (c *Canvas) DrawTextCentered(cx, cy int, s string, style game.TextStyle) {
	if c.source == nil {
		ebitenutil.DebugPrintAt(c.dst, s, cx-len(s)*3, cy-8)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	text.Draw(c.dst, s, c.face(style.Size), op)
}

// DrawSprite draws a flat colored box, or a disc for coins.
func (c *Canvas) DrawSprite(id string, r core.Rect) {
	clr, ok := spriteColors[id]
	if !ok {
		clr = palette[core.ColorGray]
	}
	if id == game.SpriteCoin {
		radius := float32(min(r.W, r.H)) / 2
		vector.DrawFilledCircle(c.dst, float32(r.CenterX()), float32(r.CenterY()), radius, clr, true)
		return
	}
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

var _ game.Canvas = (*Canvas)(nil)
