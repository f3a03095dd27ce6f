package game

import (
	"github.com/vovakirdan/coin-quest/internal/core"
)

// SceneKind identifies one of the fixed set of scenes.
type SceneKind int

const (
	SceneMenu SceneKind = iota
	ScenePlay
	SceneGameOver
	SceneWin
)

func (k SceneKind) String() string {
	switch k {
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case SceneGameOver:
		return "game_over"
	case SceneWin:
		return "win"
	default:
		return "unknown"
	}
}

// Scene is one screen of the game. Update returns the kind of scene that
// should be active after this frame; returning a different kind switches.
type Scene interface {
	Kind() SceneKind
	Init()
	Update(in Input) SceneKind
	Draw(c Canvas)
}

// Menu options in display order.
const (
	optionStart = iota
	optionSound
	optionExit
	optionCount
)

type menuScene struct {
	s        *Session
	selected int
}

func (m *menuScene) Kind() SceneKind { return SceneMenu }

func (m *menuScene) Init() {
	m.s.startMusic()
}

func (m *menuScene) Update(in Input) SceneKind {
	if in.WasPressed(core.ActionUp) {
		m.selected = (m.selected - 1 + optionCount) % optionCount
	} else if in.WasPressed(core.ActionDown) {
		m.selected = (m.selected + 1) % optionCount
	}

	if !in.WasPressed(core.ActionConfirm) {
		return SceneMenu
	}
	switch m.selected {
	case optionStart:
		return ScenePlay
	case optionSound:
		m.s.ToggleSound()
	case optionExit:
		m.s.quit = true
	}
	return SceneMenu
}

// menuButton returns the rectangle of option i.
func (m *menuScene) menuButton(i int) core.Rect {
	w := m.s.cfg.World.Width
	return core.NewRect(w/2-100, 250+i*70, 200, 50)
}

func (m *menuScene) Draw(c Canvas) {
	w, h := m.s.cfg.World.Width, m.s.cfg.World.Height
	c.Clear(core.ColorBlack)
	c.DrawTextCentered(w/2, 100, "=== Coin Quest ===", TextStyle{Size: 35, Color: core.ColorWhite})

	sound := "Sound: OFF"
	if m.s.SoundEnabled {
		sound = "Sound: ON"
	}
	labels := [optionCount]string{"Start Game", sound, "Exit"}

	label := TextStyle{Size: 15, Color: core.ColorWhite}
	for i, text := range labels {
		fill := core.ColorGreen
		switch {
		case i == m.selected:
			fill = core.ColorYellow
		case i == optionExit:
			fill = core.ColorRed
		}
		r := m.menuButton(i)
		c.FillRect(r, fill)
		c.DrawTextCentered(r.CenterX(), r.CenterY(), text, label)
	}
	c.DrawTextCentered(w/2, h-50, "Use arrows and ENTER", label)
}

type playScene struct {
	s *Session
}

func (p *playScene) Kind() SceneKind { return ScenePlay }

// Init starts a new game: first level, fresh hero.
func (p *playScene) Init() {
	p.s.hero = nil
	p.s.paused = false
	if err := p.s.LoadLevel(0); err != nil {
		p.s.logger.Error("load first level", "err", err)
		panic(err)
	}
}

func (p *playScene) Update(in Input) SceneKind { return p.s.stepPlay(in) }
func (p *playScene) Draw(c Canvas) { p.s.drawPlay(c) }

// endScene is the shared shape of the game over and win screens.
type endScene struct {
	kind  SceneKind
	title string
	color core.Color
	s     *Session
}

func (e *endScene) Kind() SceneKind { return e.kind }
func (e *endScene) Init() {}

func (e *endScene) Update(in Input) SceneKind {
	if in.WasPressed(core.ActionConfirm) {
		return SceneMenu
	}
	return e.kind
}

func (e *endScene) Draw(c Canvas) {
	w, h := e.s.cfg.World.Width, e.s.cfg.World.Height
	c.Clear(core.ColorBlack)
	c.DrawTextCentered(w/2, h/2-50, e.title, TextStyle{Size: 70, Color: e.color})
	c.DrawTextCentered(w/2, h/2+50, "Press ENTER to return to the menu", TextStyle{Size: 15, Color: core.ColorWhite})
}
