package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-quest/internal/catalog"
	"github.com/vovakirdan/coin-quest/internal/config"
	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runes("d"), core.ActionRight, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runes("w"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"p", runes("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestHoldWindow(t *testing.T) {
	h := newHoldWindow(3)
	h.Press(core.ActionRight)

	for i := 0; i < 3; i++ {
		if !h.Frame().Has(core.ActionRight) {
			t.Fatalf("tick %d: right not held", i)
		}
		h.Tick()
	}
	if h.Frame().Has(core.ActionRight) {
		t.Fatal("right still held after the window")
	}

	// Repeated key events keep the key held, which the tracker sees as
	// a single press.
	keys := core.NewKeyTracker()
	presses := 0
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			h.Press(core.ActionConfirm)
		}
		keys.Advance(h.Frame())
		if keys.WasPressed(core.ActionConfirm) {
			presses++
		}
		h.Tick()
	}
	if presses != 1 {
		t.Fatalf("presses = %d, want 1", presses)
	}
}

func TestNewHoldWindowMinimum(t *testing.T) {
	h := newHoldWindow(0)
	h.Press(core.ActionUp)
	if !h.Frame().Has(core.ActionUp) {
		t.Fatal("press not visible for even one tick")
	}
}

func TestCanvasScaling(t *testing.T) {
	screen := core.NewScreen(55, 70)
	c := NewCanvas(screen, 550, 700)

	c.FillRect(core.NewRect(100, 200, 50, 20), core.ColorBrown)
	for x := 10; x < 15; x++ {
		for y := 20; y < 22; y++ {
			if got := screen.GetCell(x, y); got.Rune != '█' || got.Color != core.ColorBrown {
				t.Fatalf("cell (%d,%d) = %+v", x, y, got)
			}
		}
	}
	if screen.GetCell(15, 20).Rune != ' ' {
		t.Fatal("fill leaked past the right edge")
	}

	// Sprites smaller than a cell still show up.
	c.DrawSprite(game.SpriteCoin, core.NewRect(301, 301, 5, 5))
	if got := screen.GetCell(30, 30); got.Rune != 'o' || got.Color != core.ColorYellow {
		t.Fatalf("coin cell = %+v", got)
	}

	c.DrawSprite("mystery", core.NewRect(0, 0, 10, 10))
	if screen.GetCell(0, 0).Rune != '?' {
		t.Fatal("unknown sprite not drawn with fallback glyph")
	}

	c.DrawText(10, 40, "Hi", game.TextStyle{Color: core.ColorCyan})
	if screen.Row(4)[1:3] != "Hi" {
		t.Fatalf("row 4 = %q", screen.Row(4))
	}

	c.Clear(core.ColorBlack)
	if strings.TrimSpace(screen.String()) != "" {
		t.Fatal("clear left content behind")
	}
}

func newTestShell(t *testing.T) *game.Shell {
	t.Helper()
	s, err := game.NewSession(game.Options{
		Config:  config.DefaultGameConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Levels:  catalog.Builtin(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return game.NewShell(s)
}

func TestModelDrivesShell(t *testing.T) {
	shell := newTestShell(t)
	m := NewModel(shell, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, log.New(io.Discard))

	if !strings.Contains(m.View(), "Coin Quest") {
		t.Fatal("menu title missing from view")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick loop stopped")
	}
	if shell.Scene() != game.ScenePlay {
		t.Fatalf("scene = %v, want play", shell.Scene())
	}
	if !strings.Contains(next.View(), "Lives: 3") {
		t.Fatal("HUD missing from view")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTestShell(t), core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, log.New(io.Discard))
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key did not quit")
	}
	if next.View() != "" {
		t.Fatal("view not empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(newTestShell(t), core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, log.New(io.Discard))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 41})
	mm := next.(Model)
	if mm.screen.Width() != 100 || mm.screen.Height() != 40 {
		t.Fatalf("screen = %dx%d, want 100x40", mm.screen.Width(), mm.screen.Height())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorBrown)
	s.DrawText(1, 1, "xyz", core.Color(99))

	// Tests run without a terminal, so lipgloss emits no escape codes.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Fatalf("RenderScreen = %q, want %q", got, want)
	}
}
