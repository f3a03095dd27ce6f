// Package tui runs Coin Quest in a terminal with Bubble Tea.
// It maps keys to actions, scales the world onto a character grid and
// drives the game shell from a fixed-rate tick.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
)

// holdSeconds is how long a key counts as held after its last key event.
const holdSeconds = 0.15

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

func nextTick(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model running one game shell.
type Model struct {
	shell    *game.Shell
	screen   *core.Screen
	canvas   *Canvas
	config   core.RuntimeConfig
	keys     *KeyMapper
	hold     *holdWindow
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for the shell. The bottom terminal row is
// reserved for the key help.
func NewModel(shell *game.Shell, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg.TickRate = cfg.Rate()
	world := shell.Session().Config().World
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		shell:  shell,
		screen: screen,
		canvas: NewCanvas(screen, world.Width, world.Height),
		config: cfg,
		keys:   NewKeyMapper(DefaultKeyMap()),
		hold:   newHoldWindow(cfg.SecondsToTicks(holdSeconds)),
		help:   h,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return nextTick(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.hold.Press(action)
	}
	return m, nil
}

// handleResize processes window resize events. The world is rescaled,
// never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.shell.Update(m.hold.Frame())
	m.hold.Tick()

	if m.shell.Quit() {
		m.logger.Info("player exited from the menu")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nextTick(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.shell.Draw(m.canvas)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for the shell.
func Run(shell *game.Shell, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(shell, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
