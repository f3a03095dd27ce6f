// Package desktop runs Coin Quest in a native window with Ebitengine.
package desktop

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
)

// actionKeys lists the keys bound to each action.
var actionKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionQuit:    {ebiten.KeyQ},
}

// heldFrame builds the input frame from a key state query.
func heldFrame(pressed func(ebiten.Key) bool) core.InputFrame {
	f := core.NewInputFrame()
	for action, keys := range actionKeys {
		for _, k := range keys {
			if pressed(k) {
				f.Set(action)
				break
			}
		}
	}
	return f
}

// Game adapts a game shell to ebiten.Game.
type Game struct {
	shell  *game.Shell
	canvas *Canvas
	width  int
	height int
	title  string
	logger *log.Logger
}

// NewGame creates the ebiten adapter for shell.
func NewGame(shell *game.Shell, logger *log.Logger) *Game {
	canvas, err := NewCanvas()
	if err != nil {
		logger.Warn("using debug font", "err", err)
		canvas = &Canvas{}
	}
	world := shell.Session().Config().World
	return &Game{
		shell:  shell,
		canvas: canvas,
		width:  world.Width,
		height: world.Height,
		logger: logger,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	held := heldFrame(ebiten.IsKeyPressed)
	if held.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.shell.Update(held)
	if g.shell.Quit() {
		g.logger.Info("player exited from the menu")
		return ebiten.Termination
	}
	if title := windowTitle(g.shell); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

// windowTitle shows the level being played and whether it is paused.
func windowTitle(shell *game.Shell) string {
	if shell.Scene() != game.ScenePlay {
		return "Coin Quest"
	}
	s := shell.Session()
	title := fmt.Sprintf("Coin Quest - Level %d/%d", s.LevelIndex()+1, s.LevelCount())
	if s.Paused() {
		title += " (paused)"
	}
	return title
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target(screen)
	g.shell.Draw(g.canvas)
}

// Layout implements ebiten.Game. The logical screen is the world.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window scaled by scale and plays until the player quits or
// closes it.
func Run(shell *game.Shell, cfg core.RuntimeConfig, scale float64, logger *log.Logger) error {
	g := NewGame(shell, logger)
	if scale <= 0 {
		scale = 1
	}
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	g.title = windowTitle(shell)
	ebiten.SetWindowTitle(g.title)
	return ebiten.RunGame(g)
}
