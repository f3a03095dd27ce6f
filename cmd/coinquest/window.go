package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
	"github.com/vovakirdan/coin-quest/internal/platform/desktop"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Coin Quest in a native window.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Select
  P/Esc        - Pause
  Q            - Quit

Examples:
  coinquest window
  coinquest window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(cmd *cobra.Command, args []string) {
	rt := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if err := runHost(rt, os.Stderr, playWindow); err != nil {
		fail(err)
	}
}

// playWindow sizes the window to the world and runs the Ebitengine host.
func playWindow(shell *game.Shell, rt core.RuntimeConfig, logger *log.Logger) error {
	world := shell.Session().Config().World
	rt.ScreenW, rt.ScreenH = world.Width, world.Height

	if err := desktop.Run(shell, rt, flagScale, logger); err != nil {
		logger.Error("window host failed", "err", err)
		return err
	}
	return nil
}
