package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
	"github.com/vovakirdan/coin-quest/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Coin Quest in the terminal.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Select
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Terminals report key presses but not releases, so a key counts as held
for a short moment after each press and while it auto-repeats.

Examples:
  coinquest play
  coinquest play --difficulty easy
  coinquest play --seed 42 --log-file coinquest.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Anything written to stderr would tear the alternate screen.
	if err := runHost(rt, io.Discard, playTerminal); err != nil {
		fail(err)
	}
}

func playTerminal(shell *game.Shell, rt core.RuntimeConfig, logger *log.Logger) error {
	if err := tui.Run(shell, rt, logger); err != nil {
		logger.Error("terminal host failed", "err", err)
		return err
	}
	return nil
}
