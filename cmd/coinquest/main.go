// coinquest is a small platformer: collect every coin on each level while
// dodging the enemies patrolling the platforms.
//
// Usage:
//
//	coinquest play             - Play in the terminal
//	coinquest window           - Play in a desktop window
//	coinquest levels list      - List the levels of the catalog
//	coinquest levels export    - Write the catalog as JSON or YAML
//	coinquest levels validate  - Check a catalog file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible enemy placement
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--levels <path>       - Level catalog (JSON or YAML)
//	--mute                - Start with sound off
//	--log-file <path>     - Append logs to a file
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-quest/internal/audio"
	"github.com/vovakirdan/coin-quest/internal/catalog"
	"github.com/vovakirdan/coin-quest/internal/config"
	"github.com/vovakirdan/coin-quest/internal/core"
	"github.com/vovakirdan/coin-quest/internal/game"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinquest",
	Short: "Coin Quest - collect the coins, dodge the enemies",
	Long: `Coin Quest is a small platformer. Move between platforms, collect every
coin on a level to advance, and avoid the patrolling enemies.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - Inspect, export and validate level catalogs

Examples:
  coinquest play
  coinquest play --difficulty hard --seed 42
  coinquest window --scale 1.5
  coinquest levels export --format yaml --out levels.yaml
  coinquest play --levels levels.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level catalog file (.json, .yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger creates the logger for a run. Logs go to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinquest",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.GameConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// loadLevels reads --levels, or returns the built-in catalog.
func loadLevels() (catalog.Catalog, error) {
	if flagLevels == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(flagLevels)
}

// openSpeaker opens the audio device.
var openSpeaker = func(sampleRate int) (game.Audio, func(), error) {
	p, err := audio.New(sampleRate)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

// openAudio opens the speaker even for a muted start, so the menu's sound
// option can turn it on later. A device failure falls back to silence.
func openAudio(cfg config.GameConfig, logger *log.Logger) (game.Audio, func()) {
	out, closeFn, err := openSpeaker(cfg.Audio.SampleRate)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return out, closeFn
}

// hostFunc runs a game shell until the player quits.
type hostFunc func(shell *game.Shell, rt core.RuntimeConfig, logger *log.Logger) error

// runHost opens the log, builds the shell and runs host. The audio device
// and the log file are closed before it returns, also when host fails.
func runHost(rt core.RuntimeConfig, logTo io.Writer, host hostFunc) error {
	logger, closeLog, err := newLogger(logTo)
	if err != nil {
		return err
	}
	defer closeLog()

	shell, cleanup, err := newShell(rt, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return host(shell, rt, logger)
}

// newShell builds a session and its shell from the global flags.
// The returned cleanup must be called when the game ends.
func newShell(rt core.RuntimeConfig, logger *log.Logger) (*game.Shell, func(), error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, nil, err
	}
	levels, err := loadLevels()
	if err != nil {
		return nil, nil, err
	}

	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	out, closeAudio := openAudio(cfg, logger)

	session, err := game.NewSession(game.Options{
		Config:  cfg,
		Runtime: rt,
		Levels:  levels,
		Audio:   out,
		Logger:  logger,
	})
	if err != nil {
		closeAudio()
		return nil, nil, err
	}
	shell := game.NewShell(session)
	logger.Info("session ready", "levels", session.LevelCount(), "seed", rt.Seed,
		"sound", session.SoundEnabled, "music", session.MusicStarted())
	return shell, closeAudio, nil
}
