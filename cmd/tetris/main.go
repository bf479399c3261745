// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris list              - List available games
//	tetris play [game]       - Play a game (default: tetris)
//	tetris menu              - Start menu with scoreboard
//	tetris serve             - Start SSH server for remote play
//	tetris scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--db <path>         - Set database path (default: ~/.tetris/scores.db)
//	--config <path>     - Load game rules from a YAML file
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - the falling-block puzzle in your terminal",
	Long: `Stack the falling pieces, complete rows to clear them, and keep the
well from filling up. Every 10 cleared lines raise the level and speed up
gravity.

Available commands:
  list     - Show all available games
  play     - Play directly (default)
  menu     - Interactive menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris
  tetris play --seed 42
  tetris menu
  tetris serve --ssh :2222
  tetris scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// applyGameConfig points the game at --config and rejects a bad file up
// front; the game itself falls back to defaults silently.
func applyGameConfig() error {
	if flagConfig == "" {
		return nil
	}
	if _, err := config.LoadTetris(flagConfig); err != nil {
		return err
	}
	tetris.SetConfigPath(flagConfig)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
