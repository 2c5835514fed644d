// sweeper is a terminal Minesweeper with lives and a score target.
//
// Usage:
//
//	sweeper play [difficulty]     - Play a difficulty directly
//	sweeper menu                  - Pick difficulties interactively
//	sweeper scores [difficulty]   - Show high scores and stats
//	sweeper difficulties          - List configured difficulties
//	sweeper serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.sweeper/scores.db)
//	--store <kind>        - Score backend: sqlite or file
//	--config <path>       - Custom minesweeper.yaml
//	--difficulty <name>   - Default difficulty (default: easy)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// appName names the data directory of the file score backend.
const appName = "tui-sweeper"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "TUI Sweeper - Minesweeper with lives in your terminal",
	Long: `TUI Sweeper is a terminal Minesweeper variant. Reveal safe cells to
reach the winning score before your lives run out.

Available commands:
  play          - Play a difficulty directly
  menu          - Interactive difficulty picker
  scores        - View high scores
  difficulties  - List configured difficulties
  serve         - Start SSH server for remote play

Examples:
  sweeper play
  sweeper play hard
  sweeper menu --store file
  sweeper scores medium
  sweeper serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, "Score backend: sqlite, file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Default difficulty (easy, medium, hard or a configured tier)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the board configuration and hands it to the game.
func loadConfig() (config.SweeperConfig, error) {
	cfg, err := config.LoadSweeper(flagConfig)
	if err != nil {
		return config.SweeperConfig{}, err
	}
	minesweeper.SetConfig(cfg)
	return cfg, nil
}

// openScoreLog opens a score backend. Tests replace it.
var openScoreLog = storage.OpenLog

// openScores opens the selected score backend.
// On failure it warns and returns nil so play continues without persistence.
func openScores() storage.ScoreLog {
	scores, err := openScoreLog(flagStore, flagDBPath, appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", err)
		return nil
	}
	return scores
}

// newLogger returns a file logger when --log-file is set.
// Without it logs are discarded so they never draw over the game.
// The returned closer must be called on exit.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "sweeper",
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds a runtime config sized to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
