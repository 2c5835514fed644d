package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a difficulty",
	Long: `Start a game on the given difficulty, or on --difficulty (default easy).

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Space/Enter       - Reveal cell (or left click)
  F                 - Toggle flag (or right click)
  1/2/3             - New game on easy/medium/hard
  P                 - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Examples:
  sweeper play
  sweeper play hard
  sweeper play --difficulty medium --seed 42
  sweeper play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	name := flagDifficulty
	if len(args) == 1 {
		name = args[0]
	}
	difficulty, err := cfg.ParseDifficulty(name)
	if err != nil {
		fail("%v", err)
	}
	minesweeper.SetDifficultyPreset(string(difficulty))

	game, err := registry.Create(minesweeper.GameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	scores := openScores()

	_, runErr := tui.Run(game, scores, logger, runtimeConfig())

	if scores != nil {
		scores.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
