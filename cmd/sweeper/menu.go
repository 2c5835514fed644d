package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter or 1-9 to pick a difficulty.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play difficulty
  Tab          - Scoreboard
  Q            - Quit

Examples:
  sweeper menu
  sweeper menu --fps 30
  sweeper menu --store file`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	current, err := cfg.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	scores := openScores()
	if scores != nil {
		defer scores.Close()
	}

	rc := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, scores, rc, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(cfg.Policy().Names(), scores, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				break
			}
			if !goBack {
				break
			}
			continue
		}

		current = menuResult.Difficulty
		game, err := registry.Create(minesweeper.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}
		if g, ok := game.(interface{ SetDifficulty(string) }); ok {
			g.SetDifficulty(string(current))
		}

		backToMenu, err := tui.Run(game, scores, logger, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !backToMenu {
			break
		}
	}
}
