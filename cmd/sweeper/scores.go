package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 scores and stats for a difficulty,
or for every configured difficulty when none is given.

Examples:
  sweeper scores
  sweeper scores hard
  sweeper scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the given difficulty")
}

func runScores(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tiers := cfg.Policy().Names()
	if len(args) == 1 {
		d, err := cfg.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		tiers = []sweeper.Difficulty{d}
	} else if flagClear {
		return errors.New("--clear needs a difficulty")
	}

	scores, err := openScoreLog(flagStore, flagDBPath, appName)
	if err != nil {
		return fmt.Errorf("opening scores: %w", err)
	}
	defer func() {
		if closeErr := scores.Close(); err == nil {
			err = closeErr
		}
	}()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := scores.ClearScores(string(tiers[0])); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", tiers[0])
		return nil
	}

	for i, d := range tiers {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, scores, d); err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
	}
	return nil
}

// printScores prints the top 10 table and stats of one difficulty.
func printScores(out io.Writer, scores storage.ScoreLog, d sweeper.Difficulty) error {
	entries, err := scores.TopScores(string(d), 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", d)
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'sweeper play %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Result", "Lives", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----")

	for i, e := range entries {
		result := "lost"
		if e.Won {
			result = "won"
		}
		dateStr := e.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-6d  %-6s  %-5d  %s\n", i+1, e.Score, result, e.LivesLeft, dateStr)
	}

	fmt.Fprintln(out)
	stats, err := scores.Stats(string(d))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Best: %d\n", stats.HighScore)
	fmt.Fprintf(out, "Games: %d  Wins: %d  Average: %.1f\n", stats.Games, stats.Wins, stats.AvgScore)
	return nil
}
