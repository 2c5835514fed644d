package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List configured difficulties",
	Long: `Shows every difficulty of the active configuration with its bomb,
lives and winning score ranges.`,
	Run: runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	policy := cfg.Policy()
	fmt.Printf("Board: %dx%d\n", cfg.Board.Rows, cfg.Board.Cols)
	fmt.Println()

	fmt.Printf("  %-10s  %-7s  %-5s  %s\n", "Name", "Bombs", "Lives", "Win at")
	fmt.Printf("  %-10s  %-7s  %-5s  %s\n", "----", "-----", "-----", "------")

	for _, d := range policy.Names() {
		t := policy[d]
		name := string(d)
		if d == config.DefaultDifficulty {
			name += "*"
		}
		fmt.Printf("  %-10s  %-7s  %-5d  %s\n", name, t.Bombs, t.Lives, t.Score)
	}

	fmt.Println()
	fmt.Println("* default. Run 'sweeper play <name>' to play one.")
}
