package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

//go:embed defaults/minesweeper.yaml
var defaultSweeperYAML []byte

// DefaultSweeperConfig returns the built-in 10x10 board with the
// calibrated easy/medium/hard tiers.
func DefaultSweeperConfig() SweeperConfig {
	cfg := SweeperConfig{
		Board:        BoardConfig{Rows: 10, Cols: 10},
		Difficulties: make(map[string]TierConfig),
	}
	for name, t := range sweeper.DefaultPolicy() {
		cfg.Difficulties[string(name)] = TierConfig{
			Bombs: []int{t.Bombs.Min, t.Bombs.Max},
			Lives: t.Lives,
			Score: []int{t.Score.Min, t.Score.Max},
		}
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSweeperYAML
}
