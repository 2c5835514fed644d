// Package config provides YAML-based board and difficulty configuration
// for the sweeper.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// SweeperConfig contains the board layout and difficulty tiers.
type SweeperConfig struct {
	Board        BoardConfig           `yaml:"board"`
	Difficulties map[string]TierConfig `yaml:"difficulties"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TierConfig defines one difficulty tier. Bombs and Score are [min, max].
type TierConfig struct {
	Bombs []int `yaml:"bombs"`
	Lives int   `yaml:"lives"`
	Score []int `yaml:"score"`
}

// Cells returns the number of cells on the board.
func (c SweeperConfig) Cells() int {
	return c.Board.Rows * c.Board.Cols
}

// Policy converts the tiers into a rules policy keyed by lower case names.
// Malformed ranges become empty ranges that Validate rejects.
func (c SweeperConfig) Policy() sweeper.Policy {
	p := make(sweeper.Policy, len(c.Difficulties))
	for name, t := range c.Difficulties {
		p[tierName(name)] = sweeper.Tier{
			Bombs: toRange(t.Bombs),
			Lives: t.Lives,
			Score: toRange(t.Score),
		}
	}
	return p
}

// Validate checks the board is positive and every tier is playable on it.
func (c SweeperConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("config: board %dx%d: %w", c.Board.Rows, c.Board.Cols, sweeper.ErrInvalidConfig)
	}
	seen := make(map[sweeper.Difficulty]string, len(c.Difficulties))
	for name, t := range c.Difficulties {
		d := tierName(name)
		if d == "" {
			return fmt.Errorf("config: empty difficulty name: %w", sweeper.ErrInvalidConfig)
		}
		if prev, ok := seen[d]; ok {
			return fmt.Errorf("config: difficulties %q and %q are the same name: %w", prev, name, sweeper.ErrInvalidConfig)
		}
		seen[d] = name
		if len(t.Bombs) != 2 {
			return fmt.Errorf("config: %s: bombs must be [min, max]: %w", name, sweeper.ErrInvalidConfig)
		}
		if len(t.Score) != 2 {
			return fmt.Errorf("config: %s: score must be [min, max]: %w", name, sweeper.ErrInvalidConfig)
		}
	}
	if err := c.Policy().Validate(c.Cells()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// tierName normalizes a configured tier key the way ParseDifficulty
// normalizes user input.
func tierName(name string) sweeper.Difficulty {
	return sweeper.Difficulty(strings.ToLower(strings.TrimSpace(name)))
}

func toRange(v []int) sweeper.Range {
	if len(v) != 2 {
		return sweeper.Range{Min: 1, Max: 0}
	}
	return sweeper.Range{Min: v[0], Max: v[1]}
}
