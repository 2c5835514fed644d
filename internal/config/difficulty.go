package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// DefaultDifficulty is played when none is selected.
const DefaultDifficulty = sweeper.DifficultyEasy

// ParseDifficulty resolves a user-supplied tier name against the configured
// tiers. An empty name selects DefaultDifficulty.
func (c SweeperConfig) ParseDifficulty(name string) (sweeper.Difficulty, error) {
	if strings.TrimSpace(name) == "" {
		name = string(DefaultDifficulty)
	}
	return c.Policy().ParseDifficulty(name)
}

// Describe returns a one-line summary of a tier, e.g. "bombs 10-15, lives 3, win at 15-20".
func (c SweeperConfig) Describe(d sweeper.Difficulty) string {
	t, ok := c.Policy()[d]
	if !ok {
		return ""
	}
	return fmt.Sprintf("bombs %s, lives %d, win at %s", t.Bombs, t.Lives, t.Score)
}
