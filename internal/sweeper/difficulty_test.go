package sweeper

import (
	"errors"
	"math/rand"
	"testing"
)

func TestResolveDifficultyRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		name  string
		bombs Range
		lives int
		score Range
	}{
		{"easy", Range{10, 15}, 3, Range{15, 20}},
		{"medium", Range{15, 25}, 3, Range{20, 30}},
		{"hard", Range{25, 35}, 2, Range{30, 40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seenBombs := make(map[int]bool)
			for i := 0; i < 500; i++ {
				cfg, err := ResolveDifficulty(rng, tc.name)
				if err != nil {
					t.Fatalf("ResolveDifficulty(%q) failed: %v", tc.name, err)
				}
				if string(cfg.Difficulty) != tc.name {
					t.Errorf("Difficulty = %q, expected %q", cfg.Difficulty, tc.name)
				}
				if !tc.bombs.Contains(cfg.TotalBombs) {
					t.Errorf("TotalBombs = %d, outside %s", cfg.TotalBombs, tc.bombs)
				}
				if !tc.score.Contains(cfg.MaxScore) {
					t.Errorf("MaxScore = %d, outside %s", cfg.MaxScore, tc.score)
				}
				if cfg.Lives != tc.lives {
					t.Errorf("Lives = %d, expected %d", cfg.Lives, tc.lives)
				}
				seenBombs[cfg.TotalBombs] = true
			}

			// Inclusive bounds are both reachable
			if !seenBombs[tc.bombs.Min] || !seenBombs[tc.bombs.Max] {
				t.Errorf("bounds of %s not both drawn", tc.bombs)
			}
		})
	}
}

func TestResolveDifficultyUnknown(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, name := range []string{"nonexistent", "", "normal"} {
		_, err := ResolveDifficulty(rng, name)
		if !errors.Is(err, ErrUnknownDifficulty) {
			t.Errorf("ResolveDifficulty(%q) error = %v, expected ErrUnknownDifficulty", name, err)
		}
	}
}

func TestParseDifficultyNormalizes(t *testing.T) {
	p := DefaultPolicy()

	d, err := p.ParseDifficulty("  HARD ")
	if err != nil {
		t.Fatalf("ParseDifficulty failed: %v", err)
	}
	if d != DifficultyHard {
		t.Errorf("ParseDifficulty = %q, expected hard", d)
	}
}

func TestPolicyNamesOrder(t *testing.T) {
	p := DefaultPolicy()
	p["brutal"] = Tier{Bombs: Range{40, 45}, Lives: 1, Score: Range{40, 50}}
	p["arcade"] = Tier{Bombs: Range{5, 5}, Lives: 5, Score: Range{10, 10}}

	names := p.Names()
	expected := []Difficulty{"easy", "medium", "hard", "arcade", "brutal"}

	if len(names) != len(expected) {
		t.Fatalf("Names() = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(100); err != nil {
		t.Errorf("default policy should be valid on 100 cells: %v", err)
	}

	tests := []struct {
		name string
		tier Tier
	}{
		{"too many bombs", Tier{Bombs: Range{10, 100}, Lives: 3, Score: Range{1, 2}}},
		{"inverted bombs", Tier{Bombs: Range{20, 10}, Lives: 3, Score: Range{1, 2}}},
		{"zero lives", Tier{Bombs: Range{1, 2}, Lives: 0, Score: Range{1, 2}}},
		{"zero score", Tier{Bombs: Range{1, 2}, Lives: 1, Score: Range{0, 2}}},
		{"unreachable score", Tier{Bombs: Range{50, 90}, Lives: 1, Score: Range{10, 20}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Policy{"custom": tc.tier}
			if err := p.Validate(100); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := (Policy{}).Validate(100); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty policy Validate() = %v, expected ErrInvalidConfig", err)
	}
}
