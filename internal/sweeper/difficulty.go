package sweeper

import (
	"fmt"
	"sort"
	"strings"
)

// Difficulty names a tier of the difficulty policy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Draw returns a uniform integer in [Min, Max].
func (r Range) Draw(rng Rand) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// String formats the range as "min-max".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Tier defines the bounds a difficulty draws its session config from.
type Tier struct {
	Bombs Range
	Lives int // Fixed, not drawn
	Score Range
}

// Policy maps difficulty names to tiers.
type Policy map[Difficulty]Tier

// DefaultPolicy returns the calibrated easy/medium/hard tiers.
func DefaultPolicy() Policy {
	return Policy{
		DifficultyEasy:   {Bombs: Range{10, 15}, Lives: 3, Score: Range{15, 20}},
		DifficultyMedium: {Bombs: Range{15, 25}, Lives: 3, Score: Range{20, 30}},
		DifficultyHard:   {Bombs: Range{25, 35}, Lives: 2, Score: Range{30, 40}},
	}
}

// ParseDifficulty normalizes a name and checks it against the policy.
func (p Policy) ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := p[d]; !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownDifficulty)
	}
	return d, nil
}

// Resolve draws a concrete session config for the named tier.
// Bomb count and target score are drawn independently.
func (p Policy) Resolve(rng Rand, name string) (Config, error) {
	d, err := p.ParseDifficulty(name)
	if err != nil {
		return Config{}, err
	}
	tier := p[d]

	return Config{
		Difficulty: d,
		TotalBombs: tier.Bombs.Draw(rng),
		MaxScore:   tier.Score.Draw(rng),
		Lives:      tier.Lives,
	}, nil
}

// Names returns the tier names: easy, medium, hard first, then any
// custom tiers alphabetically.
func (p Policy) Names() []Difficulty {
	rank := map[Difficulty]int{DifficultyEasy: 0, DifficultyMedium: 1, DifficultyHard: 2}
	names := make([]Difficulty, 0, len(p))
	for d := range p {
		names = append(names, d)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iok := rank[names[i]]
		rj, jok := rank[names[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// Validate checks every tier can produce a playable session on a board
// of totalCells cells.
func (p Policy) Validate(totalCells int) error {
	if len(p) == 0 {
		return fmt.Errorf("no difficulty tiers: %w", ErrInvalidConfig)
	}
	for d, t := range p {
		switch {
		case t.Bombs.Min < 0 || t.Bombs.Min > t.Bombs.Max:
			return fmt.Errorf("%s: bombs range %s: %w", d, t.Bombs, ErrInvalidConfig)
		case t.Bombs.Max >= totalCells:
			return fmt.Errorf("%s: %d bombs for %d cells: %w", d, t.Bombs.Max, totalCells, ErrInvalidConfig)
		case t.Score.Min < 1 || t.Score.Min > t.Score.Max:
			return fmt.Errorf("%s: score range %s: %w", d, t.Score, ErrInvalidConfig)
		case t.Score.Max > totalCells-t.Bombs.Max:
			return fmt.Errorf("%s: target score %d unreachable with %d bombs on %d cells: %w",
				d, t.Score.Max, t.Bombs.Max, totalCells, ErrInvalidConfig)
		case t.Lives < 1:
			return fmt.Errorf("%s: lives %d: %w", d, t.Lives, ErrInvalidConfig)
		}
	}
	return nil
}

// ResolveDifficulty resolves name against the default policy.
func ResolveDifficulty(rng Rand, name string) (Config, error) {
	return DefaultPolicy().Resolve(rng, name)
}
