package sweeper

import (
	"errors"
	"math/rand"
	"testing"
)

func newScenario(t *testing.T) *Session {
	t.Helper()
	s, err := NewFixedSession(3, 3, Config{MaxScore: 8, Lives: 1}, NewBombSet(5))
	if err != nil {
		t.Fatalf("NewFixedSession() failed: %v", err)
	}
	return s
}

func TestScenarioRevealAllSafeCellsWins(t *testing.T) {
	s := newScenario(t)

	safe := []int{1, 2, 3, 4, 6, 7, 8, 9}
	for i, idx := range safe {
		out, err := s.Reveal(idx)
		if err != nil {
			t.Fatalf("Reveal(%d) failed: %v", idx, err)
		}
		if out != OutcomeSafeReveal {
			t.Fatalf("Reveal(%d) = %v, expected safe_reveal", idx, out)
		}
		if s.Score() != i+1 {
			t.Errorf("Score() = %d after %d reveals", s.Score(), i+1)
		}
		if i < len(safe)-1 && s.IsOver() {
			t.Fatalf("session over after %d reveals", i+1)
		}
	}

	if s.Score() != 8 || !s.IsOver() || s.Result() != ResultWon {
		t.Errorf("score=%d over=%v result=%v, expected 8/true/won", s.Score(), s.IsOver(), s.Result())
	}
}

func TestScenarioBombLosesImmediately(t *testing.T) {
	for _, before := range [][]int{{}, {1, 2}, {1, 2, 3, 4, 6, 7, 8}} {
		s := newScenario(t)
		for _, idx := range before {
			s.Reveal(idx)
		}

		out, err := s.Reveal(5)
		if err != nil {
			t.Fatalf("Reveal(5) failed: %v", err)
		}
		if out != OutcomeBombHit {
			t.Errorf("Reveal(5) = %v, expected bomb_hit", out)
		}
		if !s.IsOver() || s.Result() != ResultLost || s.LivesRemaining() != 0 {
			t.Errorf("after %v: over=%v result=%v lives=%d", before, s.IsOver(), s.Result(), s.LivesRemaining())
		}
		if s.Score() != len(before) {
			t.Errorf("bomb hit changed score: %d, expected %d", s.Score(), len(before))
		}

		cell, _ := s.Cell(5)
		if cell.Revealed {
			t.Error("bomb cell must not be revealed")
		}
	}
}

func TestTerminalStateFreezesSession(t *testing.T) {
	s := newScenario(t)
	s.ToggleFlag(9)
	s.Reveal(1)
	s.Reveal(5) // lost

	before := s.State()
	cells := make([]Cell, 0, 9)
	for idx := 1; idx <= 9; idx++ {
		c, _ := s.Cell(idx)
		cells = append(cells, c)
	}

	for idx := 1; idx <= 9; idx++ {
		if out, _ := s.Reveal(idx); out != OutcomeIgnored {
			t.Errorf("Reveal(%d) after game over = %v", idx, out)
		}
		if out, _ := s.ToggleFlag(idx); out != OutcomeIgnored {
			t.Errorf("ToggleFlag(%d) after game over = %v", idx, out)
		}
	}

	if s.State() != before {
		t.Errorf("state changed after game over: %+v -> %+v", before, s.State())
	}
	for i, want := range cells {
		got, _ := s.Cell(i + 1)
		if got != want {
			t.Errorf("cell %d changed after game over: %+v -> %+v", i+1, want, got)
		}
	}
}

func TestFlaggedBombIsProtected(t *testing.T) {
	s := newScenario(t)

	if out, _ := s.ToggleFlag(5); out != OutcomeFlagged {
		t.Fatalf("ToggleFlag(5) = %v", out)
	}
	if out, _ := s.Reveal(5); out != OutcomeIgnored {
		t.Errorf("Reveal on flagged bomb = %v, expected ignored", out)
	}
	if s.IsOver() || s.LivesRemaining() != 1 {
		t.Error("flagged bomb should not cost a life")
	}
	if s.Flags() != 1 {
		t.Errorf("Flags() = %d, expected 1", s.Flags())
	}
}

func TestScoreOnlyChangesOnSafeReveal(t *testing.T) {
	s, err := NewFixedSession(3, 3, Config{MaxScore: 8, Lives: 3}, NewBombSet(5))
	if err != nil {
		t.Fatalf("NewFixedSession() failed: %v", err)
	}

	actions := []struct {
		flag  bool
		index int
	}{
		{false, 1}, {false, 1}, {true, 2}, {false, 2}, {true, 2},
		{false, 5}, {true, 3}, {true, 3}, {false, 3}, {true, 1},
	}

	for _, a := range actions {
		prev := s.Score()
		var out Outcome
		if a.flag {
			out, _ = s.ToggleFlag(a.index)
		} else {
			out, _ = s.Reveal(a.index)
		}

		delta := s.Score() - prev
		if out == OutcomeSafeReveal && delta != 1 {
			t.Errorf("%v on %d: score delta %d, expected 1", out, a.index, delta)
		}
		if out != OutcomeSafeReveal && delta != 0 {
			t.Errorf("%v on %d: score delta %d, expected 0", out, a.index, delta)
		}
	}
}

func TestSessionOutOfRange(t *testing.T) {
	s := newScenario(t)

	if _, err := s.Reveal(10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Reveal(10) error = %v, expected ErrOutOfRange", err)
	}
	if _, err := s.ToggleFlag(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ToggleFlag(0) error = %v, expected ErrOutOfRange", err)
	}
	if _, err := s.Cell(-3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Cell(-3) error = %v, expected ErrOutOfRange", err)
	}
}

func TestNewFixedSessionInvalid(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		bombs BombSet
	}{
		{"bomb outside grid", Config{MaxScore: 1, Lives: 1}, NewBombSet(10)},
		{"all bombs", Config{MaxScore: 1, Lives: 1}, NewBombSet(1, 2, 3, 4)},
		{"no lives", Config{MaxScore: 1, Lives: 0}, NewBombSet(1)},
		{"no target", Config{MaxScore: 0, Lives: 1}, NewBombSet(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFixedSession(2, 2, tc.cfg, tc.bombs)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewFixedSession() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewSessionFromPolicy(t *testing.T) {
	s, err := NewSession(Options{Rows: 10, Cols: 10, Rand: rand.New(rand.NewSource(5))}, "medium")
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	cfg := s.Config()
	if cfg.Difficulty != DifficultyMedium || cfg.Lives != 3 {
		t.Errorf("Config() = %+v", cfg)
	}
	if len(s.Bombs()) != cfg.TotalBombs {
		t.Errorf("Bombs() has %d entries, expected %d", len(s.Bombs()), cfg.TotalBombs)
	}
	if s.LivesRemaining() != 3 || s.Score() != 0 || s.IsOver() || s.Result() != ResultNone {
		t.Errorf("fresh state = %+v", s.State())
	}
}

func TestNewSessionErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := NewSession(Options{Rows: 10, Cols: 10, Rand: rng}, "nonexistent"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("unknown difficulty error = %v", err)
	}
	if _, err := NewSession(Options{Rows: 0, Cols: 10, Rand: rng}, "easy"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero rows error = %v", err)
	}
	if _, err := NewSession(Options{Rows: 10, Cols: 10}, "easy"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil rand error = %v", err)
	}
	// 16 cells cannot host easy's 10-15 bombs with a 15-20 target
	if _, err := NewSession(Options{Rows: 2, Cols: 2, Rand: rng}, "easy"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("tiny board error = %v", err)
	}
}

func TestSessionResetIsAtomic(t *testing.T) {
	s, err := NewSession(Options{Rows: 10, Cols: 10, Rand: rand.New(rand.NewSource(11))}, "easy")
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	// Play a bit
	for idx := 1; idx <= 10; idx++ {
		if !s.IsBomb(idx) {
			s.Reveal(idx)
		}
	}
	s.ToggleFlag(100)
	cfgBefore, stateBefore, bombsBefore := s.Config(), s.State(), s.Bombs()

	// Failed reset leaves everything untouched
	if err := s.Reset("nonexistent"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("Reset(nonexistent) error = %v", err)
	}
	if s.Config() != cfgBefore || s.State() != stateBefore || len(s.Bombs()) != len(bombsBefore) {
		t.Error("failed Reset() modified the session")
	}

	// Successful reset replaces config, grid, bombs and state together
	if err := s.Reset("hard"); err != nil {
		t.Fatalf("Reset(hard) failed: %v", err)
	}
	cfg := s.Config()
	if cfg.Difficulty != DifficultyHard || cfg.Lives != 2 {
		t.Errorf("Config() after reset = %+v", cfg)
	}
	if s.Score() != 0 || s.LivesRemaining() != 2 || s.IsOver() || s.Flags() != 0 {
		t.Errorf("state after reset = %+v, flags %d", s.State(), s.Flags())
	}
	if len(s.Bombs()) != cfg.TotalBombs {
		t.Errorf("Bombs() = %d, expected %d", len(s.Bombs()), cfg.TotalBombs)
	}
	for idx := 1; idx <= 100; idx++ {
		c, _ := s.Cell(idx)
		if c.Revealed || c.Flagged {
			t.Fatalf("cell %d not reset: %+v", idx, c)
		}
	}
}

func TestFixedSessionCannotReset(t *testing.T) {
	s := newScenario(t)
	if err := s.Reset("easy"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Reset() on fixed session error = %v, expected ErrInvalidConfig", err)
	}
}
