package sweeper

import "fmt"

// Options configures a new Session.
type Options struct {
	Rows   int
	Cols   int
	Policy Policy // DefaultPolicy() if nil
	Rand   Rand
}

// Session owns one playthrough: config, state, grid and bombs.
// It is the only entry point the presentation layer mutates through.
// A Session is not safe for concurrent use.
type Session struct {
	rows   int
	cols   int
	policy Policy
	rng    Rand

	cfg   Config
	grid  *Grid
	bombs BombSet
	state State
}

// NewSession creates a session for the named difficulty.
func NewSession(opts Options, difficulty string) (*Session, error) {
	if opts.Rand == nil {
		return nil, fmt.Errorf("session: nil random source: %w", ErrInvalidConfig)
	}
	if opts.Policy == nil {
		opts.Policy = DefaultPolicy()
	}
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("session: board %dx%d: %w", opts.Rows, opts.Cols, ErrInvalidConfig)
	}
	if err := opts.Policy.Validate(opts.Rows * opts.Cols); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		rows:   opts.Rows,
		cols:   opts.Cols,
		policy: opts.Policy,
		rng:    opts.Rand,
	}
	if err := s.Reset(difficulty); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFixedSession creates a session with an explicit config and bomb
// layout instead of random draws. Such a session cannot be Reset.
func NewFixedSession(rows, cols int, cfg Config, bombs BombSet) (*Session, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	total := grid.Len()
	switch {
	case bombs.Len() >= total:
		return nil, fmt.Errorf("%d bombs for %d cells: %w", bombs.Len(), total, ErrInvalidConfig)
	case !bombs.within(total):
		return nil, fmt.Errorf("bomb index outside [1, %d]: %w", total, ErrInvalidConfig)
	case cfg.Lives < 1 || cfg.MaxScore < 1:
		return nil, fmt.Errorf("lives %d, target %d: %w", cfg.Lives, cfg.MaxScore, ErrInvalidConfig)
	}
	cfg.TotalBombs = bombs.Len()

	return &Session{
		rows:  rows,
		cols:  cols,
		cfg:   cfg,
		grid:  grid,
		bombs: bombs,
		state: NewState(cfg),
	}, nil
}

// Reset starts a new session on the named difficulty. Config, grid, bombs
// and state are replaced together; on error the current session is kept.
func (s *Session) Reset(difficulty string) error {
	if s.policy == nil {
		return fmt.Errorf("session: fixed layout cannot be reset: %w", ErrInvalidConfig)
	}

	cfg, err := s.policy.Resolve(s.rng, difficulty)
	if err != nil {
		return err
	}

	grid := s.grid
	if grid == nil {
		grid, err = NewGrid(s.rows, s.cols)
		if err != nil {
			return err
		}
	}

	bombs, err := PlaceBombs(s.rng, grid.Len(), cfg.TotalBombs)
	if err != nil {
		return err
	}

	grid.Reset()
	s.grid = grid
	s.cfg = cfg
	s.bombs = bombs
	s.state = NewState(cfg)
	return nil
}

// Reveal uncovers the cell at index.
func (s *Session) Reveal(index int) (Outcome, error) {
	cell, err := s.grid.Cell(index)
	if err != nil {
		return OutcomeIgnored, err
	}
	return Reveal(cell, s.bombs, s.cfg, &s.state), nil
}

// ToggleFlag flags or unflags the cell at index.
func (s *Session) ToggleFlag(index int) (Outcome, error) {
	cell, err := s.grid.Cell(index)
	if err != nil {
		return OutcomeIgnored, err
	}
	return ToggleFlag(cell, &s.state), nil
}

// Cell returns a copy of the cell at index.
func (s *Session) Cell(index int) (Cell, error) {
	cell, err := s.grid.Cell(index)
	if err != nil {
		return Cell{}, err
	}
	return *cell, nil
}

// Config returns the session parameters.
func (s *Session) Config() Config { return s.cfg }

// State returns a copy of the session progress.
func (s *Session) State() State { return s.state }

// Score returns the number of safe reveals.
func (s *Session) Score() int { return s.state.Score }

// LivesRemaining returns the lives left.
func (s *Session) LivesRemaining() int { return s.state.LivesRemaining }

// IsOver reports whether the session reached a terminal state.
func (s *Session) IsOver() bool { return s.state.Over }

// Result returns won, lost or none.
func (s *Session) Result() Result { return s.state.Result }

// Rows returns the board height.
func (s *Session) Rows() int { return s.rows }

// Cols returns the board width.
func (s *Session) Cols() int { return s.cols }

// IndexAt returns the index at 0-based (row, col), or 0 if outside.
func (s *Session) IndexAt(row, col int) int { return s.grid.IndexAt(row, col) }

// Flags returns the number of flagged cells.
func (s *Session) Flags() int { return s.grid.FlaggedCount() }

// Bombs returns the bomb indices in ascending order.
// The presentation layer uses it to uncover the field after a loss.
func (s *Session) Bombs() []int { return s.bombs.Indices() }

// IsBomb reports whether index holds a bomb.
func (s *Session) IsBomb(index int) bool { return s.bombs.Has(index) }

// Each calls fn for every cell in index order.
func (s *Session) Each(fn func(c Cell)) { s.grid.Each(fn) }

// Position returns the 0-based (row, col) of a 1-based index.
func (s *Session) Position(index int) (row, col int) { return s.grid.Position(index) }
