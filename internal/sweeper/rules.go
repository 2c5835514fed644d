package sweeper

// Outcome is the result of a single player action.
type Outcome int

const (
	// OutcomeIgnored means the action changed nothing (game over, cell
	// already revealed, or flagged cell on reveal).
	OutcomeIgnored Outcome = iota
	OutcomeSafeReveal
	OutcomeBombHit
	OutcomeFlagged
	OutcomeUnflagged
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSafeReveal:
		return "safe_reveal"
	case OutcomeBombHit:
		return "bomb_hit"
	case OutcomeFlagged:
		return "flagged"
	case OutcomeUnflagged:
		return "unflagged"
	default:
		return "unknown"
	}
}

// Result is the terminal status of a session.
type Result int

const (
	ResultNone Result = iota // Still in progress
	ResultWon
	ResultLost
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Config holds the immutable parameters of one session.
type Config struct {
	Difficulty Difficulty
	TotalBombs int
	MaxScore   int // Safe reveals needed to win
	Lives      int
}

// State is the mutable progress of one session.
type State struct {
	Score          int
	LivesRemaining int
	Over           bool
	Result         Result
}

// NewState returns the starting state for a config.
func NewState(cfg Config) State {
	return State{LivesRemaining: cfg.Lives}
}

// Reveal applies a reveal action to cell.
// Bomb cells are never marked revealed; a hit only costs a life.
func Reveal(cell *Cell, bombs BombSet, cfg Config, st *State) Outcome {
	if st.Over || cell.Revealed || cell.Flagged {
		return OutcomeIgnored
	}

	if bombs.Has(cell.Index) {
		st.LivesRemaining--
		if st.LivesRemaining <= 0 {
			st.LivesRemaining = 0
			st.Over = true
			st.Result = ResultLost
		}
		return OutcomeBombHit
	}

	cell.Revealed = true
	st.Score++
	if st.Score >= cfg.MaxScore {
		st.Over = true
		st.Result = ResultWon
	}
	return OutcomeSafeReveal
}

// ToggleFlag flips the flag on an unrevealed cell.
func ToggleFlag(cell *Cell, st *State) Outcome {
	if st.Over || cell.Revealed {
		return OutcomeIgnored
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		return OutcomeFlagged
	}
	return OutcomeUnflagged
}
