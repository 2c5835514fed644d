package minesweeper

import "github.com/vovakirdan/tui-sweeper/internal/sweeper"

// Status is the coarse phase of the game.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusPaused      Status = "paused"
	StatusWon         Status = "won"
	StatusLost        Status = "lost"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Difficulty sweeper.Difficulty
	Config     sweeper.Config
	State      sweeper.State
	CursorRow  int
	CursorCol  int
	Revealed   []int
	Flagged    []int
	Bombs      []int
	Status     Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusPausedSmall
	case g.session.Result() == sweeper.ResultWon:
		status = StatusWon
	case g.session.Result() == sweeper.ResultLost:
		status = StatusLost
	case g.paused:
		status = StatusPaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		Difficulty: g.difficulty,
		Config:     g.session.Config(),
		State:      g.session.State(),
		CursorRow:  g.cursorRow,
		CursorCol:  g.cursorCol,
		Bombs:      g.session.Bombs(),
		Status:     status,
	}
	g.session.Each(func(c sweeper.Cell) {
		if c.Revealed {
			snap.Revealed = append(snap.Revealed, c.Index)
		}
		if c.Flagged {
			snap.Flagged = append(snap.Flagged, c.Index)
		}
	})
	return snap
}
