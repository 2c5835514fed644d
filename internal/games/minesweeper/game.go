// Package minesweeper adapts a sweeper.Session to the platform's Game
// interface: cursor and pointer input, HUD, overlays and timed effects.
package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// GameID is the registry identifier.
const GameID = "minesweeper"

// sharedConfig holds the configuration loaded by the CLI, if any.
var sharedConfig *config.SweeperConfig

// difficultyPreset stores the starting difficulty set via CLI or menu
var difficultyPreset string

// SetConfig sets the configuration every new game plays with.
// The caller validates it; a config that cannot start a session is
// reported through Err.
func SetConfig(cfg config.SweeperConfig) {
	sharedConfig = &cfg
}

// ClearConfig makes new games load the configuration from the search path.
func ClearConfig() {
	sharedConfig = nil
}

// SetDifficultyPreset sets the difficulty new games start on.
func SetDifficultyPreset(name string) {
	difficultyPreset = name
}

// Game implements Minesweeper on top of a sweeper.Session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SweeperConfig
	rng     *rand.Rand
	tick    uint64

	session    *sweeper.Session
	difficulty sweeper.Difficulty
	requested  string // Difficulty for the next Reset, overrides the preset
	cursorRow  int
	cursorCol  int
	highScore  int

	fx effects

	paused   bool
	tooSmall bool
	layout   layout

	err error // Last configuration or session failure
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// ScoreKey returns the difficulty scores are stored under.
func (g *Game) ScoreKey() string {
	return string(g.difficulty)
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// SetDifficulty selects the difficulty the next Reset starts on.
func (g *Game) SetDifficulty(name string) {
	g.requested = name
	g.difficulty = ""
}

// Resize adapts the layout to a new screen size, keeping the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.session != nil {
		g.computeLayout()
	}
}

// Difficulty returns the difficulty of the current session.
func (g *Game) Difficulty() sweeper.Difficulty {
	return g.difficulty
}

// Session exposes the underlying rules session.
func (g *Game) Session() *sweeper.Session {
	return g.session
}

// Err returns the failure of the last Reset, or nil.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a fresh session. A restart keeps the difficulty of the
// previous session. If the configuration cannot start a session the
// previous session is kept, or the built-in defaults are played when
// there is none, and the failure is reported through Err.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.err = nil

	prev := g.cfg
	if sharedConfig != nil {
		g.cfg = *sharedConfig
	} else if cfg, err := config.LoadSweeper(""); err == nil {
		g.cfg = cfg
	} else {
		g.err = err
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.paused = false

	name := string(g.difficulty)
	if name == "" {
		name = g.requested
	}
	if name == "" {
		name = difficultyPreset
	}
	if err := g.startSession(g.pickDifficulty(name)); err != nil {
		g.err = err
		g.cfg = prev
		if g.session == nil {
			g.cfg = config.DefaultSweeperConfig()
			if err := g.startSession(config.DefaultDifficulty); err != nil {
				// The built-in defaults always validate.
				panic(err)
			}
		}
	}

	g.computeLayout()
}

// pickDifficulty resolves name against the loaded tiers, falling back to
// the default tier and then to the first configured one.
func (g *Game) pickDifficulty(name string) sweeper.Difficulty {
	if d, err := g.cfg.ParseDifficulty(name); err == nil {
		return d
	}
	if d, err := g.cfg.ParseDifficulty(""); err == nil {
		return d
	}
	if names := g.cfg.Policy().Names(); len(names) > 0 {
		return names[0]
	}
	return config.DefaultDifficulty
}

// startSession replaces the session with a new one on difficulty d.
// On error the current session is left untouched.
func (g *Game) startSession(d sweeper.Difficulty) error {
	s, err := sweeper.NewSession(sweeper.Options{
		Rows:   g.cfg.Board.Rows,
		Cols:   g.cfg.Board.Cols,
		Policy: g.cfg.Policy(),
		Rand:   g.rng,
	}, string(d))
	if err != nil {
		return err
	}

	if d != g.difficulty {
		g.highScore = 0
	}
	g.session = s
	g.difficulty = d
	g.cursorRow = s.Rows() / 2
	g.cursorCol = s.Cols() / 2
	g.fx.reset()
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.IsOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.fx.step()

	// Difficulty keys start a new session at any time
	for _, sw := range []struct {
		action core.Action
		d      sweeper.Difficulty
	}{
		{core.ActionEasy, sweeper.DifficultyEasy},
		{core.ActionMedium, sweeper.DifficultyMedium},
		{core.ActionHard, sweeper.DifficultyHard},
	} {
		// A tier missing from the config leaves the session running
		if in.Has(sw.action) && g.startSession(sw.d) == nil {
			events = append(events, core.Event{Name: core.EventNewSession, Value: g.session.Config().TotalBombs})
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	// Finished sessions wait for the platform to restart them
	if g.session.IsOver() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionReveal) {
		events = g.reveal(g.session.IndexAt(g.cursorRow, g.cursorCol), events)
	}
	if in.Has(core.ActionFlag) {
		events = g.flag(g.session.IndexAt(g.cursorRow, g.cursorCol), events)
	}

	for _, c := range in.Clicks {
		row, col, ok := g.layout.cellAt(c.X, c.Y)
		if !ok {
			continue
		}
		g.cursorRow, g.cursorCol = row, col
		index := g.session.IndexAt(row, col)
		if c.Alt {
			events = g.flag(index, events)
		} else {
			events = g.reveal(index, events)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow--
	case in.Has(core.ActionDown):
		g.cursorRow++
	case in.Has(core.ActionLeft):
		g.cursorCol--
	case in.Has(core.ActionRight):
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.session.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.session.Cols()-1)
}

// reveal forwards a reveal to the session and reacts to the outcome.
func (g *Game) reveal(index int, events []core.Event) []core.Event {
	if g.session.IsOver() {
		return events
	}
	outcome, err := g.session.Reveal(index)
	if err != nil {
		return events
	}
	events = append(events, core.Event{Name: outcome.String(), Value: index})

	if outcome == sweeper.OutcomeBombHit {
		g.fx.flash(index, g.runtime.TickRate)
	}
	return g.checkOver(events)
}

// flag forwards a flag toggle to the session.
func (g *Game) flag(index int, events []core.Event) []core.Event {
	outcome, err := g.session.ToggleFlag(index)
	if err != nil || outcome == sweeper.OutcomeIgnored {
		return events
	}
	return append(events, core.Event{Name: outcome.String(), Value: index})
}

// checkOver emits the result event once the session has ended.
func (g *Game) checkOver(events []core.Event) []core.Event {
	if !g.session.IsOver() {
		return events
	}

	score := g.session.Score()
	if score > g.highScore {
		g.highScore = score
	}

	switch g.session.Result() {
	case sweeper.ResultWon:
		g.fx.sparkle(g.runtime.TickRate * 2)
		return append(events, core.Event{Name: core.EventWon, Value: score})
	case sweeper.ResultLost:
		return append(events, core.Event{Name: core.EventLost, Value: score})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.LivesRemaining(),
		GameOver: g.session.IsOver(),
		Won:      g.session.Result() == sweeper.ResultWon,
		Paused:   g.paused || g.tooSmall,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Space reveal  F flag  1/2/3 level  P pause"
}
