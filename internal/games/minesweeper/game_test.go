package minesweeper

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()

	SetConfig(config.DefaultSweeperConfig())
	SetDifficultyPreset("")
	t.Cleanup(func() {
		ClearConfig()
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func (g *Game) moveTo(index int) {
	g.cursorRow, g.cursorCol = g.session.Position(index)
}

func firstCell(g *Game, bomb bool) int {
	for i := 1; i <= g.session.Rows()*g.session.Cols(); i++ {
		if g.session.IsBomb(i) == bomb {
			return i
		}
	}
	return 0
}

func hasEvent(res core.StepResult, name string) bool {
	for _, e := range res.Events {
		if e.Name == name {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionReveal, core.ActionRight, core.ActionReveal, core.ActionDown,
		core.ActionFlag, core.ActionDown, core.ActionReveal, core.ActionLeft,
		core.ActionReveal, core.ActionUp, core.ActionFlag, core.ActionReveal,
	}

	run := func() Snapshot {
		g := newTestGame(t, 1234)
		for _, a := range script {
			press(g, a)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input produced different games:\n%+v\n%+v", a, b)
	}
}

func TestResetUsesDefaultDifficulty(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot()

	if snap.Difficulty != sweeper.DifficultyEasy {
		t.Errorf("Difficulty = %s, expected easy", snap.Difficulty)
	}
	if !sweeper.DefaultPolicy()[sweeper.DifficultyEasy].Bombs.Contains(snap.Config.TotalBombs) {
		t.Errorf("TotalBombs = %d outside easy range", snap.Config.TotalBombs)
	}
	if len(snap.Bombs) != snap.Config.TotalBombs {
		t.Errorf("placed %d bombs, expected %d", len(snap.Bombs), snap.Config.TotalBombs)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("Status = %s, expected playing", snap.Status)
	}
}

func TestDifficultyPreset(t *testing.T) {
	newTestGame(t, 1)
	SetDifficultyPreset("medium")

	fresh := New()
	fresh.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if fresh.Difficulty() != sweeper.DifficultyMedium {
		t.Errorf("Difficulty = %s, expected medium", fresh.Difficulty())
	}

	SetDifficultyPreset("nonsense")
	fresh = New()
	fresh.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if fresh.Difficulty() != sweeper.DifficultyEasy {
		t.Errorf("unknown preset should fall back to easy, got %s", fresh.Difficulty())
	}
}

func TestCursorClamp(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 20; i++ {
		press(g, core.ActionUp)
		press(g, core.ActionLeft)
	}
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected (0, 0)", g.cursorRow, g.cursorCol)
	}

	for i := 0; i < 20; i++ {
		press(g, core.ActionDown)
		press(g, core.ActionRight)
	}
	if g.cursorRow != g.session.Rows()-1 || g.cursorCol != g.session.Cols()-1 {
		t.Errorf("cursor = (%d, %d), expected bottom-right", g.cursorRow, g.cursorCol)
	}
}

func TestRevealSafeCell(t *testing.T) {
	g := newTestGame(t, 7)
	safe := firstCell(g, false)
	g.moveTo(safe)

	res := press(g, core.ActionReveal)

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if len(res.Events) != 1 || res.Events[0] != (core.Event{Name: "safe_reveal", Value: safe}) {
		t.Errorf("Events = %+v", res.Events)
	}

	// Revealing again is ignored
	res = press(g, core.ActionReveal)
	if res.State.Score != 1 {
		t.Errorf("Score after repeat = %d, expected 1", res.State.Score)
	}
}

func TestBombHitFlashes(t *testing.T) {
	g := newTestGame(t, 7)
	bomb := firstCell(g, true)
	g.moveTo(bomb)

	res := press(g, core.ActionReveal)
	if !hasEvent(res, "bomb_hit") {
		t.Fatalf("expected bomb_hit event, got %+v", res.Events)
	}
	if g.session.LivesRemaining() != g.session.Config().Lives-1 {
		t.Errorf("LivesRemaining = %d", g.session.LivesRemaining())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	x, y := g.layout.cellOrigin(g.session.Position(bomb))
	if c := screen.GetCell(x+1, y); c.Rune != glyphBomb || c.Color != core.ColorBomb {
		t.Errorf("hit bomb cell = %+v, expected flashing bomb", c)
	}

	// The flash expires after a second
	for i := 0; i < 61; i++ {
		press(g)
	}
	if g.fx.flashing(bomb) {
		t.Error("flash should have expired")
	}
}

func TestFlagToggle(t *testing.T) {
	g := newTestGame(t, 3)
	bomb := firstCell(g, true)
	g.moveTo(bomb)

	res := press(g, core.ActionFlag)
	if !hasEvent(res, "flagged") {
		t.Fatalf("expected flagged event, got %+v", res.Events)
	}

	// A flagged bomb cannot be revealed
	res = press(g, core.ActionReveal)
	if g.session.LivesRemaining() != g.session.Config().Lives {
		t.Error("revealing a flagged bomb should not cost a life")
	}
	if !hasEvent(res, "ignored") {
		t.Errorf("expected ignored event, got %+v", res.Events)
	}

	res = press(g, core.ActionFlag)
	if !hasEvent(res, "unflagged") {
		t.Errorf("expected unflagged event, got %+v", res.Events)
	}
}

func TestClickMapping(t *testing.T) {
	g := newTestGame(t, 11)

	tests := []struct {
		name     string
		row, col int
		dx       int
		ok       bool
	}{
		{"left bracket", 2, 3, 0, true},
		{"glyph", 2, 3, 1, true},
		{"right bracket", 2, 3, 2, true},
		{"top-left", 0, 0, 1, true},
		{"bottom-right", 9, 9, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := g.layout.cellOrigin(tc.row, tc.col)
			row, col, ok := g.layout.cellAt(x+tc.dx, y)
			if ok != tc.ok || row != tc.row || col != tc.col {
				t.Errorf("cellAt(%d, %d) = (%d, %d, %v)", x+tc.dx, y, row, col, ok)
			}
		})
	}

	b := g.layout.board
	for _, p := range [][2]int{{b.X, b.Y + 1}, {b.X + 1, b.Y}, {b.Right() - 1, b.Y + 1}, {0, 0}} {
		if _, _, ok := g.layout.cellAt(p[0], p[1]); ok {
			t.Errorf("cellAt(%d, %d) should be outside the board", p[0], p[1])
		}
	}
}

func TestClicksRevealAndFlag(t *testing.T) {
	g := newTestGame(t, 11)
	safe := firstCell(g, false)
	bomb := firstCell(g, true)

	sx, sy := g.layout.cellOrigin(g.session.Position(safe))
	bx, by := g.layout.cellOrigin(g.session.Position(bomb))

	in := core.NewInputFrame()
	in.AddClick(sx+1, sy, false)
	in.AddClick(bx+1, by, true)
	in.AddClick(0, 0, false) // Outside, ignored
	res := g.Step(in)

	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	cell, _ := g.session.Cell(bomb)
	if !cell.Flagged {
		t.Error("right click should flag the bomb")
	}
	if len(res.Events) != 2 {
		t.Errorf("Events = %+v, expected 2", res.Events)
	}

	row, col := g.session.Position(bomb)
	if g.cursorRow != row || g.cursorCol != col {
		t.Error("cursor should follow the last click")
	}
}

func TestLoseRevealsAllBombs(t *testing.T) {
	g := newTestGame(t, 5)
	bombs := g.session.Bombs()

	var res core.StepResult
	for i := 0; i < g.session.Config().Lives; i++ {
		g.moveTo(bombs[i])
		res = press(g, core.ActionReveal)
	}

	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected loss", res.State)
	}
	if !hasEvent(res, core.EventLost) {
		t.Errorf("expected lost event, got %+v", res.Events)
	}
	if g.Snapshot().Status != StatusLost {
		t.Errorf("Status = %s, expected lost", g.Snapshot().Status)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	_, centerY := g.layout.board.Center()
	checked := 0
	for _, idx := range bombs {
		x, y := g.layout.cellOrigin(g.session.Position(idx))
		if y >= centerY-3 && y <= centerY+3 {
			continue // Under the overlay
		}
		checked++
		if screen.Get(x+1, y) != glyphBomb {
			t.Errorf("bomb %d not shown after loss", idx)
		}
	}
	if checked == 0 {
		t.Skip("every bomb is under the overlay for this seed")
	}

	// Input is ignored after the loss
	g.moveTo(firstCell(g, false))
	res = press(g, core.ActionReveal)
	if res.State.Score != g.session.Score() || len(res.Events) != 0 {
		t.Errorf("finished game reacted to input: %+v", res)
	}
}

func TestWin(t *testing.T) {
	g := newTestGame(t, 9)
	target := g.session.Config().MaxScore

	var res core.StepResult
	revealed := 0
	for i := 1; revealed < target; i++ {
		if g.session.IsBomb(i) {
			continue
		}
		g.moveTo(i)
		res = press(g, core.ActionReveal)
		revealed++
	}

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("State = %+v, expected win", res.State)
	}
	if !hasEvent(res, core.EventWon) {
		t.Errorf("expected won event, got %+v", res.Events)
	}
	if !g.fx.sparkling() {
		t.Error("win should start the sparkle")
	}
	if g.highScore != target {
		t.Errorf("highScore = %d, expected %d", g.highScore, target)
	}
}

func TestDifficultySwitch(t *testing.T) {
	g := newTestGame(t, 2)

	res := press(g, core.ActionHard)
	if !hasEvent(res, core.EventNewSession) {
		t.Fatalf("expected new_session event, got %+v", res.Events)
	}
	if g.ScoreKey() != "hard" {
		t.Errorf("ScoreKey() = %q, expected hard", g.ScoreKey())
	}

	cfg := g.session.Config()
	tier := sweeper.DefaultPolicy()[sweeper.DifficultyHard]
	if !tier.Bombs.Contains(cfg.TotalBombs) || !tier.Score.Contains(cfg.MaxScore) || cfg.Lives != tier.Lives {
		t.Errorf("hard config out of range: %+v", cfg)
	}

	// Restart keeps the difficulty
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})
	if g.Difficulty() != sweeper.DifficultyHard {
		t.Errorf("Difficulty after Reset = %s, expected hard", g.Difficulty())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 4)
	g.moveTo(firstCell(g, false))

	res := press(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	res = press(g, core.ActionReveal)
	if res.State.Score != 0 {
		t.Error("reveal should be ignored while paused")
	}

	press(g, core.ActionPause)
	res = press(g, core.ActionReveal)
	if res.State.Score != 1 {
		t.Errorf("Score = %d after unpause, expected 1", res.State.Score)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := newTestGame(t, 4)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 4})

	res := press(g, core.ActionReveal)
	if !res.State.Paused {
		t.Error("small window should pause the game")
	}
	if g.Snapshot().Status != StatusPausedSmall {
		t.Errorf("Status = %s", g.Snapshot().Status)
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if screen.Row(5) == screen.Row(0) {
		t.Error("expected a too-small notice")
	}
}

func TestHUD(t *testing.T) {
	g := newTestGame(t, 6)
	g.SetHighScore(17)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for _, want := range []string{"MINESWEEPER  EASY", "Score 00000", "Best 00017", "♥♥♥"} {
		found := false
		for y := 0; y < hudHeight; y++ {
			if strings.Contains(screen.Row(y), want) {
				found = true
			}
		}
		if !found {
			t.Errorf("HUD missing %q", want)
		}
	}
}

func TestHearts(t *testing.T) {
	tests := []struct {
		remaining, total int
		expected         string
	}{
		{3, 3, "♥♥♥"},
		{1, 3, "♥♡♡"},
		{0, 2, "♡♡"},
		{-1, 2, "♡♡"},
	}
	for _, tc := range tests {
		if got := hearts(tc.remaining, tc.total); got != tc.expected {
			t.Errorf("hearts(%d, %d) = %q, expected %q", tc.remaining, tc.total, got, tc.expected)
		}
	}
}

func TestSetDifficultyAndResize(t *testing.T) {
	g := newTestGame(t, 8)
	g.moveTo(firstCell(g, false))
	press(g, core.ActionReveal)

	// Resizing keeps the session
	g.Resize(100, 30)
	if g.session.Score() != 1 {
		t.Errorf("Score after Resize = %d, expected 1", g.session.Score())
	}
	if g.layout.board.X != (100-g.layout.board.W)/2 {
		t.Errorf("board not recentered: %+v", g.layout.board)
	}

	g.Resize(20, 8)
	if !g.State().Paused {
		t.Error("shrinking below the minimum should pause")
	}

	g.SetDifficulty("medium")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 8})
	if g.Difficulty() != sweeper.DifficultyMedium || g.session.Score() != 0 {
		t.Errorf("Reset after SetDifficulty: %s, score %d", g.Difficulty(), g.session.Score())
	}
}

// brokenConfig has a tier that cannot fit its board.
func brokenConfig() config.SweeperConfig {
	return config.SweeperConfig{
		Board: config.BoardConfig{Rows: 3, Cols: 3},
		Difficulties: map[string]config.TierConfig{
			"easy": {Bombs: []int{20, 30}, Lives: 1, Score: []int{1, 2}},
		},
	}
}

func TestResetReportsBrokenConfig(t *testing.T) {
	SetConfig(brokenConfig())
	SetDifficultyPreset("")
	t.Cleanup(func() {
		ClearConfig()
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if !errors.Is(g.Err(), sweeper.ErrInvalidConfig) {
		t.Fatalf("Err() = %v, expected ErrInvalidConfig", g.Err())
	}
	if g.Session() == nil {
		t.Fatal("session should fall back to the built-in defaults")
	}
	if g.Session().Rows() != 10 || g.Difficulty() != sweeper.DifficultyEasy {
		t.Errorf("fallback = %dx%d %s, expected 10x10 easy", g.Session().Rows(), g.Session().Cols(), g.Difficulty())
	}

	// Step and Render must work on the fallback session
	press(g, core.ActionReveal)
	g.Render(core.NewScreen(80, 24))
}

func TestResetKeepsSessionOnBrokenConfig(t *testing.T) {
	g := newTestGame(t, 3)
	safe := firstCell(g, false)
	g.moveTo(safe)
	press(g, core.ActionReveal)
	before := g.Session()

	SetConfig(brokenConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4})

	if g.Err() == nil {
		t.Fatal("expected Reset to report the broken config")
	}
	if g.Session() != before {
		t.Error("previous session should be kept")
	}
	if g.Session().Score() != 1 {
		t.Errorf("score = %d, expected the kept session's 1", g.Session().Score())
	}

	SetConfig(config.DefaultSweeperConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4})
	if g.Err() != nil {
		t.Errorf("Err() = %v after a good config, expected nil", g.Err())
	}
}

func TestMixedCaseCustomTier(t *testing.T) {
	cfg := config.DefaultSweeperConfig()
	cfg.Difficulties["Expert"] = config.TierConfig{Bombs: []int{5, 6}, Lives: 1, Score: []int{5, 6}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	g := newTestGame(t, 5)
	SetConfig(cfg)

	for _, d := range cfg.Policy().Names() {
		g.SetDifficulty(string(d))
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
		if g.Difficulty() != d {
			t.Errorf("menu choice %q started %q", d, g.Difficulty())
		}
	}

	g.SetDifficulty("Expert")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
	if g.Difficulty() != "expert" || g.Session().Config().Lives != 1 {
		t.Errorf("Expert started %q with %d lives", g.Difficulty(), g.Session().Config().Lives)
	}
}
