package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type stubGame struct {
	key  string
	high int
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) ScoreKey() string                     { return g.key }
func (g *stubGame) SetHighScore(score int)               { g.high = score }

// plainGame implements only Game.
type plainGame struct{}

func (g plainGame) ID() string                              { return "plain" }
func (g plainGame) Title() string                           { return "Plain" }
func (g plainGame) Reset(cfg core.RuntimeConfig)            {}
func (g plainGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g plainGame) Render(dst *core.Screen)                 {}
func (g plainGame) State() core.GameState                   { return core.GameState{} }

func TestScoreKeyFallsBackToID(t *testing.T) {
	if got := ScoreKey(plainGame{}); got != "plain" {
		t.Errorf("ScoreKey() = %q, expected plain", got)
	}
}

func TestRegisterCreate(t *testing.T) {
	Register("stub-test", func() Game { return &stubGame{key: "stub:easy"} })

	if !Exists("stub-test") {
		t.Fatal("Exists() = false after Register")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-test" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}

	g, err := Create("stub-test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if ScoreKey(g) != "stub:easy" {
		t.Errorf("ScoreKey() = %q", ScoreKey(g))
	}
	if hs, ok := g.(HighScoreSetter); ok {
		hs.SetHighScore(42)
		if g.(*stubGame).high != 42 {
			t.Error("SetHighScore not applied")
		}
	} else {
		t.Error("stubGame should implement HighScoreSetter")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-test", func() Game { return &stubGame{} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}
