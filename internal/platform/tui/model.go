package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     storage.ScoreLog
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// scores and logger may be nil.
func NewModel(game registry.Game, scores storage.ScoreLog, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// errReporter is implemented by games whose Reset can fall back after a failure.
type errReporter interface {
	Err() error
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.reportResetError()
	m.refreshHighScore()
	m.logger.Info("game started", "game", m.game.ID(), "difficulty", registry.ScoreKey(m.game), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes game ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.reportResetError()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.refreshHighScore()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "difficulty", registry.ScoreKey(m.game), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Save score on game over (once). Zero scores count as played games.
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs what happened during a tick.
func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Name {
		case core.EventNewSession:
			m.scoreSaved = false
			m.refreshHighScore()
			m.logger.Info("session started", "difficulty", registry.ScoreKey(m.game), "bombs", ev.Value)
		case core.EventWon, core.EventLost:
			m.logger.Info("session finished", "difficulty", registry.ScoreKey(m.game), "result", ev.Name, "score", ev.Value)
		default:
			m.logger.Debug("outcome", "outcome", ev.Name, "cell", ev.Value)
		}
	}
}

// reportResetError logs a failure the game recovered from during Reset.
func (m *Model) reportResetError() {
	if r, ok := m.game.(errReporter); ok && r.Err() != nil {
		m.logger.Warn("game reset fell back", "game", m.game.ID(), "error", r.Err())
	}
}

// saveScore appends the finished game to the score log.
func (m *Model) saveScore() {
	if m.scores == nil {
		return
	}

	entry := storage.ScoreEntry{
		Difficulty: registry.ScoreKey(m.game),
		Score:      m.gameState.Score,
		Won:        m.gameState.Won,
		LivesLeft:  m.gameState.Lives,
		CreatedAt:  time.Now(),
	}
	if _, err := m.scores.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "difficulty", entry.Difficulty, "error", err)
		return
	}
	m.refreshHighScore()
}

// refreshHighScore pushes the stored best score into the game.
func (m *Model) refreshHighScore() {
	hs, ok := m.game.(registry.HighScoreSetter)
	if !ok || m.scores == nil {
		return
	}

	high, err := m.scores.HighScore(registry.ScoreKey(m.game))
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	hs.SetHighScore(high)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".sweeper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game until the user quits or goes back to the menu.
// Reports whether the user asked for the menu.
func Run(game registry.Game, scores storage.ScoreLog, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, scores, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
