package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/journal"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Deps are the optional collaborators a game model reports to.
// Any of them may be nil.
type Deps struct {
	Store   *storage.Store
	Journal *journal.Writer
	Audio   runner.Audio
	Logger  *log.Logger
	// Player names the person at the keyboard in logs and the journal.
	Player string
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// Optional game capabilities, checked by type assertion so the model works
// with any registry.Game.
type (
	audioSetter interface{ SetAudio(runner.Audio) }
	scoreSetter interface{ SetHighScores(runner.HighScores) }
	runReporter interface{ LastRun() runner.RunSummary }
	configErrer interface{ ConfigErr() error }
	scoreErrer  interface{ HighScoreErr() error }
)

// attach hands the collaborators to a game that accepts them.
func attach(game registry.Game, deps Deps) {
	if a, ok := game.(audioSetter); ok && deps.Audio != nil {
		a.SetAudio(deps.Audio)
	}
	if s, ok := game.(scoreSetter); ok && deps.Store != nil {
		s.SetHighScores(storage.NewHighScoreAdapter(deps.Store, game.ID()))
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	attach(game, deps)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      newHoldTracker(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.reset()
	return tickCmd(m.config.TickRate)
}

func (m Model) reset() {
	m.game.Reset(m.config)
	if c, ok := m.game.(configErrer); ok && c.ConfigErr() != nil {
		m.deps.logger().Warn("config rejected, using defaults", "game", m.game.ID(), "error", c.ConfigErr())
	}
	if h, ok := m.game.(scoreErrer); ok && h.HighScoreErr() != nil {
		m.deps.logger().Warn("high score unavailable", "game", m.game.ID(), "error", h.HighScoreErr())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Keys()
	switch {
	case key.Matches(msg, k.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, k.Back) && (m.gameState.GameOver || m.gameState.Paused || m.gameState.InMenu):
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	switch {
	case action == core.ActionNone:
	case isHeld(action) && !m.gameState.InMenu:
		// On the start screen directions are menu steps, not movement.
		m.holds.Press(action)
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is sized from
// the terminal, so a resize always starts a fresh session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.holds.Release()
	m.reset()
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.RunEnded {
		m.recordRun()
		m.holds.Release()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun reports a finished run to the logger, the store and the journal.
// Failures are logged and play continues.
func (m Model) recordRun() {
	r, ok := m.game.(runReporter)
	if !ok {
		return
	}
	sum := r.LastRun()
	logger := m.deps.logger()

	logger.Info("run ended",
		"game", m.game.ID(),
		"player", m.deps.Player,
		"score", sum.Score,
		"reason", sum.Reason,
		"distance", int(sum.Distance),
		"duration", sum.Duration.Round(time.Millisecond),
		"difficulty", sum.Difficulty,
	)
	if sum.SaveErr != nil {
		logger.Warn("could not save high score", "game", m.game.ID(), "error", sum.SaveErr)
	}

	if m.deps.Store != nil {
		rec := storage.RunRecord{
			GameID:     m.game.ID(),
			Score:      sum.Score,
			CoinScore:  sum.CoinScore,
			Distance:   sum.Distance,
			Difficulty: string(sum.Difficulty),
			Mode:       string(sum.Mode),
			EndReason:  sum.Reason.String(),
			Duration:   sum.Duration,
			CreatedAt:  sum.EndedAt,
		}
		if sum.Reason == runner.EndDeath {
			rec.KilledBy = sum.KilledBy.String()
		}
		if _, err := m.deps.Store.SaveRun(rec); err != nil {
			logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		}
	}

	if m.deps.Journal != nil {
		if err := m.deps.Journal.Write(journal.FromSummary(m.game.ID(), m.deps.Player, sum)); err != nil {
			logger.Warn("could not journal run", "game", m.game.ID(), "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, deps, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
