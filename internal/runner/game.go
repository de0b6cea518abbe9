package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game IDs.
const (
	GameID     = "runner"
	AutoGameID = "runner_auto"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var movementOverride config.MovementMode

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured default.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetMovementMode overrides the configured movement mode for the "runner" game.
func SetMovementMode(mode string) {
	switch m := config.MovementMode(mode); m {
	case config.MovementManual, config.MovementAuto:
		movementOverride = m
	default:
		movementOverride = ""
	}
}

// Game adapts a Session to the registry's Game interface.
type Game struct {
	id      string
	title   string
	auto    bool
	clock   core.Clock
	audio   Audio
	scores  HighScores
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	cfgErr  error
	session *Session
}

// New creates the manual-scroll runner.
func New() *Game {
	return &Game{id: GameID, title: "Endless Runner", clock: core.SystemClock{}}
}

// NewAuto creates the auto-scroll runner.
func NewAuto() *Game {
	return &Game{id: AutoGameID, title: "Endless Runner (Auto)", auto: true, clock: core.SystemClock{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetClock replaces the wall clock used for the session timer.
func (g *Game) SetClock(c core.Clock) {
	g.clock = c
}

// SetAudio attaches the sound collaborator. Takes effect on the next Reset.
func (g *Game) SetAudio(a Audio) {
	g.audio = a
}

// SetHighScores attaches the persistence collaborator. Takes effect on the next Reset.
func (g *Game) SetHighScores(h HighScores) {
	g.scores = h
}

// Reset builds a fresh session on the start screen for the given screen size.
// A difficulty chosen on the previous start screen is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfgErr = err

	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	if g.session != nil {
		config.ApplyRunnerPreset(&cfg, g.session.Difficulty())
	}
	switch {
	case g.auto:
		cfg.Movement = config.MovementAuto
	case movementOverride != "":
		cfg.Movement = movementOverride
	}
	g.cfg = cfg

	view := core.ViewportFor(runtime.ScreenW, runtime.ScreenH, cfg.World.GroundHeight)
	g.session = NewSession(cfg, view, core.NewRNG(runtime.Seed), g.audio, g.scores)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	res := g.session.Update(in, g.clock.Now())
	return core.StepResult{State: g.State(), RunEnded: res.RunEnded}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()
	Draw(dst, &snap)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{InMenu: true}
	}
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.State() == StateGameOver,
		Paused:    g.session.Paused(),
		InMenu:    g.session.State() == StateMenu,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// LastRun returns the summary of the most recent finished run.
func (g *Game) LastRun() RunSummary {
	if g.session == nil {
		return RunSummary{}
	}
	return g.session.LastRun()
}

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// ConfigErr returns the error from loading the configuration on the last
// Reset; the defaults were used in its place.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// HighScoreErr returns the error from loading the stored high score on the
// last Reset; the session started from zero.
func (g *Game) HighScoreErr() error {
	if g.session == nil {
		return nil
	}
	return g.session.LoadErr()
}

// Register the games with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(AutoGameID, func() registry.Game {
		return NewAuto()
	})
}
