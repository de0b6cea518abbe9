package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/journal"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// scriptedGame ends a run on a chosen tick and records every input frame.
type scriptedGame struct {
	endOn  int
	steps  int
	resets int
	frames []core.InputFrame
	audio  runner.Audio
	scores runner.HighScores
}

func (g *scriptedGame) ID() string               { return "runner" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState    { return core.GameState{GameOver: g.steps >= g.endOn} }

func (g *scriptedGame) SetAudio(a runner.Audio) { g.audio = a }

func (g *scriptedGame) SetHighScores(h runner.HighScores) { g.scores = h }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	frame := core.NewInputFrame()
	for a, v := range in.Actions {
		if v {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.State(), RunEnded: g.steps == g.endOn}
}

func (g *scriptedGame) LastRun() runner.RunSummary {
	return runner.RunSummary{
		Score:      42,
		CoinScore:  20,
		Distance:   300,
		Ticks:      g.steps,
		Duration:   3 * time.Second,
		Reason:     runner.EndDeath,
		KilledBy:   runner.KindBird,
		Difficulty: config.DifficultyHard,
		Mode:       config.MovementManual,
		EndedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelRecordsFinishedRun(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	jw := journal.NewWriter(filepath.Join(dir, "journal"))

	game := &scriptedGame{endOn: 3}
	m := NewModel(game, Deps{Store: store, Journal: jw, Player: "alice"}, testRuntime())
	m.Init()

	if game.scores == nil {
		t.Error("NewModel should attach the high score adapter")
	}
	if game.audio != nil {
		t.Error("no audio was supplied, none should be attached")
	}

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if err := jw.Close(); err != nil {
		t.Fatalf("journal Close() failed: %v", err)
	}

	runs, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, expected exactly 1", len(runs))
	}
	r := runs[0]
	if r.Score != 42 || r.KilledBy != "bird" || r.EndReason != "death" || r.Difficulty != "hard" {
		t.Errorf("stored run = %+v", r)
	}

	recs, err := journal.ReadAll(filepath.Join(dir, "journal"))
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Player != "alice" || recs[0].Score != 42 {
		t.Errorf("journal = %+v, expected one record for alice", recs)
	}
}

func TestModelWithoutCollaborators(t *testing.T) {
	game := &scriptedGame{endOn: 1}
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()
	m = tick(t, m)

	if !m.gameState.GameOver {
		t.Error("game state should follow the step result")
	}
}

func TestModelHoldsDirection(t *testing.T) {
	game := &scriptedGame{endOn: 1000}
	m := NewModel(game, Deps{}, testRuntime())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	m = tick(t, m)

	if !game.frames[0].Has(core.ActionRight) || !game.frames[1].Has(core.ActionRight) {
		t.Error("right should stay held across ticks")
	}
	if !game.frames[0].Has(core.ActionJump) {
		t.Error("jump should reach the first tick")
	}
	if game.frames[1].Has(core.ActionJump) {
		t.Error("jump is an edge action and must not repeat")
	}
}

func TestModelResizeResets(t *testing.T) {
	game := &scriptedGame{endOn: 1000}
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resets != 2 {
		t.Errorf("Reset called %d times, expected 2", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	game := &scriptedGame{endOn: 1}
	m := NewModel(game, Deps{}, testRuntime())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc mid-run should not leave the game")
	}

	m = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc on game over should go back to the menu")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelWithRunnerGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewModel(runner.New(), Deps{}, testRuntime())
	m.Init()
	m = tick(t, m)

	if !m.gameState.InMenu {
		t.Error("a fresh runner should open on its start screen")
	}
	if !strings.Contains(m.View(), "ENDLESS RUNNER") {
		t.Error("View() should show the start screen")
	}
}

func TestModelMenuDirectionStepsOnce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game := runner.New()
	m := NewModel(game, Deps{}, testRuntime())
	m.Init()
	m = tick(t, m)
	if !m.gameState.InMenu {
		t.Fatal("expected the start screen")
	}

	next := func(p config.DifficultyPreset) config.DifficultyPreset {
		for i, q := range config.Presets {
			if q == p {
				return config.Presets[(i+1)%len(config.Presets)]
			}
		}
		return p
	}

	before := game.Session().Difficulty()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 40; i++ {
		m = tick(t, m)
		if got := game.Session().Difficulty(); got != next(before) {
			t.Fatalf("tick %d: Difficulty() = %v, expected %v", i, got, next(before))
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m)
	if got := game.Session().Difficulty(); got != next(next(before)) {
		t.Errorf("second press: Difficulty() = %v, expected %v", got, next(next(before)))
	}
	if !m.gameState.InMenu {
		t.Error("menu steps should not start a run")
	}
}

func TestModelLogsHighScoreLoadFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	game := runner.New()
	m := NewModel(game, Deps{Store: store, Logger: log.New(&buf)}, testRuntime())
	m.Init()

	if game.HighScoreErr() == nil {
		t.Fatal("HighScoreErr() = nil, expected the closed store to fail")
	}
	if !strings.Contains(buf.String(), "high score unavailable") {
		t.Errorf("log = %q, expected a high score warning", buf.String())
	}
	if game.Session().HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0 after a failed load", game.Session().HighScore())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "coin", core.ColorYellow)
	s.DrawTextColored(5, 0, "dirt", core.ColorBrown)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	for _, want := range []string{"coin", "dirt", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q", want)
		}
	}
	if len(strings.Split(out, "\n")) != 2 {
		t.Errorf("RenderScreen() should emit one line per row")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorNavy; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
