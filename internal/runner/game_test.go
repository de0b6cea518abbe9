package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// isolate keeps config loading away from the developer's files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{GameID, AutoGameID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameLifecycle(t *testing.T) {
	isolate(t)
	clock := core.NewManualClock(epoch)
	g := New()
	g.SetClock(clock)
	g.SetHighScores(&stubScores{best: 42})
	g.Reset(core.DefaultConfig())

	if g.ConfigErr() != nil {
		t.Fatalf("ConfigErr() = %v", g.ConfigErr())
	}
	st := g.State()
	if !st.InMenu || st.HighScore != 42 {
		t.Errorf("State() = %+v, expected the menu with high score 42", st)
	}

	res := g.Step(core.InputOf(core.ActionConfirm))
	if res.State.InMenu || res.State.GameOver {
		t.Fatalf("State() = %+v after confirm, expected playing", res.State)
	}

	clock.Advance(time.Second)
	g.Step(core.InputOf(core.ActionPause))
	if !g.State().Paused {
		t.Error("State().Paused = false after pause")
	}
	clock.Advance(time.Second)
	g.Step(core.InputOf(core.ActionPause))

	clock.Advance(200 * time.Second)
	res = g.Step(core.NewInputFrame())
	if !res.RunEnded || !res.State.GameOver {
		t.Errorf("Step() = %+v, expected the run to end on time", res)
	}
	if g.LastRun().Reason != EndTimeUp {
		t.Errorf("LastRun().Reason = %v, expected time up", g.LastRun().Reason)
	}
}

func TestGameResetKeepsDifficulty(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(core.DefaultConfig())
	g.Step(core.InputOf(core.ActionRight))

	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60})

	if g.Session().Difficulty() != config.DifficultyMedium {
		t.Errorf("Difficulty() = %v after resize, expected medium", g.Session().Difficulty())
	}
	if g.Session().State() != StateMenu {
		t.Errorf("State() = %v after resize, expected menu", g.Session().State())
	}
	if w := g.Session().Snapshot().View.Width; w != 1500 {
		t.Errorf("view width = %v, expected 1500", w)
	}
}

func TestGameAutoVariant(t *testing.T) {
	isolate(t)
	g := NewAuto()
	g.Reset(core.DefaultConfig())

	if g.Config().Movement != config.MovementAuto {
		t.Errorf("Movement = %q, expected auto", g.Config().Movement)
	}
	if g.ID() != AutoGameID {
		t.Errorf("ID() = %q, expected %q", g.ID(), AutoGameID)
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	isolate(t)
	SetConfigPath("/nonexistent/runner.yaml")
	defer SetConfigPath("")

	g := New()
	g.Reset(core.DefaultConfig())

	if g.ConfigErr() == nil {
		t.Error("ConfigErr() = nil for a missing file")
	}
	if g.Session() == nil {
		t.Fatal("Session() = nil, expected a session on defaults")
	}
	if g.Config().Player.Width != config.DefaultRunnerConfig().Player.Width {
		t.Error("fallback config should use the defaults")
	}
}

func TestGameRender(t *testing.T) {
	isolate(t)
	g := New()
	g.SetClock(core.NewManualClock(epoch))
	g.Reset(core.DefaultConfig())
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	if !strings.Contains(dst.String(), "ENDLESS RUNNER") {
		t.Error("menu render is missing the title")
	}

	g.Step(core.InputOf(core.ActionJump))
	g.Render(dst)
	if !strings.Contains(dst.Row(0), "Score:") {
		t.Errorf("HUD row = %q, expected a score", dst.Row(0))
	}
}
