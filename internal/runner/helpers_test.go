package runner

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const tick = 16 * time.Millisecond

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// recordingAudio counts every cue it receives.
type recordingAudio struct {
	jumps    int
	coins    []int
	watches  int
	deaths   int
	runState []bool
}

func (a *recordingAudio) OnJump()                      { a.jumps++ }
func (a *recordingAudio) OnCoinCollect(multiplier int) { a.coins = append(a.coins, multiplier) }
func (a *recordingAudio) OnWatchCollect()              { a.watches++ }
func (a *recordingAudio) OnDeath()                     { a.deaths++ }
func (a *recordingAudio) OnRunStateChange(running bool) {
	a.runState = append(a.runState, running)
}

// stubScores is a HighScores with a preset best and a recorded save.
type stubScores struct {
	best    int
	saves   []int
	saveErr error
}

func (s *stubScores) LoadHighScore() (int, error) { return s.best, nil }

func (s *stubScores) SaveHighScore(score int) error {
	s.saves = append(s.saves, score)
	return s.saveErr
}

func testView() core.Viewport {
	return core.ViewportFor(80, 24, config.DefaultRunnerConfig().World.GroundHeight)
}

func newTestSession(t *testing.T, cfg config.RunnerConfig, audio Audio, scores HighScores) *Session {
	t.Helper()
	return NewSession(cfg, testView(), rand.New(rand.NewSource(1)), audio, scores)
}

// startedSession returns a manual session already playing at epoch.
func startedSession(t *testing.T, audio Audio) *Session {
	t.Helper()
	s := newTestSession(t, config.DefaultRunnerConfig(), audio, nil)
	s.Start(epoch)
	return s
}

func none() core.InputFrame {
	return core.NewInputFrame()
}
