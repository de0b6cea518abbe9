// Package audio synthesizes the runner's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

const speakerBuffer = 100 * time.Millisecond

var _ runner.Audio = (*SoundManager)(nil)

// SoundManager mixes one-shot effects and the running loop into the speaker.
// Every method is a no-op until Initialize succeeds, so a machine without an
// audio device still plays silently.
type SoundManager struct {
	mu      sync.Mutex
	cfg     Config
	mixer   *beep.Mixer
	running *beep.Ctrl
	ready   bool
}

// NewSoundManager creates a manager. Call Initialize to open the speaker.
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{cfg: cfg, mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. A disabled config leaves the manager muted.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ready || !sm.cfg.Enabled {
		return nil
	}
	rate := sm.cfg.rate()
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.ready = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready {
		return
	}
	speaker.Lock()
	if sm.running != nil {
		sm.running.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.running = nil
	sm.ready = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) OnJump() { sm.play(JumpSound(sm.cfg)) }

func (sm *SoundManager) OnCoinCollect(multiplier int) { sm.play(CoinSound(sm.cfg, multiplier)) }

func (sm *SoundManager) OnWatchCollect() { sm.play(WatchSound(sm.cfg)) }

func (sm *SoundManager) OnDeath() {
	sm.OnRunStateChange(false)
	sm.play(DeathSound(sm.cfg))
}

// OnRunStateChange starts or pauses the footstep loop.
func (sm *SoundManager) OnRunStateChange(running bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if sm.running == nil {
		if !running {
			return
		}
		sm.running = &beep.Ctrl{Streamer: RunningLoop(sm.cfg)}
		sm.mixer.Add(sm.running)
		return
	}
	sm.running.Paused = !running
}
