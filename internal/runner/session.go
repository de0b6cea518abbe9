package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the session's top-level mode.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason explains why a run finished.
type EndReason int

const (
	EndNone EndReason = iota
	EndDeath
	EndTimeUp
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndDeath:
		return "death"
	case EndTimeUp:
		return "time_up"
	default:
		return "none"
	}
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score        int
	CoinScore    int
	Distance     float64
	Ticks        int
	Duration     time.Duration
	Reason       EndReason
	KilledBy     Kind
	Difficulty   config.DifficultyPreset
	Mode         config.MovementMode
	HighScore    int
	NewHighScore bool
	EndedAt      time.Time
	// SaveErr is set when persisting a new high score failed.
	SaveErr error
}

// Result reports what happened during one Update.
type Result struct {
	RunEnded bool
}

// Session is the game controller: it owns every piece of run state and
// advances it one tick per Update. It is not safe for concurrent use.
type Session struct {
	cfg    config.RunnerConfig
	view   core.Viewport
	rng    core.RNG
	audio  Audio
	scores HighScores

	state    State
	paused   bool
	pausedAt time.Time
	// menuDir is the direction held on the previous menu frame.
	menuDir int

	world    *World
	spawner  *Spawner
	resolver Resolver
	fx       *Effects
	speed    *config.SpeedManager

	player     Player
	death      DeathAnimation
	timer      Timer
	score      Score
	worldSpeed float64
	gameSpeed  float64
	timeOfDay  float64
	ticks      int
	killedBy   Kind

	highScore int
	loadErr   error
	last      RunSummary
}

// NewSession creates a session on the start screen. Nil collaborators are
// replaced with no-op ones.
func NewSession(cfg config.RunnerConfig, view core.Viewport, rng core.RNG, audio Audio, scores HighScores) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	if scores == nil {
		scores = &memoryHighScores{}
	}
	s := &Session{
		cfg:    cfg,
		view:   view,
		rng:    rng,
		audio:  audio,
		scores: scores,
		world:  NewWorld(),
		fx:     NewEffects(rng),
		speed:  config.NewSpeedManager(cfg),
	}
	s.highScore, s.loadErr = scores.LoadHighScore()
	s.reset()
	return s
}

// reset rebuilds run state for the current difficulty.
func (s *Session) reset() {
	s.world.Reset()
	s.fx.Reset()
	s.spawner = NewSpawner(s.rng, s.cfg, s.view)
	s.resolver = NewResolver(s.cfg.Physics, s.cfg.Player.AirJumps, s.view.GroundLevel())
	s.player = NewPlayer(s.cfg.Player, s.view.GroundLevel())
	s.death = DeathAnimation{Scale: 1}
	s.timer = NewTimer(seconds(s.cfg.Session.TimeLimitSeconds))
	s.score = NewScore(s.cfg.Movement, s.cfg.Session)
	s.worldSpeed = 0
	s.ticks = 0
	s.gameSpeed = s.speed.Speed(0)
	s.timeOfDay = 0
	s.paused = false
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// Start begins a fresh run at now.
func (s *Session) Start(now time.Time) {
	s.reset()
	s.timer.Start(now)
	s.state = StatePlaying
}

// Update advances the session by one tick. now is the wall-clock time of the
// tick; the timer is derived from it, never accumulated.
func (s *Session) Update(in core.InputFrame, now time.Time) Result {
	switch s.state {
	case StateMenu:
		dir := menuDirection(in)
		switch {
		case dir != 0:
			// A held direction cycles once, on the frame it goes down.
			if dir != s.menuDir {
				s.cycleDifficulty(dir)
			}
		case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
			s.Start(now)
		}
		s.menuDir = dir
		return Result{}

	case StateGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			s.Start(now)
		}
		return Result{}
	}

	if in.Has(core.ActionPause) {
		s.togglePause(now)
	}
	if s.paused {
		return Result{}
	}
	return s.tick(in, now)
}

func (s *Session) togglePause(now time.Time) {
	if s.paused {
		s.timer.Shift(now.Sub(s.pausedAt))
		s.paused = false
		return
	}
	s.paused = true
	s.pausedAt = now
	s.setRunning(false)
}

// tick is one playing frame: timer, player, world, effects, progression,
// spawner, collisions, score.
func (s *Session) tick(in core.InputFrame, now time.Time) Result {
	s.timer.Update(now)
	if s.timer.Expired() {
		s.end(EndTimeUp, now)
		return Result{RunEnded: true}
	}

	if s.death.Active {
		s.worldSpeed = 0
		if s.death.Advance(s.cfg.Session.DeathTicks) {
			s.end(EndDeath, now)
			return Result{RunEnded: true}
		}
	} else {
		s.stepPlayer(in)
	}

	s.world.Move(s.worldSpeed, s.gameSpeed, s.view.Width)
	s.fx.Tick()

	s.ticks++
	s.gameSpeed = s.speed.Speed(s.ticks)
	s.timeOfDay = s.speed.TimeOfDay(s.ticks)

	if s.worldSpeed < 0 {
		s.spawner.Tick(s.world)
	}

	if !s.death.Active {
		s.collide()
	}

	if !s.death.Active {
		s.score.Tick()
		s.setRunning(s.player.Grounded && s.worldSpeed != 0)
	}
	return Result{}
}

// stepPlayer applies input, picks the world speed and integrates physics.
func (s *Session) stepPlayer(in core.InputFrame) {
	airJumps := s.cfg.Player.AirJumps
	if in.Has(core.ActionJump) && s.player.Jump(s.cfg.Physics, airJumps) {
		s.audio.OnJump()
	}

	canLeft, canRight := LateralBlock(&s.player, s.world.Of(KindBlock))
	s.worldSpeed = 0
	step := s.cfg.World.MaxWorldSpeed

	if s.cfg.Movement == config.MovementAuto {
		if canRight {
			s.worldSpeed = -s.gameSpeed
			s.score.Advance(s.gameSpeed)
		}
	} else {
		switch {
		case in.Has(core.ActionRight) && canRight:
			s.worldSpeed = -step
			s.score.Advance(step)
		case in.Has(core.ActionLeft) && canLeft:
			s.worldSpeed = step
			s.score.Retreat(step)
		}
	}

	s.player.Integrate(s.cfg.Physics, airJumps, s.view.GroundLevel())
}

func (s *Session) collide() {
	c := s.resolver.Resolve(&s.player, s.world)

	for _, coin := range c.Coins {
		pts := s.score.AddCoin(coin.Multiplier)
		s.fx.CoinCollected(coin, pts)
		s.audio.OnCoinCollect(coin.Multiplier)
	}
	for _, w := range c.Watches {
		s.timer.AddBonus(seconds(s.cfg.Session.WatchBonusSeconds))
		s.fx.WatchCollected(w, s.cfg.Session.WatchBonusSeconds)
		s.audio.OnWatchCollect()
	}
	if c.Killed {
		s.kill(c.KilledBy)
	}
}

// kill starts the death animation once; repeated calls are ignored.
func (s *Session) kill(by Kind) {
	if !s.death.Start() {
		return
	}
	s.killedBy = by
	s.worldSpeed = 0
	s.setRunning(false)
	s.audio.OnDeath()
}

func (s *Session) setRunning(running bool) {
	prev := s.player.Running
	s.player.Animate(running)
	if prev != running {
		s.audio.OnRunStateChange(running)
	}
}

// end finishes the run and persists a beaten high score.
func (s *Session) end(reason EndReason, now time.Time) {
	s.setRunning(false)
	s.state = StateGameOver

	total := s.score.Total()
	sum := RunSummary{
		Score:      total,
		CoinScore:  s.score.Coin,
		Distance:   s.score.MaxDistance,
		Ticks:      s.ticks,
		Duration:   s.timer.Elapsed(now),
		Reason:     reason,
		Difficulty: s.cfg.Difficulty,
		Mode:       s.cfg.Movement,
		EndedAt:    now,
	}
	if reason == EndDeath {
		sum.KilledBy = s.killedBy
	}
	if total > s.highScore {
		s.highScore = total
		sum.NewHighScore = true
		sum.SaveErr = s.scores.SaveHighScore(total)
	}
	sum.HighScore = s.highScore
	s.last = sum
}

func menuDirection(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionLeft):
		return -1
	case in.Has(core.ActionRight):
		return 1
	}
	return 0
}

func (s *Session) cycleDifficulty(dir int) {
	var avail []config.DifficultyPreset
	cur := 0
	for _, p := range config.Presets {
		if _, ok := s.cfg.Tiers[p]; ok {
			if p == s.cfg.Difficulty {
				cur = len(avail)
			}
			avail = append(avail, p)
		}
	}
	if len(avail) == 0 {
		return
	}
	next := (cur + dir + len(avail)) % len(avail)
	config.ApplyRunnerPreset(&s.cfg, avail[next])
}

// State returns the session mode.
func (s *Session) State() State { return s.state }

// Paused reports whether play is paused.
func (s *Session) Paused() bool { return s.paused }

// Score returns the running total.
func (s *Session) Score() int { return s.score.Total() }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// LoadErr returns the error from loading the stored high score, if any.
func (s *Session) LoadErr() error { return s.loadErr }

// LastRun returns the summary of the most recent finished run.
func (s *Session) LastRun() RunSummary { return s.last }

// Difficulty returns the selected difficulty.
func (s *Session) Difficulty() config.DifficultyPreset { return s.cfg.Difficulty }

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	State      State
	Paused     bool
	View       core.Viewport
	Mode       config.MovementMode
	Difficulty config.DifficultyPreset
	Tier       config.Tier
	Player     Player
	Death      DeathAnimation
	Entities   [numKinds][]Entity
	Popups     []Popup
	Particles  []Particle
	Score      int
	CoinScore  int
	HighScore  int
	Remaining  time.Duration
	TimeOfDay  float64
	GameSpeed  float64
	LastRun    RunSummary
}

// Of returns the snapshot's entities of kind k.
func (snap *Snapshot) Of(k Kind) []Entity {
	return snap.Entities[k]
}

// Phase returns the player's state machine phase.
func (snap *Snapshot) Phase() PlayerPhase {
	return snap.Player.Phase(snap.Death)
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Paused:     s.paused,
		View:       s.view,
		Mode:       s.cfg.Movement,
		Difficulty: s.cfg.Difficulty,
		Tier:       s.cfg.ActiveTier(),
		Player:     s.player,
		Death:      s.death,
		Entities:   s.world.Snapshot(),
		Popups:     append([]Popup(nil), s.fx.Popups()...),
		Particles:  append([]Particle(nil), s.fx.Particles()...),
		Score:      s.score.Total(),
		CoinScore:  s.score.Coin,
		HighScore:  s.highScore,
		Remaining:  s.timer.Remaining(),
		TimeOfDay:  s.timeOfDay,
		GameSpeed:  s.gameSpeed,
		LastRun:    s.last,
	}
}
