package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Spawn geometry, in world units.
const (
	hurdleBaseHeight   = 70
	hurdleMinHeight    = 50
	hurdleJitter       = 8
	hurdleBaseWidth    = 50
	hurdleWidthRange   = 10
	coinSize           = 40
	coinMinLift        = 90
	coinLiftRange      = 120
	platformHeight     = 15
	platformMinLift    = 120
	platformLiftRange  = 80
	platformBaseWidth  = 80
	platformWidthRange = 60
	helperLiftRange    = 40
	helperBaseWidth    = 100
	helperWidthRange   = 40
	helperAfterHurdle  = 150
	helperBeforeHole   = -100
	holeBaseWidth      = 60
	holeWidthRange     = 40
	birdW, birdH       = 40, 30
	birdLead           = 50
	birdMinY           = 100
	birdCeiling        = 150
	snailW, snailH     = 35, 25
	snailLead          = 30
	watchSize          = 35
	watchLead          = 30
	watchMinY          = 150
	watchCeiling       = 200
)

type size struct{ w, h float64 }

var (
	rampSizes  = []size{{80, 35}, {120, 50}, {160, 70}, {200, 90}}
	blockSizes = []size{{60, 60}, {80, 80}, {100, 60}, {60, 100}}
)

// Spawner places new entities at the right edge of the display.
// Each kind has its own tick counter that only advances on forward ticks.
type Spawner struct {
	rng    core.RNG
	tier   config.Tier
	spawn  config.RunnerSpawn
	view   core.Viewport
	window float64
	timers [numKinds]int
}

// NewSpawner creates a spawner for the given tier and viewport.
func NewSpawner(rng core.RNG, cfg config.RunnerConfig, view core.Viewport) *Spawner {
	return &Spawner{
		rng:    rng,
		tier:   cfg.ActiveTier(),
		spawn:  cfg.Spawn,
		view:   view,
		window: cfg.World.LookAhead,
	}
}

// Reset zeroes every counter.
func (s *Spawner) Reset() {
	s.timers = [numKinds]int{}
}

// Timer returns the ticks since the last spawn of kind k.
func (s *Spawner) Timer(k Kind) int {
	return s.timers[k]
}

// Tick advances the counters and attempts each kind in the fixed order
// obstacle, hole, platform, coin, ramp, block, bird, snail, watch.
// Predicates see entities spawned earlier in the same pass.
func (s *Spawner) Tick(w *World) {
	for k := range s.timers {
		s.timers[k]++
	}
	edge := s.view.Width

	if s.timers[KindObstacle] > s.tier.ObstacleSpacing {
		la := newLookAhead(w, edge, s.window)
		if la.canSpawnObstacle() && core.Chance(s.rng, s.tier.ObstacleChance) {
			w.Add(s.hurdle())
			s.timers[KindObstacle] = 0
			if core.Chance(s.rng, s.spawn.HelperChance) {
				w.Add(s.helperPlatform(helperAfterHurdle))
			}
		}
	}

	if s.timers[KindHole] > s.tier.HoleSpacing {
		la := newLookAhead(w, edge, s.window)
		if la.canSpawnHole(w.Of(KindPlatform)) && core.Chance(s.rng, s.tier.HoleChance) {
			w.Add(s.hole())
			s.timers[KindHole] = 0
			w.Add(s.helperPlatform(helperBeforeHole))
		}
	}

	if s.timers[KindPlatform] > s.spawn.PlatformSpacing {
		la := newLookAhead(w, edge, s.window)
		if la.canSpawnPlatform() && core.Chance(s.rng, s.tier.PlatformChance) {
			w.Add(s.platform())
			s.timers[KindPlatform] = 0
		}
	}

	if s.timers[KindCoin] > s.tier.CoinSpacing {
		la := newLookAhead(w, edge, s.window)
		if la.canSpawnCoin() && core.Chance(s.rng, s.tier.CoinChance) {
			w.Add(s.coin())
			s.timers[KindCoin] = 0
		}
	}

	if s.timers[KindRamp] > s.spawn.RampSpacing {
		la := newLookAhead(w, edge, s.window)
		if la.canSpawnRamp() && core.Chance(s.rng, s.tier.RampChance) {
			w.Add(s.ramp())
			s.timers[KindRamp] = 0
		}
	}

	if s.timers[KindBlock] > s.spawn.BlockSpacing && core.Chance(s.rng, s.spawn.BlockChance) {
		la := newLookAhead(w, edge, s.window)
		if la.canSpawnBlock() {
			w.Add(s.block())
			s.timers[KindBlock] = 0
		}
	}

	if s.timers[KindBird] > s.spawn.BirdSpacing && core.Chance(s.rng, s.tier.BirdChance) {
		if e, ok := s.bird(); ok {
			w.Add(e)
			s.timers[KindBird] = 0
		}
	}

	if s.timers[KindSnail] > s.spawn.SnailSpacing && core.Chance(s.rng, s.tier.SnailChance) {
		w.Add(s.snail())
		s.timers[KindSnail] = 0
	}

	if s.timers[KindWatch] > s.spawn.WatchSpacing && core.Chance(s.rng, s.tier.WatchChance) {
		if e, ok := s.watch(); ok {
			w.Add(e)
			s.timers[KindWatch] = 0
		}
	}
}

func (s *Spawner) groundLevel() float64 {
	return s.view.GroundLevel()
}

func (s *Spawner) hurdle() Entity {
	h := math.Max(hurdleMinHeight, hurdleBaseHeight+core.Uniform(s.rng, -hurdleJitter, hurdleJitter))
	w := hurdleBaseWidth + s.rng.Float64()*hurdleWidthRange
	return Entity{
		Kind: KindObstacle,
		Box:  core.NewBox(s.view.Width, s.groundLevel()-h, w, h),
	}
}

func (s *Spawner) hole() Entity {
	w := holeBaseWidth + s.rng.Float64()*holeWidthRange
	return Entity{
		Kind: KindHole,
		Box:  core.NewBox(s.view.Width, s.groundLevel(), w, s.view.GroundHeight),
	}
}

func (s *Spawner) platform() Entity {
	y := s.groundLevel() - platformMinLift - s.rng.Float64()*platformLiftRange
	w := platformBaseWidth + s.rng.Float64()*platformWidthRange
	return Entity{
		Kind: KindPlatform,
		Box:  core.NewBox(s.view.Width, y, w, platformHeight),
	}
}

// helperPlatform is a wider, lower platform placed relative to the spawn edge.
func (s *Spawner) helperPlatform(offset float64) Entity {
	y := s.groundLevel() - platformMinLift - s.rng.Float64()*helperLiftRange
	w := helperBaseWidth + s.rng.Float64()*helperWidthRange
	return Entity{
		Kind: KindPlatform,
		Box:  core.NewBox(s.view.Width+offset, y, w, platformHeight),
	}
}

func (s *Spawner) coin() Entity {
	mult := coinMultiplier(s.rng.Float64())
	y := s.groundLevel() - coinMinLift - s.rng.Float64()*coinLiftRange
	return Entity{
		Kind:       KindCoin,
		Box:        core.NewBox(s.view.Width, y, coinSize, coinSize),
		Multiplier: mult,
	}
}

func (s *Spawner) ramp() Entity {
	sz := rampSizes[s.rng.Intn(len(rampSizes))]
	return Entity{
		Kind:  KindRamp,
		Box:   core.NewBox(s.view.Width, s.groundLevel()-sz.h, sz.w, sz.h),
		Slope: sz.h / sz.w,
	}
}

func (s *Spawner) block() Entity {
	sz := blockSizes[s.rng.Intn(len(blockSizes))]
	return Entity{
		Kind: KindBlock,
		Box:  core.NewBox(s.view.Width, s.groundLevel()-sz.h, sz.w, sz.h),
	}
}

// bird is withheld when the display is too short for its altitude band.
func (s *Spawner) bird() (Entity, bool) {
	hi := s.groundLevel() - birdCeiling
	if hi < birdMinY {
		return Entity{}, false
	}
	y := core.Uniform(s.rng, birdMinY, hi)
	return Entity{
		Kind: KindBird,
		Box:  core.NewBox(s.view.Width+birdLead, y, birdW, birdH),
	}, true
}

func (s *Spawner) snail() Entity {
	return Entity{
		Kind: KindSnail,
		Box:  core.NewBox(s.view.Width+snailLead, s.groundLevel()-snailH, snailW, snailH),
	}
}

// watch is withheld when the display is too short for its altitude band.
func (s *Spawner) watch() (Entity, bool) {
	hi := s.groundLevel() - watchCeiling
	if hi < watchMinY {
		return Entity{}, false
	}
	y := core.Uniform(s.rng, watchMinY, hi)
	return Entity{
		Kind: KindWatch,
		Box:  core.NewBox(s.view.Width+watchLead, y, watchSize, watchSize),
	}, true
}
