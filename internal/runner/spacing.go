package runner

import "math"

// Safety distances used by the spawn predicates, in world units.
const (
	obstacleHoleGap     = 200
	obstacleBlockGap    = 150
	holeObstacleGap     = 200
	holeEscapeRange     = 150
	coinHazardGap       = 80
	rampObstacleGap     = 200
	rampHoleGap         = 180
	rampPlatformGap     = 150
	rampStrategicRange  = 600
	blockObstacleGap    = 150
	blockHoleGap        = 200
	platformDensityCap  = 2
	platformDensityZone = 300
)

// lookAhead is the set of not-yet-visible entities the predicates consult.
type lookAhead struct {
	anchor    float64 // spawn x, the right edge of the display
	obstacles []Entity
	holes     []Entity
	platforms []Entity
	blocks    []Entity
}

func newLookAhead(w *World, displayWidth, window float64) lookAhead {
	return lookAhead{
		anchor:    displayWidth,
		obstacles: w.Upcoming(KindObstacle, displayWidth, window),
		holes:     w.Upcoming(KindHole, displayWidth, window),
		platforms: w.Upcoming(KindPlatform, displayWidth, window),
		blocks:    w.Upcoming(KindBlock, displayWidth, window),
	}
}

// within reports whether any entity lies closer than dist to anchor.
func within(es []Entity, anchor, dist float64) bool {
	for _, e := range es {
		if math.Abs(e.X-anchor) < dist {
			return true
		}
	}
	return false
}

// aheadBetween reports whether any entity lies strictly between lo and hi
// units ahead of anchor.
func aheadBetween(es []Entity, anchor, lo, hi float64) bool {
	for _, e := range es {
		d := e.X - anchor
		if d > lo && d < hi {
			return true
		}
	}
	return false
}

func (la lookAhead) canSpawnObstacle() bool {
	return !within(la.holes, la.anchor, obstacleHoleGap) &&
		!within(la.blocks, la.anchor, obstacleBlockGap)
}

// canSpawnHole also requires an escape route: a live platform, upcoming or
// already on screen, spanning part of [anchor-150, anchor+150].
func (la lookAhead) canSpawnHole(platforms []Entity) bool {
	if within(la.obstacles, la.anchor, holeObstacleGap) {
		return false
	}
	return hasEscapeRoute(platforms, la.anchor)
}

func hasEscapeRoute(platforms []Entity, x float64) bool {
	for _, p := range platforms {
		if p.SpanIntersects(x-holeEscapeRange, x+holeEscapeRange) {
			return true
		}
	}
	return false
}

func (la lookAhead) canSpawnCoin() bool {
	return !within(la.obstacles, la.anchor, coinHazardGap) &&
		!within(la.holes, la.anchor, coinHazardGap)
}

func (la lookAhead) canSpawnRamp() bool {
	if within(la.obstacles, la.anchor, rampObstacleGap) ||
		within(la.holes, la.anchor, rampHoleGap) ||
		within(la.platforms, la.anchor, rampPlatformGap) {
		return false
	}
	// Prefer ramps that lead into a hazard; otherwise only on a clear stretch.
	if aheadBetween(la.obstacles, la.anchor, rampObstacleGap, rampStrategicRange) ||
		aheadBetween(la.holes, la.anchor, rampHoleGap, rampStrategicRange) {
		return true
	}
	return len(la.obstacles) == 0 && len(la.holes) == 0
}

func (la lookAhead) canSpawnBlock() bool {
	return !within(la.obstacles, la.anchor, blockObstacleGap) &&
		!within(la.holes, la.anchor, blockHoleGap)
}

func (la lookAhead) canSpawnPlatform() bool {
	near := 0
	for _, p := range la.platforms {
		if p.X < la.anchor+platformDensityZone {
			near++
		}
	}
	return near < platformDensityCap
}

// coinTable is the cumulative multiplier distribution.
var coinTable = []struct {
	upTo       float64
	multiplier int
}{
	{0.40, 1},
	{0.65, 2},
	{0.80, 3},
	{0.90, 4},
	{0.97, 5},
}

// penaltyMultiplier is drawn for the remaining 3%.
const penaltyMultiplier = -1

// coinMultiplier maps a uniform draw in [0, 1) to a coin multiplier.
func coinMultiplier(r float64) int {
	for _, row := range coinTable {
		if r < row.upTo {
			return row.multiplier
		}
	}
	return penaltyMultiplier
}
