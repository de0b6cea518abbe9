package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Collision tolerances, in world units.
const (
	platformLandBand = 10 // below the platform's top face
	rampTouchBand    = 10
	rampSnap         = 5
	rampLaunchZone   = 5 // distance from the far edge that triggers a launch
	blockLandBand    = 20
	blockRestBand    = 5
	blockInset       = 5
	blockApproach    = 15
	blockPushDownVel = 2
)

// resolutionOrder is the fixed order of the collision pass.
var resolutionOrder = [...]Kind{
	KindObstacle, KindBlock, KindCoin, KindWatch, KindPlatform,
	KindHole, KindRamp, KindBird, KindSnail,
}

// Contacts is what one collision pass produced.
type Contacts struct {
	Killed   bool
	KilledBy Kind
	Coins    []Entity
	Watches  []Entity
}

func (c *Contacts) kill(k Kind) {
	if c.Killed {
		return
	}
	c.Killed = true
	c.KilledBy = k
}

// Resolver runs the per-tick collision pass.
type Resolver struct {
	physics     config.RunnerPhysics
	airJumps    int
	groundLevel float64
}

// NewResolver creates a resolver for the given physics and ground level.
func NewResolver(ph config.RunnerPhysics, airJumps int, groundLevel float64) Resolver {
	return Resolver{physics: ph, airJumps: airJumps, groundLevel: groundLevel}
}

// Resolve tests the player against every collidable entity in resolution
// order, routing each kind by its capabilities. Landings mutate the player,
// collected coins and watches are removed from the world and reported. Later
// categories may override grounding set by earlier ones.
func (r Resolver) Resolve(p *Player, w *World) Contacts {
	var c Contacts
	for _, k := range resolutionOrder {
		if !k.Has(Collidable) {
			continue
		}
		// Landings earlier in the pass move the player.
		hitbox := p.Inset(r.physics.CollisionMargin)
		switch {
		case k.Has(Collectible):
			c.collect(k, w.removeWhere(k, func(e Entity) bool {
				return hitbox.Intersects(e.Box)
			}))
		case k.Has(Lethal):
			for _, e := range w.Of(k) {
				if r.hits(p, hitbox, e) {
					c.kill(k)
				}
			}
		case k.Has(Landable):
			for _, e := range w.Of(k) {
				r.land(p, e)
			}
		}
	}
	return c
}

func (c *Contacts) collect(k Kind, got []Entity) {
	if k == KindWatch {
		c.Watches = append(c.Watches, got...)
		return
	}
	c.Coins = append(c.Coins, got...)
}

// hits reports whether a lethal entity touches the player. Pits test the
// feet against the ground instead of the shrunk hitbox.
func (r Resolver) hits(p *Player, hitbox core.Box, e Entity) bool {
	if e.Kind.Has(Pit) {
		return p.OverlapsX(e.Box) && p.Feet() >= r.groundLevel
	}
	return hitbox.Intersects(e.Box)
}

// land applies the surface rules of a landable entity.
func (r Resolver) land(p *Player, e Entity) {
	switch e.Kind {
	case KindPlatform:
		if landsOnPlatform(p, e) {
			p.Land(e.Y-p.H, r.airJumps)
		}
	case KindRamp:
		if touchesRamp(p, e) {
			r.ramp(p, e)
		}
	case KindBlock:
		r.block(p, e)
	}
}

func landsOnPlatform(p *Player, pl Entity) bool {
	return p.OverlapsX(pl.Box) &&
		p.Feet() >= pl.Y &&
		p.Feet() <= pl.Bottom()+platformLandBand &&
		p.VelocityY >= 0
}

func touchesRamp(p *Player, rp Entity) bool {
	return p.OverlapsX(rp.Box) &&
		p.Feet() >= rp.Y &&
		p.Feet() <= rp.Bottom()+rampTouchBand
}

// RampSurface returns the ramp's surface y under horizontal position x and
// the clamped distance along the ramp.
func RampSurface(rp Entity, x float64) (y, along float64) {
	along = math.Max(0, math.Min(rp.W, x-rp.X))
	return rp.Bottom() - along*rp.Slope, along
}

func (r Resolver) ramp(p *Player, rp Entity) {
	surface, along := RampSurface(rp, p.CenterX())
	if p.Feet() < surface-rampSnap {
		return
	}
	p.Land(surface-p.H, r.airJumps)
	if along >= rp.W-rampLaunchZone {
		p.VelocityY = r.physics.RampLaunch
		p.Grounded = false
	}
}

// block resolves one block: landing on top, resting on top, or being pushed
// out of it toward the nearer face.
func (r Resolver) block(p *Player, b Entity) {
	if !p.OverlapsX(b.Box) {
		return
	}
	top, bottom := b.Y, b.Bottom()

	fromAbove := p.VelocityY >= 0 && p.Y < top
	inLandBand := p.Feet() >= top && p.Feet() <= top+blockLandBand
	if fromAbove && inLandBand {
		p.Land(top-p.H, r.airJumps)
		return
	}

	if p.Grounded && math.Abs(p.Feet()-top) <= blockRestBand {
		p.Y = top - p.H
		p.VelocityY = 0
		p.Grounded = true
		return
	}

	if p.Feet() > top+blockInset && p.Y < bottom-blockInset {
		if p.Feet()-top < bottom-p.Y {
			p.Y = top - p.H
			p.VelocityY = 0
			p.Grounded = true
		} else {
			p.Y = math.Min(bottom, r.groundLevel-p.H)
			p.VelocityY = blockPushDownVel
		}
	}
}

// LateralBlock reports which horizontal directions are free. It is evaluated
// before the world scrolls: a block face within the approach band stops
// movement toward it for this tick.
func LateralBlock(p *Player, blocks []Entity) (canLeft, canRight bool) {
	canLeft, canRight = true, true
	for _, b := range blocks {
		vertical := p.Feet() > b.Y+blockInset && p.Y < b.Bottom()-blockInset
		if !vertical {
			continue
		}
		if p.Right() >= b.X-blockApproach && p.Right() <= b.X+blockInset {
			canRight = false
		}
		if p.X <= b.Right()+blockApproach && p.X >= b.Right()-blockInset {
			canLeft = false
		}
	}
	return canLeft, canRight
}
