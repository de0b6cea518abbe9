package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func testResolver() Resolver {
	_, cfg := testPlayer()
	return NewResolver(cfg.Physics, cfg.Player.AirJumps, testGround)
}

func TestRampSurface(t *testing.T) {
	rp := Entity{Kind: KindRamp, Box: core.NewBox(300, testGround-50, 120, 50), Slope: 50.0 / 120.0}

	y, along := RampSurface(rp, rp.X+60)
	expected := rp.Y + 50 - 60*(50.0/120.0)
	if math.Abs(y-expected) > 1e-9 {
		t.Errorf("RampSurface() y = %v, expected %v", y, expected)
	}
	if along != 60 {
		t.Errorf("RampSurface() along = %v, expected 60", along)
	}

	// Positions outside the ramp clamp to its ends
	if y, _ := RampSurface(rp, rp.X-30); y != rp.Bottom() {
		t.Errorf("RampSurface() before the ramp = %v, expected %v", y, rp.Bottom())
	}
	if y, along := RampSurface(rp, rp.Right()+30); math.Abs(y-rp.Y) > 1e-9 || along != rp.W {
		t.Errorf("RampSurface() past the ramp = (%v, %v), expected (%v, %v)", y, along, rp.Y, rp.W)
	}
}

func TestResolveRampSnap(t *testing.T) {
	r := testResolver()
	p, _ := testPlayer()
	w := NewWorld()

	// Player center (160) sits 60 units along the ramp
	rp := Entity{Kind: KindRamp, Box: core.NewBox(100, testGround-50, 120, 50), Slope: 50.0 / 120.0}
	w.Add(rp)
	surface, _ := RampSurface(rp, p.CenterX())
	p.Y = surface + 2 - p.H
	p.Grounded = false
	p.AirJumpsLeft = 0

	r.Resolve(&p, w)

	if math.Abs(p.Feet()-surface) > 1e-9 {
		t.Errorf("Feet() = %v, expected snap to %v", p.Feet(), surface)
	}
	if !p.Grounded || p.VelocityY != 0 {
		t.Errorf("after snap: Grounded = %v, VelocityY = %v", p.Grounded, p.VelocityY)
	}
	if p.AirJumpsLeft != 1 {
		t.Errorf("AirJumpsLeft = %d after ramp landing, expected 1", p.AirJumpsLeft)
	}
}

func TestResolveRampLaunch(t *testing.T) {
	r := testResolver()
	p, cfg := testPlayer()
	w := NewWorld()

	// Far edge right under the player's center
	rp := Entity{Kind: KindRamp, Box: core.NewBox(p.CenterX()-120, testGround-50, 120, 50), Slope: 50.0 / 120.0}
	w.Add(rp)
	p.Y = rp.Y - p.H

	r.Resolve(&p, w)

	if p.VelocityY != cfg.Physics.RampLaunch {
		t.Errorf("VelocityY = %v, expected launch %v", p.VelocityY, cfg.Physics.RampLaunch)
	}
	if p.Grounded {
		t.Error("launched player should be airborne")
	}
}

func TestResolvePlatformLanding(t *testing.T) {
	tests := []struct {
		name     string
		feet     float64
		velocity float64
		expected bool
	}{
		{"falling onto top face", 403, 5, true},
		{"inside the landing band", 420, 5, true},
		{"rising through", 405, -5, false},
		{"above the platform", 395, 5, false},
		{"below the band", 430, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testResolver()
			p, _ := testPlayer()
			w := NewWorld()
			pl := Entity{Kind: KindPlatform, Box: core.NewBox(100, 400, 120, platformHeight)}
			w.Add(pl)

			p.Y = tc.feet - p.H
			p.VelocityY = tc.velocity
			p.Grounded = false
			p.AirJumpsLeft = 0

			r.Resolve(&p, w)

			landed := p.Grounded && p.Feet() == pl.Y
			if landed != tc.expected {
				t.Errorf("landed = %v (feet %v), expected %v", landed, p.Feet(), tc.expected)
			}
			if landed && p.AirJumpsLeft != 1 {
				t.Errorf("AirJumpsLeft = %d after landing, expected 1", p.AirJumpsLeft)
			}
		})
	}
}

func TestResolveBlockLanding(t *testing.T) {
	r := testResolver()
	p, _ := testPlayer()
	w := NewWorld()
	b := Entity{Kind: KindBlock, Box: core.NewBox(100, testGround-60, 60, 60)}
	w.Add(b)

	p.Y = b.Y + 10 - p.H
	p.VelocityY = 4
	p.Grounded = false

	r.Resolve(&p, w)

	if p.Feet() != b.Y || !p.Grounded {
		t.Errorf("Feet() = %v, Grounded = %v, expected to stand on %v", p.Feet(), p.Grounded, b.Y)
	}
}

func TestResolveBlockPushDownStaysAboveGround(t *testing.T) {
	r := testResolver()
	p, _ := testPlayer()
	w := NewWorld()
	b := Entity{Kind: KindBlock, Box: core.NewBox(100, testGround-60, 60, 60)}
	w.Add(b)

	// Deep overlap, nearer the bottom face
	p.Y = b.Y + 10
	p.VelocityY = -3
	p.Grounded = false

	r.Resolve(&p, w)

	if p.Feet() > testGround {
		t.Errorf("Feet() = %v, pushed below ground %v", p.Feet(), testGround)
	}
	if p.VelocityY != blockPushDownVel {
		t.Errorf("VelocityY = %v, expected %v", p.VelocityY, blockPushDownVel)
	}
}

func TestLateralBlock(t *testing.T) {
	p, _ := testPlayer()

	tests := []struct {
		name              string
		block             core.Box
		canLeft, canRight bool
	}{
		{"block just ahead", core.NewBox(p.Right()+10, testGround-60, 60, 60), true, false},
		{"block just behind", core.NewBox(p.X-70, testGround-60, 60, 60), false, true},
		{"block far ahead", core.NewBox(p.Right()+100, testGround-60, 60, 60), true, true},
		{"block above head", core.NewBox(p.Right()+5, p.Y-200, 60, 60), true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, right := LateralBlock(&p, []Entity{{Kind: KindBlock, Box: tc.block}})
			if left != tc.canLeft || right != tc.canRight {
				t.Errorf("LateralBlock() = (%v, %v), expected (%v, %v)", left, right, tc.canLeft, tc.canRight)
			}
		})
	}
}

func TestResolveHazards(t *testing.T) {
	tests := []struct {
		name     string
		entity   Entity
		killed   bool
		killedBy Kind
	}{
		{"hurdle overlap", Entity{Kind: KindObstacle, Box: core.NewBox(150, testGround-60, 50, 60)}, true, KindObstacle},
		{"hurdle grazing the margin", Entity{Kind: KindObstacle, Box: core.NewBox(195, testGround-60, 50, 60)}, false, 0},
		{"hole under feet", Entity{Kind: KindHole, Box: core.NewBox(140, testGround, 60, 80)}, true, KindHole},
		{"hole ahead", Entity{Kind: KindHole, Box: core.NewBox(260, testGround, 60, 80)}, false, 0},
		{"bird at head height", Entity{Kind: KindBird, Box: core.NewBox(130, testGround-70, birdW, birdH)}, true, KindBird},
		{"snail underfoot", Entity{Kind: KindSnail, Box: core.NewBox(140, testGround-snailH, snailW, snailH)}, true, KindSnail},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testResolver()
			p, _ := testPlayer()
			w := NewWorld()
			w.Add(tc.entity)

			c := r.Resolve(&p, w)
			if c.Killed != tc.killed {
				t.Fatalf("Killed = %v, expected %v", c.Killed, tc.killed)
			}
			if c.Killed && c.KilledBy != tc.killedBy {
				t.Errorf("KilledBy = %v, expected %v", c.KilledBy, tc.killedBy)
			}
		})
	}
}

func TestResolveFirstKillWins(t *testing.T) {
	r := testResolver()
	p, _ := testPlayer()
	w := NewWorld()
	w.Add(Entity{Kind: KindSnail, Box: core.NewBox(140, testGround-snailH, snailW, snailH)})
	w.Add(Entity{Kind: KindObstacle, Box: core.NewBox(150, testGround-60, 50, 60)})
	w.Add(Entity{Kind: KindHole, Box: core.NewBox(140, testGround, 60, 80)})

	c := r.Resolve(&p, w)
	if !c.Killed || c.KilledBy != KindObstacle {
		t.Errorf("Resolve() = killed %v by %v, expected obstacle", c.Killed, c.KilledBy)
	}
}

func TestResolveCollectsPickups(t *testing.T) {
	r := testResolver()
	p, _ := testPlayer()
	w := NewWorld()
	w.Add(Entity{Kind: KindCoin, Box: core.NewBox(150, p.Y+10, coinSize, coinSize), Multiplier: 3})
	w.Add(Entity{Kind: KindCoin, Box: core.NewBox(600, p.Y+10, coinSize, coinSize), Multiplier: 1})
	w.Add(Entity{Kind: KindWatch, Box: core.NewBox(140, p.Y+20, watchSize, watchSize)})

	c := r.Resolve(&p, w)

	if len(c.Coins) != 1 || c.Coins[0].Multiplier != 3 {
		t.Errorf("Coins = %+v, expected the x3 coin", c.Coins)
	}
	if len(c.Watches) != 1 {
		t.Errorf("Watches = %d, expected 1", len(c.Watches))
	}
	if w.Len(KindCoin) != 1 || w.Len(KindWatch) != 0 {
		t.Errorf("after collection: %d coins, %d watches left, expected 1 and 0", w.Len(KindCoin), w.Len(KindWatch))
	}
	if c.Killed {
		t.Error("pickups should not kill")
	}
}

func TestResolveRoutesByCapability(t *testing.T) {
	saved := kindTraits[KindSnail]
	t.Cleanup(func() { kindTraits[KindSnail] = saved })

	snail := Entity{Kind: KindSnail, Box: core.NewBox(140, testGround-snailH, snailW, snailH)}
	tests := []struct {
		name      string
		caps      Capability
		killed    bool
		collected bool
	}{
		{"lethal", Collidable | Lethal, true, false},
		{"collectible", Collidable | Collectible, false, true},
		{"not collidable", Lethal, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kindTraits[KindSnail].caps = tc.caps
			r := testResolver()
			p, _ := testPlayer()
			w := NewWorld()
			w.Add(snail)

			c := r.Resolve(&p, w)
			if c.Killed != tc.killed {
				t.Errorf("Killed = %v, expected %v", c.Killed, tc.killed)
			}
			if got := len(c.Coins) == 1; got != tc.collected {
				t.Errorf("collected = %v, expected %v", got, tc.collected)
			}
		})
	}
}
