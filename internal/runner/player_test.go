package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const testGround = 520

func testPlayer() (Player, config.RunnerConfig) {
	cfg := config.DefaultRunnerConfig()
	return NewPlayer(cfg.Player, testGround), cfg
}

func TestNewPlayer(t *testing.T) {
	p, cfg := testPlayer()

	if p.Feet() != testGround {
		t.Errorf("Feet() = %v, expected %v", p.Feet(), testGround)
	}
	if !p.Grounded {
		t.Error("new player should be grounded")
	}
	if p.AirJumpsLeft != cfg.Player.AirJumps {
		t.Errorf("AirJumpsLeft = %d, expected %d", p.AirJumpsLeft, cfg.Player.AirJumps)
	}
	if p.Phase(DeathAnimation{}) != PhaseGrounded {
		t.Errorf("Phase() = %v, expected grounded", p.Phase(DeathAnimation{}))
	}
}

func TestPlayerJump(t *testing.T) {
	p, cfg := testPlayer()

	if !p.Jump(cfg.Physics, cfg.Player.AirJumps) {
		t.Fatal("grounded jump should be accepted")
	}
	if p.VelocityY != cfg.Physics.JumpImpulse {
		t.Errorf("VelocityY = %v, expected %v", p.VelocityY, cfg.Physics.JumpImpulse)
	}
	if p.JumpCooldown != cfg.Physics.JumpCooldown {
		t.Errorf("JumpCooldown = %d, expected %d", p.JumpCooldown, cfg.Physics.JumpCooldown)
	}
	if p.Grounded {
		t.Error("player should leave the ground")
	}
	if p.AirJumpsLeft != 1 {
		t.Errorf("ground jump should keep the air jump, got %d", p.AirJumpsLeft)
	}
}

func TestPlayerJumpWithinCooldownIgnored(t *testing.T) {
	p, cfg := testPlayer()

	p.Jump(cfg.Physics, cfg.Player.AirJumps)
	p.Integrate(cfg.Physics, cfg.Player.AirJumps, testGround)
	v := p.VelocityY

	if p.Jump(cfg.Physics, cfg.Player.AirJumps) {
		t.Error("second jump within the cooldown should be rejected")
	}
	if p.VelocityY != v {
		t.Errorf("VelocityY = %v after rejected jump, expected %v", p.VelocityY, v)
	}
	if p.AirJumpsLeft != 1 {
		t.Errorf("rejected jump consumed the air jump: AirJumpsLeft = %d", p.AirJumpsLeft)
	}
}

func TestPlayerAirJump(t *testing.T) {
	p, cfg := testPlayer()

	p.Jump(cfg.Physics, cfg.Player.AirJumps)
	for i := 0; i < cfg.Physics.JumpCooldown; i++ {
		p.Integrate(cfg.Physics, cfg.Player.AirJumps, testGround)
	}
	if p.Grounded {
		t.Fatal("player should still be airborne after the cooldown")
	}

	if !p.Jump(cfg.Physics, cfg.Player.AirJumps) {
		t.Fatal("air jump should be accepted after the cooldown")
	}
	if p.AirJumpsLeft != 0 {
		t.Errorf("AirJumpsLeft = %d after air jump, expected 0", p.AirJumpsLeft)
	}

	for i := 0; i < cfg.Physics.JumpCooldown; i++ {
		p.Integrate(cfg.Physics, cfg.Player.AirJumps, testGround)
	}
	if p.Jump(cfg.Physics, cfg.Player.AirJumps) {
		t.Error("third jump without landing should be rejected")
	}
	if p.AirJumpsLeft != 0 {
		t.Errorf("AirJumpsLeft = %d, expected 0", p.AirJumpsLeft)
	}
}

func TestPlayerLandingRefillsAirJump(t *testing.T) {
	p, cfg := testPlayer()
	p.Jump(cfg.Physics, cfg.Player.AirJumps)
	p.AirJumpsLeft = 0

	for i := 0; i < 200 && !p.Grounded; i++ {
		p.Integrate(cfg.Physics, cfg.Player.AirJumps, testGround)
	}
	if !p.Grounded {
		t.Fatal("player never landed")
	}
	if p.Feet() != testGround {
		t.Errorf("Feet() = %v after landing, expected %v", p.Feet(), testGround)
	}
	if p.VelocityY != 0 {
		t.Errorf("VelocityY = %v after landing, expected 0", p.VelocityY)
	}
	if p.AirJumpsLeft != 1 {
		t.Errorf("AirJumpsLeft = %d after landing, expected 1", p.AirJumpsLeft)
	}
}

func TestPlayerAirJumpsBounded(t *testing.T) {
	p, cfg := testPlayer()

	// Mash jump every tick for a while
	for i := 0; i < 500; i++ {
		p.Jump(cfg.Physics, cfg.Player.AirJumps)
		p.Integrate(cfg.Physics, cfg.Player.AirJumps, testGround)
		if p.AirJumpsLeft < 0 || p.AirJumpsLeft > 1 {
			t.Fatalf("tick %d: AirJumpsLeft = %d, expected 0 or 1", i, p.AirJumpsLeft)
		}
		if p.Feet() > testGround {
			t.Fatalf("tick %d: Feet() = %v below ground %v", i, p.Feet(), testGround)
		}
	}
}

func TestPlayerRunCycle(t *testing.T) {
	p, _ := testPlayer()

	p.Animate(false)
	if p.RunCycle != 0 || p.Bounce() != 0 {
		t.Error("idle player should not advance the run cycle")
	}
	p.Animate(true)
	p.Animate(true)
	if p.RunCycle != 2*runCycleRate {
		t.Errorf("RunCycle = %v, expected %v", p.RunCycle, 2*runCycleRate)
	}
}

func TestDeathAnimation(t *testing.T) {
	var d DeathAnimation

	if !d.Start() {
		t.Fatal("first Start should begin the animation")
	}
	if d.Start() {
		t.Error("second Start should be ignored")
	}

	for i := 1; i < 60; i++ {
		if d.Advance(60) {
			t.Fatalf("animation finished early at tick %d", i)
		}
	}
	if d.Scale < deathMinScale {
		t.Errorf("Scale = %v, expected at least %v", d.Scale, deathMinScale)
	}
	if !d.Advance(60) {
		t.Fatal("animation should finish on tick 60")
	}
	if !d.Done || d.Active {
		t.Errorf("after finishing: Active = %v, Done = %v", d.Active, d.Done)
	}
	if d.Start() {
		t.Error("Start after the animation finished should be ignored")
	}
	if d.Advance(60) {
		t.Error("Advance after finishing should report false")
	}
}

func TestDeathAnimationScale(t *testing.T) {
	d := DeathAnimation{}
	d.Start()

	for i := 0; i < 30; i++ {
		d.Advance(60)
	}
	if d.Scale != 0.5 {
		t.Errorf("Scale = %v at the halfway point, expected 0.5", d.Scale)
	}
	if d.Timer != 30 {
		t.Errorf("Timer = %d, expected 30", d.Timer)
	}
}

func TestPlayerPhase(t *testing.T) {
	p, _ := testPlayer()

	tests := []struct {
		name     string
		grounded bool
		death    DeathAnimation
		expected PlayerPhase
	}{
		{"grounded", true, DeathAnimation{}, PhaseGrounded},
		{"airborne", false, DeathAnimation{}, PhaseAirborne},
		{"dying", true, DeathAnimation{Active: true}, PhaseDying},
		{"dead", false, DeathAnimation{Done: true}, PhaseDead},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p.Grounded = tc.grounded
			if got := p.Phase(tc.death); got != tc.expected {
				t.Errorf("Phase() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
