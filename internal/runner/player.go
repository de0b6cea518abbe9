package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Animation rates per tick.
const (
	playerAnimRate = 0.3
	runCycleRate   = 0.5
	runBounce      = 4
	deathSpin      = 0.3
	deathMinScale  = 0.1
)

// PlayerPhase is the player's position in the state machine.
type PlayerPhase int

const (
	PhaseGrounded PlayerPhase = iota
	PhaseAirborne
	PhaseDying
	PhaseDead
)

// String returns the phase name.
func (p PlayerPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseAirborne:
		return "airborne"
	case PhaseDying:
		return "dying"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the single controllable character. Its x never changes;
// horizontal motion is expressed by scrolling the world.
type Player struct {
	core.Box
	VelocityY    float64
	Grounded     bool
	Jumping      bool
	AirJumpsLeft int
	JumpCooldown int
	AnimTime     float64
	RunCycle     float64
	Running      bool
}

// NewPlayer places a player standing on the ground.
func NewPlayer(p config.RunnerPlayer, groundLevel float64) Player {
	return Player{
		Box:          core.NewBox(p.X, groundLevel-p.Height, p.Width, p.Height),
		Grounded:     true,
		AirJumpsLeft: p.AirJumps,
	}
}

// Feet returns the y coordinate of the player's bottom edge.
func (p *Player) Feet() float64 {
	return p.Bottom()
}

// Bounce is the cosmetic vertical offset of the run cycle.
func (p *Player) Bounce() float64 {
	if !p.Running {
		return 0
	}
	return math.Sin(p.RunCycle) * runBounce
}

// CanJump reports whether a jump input would be accepted.
func (p *Player) CanJump() bool {
	return (p.Grounded || p.AirJumpsLeft > 0) && p.JumpCooldown <= 0
}

// Jump applies a jump if allowed and reports whether it happened.
// A ground jump refills the air jump, an air jump consumes it.
func (p *Player) Jump(ph config.RunnerPhysics, airJumps int) bool {
	if !p.CanJump() {
		return false
	}
	p.VelocityY = ph.JumpImpulse
	p.Jumping = true
	p.JumpCooldown = ph.JumpCooldown
	if p.Grounded {
		p.Grounded = false
		p.AirJumpsLeft = airJumps
	} else {
		p.AirJumpsLeft = max(p.AirJumpsLeft-1, 0)
	}
	return true
}

// Integrate advances cooldown, gravity and position by one tick and
// resolves the ground.
func (p *Player) Integrate(ph config.RunnerPhysics, airJumps int, groundLevel float64) {
	p.AnimTime += playerAnimRate
	if p.JumpCooldown > 0 {
		p.JumpCooldown--
	}

	p.VelocityY += ph.Gravity
	p.Y += p.VelocityY

	if p.Y >= groundLevel-p.H {
		p.Land(groundLevel-p.H, airJumps)
	} else {
		p.Grounded = false
	}
}

// Land grounds the player with its top at y.
func (p *Player) Land(y float64, airJumps int) {
	p.Y = y
	p.VelocityY = 0
	p.Jumping = false
	p.Grounded = true
	p.AirJumpsLeft = airJumps
}

// Animate advances the run cycle when the player is running.
func (p *Player) Animate(running bool) {
	p.Running = running
	if running {
		p.RunCycle += runCycleRate
	}
}

// Phase derives the state machine phase.
func (p *Player) Phase(d DeathAnimation) PlayerPhase {
	switch {
	case d.Done:
		return PhaseDead
	case d.Active:
		return PhaseDying
	case p.Grounded:
		return PhaseGrounded
	default:
		return PhaseAirborne
	}
}

// DeathAnimation is the spin-and-shrink sequence played before game over.
type DeathAnimation struct {
	Active   bool
	Done     bool
	Timer    int
	Rotation float64
	Scale    float64
}

// Start begins the animation. It is a no-op returning false if the animation
// already started, so several lethal contacts in one tick start it once.
func (d *DeathAnimation) Start() bool {
	if d.Active || d.Done {
		return false
	}
	*d = DeathAnimation{Active: true, Scale: 1}
	return true
}

// Advance steps the animation and reports whether it finished this tick.
func (d *DeathAnimation) Advance(duration int) bool {
	if !d.Active {
		return false
	}
	d.Timer++
	d.Rotation += deathSpin
	d.Scale = math.Max(deathMinScale, 1-float64(d.Timer)/float64(duration))
	if d.Timer >= duration {
		d.Active = false
		d.Done = true
		return true
	}
	return false
}
