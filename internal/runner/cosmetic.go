package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	coinPopupLife     = 60
	timePopupLife     = 80
	popupRise         = -2
	popupGravity      = 0.05
	coinParticles     = 8
	coinParticleLife  = 40
	coinParticleSpeed = 6
	timeParticles     = 10
	timeParticleLife  = 50
	timeParticleSpeed = 8
)

// Popup is floating text shown after a pickup.
type Popup struct {
	X, Y      float64
	VelocityY float64
	Life      int
	MaxLife   int
	Text      string
	Color     core.Color
}

// Particle is a short-lived spark.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Effects owns popups and particles. They are purely cosmetic but their
// lifetimes are ticked with the simulation.
type Effects struct {
	rng       core.RNG
	popups    []Popup
	particles []Particle
}

// NewEffects creates an empty effect set.
func NewEffects(rng core.RNG) *Effects {
	return &Effects{rng: rng}
}

// Reset drops every effect.
func (fx *Effects) Reset() {
	fx.popups = fx.popups[:0]
	fx.particles = fx.particles[:0]
}

// CoinColor maps a multiplier to its display color.
func CoinColor(multiplier int) core.Color {
	switch multiplier {
	case 1:
		return core.ColorBrightYellow
	case 2:
		return core.ColorBrightGreen
	case 3:
		return core.ColorBrightCyan
	case 4:
		return core.ColorBrightMagenta
	case 5:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

// CoinCollected spawns the score popup and sparks for a coin.
func (fx *Effects) CoinCollected(c Entity, points int) {
	text := fmt.Sprintf("%+d", points)
	if c.Multiplier > 1 {
		text = fmt.Sprintf("%s x%d", text, c.Multiplier)
	}
	color := CoinColor(c.Multiplier)
	fx.popups = append(fx.popups, Popup{
		X: c.X, Y: c.Y, VelocityY: popupRise,
		Life: coinPopupLife, MaxLife: coinPopupLife,
		Text: text, Color: color,
	})
	fx.burst(c.CenterX(), c.Y+c.H/2, coinParticles, coinParticleLife, coinParticleSpeed, color)
}

// WatchCollected spawns the time bonus popup and sparks for a watch.
func (fx *Effects) WatchCollected(wt Entity, bonusSeconds float64) {
	fx.popups = append(fx.popups, Popup{
		X: wt.X, Y: wt.Y, VelocityY: popupRise,
		Life: timePopupLife, MaxLife: timePopupLife,
		Text: fmt.Sprintf("+%.0f SEC", bonusSeconds), Color: core.ColorGreen,
	})
	fx.burst(wt.CenterX(), wt.Y+wt.H/2, timeParticles, timeParticleLife, timeParticleSpeed, core.ColorBrightYellow)
}

func (fx *Effects) burst(x, y float64, n, life int, speed float64, color core.Color) {
	for i := 0; i < n; i++ {
		fx.particles = append(fx.particles, Particle{
			X: x, Y: y,
			VX:   (fx.rng.Float64() - 0.5) * speed,
			VY:   (fx.rng.Float64() - 0.5) * speed,
			Life: life, MaxLife: life,
			Color: color,
		})
	}
}

// Tick moves every effect and drops expired ones.
func (fx *Effects) Tick() {
	popups := fx.popups[:0]
	for _, p := range fx.popups {
		p.Life--
		p.Y += p.VelocityY
		p.VelocityY += popupGravity
		if p.Life > 0 {
			popups = append(popups, p)
		}
	}
	fx.popups = popups

	particles := fx.particles[:0]
	for _, p := range fx.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	fx.particles = particles
}

// Popups returns the live popups.
func (fx *Effects) Popups() []Popup {
	return fx.popups
}

// Particles returns the live particles.
func (fx *Effects) Particles() []Particle {
	return fx.particles
}

// DayPhase names a part of the day-night cycle.
type DayPhase int

const (
	Dawn DayPhase = iota
	Day
	Dusk
	Night
)

// String returns the phase name.
func (p DayPhase) String() string {
	switch p {
	case Dawn:
		return "dawn"
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	case Night:
		return "night"
	default:
		return "unknown"
	}
}

// PhaseOf maps a time of day in [0, 1) to its phase. Dawn is centered on 0,
// day on 0.25, dusk on 0.5 and night on 0.75.
func PhaseOf(timeOfDay float64) DayPhase {
	switch {
	case timeOfDay < 0.125 || timeOfDay >= 0.875:
		return Dawn
	case timeOfDay < 0.375:
		return Day
	case timeOfDay < 0.625:
		return Dusk
	default:
		return Night
	}
}
