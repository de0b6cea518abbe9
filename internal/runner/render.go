package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	HurdleChar   = '▓'
	BlockChar    = '▒'
	PlatformChar = '═'
	RampTopChar  = '◢'
	RampChar     = '█'
	CoinChar     = '●'
	PenaltyChar  = '✕'
	WatchChar    = '◷'
	SnailChar    = '@'
	BirdUpChar   = '^'
	BirdDownChar = 'v'
	GrassChar    = '▀'
	DirtChar     = '█'
	ParticleChar = '·'
	StarChar     = '·'
	SunChar      = '☼'
	MoonChar     = '☾'
)

var deathGlyphs = []rune{'▓', '▒', '░', '▒'}

// cellSpan maps a world interval to a half-open cell interval covering it.
// Every non-empty interval covers at least one cell.
func cellSpan(lo, hi, unit float64) (int, int) {
	a := int(math.Floor(lo / unit))
	b := int(math.Ceil(hi / unit))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func boxCells(b core.Box) core.Rect {
	x0, x1 := cellSpan(b.X, b.Right(), core.UnitsPerCellX)
	y0, y1 := cellSpan(b.Y, b.Bottom(), core.UnitsPerCellY)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Draw renders a snapshot. It never mutates session state.
func Draw(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	drawSky(dst, snap)
	groundRow := drawGround(dst, snap)

	for _, e := range snap.Of(KindRamp) {
		drawRamp(dst, e, groundRow)
	}
	for _, e := range snap.Of(KindPlatform) {
		r := boxCells(e.Box)
		dst.DrawHLine(r.X, r.Y, r.W, PlatformChar, core.ColorBrown)
	}
	for _, e := range snap.Of(KindBlock) {
		dst.FillRect(boxCells(e.Box), BlockChar, core.ColorBrown)
	}
	for _, e := range snap.Of(KindObstacle) {
		dst.FillRect(boxCells(e.Box), HurdleChar, core.ColorOrange)
	}
	for _, e := range snap.Of(KindCoin) {
		drawCoin(dst, e)
	}
	for _, e := range snap.Of(KindWatch) {
		// Gentle float
		b := e.Box
		b.Y += math.Sin(e.AnimTime) * 8
		r := boxCells(b)
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, WatchChar, core.ColorBrightYellow)
	}
	for _, e := range snap.Of(KindBird) {
		glyph := BirdDownChar
		if math.Sin(e.AnimTime) > 0 {
			glyph = BirdUpChar
		}
		r := boxCells(e.Box)
		dst.DrawHLine(r.X, r.Y, r.W, glyph, core.ColorWhite)
	}
	for _, e := range snap.Of(KindSnail) {
		r := boxCells(e.Box)
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, '_', core.ColorGreen)
		dst.SetColored(r.X+r.W/2, r.Bottom()-1, SnailChar, core.ColorMagenta)
	}

	drawPlayer(dst, snap)

	for _, p := range snap.Particles {
		dst.SetColored(int(p.X/core.UnitsPerCellX), int(p.Y/core.UnitsPerCellY), ParticleChar, p.Color)
	}
	for _, p := range snap.Popups {
		dst.DrawTextColored(int(p.X/core.UnitsPerCellX), int(p.Y/core.UnitsPerCellY), p.Text, p.Color)
	}

	drawHUD(dst, snap)

	switch {
	case snap.State == StateMenu:
		drawMenu(dst, snap)
	case snap.State == StateGameOver:
		drawGameOver(dst, snap)
	case snap.Paused:
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"Press P to resume", core.ColorGray},
		})
	}
}

// drawSky places the sun or moon along an arc and stars at night.
func drawSky(dst *core.Screen, snap *Snapshot) {
	phase := PhaseOf(snap.TimeOfDay)
	w := dst.Width()

	if phase == Night || phase == Dusk {
		for x := 0; x < w; x += 7 {
			y := 2 + (x*13)%5
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}

	// The sun crosses during dawn..dusk, the moon during the other half.
	t := math.Mod(snap.TimeOfDay+0.125, 1)
	glyph, color := SunChar, core.ColorBrightYellow
	if t >= 0.5 {
		t -= 0.5
		glyph, color = MoonChar, core.ColorBrightWhite
	}
	x := int(t * 2 * float64(w-1))
	y := 1 + int(4*math.Abs(t*2-0.5)*2)
	dst.SetColored(x, y, glyph, color)
}

// drawGround fills the ground rows, leaving gaps over holes.
// Returns the first ground row.
func drawGround(dst *core.Screen, snap *Snapshot) int {
	top := int(math.Ceil(snap.View.GroundLevel() / core.UnitsPerCellY))
	for y := top; y < dst.Height(); y++ {
		glyph, color := DirtChar, core.ColorBrown
		if y == top {
			glyph, color = GrassChar, core.ColorGreen
		}
		dst.DrawHLine(0, y, dst.Width(), glyph, color)
	}
	for _, h := range snap.Of(KindHole) {
		x0, x1 := cellSpan(h.X, h.Right(), core.UnitsPerCellX)
		for y := top; y < dst.Height(); y++ {
			dst.DrawHLine(x0, y, x1-x0, ' ', core.ColorDefault)
		}
	}
	return top
}

// drawRamp draws one column per cell, following the ramp surface.
func drawRamp(dst *core.Screen, e Entity, groundRow int) {
	x0, x1 := cellSpan(e.X, e.Right(), core.UnitsPerCellX)
	for cx := x0; cx < x1; cx++ {
		mid := (float64(cx) + 0.5) * core.UnitsPerCellX
		surface, _ := RampSurface(e, mid)
		top := int(surface / core.UnitsPerCellY)
		dst.SetColored(cx, top, RampTopChar, core.ColorGray)
		for y := top + 1; y < groundRow; y++ {
			dst.SetColored(cx, y, RampChar, core.ColorGray)
		}
	}
}

func drawCoin(dst *core.Screen, e Entity) {
	r := boxCells(e.Box)
	glyph := CoinChar
	if e.Multiplier < 0 {
		glyph = PenaltyChar
	}
	dst.FillRect(r, glyph, CoinColor(e.Multiplier))
	if e.Multiplier > 1 {
		dst.SetColored(r.X+r.W/2, r.Y+r.H/2, rune('0'+e.Multiplier), core.ColorBrightWhite)
	}
}

func drawPlayer(dst *core.Screen, snap *Snapshot) {
	p := snap.Player
	d := snap.Death

	if d.Active || d.Done {
		// Shrink around the center and cycle glyphs to suggest spinning.
		b := p.Box
		cx, cy := b.CenterX(), b.Y+b.H/2
		b.W *= d.Scale
		b.H *= d.Scale
		b.X, b.Y = cx-b.W/2, cy-b.H/2
		glyph := deathGlyphs[int(d.Rotation)%len(deathGlyphs)]
		dst.FillRect(boxCells(b), glyph, core.ColorBrightRed)
		return
	}

	r := boxCells(p.Box)
	dst.FillRect(core.NewRect(r.X, r.Y, r.W, r.H-1), BodyChar, core.ColorBrightRed)
	// Eye
	dst.SetColored(r.Right()-2, r.Y, '▪', core.ColorBrightWhite)

	legs := r.Bottom() - 1
	switch {
	case !p.Grounded:
		dst.DrawHLine(r.X+1, legs, r.W-2, '╨', core.ColorBrightRed)
	case p.Running && math.Sin(p.RunCycle) > 0:
		for x := r.X; x < r.Right(); x += 2 {
			dst.SetColored(x, legs, '╱', core.ColorBrightRed)
		}
	case p.Running:
		for x := r.X + 1; x < r.Right(); x += 2 {
			dst.SetColored(x, legs, '╲', core.ColorBrightRed)
		}
	default:
		dst.SetColored(r.X+1, legs, '║', core.ColorBrightRed)
		dst.SetColored(r.Right()-2, legs, '║', core.ColorBrightRed)
	}
}

// formatClock renders a duration as m:ss, rounding partial seconds down.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// timerColor turns yellow under a minute and red under thirty seconds.
func timerColor(d time.Duration) core.Color {
	switch {
	case d <= 30*time.Second:
		return core.ColorBrightRed
	case d <= time.Minute:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightWhite
	}
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	if snap.State == StatePlaying {
		clock := formatClock(snap.Remaining)
		dst.DrawTextColored((dst.Width()-len(clock))/2, 0, clock, timerColor(snap.Remaining))

		jumps := ""
		for i := 0; i < snap.Player.AirJumpsLeft; i++ {
			jumps += "⇡"
		}
		right := fmt.Sprintf(" %s %s %s ", jumps, PhaseOf(snap.TimeOfDay), snap.Tier.Name)
		dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGray)
	}
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a framed message box in the center of the screen.
func drawPanel(dst *core.Screen, lines []panelLine) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l.text)))
	}
	boxW := inner + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColored(x, boxY+2+i, l.text, l.color)
	}
}

func drawMenu(dst *core.Screen, snap *Snapshot) {
	mode := "hold → to run, ← to walk back"
	if snap.Mode == config.MovementAuto {
		mode = "the world scrolls on its own"
	}
	drawPanel(dst, []panelLine{
		{"ENDLESS RUNNER", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{fmt.Sprintf("◀  %s  ▶", snap.Tier.Name), core.ColorBrightCyan},
		{"", core.ColorDefault},
		{mode, core.ColorGray},
		{"Space to jump, twice for an air jump", core.ColorGray},
		{fmt.Sprintf("Best: %d", snap.HighScore), core.ColorWhite},
		{"", core.ColorDefault},
		{"Press Space or Enter to start", core.ColorBrightWhite},
	})
}

func drawGameOver(dst *core.Screen, snap *Snapshot) {
	run := snap.LastRun
	title := "GAME OVER"
	if run.Reason == EndTimeUp {
		title = "TIME UP"
	}
	lines := []panelLine{
		{title, core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", run.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Best: %d", run.HighScore), core.ColorWhite},
	}
	if run.NewHighScore {
		lines = append(lines, panelLine{"NEW HIGH SCORE!", core.ColorBrightYellow})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Press Space or R to restart", core.ColorGray},
	)
	drawPanel(dst, lines)
}
