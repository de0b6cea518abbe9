package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const (
	jumpFreq     = 200.0
	jumpDuration = 100 * time.Millisecond

	coinFreq     = 800.0
	coinDuration = 200 * time.Millisecond
	// Each extra multiplier step raises the coin note by a whole tone.
	coinStep = 1.122462

	watchDuration = 300 * time.Millisecond

	deathFreq     = 150.0
	deathDuration = 500 * time.Millisecond
	penaltyFreq   = 300.0

	stepInterval = 180 * time.Millisecond
	stepLength   = 25 * time.Millisecond

	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

var watchChord = []float64{400, 600, 800}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing duration worth of a raw wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over the attack and out over the release.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, att, rel time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	a, r := rate.N(att), rate.N(rel)
	return &envelope{
		streamer:     s,
		attack:       a,
		release:      r,
		releaseStart: max(total-r, a),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// JumpSound is a short square blip.
func JumpSound(cfg Config) beep.Streamer {
	return newVolume(tone(jumpFreq, jumpDuration, WaveSquare, cfg.rate()), 0.5*cfg.MasterVolume)
}

// CoinSound is a sine ping whose pitch rises with the multiplier.
// A negative multiplier marks a penalty coin, which gets a raised death buzz.
func CoinSound(cfg Config, multiplier int) beep.Streamer {
	rate := cfg.rate()
	if multiplier < 0 {
		return newVolume(tone(penaltyFreq, coinDuration, WaveSaw, rate), 0.5*cfg.MasterVolume)
	}
	freq := coinFreq * math.Pow(coinStep, float64(max(multiplier-1, 0)))
	return newVolume(tone(freq, coinDuration, WaveSine, rate), 0.6*cfg.MasterVolume)
}

// WatchSound is a three-note chord.
func WatchSound(cfg Config) beep.Streamer {
	rate := cfg.rate()
	notes := make([]beep.Streamer, 0, len(watchChord))
	for _, f := range watchChord {
		notes = append(notes, newVolume(tone(f, watchDuration, WaveSine, rate), 1/float64(len(watchChord))))
	}
	return newVolume(beep.Mix(notes...), 0.7*cfg.MasterVolume)
}

// DeathSound is a long low sawtooth.
func DeathSound(cfg Config) beep.Streamer {
	rate := cfg.rate()
	return newVolume(NewEnvelope(NewOscillator(deathFreq, deathDuration, WaveSaw, rate), deathDuration, attack, 300*time.Millisecond, rate), 0.6*cfg.MasterVolume)
}

// footsteps is an endless train of short noise taps, one per stride.
type footsteps struct {
	rate     beep.SampleRate
	pos      int
	interval int
	length   int
}

func newFootsteps(rate beep.SampleRate) *footsteps {
	return &footsteps{rate: rate, interval: rate.N(stepInterval), length: rate.N(stepLength)}
}

func (f *footsteps) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := f.pos % f.interval
		var val float64
		if p < f.length {
			decay := 1 - float64(p)/float64(f.length)
			val = 0.2 * decay * (rand.Float64()*2 - 1)
		}
		samples[i][0] = val
		samples[i][1] = val
		f.pos++
	}
	return len(samples), true
}

func (f *footsteps) Err() error { return nil }

// RunningLoop is the endless footstep loop played while the player runs.
func RunningLoop(cfg Config) beep.Streamer {
	return newVolume(newFootsteps(cfg.rate()), cfg.MasterVolume)
}
