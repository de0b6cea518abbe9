package core

import (
	"testing"
	"time"
)

func TestViewportFor(t *testing.T) {
	v := ViewportFor(80, 24, 80)

	if v.Width != 1200 || v.Height != 600 {
		t.Errorf("ViewportFor(80, 24) = %vx%v, expected 1200x600", v.Width, v.Height)
	}
	if v.GroundLevel() != 520 {
		t.Errorf("GroundLevel() = %v, expected 520", v.GroundLevel())
	}
	if v.ToCellX(1199) != 79 || v.ToCellY(599) != 23 {
		t.Errorf("ToCell(1199, 599) = (%d, %d), expected (79, 23)", v.ToCellX(1199), v.ToCellY(599))
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, expected %v", c.Now(), start)
	}
	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("after Advance, elapsed = %v, expected 1.5s", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set should move the clock back")
	}

	var fn Clock = ClockFunc(func() time.Time { return start })
	if !fn.Now().Equal(start) {
		t.Error("ClockFunc should return the function result")
	}
}

func TestSequenceRNG(t *testing.T) {
	r := &SequenceRNG{Values: []float64{0.1, 0.99}}

	if r.Float64() != 0.1 || r.Float64() != 0.99 || r.Float64() != 0.1 {
		t.Error("SequenceRNG should cycle through its values")
	}
	if got := r.Intn(4); got != 3 {
		t.Errorf("Intn(4) with 0.99 = %d, expected 3", got)
	}
	if got := (&SequenceRNG{}).Float64(); got != 0 {
		t.Errorf("empty SequenceRNG Float64() = %v, expected 0", got)
	}
}

func TestUniformAndChance(t *testing.T) {
	r := NewRNG(42)
	for i := 0; i < 1000; i++ {
		v := Uniform(r, -8, 8)
		if v < -8 || v >= 8 {
			t.Fatalf("Uniform(-8, 8) = %v, out of range", v)
		}
	}

	if Chance(&SequenceRNG{Values: []float64{0.5}}, 0.5) {
		t.Error("Chance(0.5) with draw 0.5 should be false")
	}
	if !Chance(&SequenceRNG{Values: []float64{0.49}}, 0.5) {
		t.Error("Chance(0.5) with draw 0.49 should be true")
	}
}

func TestInputFrame(t *testing.T) {
	f := InputOf(ActionJump, ActionRight)

	if !f.Has(ActionJump) || !f.Has(ActionRight) || f.Has(ActionLeft) {
		t.Errorf("InputOf() actions = %v", f.Actions)
	}
	if f.Empty() {
		t.Error("Empty() = true, expected false")
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Empty() after Clear() = false, expected true")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	if ActionPause.String() != "Pause" || Action(99).String() != "Unknown" {
		t.Error("Action.String() mismatch")
	}
}
