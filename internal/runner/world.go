package runner

// World holds every live entity, bucketed by kind.
type World struct {
	buckets [numKinds][]Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{}
	for k := range w.buckets {
		w.buckets[k] = make([]Entity, 0, 8)
	}
	return w
}

// Reset removes every entity.
func (w *World) Reset() {
	for k := range w.buckets {
		w.buckets[k] = w.buckets[k][:0]
	}
}

// Add inserts an entity into its kind's bucket.
func (w *World) Add(e Entity) {
	w.buckets[e.Kind] = append(w.buckets[e.Kind], e)
}

// Of returns the live entities of kind k. The slice must not be retained
// across ticks.
func (w *World) Of(k Kind) []Entity {
	return w.buckets[k]
}

// Len returns the number of live entities of kind k.
func (w *World) Len(k Kind) int {
	return len(w.buckets[k])
}

// Total returns the number of live entities.
func (w *World) Total() int {
	n := 0
	for _, b := range w.buckets {
		n += len(b)
	}
	return n
}

// removeWhere drops entities of kind k for which drop returns true and
// returns them.
func (w *World) removeWhere(k Kind, drop func(Entity) bool) []Entity {
	var dropped []Entity
	kept := w.buckets[k][:0]
	for _, e := range w.buckets[k] {
		if drop(e) {
			dropped = append(dropped, e)
			continue
		}
		kept = append(kept, e)
	}
	w.buckets[k] = kept
	return dropped
}

// Move shifts every entity by worldSpeed plus its own speed, advances
// animations and culls whatever left the playfield.
func (w *World) Move(worldSpeed, gameSpeed, displayWidth float64) {
	for _, k := range Kinds {
		t := kindTraits[k]
		own := 0.0
		if t.caps&Movable != 0 {
			own = t.ownSpeed(gameSpeed)
		}
		b := w.buckets[k]
		for i := range b {
			b[i].X += worldSpeed - own
			b[i].AnimTime += t.animRate
			b[i].Rotation += t.rotRate
		}
		w.removeWhere(k, func(e Entity) bool { return e.Culled(displayWidth) })
	}
}

// Upcoming returns entities of kind k not yet visible but inside the
// look-ahead window: displayWidth <= x < displayWidth+lookAhead.
// Kinds outside the window's membership always report none.
func (w *World) Upcoming(k Kind, displayWidth, lookAhead float64) []Entity {
	if !kindTraits[k].upcoming {
		return nil
	}
	var out []Entity
	for _, e := range w.buckets[k] {
		if e.X >= displayWidth && e.X < displayWidth+lookAhead {
			out = append(out, e)
		}
	}
	return out
}

// Snapshot returns a deep copy of the buckets for read-only consumers.
func (w *World) Snapshot() [numKinds][]Entity {
	var out [numKinds][]Entity
	for k, b := range w.buckets {
		out[k] = append([]Entity(nil), b...)
	}
	return out
}
