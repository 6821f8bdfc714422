package component

// Invincibility is a timed damage immunity window. While active the owner
// blinks: Flash is recomputed from the clock on every update.
type Invincibility struct {
	Active     bool
	Start      int64
	Flash      bool
	DurationMs int64
	BlinkMs    int64
}

// Trigger starts the window at now. It returns false if already active.
func (v *Invincibility) Trigger(now int64) bool {
	if v == nil || v.Active {
		return false
	}
	v.Active = true
	v.Start = now
	return true
}

// Update expires the window and refreshes the blink phase.
func (v *Invincibility) Update(now int64) {
	if v == nil || !v.Active {
		return
	}
	if now-v.Start >= v.DurationMs {
		v.Active = false
		v.Flash = false
		return
	}
	blink := v.BlinkMs
	if blink <= 0 {
		blink = 100
	}
	v.Flash = (now/blink)%2 == 0
}

// Visible reports whether the owner should be drawn this tick.
func (v *Invincibility) Visible() bool {
	if v == nil {
		return true
	}
	return !(v.Active && v.Flash)
}
