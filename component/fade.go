package component

// FadeDirection selects which way a FadeRamp moves.
type FadeDirection int

const (
	FadeNone FadeDirection = iota
	// FadeIn lowers the overlay alpha toward 0 (scene becomes visible).
	FadeIn
	// FadeOut raises the overlay alpha toward 255 (scene goes black).
	FadeOut
)

func (d FadeDirection) String() string {
	switch d {
	case FadeIn:
		return "in"
	case FadeOut:
		return "out"
	default:
		return "none"
	}
}

// FadeRamp is a clamped 0..255 alpha that moves by Speed each tick.
type FadeRamp struct {
	Alpha     int
	Speed     int
	Direction FadeDirection
}

// FadeSpeed returns the per-tick step that covers 0..255 in seconds at fps.
func FadeSpeed(fps int, seconds float64) int {
	if fps <= 0 || seconds <= 0 {
		return 255
	}
	return int(255 / (seconds * float64(fps)))
}

// Reset restarts the ramp at alpha moving in dir.
func (f *FadeRamp) Reset(alpha int, dir FadeDirection) {
	if f == nil {
		return
	}
	f.Alpha = clampAlpha(alpha)
	f.Direction = dir
}

// Step advances one tick and reports whether the ramp has reached the bound
// of its direction.
func (f *FadeRamp) Step() bool {
	if f == nil {
		return false
	}
	switch f.Direction {
	case FadeOut:
		f.Alpha = clampAlpha(f.Alpha + f.Speed)
	case FadeIn:
		f.Alpha = clampAlpha(f.Alpha - f.Speed)
	}
	return f.Done()
}

// Done reports whether the ramp sits at the bound of its direction.
func (f *FadeRamp) Done() bool {
	if f == nil {
		return false
	}
	switch f.Direction {
	case FadeOut:
		return f.Alpha >= 255
	case FadeIn:
		return f.Alpha <= 0
	}
	return false
}

func clampAlpha(a int) int {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return a
}
