package scene

// Banner is the timed welcome message. It fades in during the first
// FadeInMs, holds until DurationMs, then fades out.
type Banner struct {
	Text       string
	Start      int64
	DurationMs int64
	FadeInMs   int64
	Step       int
	Alpha      int
}

// Update advances the banner and reports whether it has fully faded out.
func (b *Banner) Update(now int64) bool {
	if b == nil {
		return true
	}
	elapsed := now - b.Start
	switch {
	case elapsed < b.FadeInMs && b.Alpha < 255:
		b.Alpha = min(255, b.Alpha+b.Step)
	case elapsed > b.DurationMs:
		b.Alpha = max(0, b.Alpha-b.Step)
		return b.Alpha == 0
	}
	return false
}
