package component

import "github.com/milk9111/rocktung/gfx"

// Movement is the locomotion half of a pose key.
type Movement int

const (
	Standing Movement = iota
	Walking
)

// Facing is the horizontal direction a character looks.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Sign returns -1 for left and +1 for right.
func (f Facing) Sign() int {
	if f == FacingRight {
		return 1
	}
	return -1
}

// PoseKey selects a frame sequence.
type PoseKey struct {
	Movement Movement
	Facing   Facing
}

// Pose is a frame sequence plus whether it is drawn mirrored.
type Pose struct {
	Frames []*gfx.Image
	FlipX  bool
}

// Animation cycles the frames of the current pose on a millisecond timer.
// Frames advance when at least IntervalMs has passed since the last advance.
type Animation struct {
	Poses      map[PoseKey]Pose
	IntervalMs int64
	Current    PoseKey
	Index      int
	LastTick   int64
}

// NewAnimation creates an empty animator whose timer starts at now.
func NewAnimation(intervalMs, now int64) *Animation {
	if intervalMs <= 0 {
		intervalMs = 100
	}
	return &Animation{
		Poses:      map[PoseKey]Pose{},
		IntervalMs: intervalMs,
		LastTick:   now,
	}
}

// SetPose registers frames for key.
func (a *Animation) SetPose(key PoseKey, pose Pose) {
	if a == nil {
		return
	}
	if a.Poses == nil {
		a.Poses = map[PoseKey]Pose{}
	}
	a.Poses[key] = pose
}

// Select switches to key. The frame index carries over and is wrapped on
// the next update.
func (a *Animation) Select(key PoseKey) {
	if a == nil {
		return
	}
	a.Current = key
	a.normalize()
}

// Update advances the frame index if the interval has elapsed.
func (a *Animation) Update(now int64) {
	if a == nil {
		return
	}
	a.normalize()
	frames := a.Poses[a.Current].Frames
	if len(frames) == 0 {
		return
	}
	if now-a.LastTick >= a.IntervalMs {
		a.LastTick = now
		a.Index = (a.Index + 1) % len(frames)
	}
}

// Frame returns the image to draw this tick.
func (a *Animation) Frame() *gfx.Image {
	if a == nil {
		return nil
	}
	a.normalize()
	frames := a.Poses[a.Current].Frames
	if len(frames) == 0 {
		return nil
	}
	return frames[a.Index]
}

// Flipped reports whether the current pose is drawn mirrored.
func (a *Animation) Flipped() bool {
	if a == nil {
		return false
	}
	return a.Poses[a.Current].FlipX
}

// normalize falls back to a standing pose at index 0 when the current pose
// has no frames, and wraps an out-of-range index.
func (a *Animation) normalize() {
	if len(a.Poses[a.Current].Frames) == 0 {
		a.Index = 0
		for _, k := range []PoseKey{
			{Movement: Standing, Facing: a.Current.Facing},
			{Movement: Standing, Facing: FacingLeft},
			{Movement: Standing, Facing: FacingRight},
		} {
			if len(a.Poses[k].Frames) > 0 {
				a.Current = k
				return
			}
		}
		return
	}
	if a.Index < 0 || a.Index >= len(a.Poses[a.Current].Frames) {
		a.Index = 0
	}
}
