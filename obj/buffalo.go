package obj

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocktung/component"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/prefabs"
)

// AIState is the buffalo behavior state.
type AIState int

const (
	AIIdle AIState = iota
	AICharge
	AIOverrun
	AICooldown
)

func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AICharge:
		return "charge"
	case AIOverrun:
		return "overrun"
	case AICooldown:
		return "cooldown"
	}
	return "unknown"
}

// Buffalo wanders, charges a nearby player, overshoots, then rests. Pos.X is the
// horizontal center and Pos.Y the feet.
type Buffalo struct {
	Pos           cp.Vector
	Speed         float64
	Direction     int
	State         AIState
	StateSince    int64
	ChargeTargetX float64
	Anim          *component.Animation

	spec    prefabs.BuffaloSpec
	screenW float64
	rng     *rand.Rand
}

// NewBuffalo creates an idle buffalo at (x, y) facing a random direction.
func NewBuffalo(spec prefabs.BuffaloSpec, anim *component.Animation, x, y, screenW float64, rng *rand.Rand) *Buffalo {
	if anim == nil {
		anim = component.NewAnimation(spec.AnimationMs, 0)
	}
	dir := -1
	if rng.IntN(2) == 1 {
		dir = 1
	}
	return &Buffalo{
		Pos:       cp.Vector{X: x, Y: y},
		Direction: dir,
		State:     AIIdle,
		Anim:      anim,
		spec:      spec,
		screenW:   screenW,
		rng:       rng,
	}
}

// SpawnX picks a spawn column in [SpawnMin, screenW-SpawnRightMargin] at
// least SpawnClearance away from playerX. After SpawnAttempts rolls the last
// one is kept.
func SpawnX(spec prefabs.BuffaloSpec, screenW, playerX float64, rng *rand.Rand) float64 {
	lo := spec.SpawnMin
	hi := int(screenW) - spec.SpawnRightMargin
	x := float64(randInt(rng, lo, hi))
	for i := 1; i < spec.SpawnAttempts && math.Abs(x-playerX) < spec.SpawnClearance; i++ {
		x = float64(randInt(rng, lo, hi))
	}
	return x
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Update advances animation and behavior. playerX is the center of the
// player's sprite.
func (b *Buffalo) Update(playerX float64, now int64) {
	if b == nil {
		return
	}
	b.Anim.Update(now)

	if b.State == AICooldown && now-b.StateSince >= b.spec.CooldownMs {
		b.transition(AIIdle, now)
		if b.rng.Float64() < b.spec.TurnChance {
			b.Direction = -b.Direction
		}
	}

	dx := playerX - b.Pos.X
	if b.State == AIIdle && math.Abs(dx) < b.spec.AggroRange {
		b.Direction = -1
		if dx > 0 {
			b.Direction = 1
		}
		b.ChargeTargetX = playerX + float64(b.Direction)*b.spec.Overshoot
		b.transition(AICharge, now)
	}

	switch b.State {
	case AIIdle:
		if b.Speed < b.spec.MaxSpeed {
			b.Speed += b.spec.Accel
		}
		b.Pos.X += float64(b.Direction) * b.Speed
		if b.rng.Float64() < b.spec.BrakeChance {
			if b.Speed > 0.3 {
				b.Speed -= b.spec.Decel * b.spec.BrakeFactor
			} else {
				b.Direction = -b.Direction
			}
		}
	case AICharge:
		b.Pos.X += float64(b.Direction) * b.spec.ChargeSpeed
		if (b.Direction == 1 && b.Pos.X >= b.ChargeTargetX) || (b.Direction == -1 && b.Pos.X <= b.ChargeTargetX) {
			b.transition(AIOverrun, now)
		}
	case AIOverrun:
		b.Pos.X += float64(b.Direction) * b.spec.ChargeSpeed
		if now-b.StateSince >= b.spec.OverrunMs {
			b.transition(AICooldown, now)
		}
	case AICooldown:
		b.Speed = math.Max(0, b.Speed-b.spec.Decel*b.spec.CooldownDecelFactor)
		b.Pos.X += float64(b.Direction) * b.Speed
	}

	b.clamp()
}

// ForceCooldown interrupts any state, e.g. after hitting the player.
func (b *Buffalo) ForceCooldown(now int64) {
	if b == nil {
		return
	}
	b.transition(AICooldown, now)
}

// transition moves to the next state if the edge is legal and reports
// whether it happened.
func (b *Buffalo) transition(to AIState, now int64) bool {
	ok := false
	switch to {
	case AIIdle:
		ok = b.State == AICooldown
	case AICharge:
		ok = b.State == AIIdle
	case AIOverrun:
		ok = b.State == AICharge
	case AICooldown:
		ok = true
	}
	if !ok {
		return false
	}
	b.State = to
	b.StateSince = now
	return true
}

func (b *Buffalo) clamp() {
	m := b.spec.EdgeMargin
	switch {
	case b.Pos.X < m:
		b.Pos.X = m
		b.Direction = 1
	case b.Pos.X > b.screenW-m:
		b.Pos.X = b.screenW - m
		b.Direction = -1
	}
}

// Rect is the sprite rectangle for the current frame.
func (b *Buffalo) Rect() image.Rectangle {
	return gfx.MidBottom(b, b.Pos.X, b.Pos.Y)
}

func (b *Buffalo) Frame() *gfx.Image { return b.Anim.Frame() }

// Flipped mirrors the left-facing art while moving right.
func (b *Buffalo) Flipped() bool { return b.Direction == 1 }
