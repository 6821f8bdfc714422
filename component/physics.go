package component

import "math"

// PhysicsBody integrates vertical motion against a flat ground line.
type PhysicsBody struct {
	VelY     float64
	OnGround bool

	Gravity      float64
	JumpStrength float64
	// Landing faster than BounceThreshold rebounds at BounceFactor of the
	// impact speed. A zero factor stops dead.
	BounceThreshold float64
	BounceFactor    float64
}

// Jump launches the body if it is grounded.
func (b *PhysicsBody) Jump() bool {
	if b == nil || !b.OnGround {
		return false
	}
	b.VelY = -b.JumpStrength
	b.OnGround = false
	return true
}

// Impulse overrides the vertical velocity.
func (b *PhysicsBody) Impulse(vy float64) {
	if b == nil {
		return
	}
	b.VelY = vy
}

// Step applies gravity to y (feet, screen space) and resolves the ground
// contact. It returns the new y.
func (b *PhysicsBody) Step(y, groundY float64) float64 {
	if b == nil {
		return y
	}
	b.VelY += b.Gravity
	y += b.VelY
	if y < groundY {
		b.OnGround = false
		return y
	}

	y = groundY
	if b.BounceFactor > 0 && math.Abs(b.VelY) > b.BounceThreshold {
		b.VelY = -b.VelY * b.BounceFactor
	} else {
		b.VelY = 0
	}
	b.OnGround = true
	return y
}
