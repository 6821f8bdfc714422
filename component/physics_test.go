package component

import (
	"math"
	"testing"
)

func TestPhysicsBodyLanding(t *testing.T) {
	cases := []struct {
		name     string
		factor   float64
		startVel float64
		wantVel  float64
	}{
		{"bounce", 0.18, 9.2, -10 * 0.18},
		{"slow_landing_stops", 0.18, 0.5, 0},
		{"no_bounce_factor", 0, 9.2, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := PhysicsBody{VelY: c.startVel, Gravity: 0.8, BounceThreshold: 1.5, BounceFactor: c.factor}
			y := b.Step(599.5, 600)
			if y != 600 {
				t.Fatalf("expected snap to ground, got %v", y)
			}
			if !b.OnGround {
				t.Fatalf("expected grounded")
			}
			if math.Abs(b.VelY-c.wantVel) > 1e-9 {
				t.Fatalf("expected vel %v, got %v", c.wantVel, b.VelY)
			}
		})
	}
}

func TestPhysicsBodyJump(t *testing.T) {
	b := PhysicsBody{Gravity: 0.8, JumpStrength: 15, OnGround: true}
	if !b.Jump() {
		t.Fatalf("grounded body should jump")
	}
	if b.VelY != -15 || b.OnGround {
		t.Fatalf("unexpected state after jump: %+v", b)
	}
	if b.Jump() {
		t.Fatalf("airborne body should not jump")
	}
	y := b.Step(600, 600)
	if y >= 600 || b.OnGround {
		t.Fatalf("expected to leave the ground, y=%v", y)
	}
}
