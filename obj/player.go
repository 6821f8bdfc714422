package obj

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/component"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/prefabs"
)

var (
	leftKeys  = []Key{KeyLeft, KeyA}
	rightKeys = []Key{KeyRight, KeyD}
	jumpKeys  = []Key{KeyUp, KeySpace}
)

// Player is the side-view character shared by both levels. Pos.X is the
// horizontal center and Pos.Y the feet.
type Player struct {
	Pos      cp.Vector
	Body     component.PhysicsBody
	Facing   component.Facing
	Movement component.Movement
	Anim     *component.Animation

	spec    prefabs.PlayerSpec
	screenW float64
}

// NewPlayer places a player with feet at (x, y) facing right.
func NewPlayer(spec prefabs.PlayerSpec, anim *component.Animation, x, y, screenW float64) *Player {
	if anim == nil {
		anim = component.NewAnimation(spec.AnimationMs, 0)
	}
	p := &Player{
		Pos: cp.Vector{X: x, Y: y},
		Body: component.PhysicsBody{
			OnGround:        true,
			Gravity:         spec.Gravity,
			JumpStrength:    spec.JumpStrength,
			BounceThreshold: spec.BounceThreshold,
			BounceFactor:    spec.BounceFactor,
		},
		Facing:  component.FacingRight,
		Anim:    anim,
		spec:    spec,
		screenW: screenW,
	}
	p.Anim.Select(component.PoseKey{Movement: component.Standing, Facing: p.Facing})
	return p
}

// Update runs input, physics and animation for one tick.
func (p *Player) Update(in Input, now int64, groundY float64) {
	if p == nil {
		return
	}
	p.HandleInput(in)
	p.ApplyPhysics(groundY)
	p.UpdateAnimation(now)
}

// HandleInput moves horizontally and starts jumps. Left wins over right
// unless BothKeysCancel is set, in which case both moves apply and
// the last one sets the facing.
func (p *Player) HandleInput(in Input) {
	if p == nil {
		return
	}
	p.Movement = component.Standing
	left := AnyPressed(in, leftKeys...)
	right := AnyPressed(in, rightKeys...)
	if left && !p.spec.BothKeysCancel {
		right = false
	}
	if left {
		p.Pos.X -= p.spec.MoveSpeed
		p.Facing = component.FacingLeft
		p.Movement = component.Walking
	}
	if right {
		p.Pos.X += p.spec.MoveSpeed
		p.Facing = component.FacingRight
		p.Movement = component.Walking
	}

	if AnyPressed(in, jumpKeys...) || (p.spec.JumpOnW && AnyPressed(in, KeyW)) {
		p.Body.Jump()
	}

	if m := p.spec.ClampMargin; m > 0 {
		p.Pos.X = common.Clamp(p.Pos.X, m, p.screenW-m)
	}
	p.Anim.Select(component.PoseKey{Movement: p.Movement, Facing: p.Facing})
}

// ApplyPhysics integrates gravity against the ground line.
func (p *Player) ApplyPhysics(groundY float64) {
	if p == nil {
		return
	}
	p.Pos.Y = p.Body.Step(p.Pos.Y, groundY)
}

func (p *Player) UpdateAnimation(now int64) {
	if p == nil {
		return
	}
	p.Anim.Update(now)
}

// Knockback launches the player upward with vy.
func (p *Player) Knockback(vy float64) {
	if p == nil {
		return
	}
	p.Body.Impulse(vy)
}

// Hitbox is the feet-anchored pickup box in screen space (Y grows down, so
// B is the top edge and T the feet).
func (p *Player) Hitbox() cp.BB {
	hw := p.spec.Hitbox.Width / 2
	return cp.BB{L: p.Pos.X - hw, B: p.Pos.Y - p.spec.Hitbox.Height, R: p.Pos.X + hw, T: p.Pos.Y}
}

// Rect is the sprite rectangle for the current frame.
func (p *Player) Rect() image.Rectangle {
	return gfx.MidBottom(p, p.Pos.X, p.Pos.Y)
}

// CenterX is the horizontal center of the sprite rectangle.
func (p *Player) CenterX() float64 {
	r := p.Rect()
	return float64(r.Min.X + r.Dx()/2)
}

func (p *Player) Frame() *gfx.Image { return p.Anim.Frame() }

func (p *Player) Flipped() bool { return p.Anim.Flipped() }

// PlayerPoses builds the pose table from stand and walk frames. Source art
// faces left; sequences flagged FlipRight are mirrored when facing right.
func PlayerPoses(anim *component.Animation, spec prefabs.PlayerSpec, stand, walk []*gfx.Image) {
	for _, f := range []component.Facing{component.FacingLeft, component.FacingRight} {
		right := f == component.FacingRight
		anim.SetPose(component.PoseKey{Movement: component.Standing, Facing: f},
			component.Pose{Frames: stand, FlipX: right && spec.Stand.FlipRight})
		anim.SetPose(component.PoseKey{Movement: component.Walking, Facing: f},
			component.Pose{Frames: walk, FlipX: right && spec.Walk.FlipRight})
	}
}
