package level

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/component"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/obj"
	"github.com/milk9111/rocktung/prefabs"
)

// Pursuit is chapter 2: a buffalo roams the field and charges the player.
// Contact knocks the player up and grants a short invincibility window.
type Pursuit struct {
	env    Env
	spec   prefabs.PursuitSpec
	logger *log.Logger
	stage  stage

	player     *obj.Player
	buffalo    *obj.Buffalo
	invincible component.Invincibility

	hits int
	done bool
}

func NewPursuit(env Env, spec prefabs.PursuitSpec, now int64) *Pursuit {
	l := &Pursuit{
		env:    env,
		spec:   spec,
		logger: env.logger().With("level", PursuitName, "run", uuid.NewString()),
		invincible: component.Invincibility{
			DurationMs: spec.Hit.InvincibleMs,
			BlinkMs:    spec.Hit.BlinkMs,
		},
	}
	l.stage = newStage(env, spec.Background, spec.BackgroundColor, spec.Ground)
	l.player = newPlayer(env, spec.Player, l.stage, now)

	b := spec.Buffalo
	frames := env.Assets.Frames(b.Frames, b.Count, b.Width, b.Height,
		assets.Fallback{Color: b.Color.NRGBA(), Outline: b.Outline})
	anim := component.NewAnimation(b.AnimationMs, now)
	anim.SetPose(component.PoseKey{Movement: component.Standing, Facing: component.FacingLeft}, component.Pose{Frames: frames})

	w := float64(env.Width)
	x := obj.SpawnX(b, w, l.player.Pos.X, env.RNG)
	l.buffalo = obj.NewBuffalo(b, anim, x, l.stage.groundTop()+b.GroundOffset, w, env.RNG)

	l.logger.Info("level started", "buffalo_x", x, "direction", l.buffalo.Direction)
	return l
}

func (l *Pursuit) Name() string { return PursuitName }

// Step moves the player, then the buffalo, then resolves contact.
func (l *Pursuit) Step(in obj.Input, clk common.FrameClock) Outcome {
	var out Outcome
	if l == nil || l.done {
		return out
	}
	now := clk.Now
	l.player.Update(in, now, l.stage.groundTop()+l.spec.Player.GroundOffset)

	prev := l.buffalo.State
	l.buffalo.Update(l.player.CenterX(), now)
	if l.buffalo.State != prev {
		l.logger.Debug("buffalo state", "from", prev, "to", l.buffalo.State)
	}

	if gfx.Collide(l.player, l.player.Rect(), l.buffalo, l.buffalo.Rect()) && l.invincible.Trigger(now) {
		l.player.Knockback(l.spec.Hit.Impulse)
		l.buffalo.ForceCooldown(now)
		l.hits++
		out.Hit = true
		l.logger.Debug("player hit", "hits", l.hits)
	}
	l.invincible.Update(now)
	return out
}

func (l *Pursuit) Draw(cmds *gfx.Commands, clk common.FrameClock) {
	if l == nil {
		return
	}
	l.stage.draw(cmds)
	gfx.Blit(cmds, l.buffalo, l.buffalo.Rect())
	if l.invincible.Visible() {
		gfx.Blit(cmds, l.player, l.player.Rect())
	}
}

func (l *Pursuit) Done() bool { return l == nil || l.done }

func (l *Pursuit) Finish() {
	if l == nil || l.done {
		return
	}
	l.done = true
	l.logger.Info("level finished", "hits", l.hits)
}

func (l *Pursuit) Player() *obj.Player { return l.player }

func (l *Pursuit) Buffalo() *obj.Buffalo { return l.buffalo }

func (l *Pursuit) Invincibility() component.Invincibility { return l.invincible }
