// Package level holds the playable chapters. Levels are stepped once per
// tick with a shared frame clock and emit draw ops; they never touch the
// window or the real clock.
package level

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/component"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/obj"
	"github.com/milk9111/rocktung/prefabs"
)

const (
	PuzzleName  = "puzzle"
	PursuitName = "pursuit"
)

var whiteText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Level is one chapter's simulation.
type Level interface {
	Name() string
	Step(in obj.Input, clk common.FrameClock) Outcome
	Draw(cmds *gfx.Commands, clk common.FrameClock)
	// Done reports whether the level has finished and control should go
	// back to chapter select.
	Done() bool
	// Finish ends the level.
	Finish()
}

// Outcome summarizes what happened during one Step.
type Outcome struct {
	Picked  []int
	Crafted bool
	Reset   bool
	Hit     bool
}

// Env is what a level needs from the outside world.
type Env struct {
	Width  int
	Height int
	Assets *assets.Store
	Logger *log.Logger
	RNG    *rand.Rand
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// New builds the named level from specs.
func New(env Env, specs *prefabs.Specs, name string, now int64) (Level, error) {
	if specs == nil {
		return nil, fmt.Errorf("level: no specs")
	}
	if env.Assets == nil {
		return nil, fmt.Errorf("level: no asset store")
	}
	if env.RNG == nil {
		env.RNG = rand.New(rand.NewPCG(uint64(now), 0))
	}
	switch name {
	case PuzzleName:
		return NewPuzzle(env, specs.Puzzle, now), nil
	case PursuitName:
		return NewPursuit(env, specs.Pursuit, now), nil
	}
	return nil, fmt.Errorf("level: unknown level %q", name)
}

// stage is the background and the ground strip along the bottom.
type stage struct {
	background *gfx.Image
	ground     *gfx.Image
	groundRect image.Rectangle
	screen     image.Rectangle
}

func newStage(env Env, bgPath string, bgColor prefabs.YAMLColor, g prefabs.GroundSpec) stage {
	gh := env.Height / g.HeightDivisor
	return stage{
		background: env.Assets.Image(bgPath, env.Width, env.Height, assets.Fallback{Color: bgColor.NRGBA()}),
		ground:     env.Assets.Image(g.Image, env.Width, gh, assets.Fallback{Color: g.Color.NRGBA()}),
		groundRect: image.Rect(0, env.Height-gh, env.Width, env.Height),
		screen:     image.Rect(0, 0, env.Width, env.Height),
	}
}

func (s stage) groundTop() float64 {
	return float64(s.groundRect.Min.Y)
}

func (s stage) draw(cmds *gfx.Commands) {
	cmds.Draw(s.background, s.screen)
	cmds.Draw(s.ground, s.groundRect)
}

// newPlayer loads the player's frames and spawns it centered on the stage.
func newPlayer(env Env, spec prefabs.PlayerSpec, st stage, now int64) *obj.Player {
	stand := env.Assets.Frames(spec.Stand.Pattern, spec.Stand.Count, spec.Width, spec.Height,
		assets.Fallback{Color: spec.Stand.Color.NRGBA()})
	walk := env.Assets.Frames(spec.Walk.Pattern, spec.Walk.Count, spec.Width, spec.Height,
		assets.Fallback{Color: spec.Walk.Color.NRGBA()})

	anim := component.NewAnimation(spec.AnimationMs, now)
	obj.PlayerPoses(anim, spec, stand, walk)
	x := float64(env.Width / 2)
	return obj.NewPlayer(spec, anim, x, st.groundTop()+spec.SpawnOffset, float64(env.Width))
}

func outlinedText(text string, font gfx.Font, col color.NRGBA, outline, cx, cy int) gfx.TextOp {
	return gfx.TextOp{
		Text:         text,
		Font:         font,
		Color:        col,
		OutlineColor: color.NRGBA{A: 255},
		OutlineWidth: outline,
		CenterX:      cx,
		CenterY:      cy,
		Alpha:        255,
	}
}
