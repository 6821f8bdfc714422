package level

import (
	"image"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/obj"
	"github.com/milk9111/rocktung/prefabs"
)

// Puzzle is chapter 1: walk over stones and pick two. The right pair crafts
// a hand axe; any other pair scatters the stones again.
type Puzzle struct {
	env    Env
	spec   prefabs.PuzzleSpec
	logger *log.Logger
	stage  stage

	player *obj.Player
	stones []*obj.Stone
	arrow  *gfx.Image
	reward *gfx.Image
	rule   *prefabs.ComboRule

	selection   []int
	rewardShown bool
	prompts     []int
	done        bool
}

func NewPuzzle(env Env, spec prefabs.PuzzleSpec, now int64) *Puzzle {
	l := &Puzzle{
		env:    env,
		spec:   spec,
		logger: env.logger().With("level", PuzzleName, "run", uuid.NewString()),
	}
	l.stage = newStage(env, spec.Background, spec.BackgroundColor, spec.Ground)
	l.player = newPlayer(env, spec.Player, l.stage, now)

	size := spec.Stones.Size
	for i, path := range spec.Stones.Images {
		img := env.Assets.Image(path, size, size, assets.Fallback{Color: spec.Stones.Color.NRGBA()})
		l.stones = append(l.stones, &obj.Stone{Index: i, Image: img})
	}
	l.scatter()

	l.arrow = env.Assets.Image(spec.Arrow.Image, spec.Arrow.Size, spec.Arrow.Size, assets.Fallback{Color: spec.Arrow.Color.NRGBA()})
	l.reward = env.Assets.Image(spec.Reward.Image, spec.Reward.Size, spec.Reward.Size, assets.Fallback{Color: spec.Reward.Color.NRGBA()})

	rule, err := prefabs.LoadComboRule(spec.ComboScript)
	if err != nil {
		l.logger.Warn("combo script unavailable, using built-in pair", "err", err)
	} else {
		l.rule = rule
	}

	l.logger.Info("level started", "stones", len(l.stones))
	return l
}

func (l *Puzzle) Name() string { return PuzzleName }

// Step updates the player then resolves stone overlaps in index order.
func (l *Puzzle) Step(in obj.Input, clk common.FrameClock) Outcome {
	var out Outcome
	if l == nil || l.done {
		return out
	}
	l.player.Update(in, clk.Now, l.stage.groundTop()+l.spec.Player.GroundOffset)

	l.prompts = l.prompts[:0]
	box := l.player.Hitbox()
	for i, s := range l.stones {
		if !s.Touches(box) {
			continue
		}
		l.prompts = append(l.prompts, i)
		if in != nil && in.IsPressed(obj.KeyF) && !l.rewardShown {
			res := l.Pick(i)
			out.Picked = append(out.Picked, i)
			out.Crafted = out.Crafted || res.Crafted
			out.Reset = out.Reset || res.Reset
		}
	}
	return out
}

// Pick collects stone i. When two stones are selected the pair is judged and
// the selection cleared.
func (l *Puzzle) Pick(i int) Outcome {
	var out Outcome
	if l.rewardShown || i < 0 || i >= len(l.stones) {
		return out
	}
	if !l.stones[i].Collected {
		l.stones[i].Collected = true
		l.selection = append(l.selection, i)
	}
	if len(l.selection) < 2 {
		return out
	}

	first, second := l.selection[0], l.selection[1]
	if l.crafted(first, second) {
		l.rewardShown = true
		out.Crafted = true
		l.logger.Info("hand axe crafted", "first", first, "second", second)
	} else {
		for _, s := range l.stones {
			s.Collected = false
		}
		l.scatter()
		out.Reset = true
		l.logger.Debug("wrong pair, stones reset", "first", first, "second", second)
	}
	l.selection = l.selection[:0]
	return out
}

func (l *Puzzle) crafted(first, second int) bool {
	if l.rule != nil {
		ok, err := l.rule.Crafted(first, second)
		if err == nil {
			return ok
		}
		l.logger.Warn("combo script failed, using built-in pair", "err", err)
		l.rule = nil
	}
	return (first == 0 && second == 1) || (first == 1 && second == 0)
}

// scatter places every stone at a random column on the ground.
func (l *Puzzle) scatter() {
	margin := l.spec.Stones.Margin
	lo, hi := margin, l.env.Width-margin
	y := l.stage.groundTop() + l.spec.Stones.GroundOffset
	for _, s := range l.stones {
		x := lo
		if hi > lo {
			x = lo + l.env.RNG.IntN(hi-lo+1)
		}
		s.Pos = cp.Vector{X: float64(x), Y: y}
	}
}

func (l *Puzzle) Draw(cmds *gfx.Commands, clk common.FrameClock) {
	if l == nil {
		return
	}
	l.stage.draw(cmds)

	bob := int(l.spec.Arrow.Amplitude * math.Sin(float64(clk.Now)*l.spec.Arrow.Frequency))
	for _, s := range l.stones {
		if s.Collected {
			continue
		}
		r := s.Rect()
		cmds.Draw(s.Image, r)

		aw, ah := l.arrow.Size()
		ax := r.Min.X + r.Dx()/2 - aw/2
		ay := r.Min.Y - l.spec.Arrow.Gap + bob
		cmds.Add(gfx.ImageOp{Image: l.arrow, Dst: image.Rect(ax, ay, ax+aw, ay+ah), FlipY: true, Alpha: 255})
	}

	for _, i := range l.prompts {
		s := l.stones[i]
		if s.Collected {
			continue
		}
		r := s.Rect()
		p := l.spec.Prompt
		cmds.Add(outlinedText(p.Text, gfx.FontLevel, p.Color.NRGBA(), p.Outline, r.Min.X+r.Dx()/2, r.Min.Y-p.Gap))
	}

	if l.rewardShown {
		rw := l.spec.Reward
		cx := l.env.Width / 2
		cmds.Add(outlinedText(rw.Text, gfx.FontLevel, whiteText, rw.Outline, cx, rw.TextY))
		w, h := l.reward.Size()
		cmds.Draw(l.reward, image.Rect(cx-w/2, rw.ImageY, cx-w/2+w, rw.ImageY+h))
	}

	gfx.Blit(cmds, l.player, l.player.Rect())
}

func (l *Puzzle) Done() bool { return l == nil || l.done }

func (l *Puzzle) Finish() {
	if l == nil || l.done {
		return
	}
	l.done = true
	l.logger.Info("level finished", "crafted", l.rewardShown)
}

func (l *Puzzle) Player() *obj.Player { return l.player }

func (l *Puzzle) Stones() []*obj.Stone { return l.stones }

// Selection returns a copy of the pending pick order.
func (l *Puzzle) Selection() []int { return slices.Clone(l.selection) }

func (l *Puzzle) RewardShown() bool { return l.rewardShown }
