// frames previews one animated sequence from the prefab tuning files.
//
// Usage:
//
//	frames player-walk --level pursuit
//	frames buffalo --assets ./art
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/component"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/prefabs"
	"github.com/milk9111/rocktung/render"
	"github.com/spf13/cobra"
)

const previewSize = 512

var (
	flagLevel  string
	flagAssets string
)

var rootCmd = &cobra.Command{
	Use:       "frames <player-stand|player-walk|buffalo>",
	Short:     "Preview a frame sequence",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"player-stand", "player-walk", "buffalo"},
	RunE:      run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "puzzle", "level whose player frames to use (puzzle or pursuit)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "directory searched for images missing from the binary")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "frames"})
	specs, err := prefabs.LoadAll()
	if err != nil {
		return err
	}
	seq, err := lookup(specs, flagLevel, args[0])
	if err != nil {
		return err
	}

	store := assets.NewStore(assets.Embedded(), flagAssets, logger)
	frames := store.Frames(seq.Pattern, seq.Count, seq.W, seq.H, assets.Fallback{Color: seq.Color, Outline: seq.Outline})
	logger.Info("loaded", "sequence", args[0], "frames", len(frames), "interval_ms", seq.IntervalMs)

	clock := common.NewMonotonicClock()
	anim := component.NewAnimation(seq.IntervalMs, clock.NowMillis())
	anim.SetPose(component.PoseKey{Movement: component.Standing, Facing: component.FacingLeft}, component.Pose{Frames: frames})

	renderer, err := render.New(specs.Scene.Fonts, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("frames: " + args[0])
	return ebiten.RunGame(&preview{anim: anim, clock: clock, renderer: renderer, label: args[0]})
}

// sequence is a resolved frame pattern plus its tuning.
type sequence struct {
	Pattern    string
	Count      int
	W, H       int
	IntervalMs int64
	Color      color.NRGBA
	Outline    int
}

func lookup(specs *prefabs.Specs, levelName, name string) (sequence, error) {
	var player prefabs.PlayerSpec
	switch levelName {
	case "puzzle":
		player = specs.Puzzle.Player
	case "pursuit":
		player = specs.Pursuit.Player
	default:
		return sequence{}, fmt.Errorf("unknown level %q", levelName)
	}

	switch name {
	case "player-stand":
		return sequence{player.Stand.Pattern, player.Stand.Count, player.Width, player.Height, player.AnimationMs, player.Stand.Color.NRGBA(), 0}, nil
	case "player-walk":
		return sequence{player.Walk.Pattern, player.Walk.Count, player.Width, player.Height, player.AnimationMs, player.Walk.Color.NRGBA(), 0}, nil
	case "buffalo":
		b := specs.Pursuit.Buffalo
		return sequence{b.Frames, b.Count, b.Width, b.Height, b.AnimationMs, b.Color.NRGBA(), b.Outline}, nil
	}
	return sequence{}, fmt.Errorf("unknown sequence %q", name)
}

type preview struct {
	anim     *component.Animation
	clock    common.Clock
	renderer *render.Renderer
	label    string
	cmds     gfx.Commands
}

func (p *preview) Update() error {
	p.anim.Update(p.clock.NowMillis())

	p.cmds.Reset()
	p.cmds.Fill(color.NRGBA{A: 255})
	if frame := p.anim.Frame(); frame != nil {
		w, h := frame.Size()
		p.cmds.Draw(frame, gfx.CenteredRect(previewSize/2, previewSize/2, w, h))
	}
	p.cmds.Add(gfx.TextOp{
		Text:    fmt.Sprintf("%s  frame %d", p.label, p.anim.Index),
		Font:    gfx.FontBody,
		Color:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		CenterX: previewSize / 2,
		CenterY: previewSize - 24,
		Alpha:   255,
	})
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, &p.cmds)
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}
