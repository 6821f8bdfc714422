// Package scene sequences the front end: title menu, fade, welcome message,
// chapter select, the load fade and the active level.
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/component"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/level"
	"github.com/milk9111/rocktung/obj"
)

// State is the active screen.
type State int

const (
	StateMenu State = iota
	StateFadeOutMenu
	StateMessage
	StateChapterSelect
	StateFadeOutChapter
	// StateLoading fades in from black, then builds the chosen level.
	StateLoading
	StateInLevel
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateFadeOutMenu:
		return "fade_out_menu"
	case StateMessage:
		return "message"
	case StateChapterSelect:
		return "chapter_select"
	case StateFadeOutChapter:
		return "fade_out_chapter"
	case StateLoading:
		return "loading"
	case StateInLevel:
		return "in_level"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Flow is the top-level scene state machine. Exactly one State is active;
// Step advances it by one tick and returns the frame's draw list.
type Flow struct {
	ctx    *Context
	logger *log.Logger

	state      State
	fade       component.FadeRamp
	fadeSpeed  int
	banner     *Banner
	titleAlpha int
	chosen     int
	lvl        level.Level
	paused     bool

	layout     layout
	menuBG     *gfx.Image
	playButton *gfx.Image
	welcome    *gfx.Image
	thumbs     []*gfx.Image
}

// NewFlow loads the front-end images and starts at the menu.
func NewFlow(ctx *Context) (*Flow, error) {
	if ctx == nil || ctx.Specs == nil || ctx.Assets == nil {
		return nil, errors.New("scene: incomplete context")
	}
	if ctx.NewLevel == nil {
		return nil, errors.New("scene: no level factory")
	}
	logger := ctx.Logger
	if logger == nil {
		logger = log.Default()
	}

	spec := ctx.Specs.Scene
	f := &Flow{
		ctx:       ctx,
		logger:    logger.With("component", "scene"),
		fadeSpeed: component.FadeSpeed(spec.FPS, spec.FadeSeconds),
		chosen:    -1,
	}
	f.fade = component.FadeRamp{Speed: f.fadeSpeed}

	f.menuBG = ctx.Assets.Source(spec.Menu.Background, assets.Fallback{
		Color: spec.Menu.BackgroundColor.NRGBA(), W: ctx.Width, H: ctx.Height,
	})
	f.playButton = ctx.Assets.Source(spec.Menu.PlayButton, assets.Fallback{
		Color: spec.Menu.PlayColor.NRGBA(), W: spec.Menu.PlayWidth, H: spec.Menu.PlayHeight,
	})
	f.welcome = ctx.Assets.Source(spec.Message.Background, assets.Fallback{
		Color: black, W: ctx.Width, H: ctx.Height,
	})
	for _, ch := range spec.ChapterSelect.Chapters {
		f.thumbs = append(f.thumbs, ctx.Assets.Source(ch.Image, assets.Fallback{
			Color: ch.Color.NRGBA(), W: 512, H: 288,
		}))
	}
	f.Resize(ctx.Width, ctx.Height)
	return f, nil
}

func (f *Flow) State() State { return f.state }

// Level returns the running level, or nil.
func (f *Flow) Level() level.Level { return f.lvl }

// Chosen returns the selected chapter index, or -1.
func (f *Flow) Chosen() int { return f.chosen }

func (f *Flow) Paused() bool { return f.paused }

// Resize rebuilds the layout for a new screen size without changing state.
func (f *Flow) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	f.ctx.Width, f.ctx.Height = w, h
	f.layout = computeLayout(w, h, f.ctx.Specs.Scene, f.playButton, f.thumbs[0], len(f.thumbs))
}

// StartChapter skips the front end and loads chapter i.
func (f *Flow) StartChapter(i int) error {
	if i < 0 || i >= len(f.thumbs) {
		return fmt.Errorf("scene: no chapter %d", i+1)
	}
	f.chosen = i
	f.beginLoading()
	return nil
}

// Step advances one tick. It returns ErrQuit when the player presses Escape.
func (f *Flow) Step(in obj.Input, clk common.FrameClock) (*gfx.Commands, error) {
	if in != nil && in.IsJustPressed(obj.KeyEscape) {
		return nil, ErrQuit
	}
	f.update(in, clk)

	cmds := &gfx.Commands{}
	f.draw(cmds, in, clk)
	return cmds, nil
}

func (f *Flow) update(in obj.Input, clk common.FrameClock) {
	spec := f.ctx.Specs.Scene
	switch f.state {
	case StateMenu:
		if in != nil && in.IsPrimaryButtonJustPressed() && cursorIn(in, f.layout.play) {
			f.fade.Reset(0, component.FadeOut)
			f.setState(StateFadeOutMenu)
		}
	case StateFadeOutMenu:
		if f.fade.Step() {
			f.banner = &Banner{
				Text:       spec.Message.Text,
				Start:      clk.Now,
				DurationMs: spec.Message.DurationMs,
				FadeInMs:   spec.Message.FadeInMs,
				Step:       spec.Message.Step,
			}
			f.setState(StateMessage)
		}
	case StateMessage:
		if f.banner.Update(clk.Now) {
			f.banner = nil
			f.titleAlpha = 0
			f.setState(StateChapterSelect)
		}
	case StateChapterSelect:
		f.fadeTitle()
		if i := f.selectedChapter(in); i >= 0 {
			f.chosen = i
			f.fade.Reset(0, component.FadeOut)
			f.setState(StateFadeOutChapter)
		}
	case StateFadeOutChapter:
		f.fadeTitle()
		if f.fade.Step() {
			f.beginLoading()
		}
	case StateLoading:
		if f.fade.Step() {
			f.enterLevel(clk)
		}
	case StateInLevel:
		if in != nil && in.IsJustPressed(obj.KeyP) {
			f.TogglePause()
		}
		if f.lvl != nil && !f.paused && !f.lvl.Done() {
			f.logOutcome(f.lvl.Step(in, clk))
		}
		if f.lvl == nil || f.lvl.Done() {
			f.returnToChapters()
		}
	}
}

func (f *Flow) draw(cmds *gfx.Commands, in obj.Input, clk common.FrameClock) {
	switch f.state {
	case StateMenu:
		f.drawMenu(cmds, in)
	case StateFadeOutMenu:
		f.drawMenu(cmds, in)
		cmds.Overlay(f.fade.Alpha)
	case StateMessage:
		f.drawMessage(cmds)
	case StateChapterSelect:
		f.drawChapterSelect(cmds, in)
	case StateFadeOutChapter:
		f.drawChapterSelect(cmds, in)
		cmds.Overlay(f.fade.Alpha)
	case StateLoading:
		cmds.Fill(black)
		cmds.Overlay(f.fade.Alpha)
	case StateInLevel:
		if f.lvl != nil {
			f.lvl.Draw(cmds, clk)
		}
	}
}

func (f *Flow) logOutcome(out level.Outcome) {
	if len(out.Picked) == 0 && !out.Crafted && !out.Reset && !out.Hit {
		return
	}
	f.logger.Debug("level outcome", "level", f.lvl.Name(),
		"picked", out.Picked, "crafted", out.Crafted, "reset", out.Reset, "hit", out.Hit)
}

func (f *Flow) setState(s State) {
	if f.state == s {
		return
	}
	f.logger.Debug("transition", "from", f.state, "to", s)
	f.state = s
}

func (f *Flow) fadeTitle() {
	if f.titleAlpha < 255 {
		f.titleAlpha = min(255, f.titleAlpha+f.ctx.Specs.Scene.ChapterSelect.TitleStep)
	}
}

// selectedChapter returns the first thumbnail under a held primary button.
func (f *Flow) selectedChapter(in obj.Input) int {
	if in == nil || !in.IsPrimaryButtonDown() {
		return -1
	}
	for i, r := range f.layout.chapters {
		if cursorIn(in, r) {
			return i
		}
	}
	return -1
}

func (f *Flow) beginLoading() {
	speed := int(float64(f.fadeSpeed) * f.ctx.Specs.Scene.LoadFadeFactor)
	f.fade = component.FadeRamp{Alpha: 255, Speed: max(1, speed), Direction: component.FadeIn}
	f.setState(StateLoading)
}

func (f *Flow) enterLevel(clk common.FrameClock) {
	chapters := f.ctx.Specs.Scene.ChapterSelect.Chapters
	if f.chosen < 0 || f.chosen >= len(chapters) {
		f.returnToChapters()
		return
	}
	name := chapters[f.chosen].Level
	lvl, err := f.ctx.NewLevel(name, f.ctx.Width, f.ctx.Height, clk.Now)
	if err != nil {
		f.logger.Error("level failed to load", "level", name, "err", err)
		f.returnToChapters()
		return
	}
	f.lvl = lvl
	f.paused = false
	f.setState(StateInLevel)
}

func (f *Flow) returnToChapters() {
	f.lvl = nil
	f.paused = false
	f.titleAlpha = 0
	f.fade = component.FadeRamp{Alpha: 255, Speed: f.fadeSpeed, Direction: component.FadeNone}
	f.setState(StateChapterSelect)
}

// TogglePause flips the pause flag while a level runs.
func (f *Flow) TogglePause() {
	if f.state != StateInLevel {
		return
	}
	f.paused = !f.paused
	f.logger.Debug("pause", "paused", f.paused)
}

// Resume clears the pause flag.
func (f *Flow) Resume() {
	f.paused = false
}

// LeaveLevel ends the running level; the next Step returns to chapter select.
func (f *Flow) LeaveLevel() {
	if f.lvl != nil {
		f.lvl.Finish()
	}
	f.paused = false
}

func (f *Flow) drawMenu(cmds *gfx.Commands, in obj.Input) {
	cmds.Draw(f.scaled(f.menuBG, f.layout.width, f.layout.height), f.screen())
	f.drawHoverable(cmds, in, f.playButton, f.layout.play, f.ctx.Specs.Scene.Menu.HoverScale)
}

func (f *Flow) drawMessage(cmds *gfx.Commands) {
	cmds.Draw(f.scaled(f.welcome, f.layout.width, f.layout.height), f.screen())
	if f.banner == nil || f.banner.Alpha <= 0 {
		return
	}
	cmds.Add(gfx.TextOp{
		Text:         f.banner.Text,
		Font:         gfx.FontMessage,
		Color:        white,
		OutlineColor: black,
		OutlineWidth: f.ctx.Specs.Scene.Message.Outline,
		CenterX:      f.layout.width / 2,
		CenterY:      f.layout.height / 2,
		Alpha:        uint8(f.banner.Alpha),
	})
}

func (f *Flow) drawChapterSelect(cmds *gfx.Commands, in obj.Input) {
	spec := f.ctx.Specs.Scene.ChapterSelect
	cmds.Fill(spec.BackgroundColor.NRGBA())
	cmds.Add(gfx.TextOp{
		Text:    spec.Title,
		Font:    gfx.FontTitle,
		Color:   spec.TitleColor.NRGBA(),
		CenterX: f.layout.title.X,
		CenterY: f.layout.title.Y,
		Alpha:   uint8(f.titleAlpha),
	})
	for i, r := range f.layout.chapters {
		f.drawHoverable(cmds, in, f.thumbs[i], r, spec.HoverScale)
	}
}

// drawHoverable draws src in base, enlarged about its center while hovered.
func (f *Flow) drawHoverable(cmds *gfx.Commands, in obj.Input, src *gfx.Image, base image.Rectangle, scale float64) {
	dst := base
	if in != nil && cursorIn(in, base) {
		dst = gfx.Scale(base, scale)
	}
	cmds.Draw(f.scaled(src, dst.Dx(), dst.Dy()), dst)
}

func (f *Flow) scaled(img *gfx.Image, w, h int) *gfx.Image {
	return f.ctx.Assets.Scale(img, w, h)
}

func (f *Flow) screen() image.Rectangle {
	return image.Rect(0, 0, f.layout.width, f.layout.height)
}

func cursorIn(in obj.Input, r image.Rectangle) bool {
	x, y := in.CursorPosition()
	return image.Pt(x, y).In(r)
}
