package scene

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/level"
	"github.com/milk9111/rocktung/obj"
	"github.com/milk9111/rocktung/obj/mocks"
	"github.com/milk9111/rocktung/prefabs"
	"go.uber.org/mock/gomock"
)

type fakeLevel struct {
	out   level.Outcome
	name  string
	steps int
	draws int
	done  bool
}

func (l *fakeLevel) Name() string { return l.name }

func (l *fakeLevel) Step(obj.Input, common.FrameClock) level.Outcome {
	l.steps++
	return l.out
}

func (l *fakeLevel) Draw(cmds *gfx.Commands, _ common.FrameClock) {
	l.draws++
	cmds.Fill(black)
}

func (l *fakeLevel) Done() bool { return l.done }
func (l *fakeLevel) Finish()    { l.done = true }

type harness struct {
	flow   *Flow
	built  []string
	levels []*fakeLevel
	failOn string
	now    int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	logger := log.New(io.Discard)
	h := &harness{}
	ctx := &Context{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		Assets: assets.NewStore(fstest.MapFS{}, "", logger),
		Specs:  specs,
		Logger: logger,
		NewLevel: func(name string, w, hgt int, now int64) (level.Level, error) {
			if name == h.failOn {
				return nil, errors.New("boom")
			}
			h.built = append(h.built, name)
			l := &fakeLevel{name: name}
			h.levels = append(h.levels, l)
			return l, nil
		},
	}
	f, err := NewFlow(ctx)
	if err != nil {
		t.Fatalf("NewFlow: %v", err)
	}
	h.flow = f
	return h
}

// tick steps the flow with in, advancing the clock by dt milliseconds.
func (h *harness) tick(t *testing.T, in obj.Input, dt int64) *gfx.Commands {
	t.Helper()
	h.now += dt
	cmds, err := h.flow.Step(in, common.FrameClock{Now: h.now})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return cmds
}

// until ticks with idle input until the flow reaches want.
func (h *harness) until(t *testing.T, want State, dt int64) int {
	t.Helper()
	for i := 1; i <= 2000; i++ {
		h.tick(t, obj.NewKeyState(), dt)
		if h.flow.State() == want {
			return i
		}
	}
	t.Fatalf("never reached %s, stuck in %s", want, h.flow.State())
	return 0
}

func clickAt(p [2]int) *obj.KeyState {
	return &obj.KeyState{CursorX: p[0], CursorY: p[1], PrimaryDown: true, PrimaryPressed: true}
}

func center(h *harness, chapter int) [2]int {
	var r = h.flow.layout.play
	if chapter >= 0 {
		r = h.flow.layout.chapters[chapter]
	}
	c := r.Min.Add(r.Max).Div(2)
	return [2]int{c.X, c.Y}
}

func (h *harness) toChapterSelect(t *testing.T) {
	t.Helper()
	h.tick(t, clickAt(center(h, -1)), 16)
	h.until(t, StateMessage, 16)
	h.until(t, StateChapterSelect, 100)
}

func TestStateString(t *testing.T) {
	if StateChapterSelect.String() != "chapter_select" {
		t.Fatalf("unexpected %q", StateChapterSelect.String())
	}
	if State(42).String() != "state(42)" {
		t.Fatalf("unexpected %q", State(42).String())
	}
}

func TestMenuClick(t *testing.T) {
	cases := []struct {
		name string
		in   func(h *harness) *obj.KeyState
		want State
	}{
		{"inside", func(h *harness) *obj.KeyState { return clickAt(center(h, -1)) }, StateFadeOutMenu},
		{"outside", func(h *harness) *obj.KeyState { return clickAt([2]int{5, 5}) }, StateMenu},
		{"held only", func(h *harness) *obj.KeyState {
			in := clickAt(center(h, -1))
			in.PrimaryPressed = false
			return in
		}, StateMenu},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.tick(t, c.in(h), 16)
			if h.flow.State() != c.want {
				t.Fatalf("expected %s, got %s", c.want, h.flow.State())
			}
		})
	}
}

func TestMenuClickWithMockInput(t *testing.T) {
	h := newHarness(t)
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInput(ctrl)
	p := center(h, -1)
	in.EXPECT().IsJustPressed(obj.KeyEscape).Return(false)
	in.EXPECT().IsPrimaryButtonJustPressed().Return(true)
	in.EXPECT().CursorPosition().Return(p[0], p[1]).AnyTimes()

	h.tick(t, in, 16)
	if h.flow.State() != StateFadeOutMenu {
		t.Fatalf("expected fade out, got %s", h.flow.State())
	}
}

func TestEscapeQuitsFromEveryState(t *testing.T) {
	reach := map[State]func(t *testing.T, h *harness){
		StateMenu:        func(*testing.T, *harness) {},
		StateFadeOutMenu: func(t *testing.T, h *harness) { h.tick(t, clickAt(center(h, -1)), 16) },
		StateMessage: func(t *testing.T, h *harness) {
			h.tick(t, clickAt(center(h, -1)), 16)
			h.until(t, StateMessage, 16)
		},
		StateChapterSelect: func(t *testing.T, h *harness) { h.toChapterSelect(t) },
		StateLoading:       func(t *testing.T, h *harness) { _ = h.flow.StartChapter(0) },
		StateInLevel: func(t *testing.T, h *harness) {
			_ = h.flow.StartChapter(0)
			h.until(t, StateInLevel, 16)
		},
	}
	for state, fn := range reach {
		t.Run(state.String(), func(t *testing.T) {
			h := newHarness(t)
			fn(t, h)
			if h.flow.State() != state {
				t.Fatalf("setup reached %s, want %s", h.flow.State(), state)
			}
			_, err := h.flow.Step(obj.NewKeyState().Press(obj.KeyEscape), common.FrameClock{Now: h.now})
			if !errors.Is(err, ErrQuit) {
				t.Fatalf("expected ErrQuit, got %v", err)
			}
		})
	}
}

func TestMenuFadeReachesMessage(t *testing.T) {
	h := newHarness(t)
	h.tick(t, clickAt(center(h, -1)), 16)

	var last int
	for i := 0; i < 100 && h.flow.State() == StateFadeOutMenu; i++ {
		cmds := h.tick(t, obj.NewKeyState(), 16)
		op, ok := cmds.Ops[len(cmds.Ops)-1].(gfx.FillOp)
		if ok && h.flow.State() == StateFadeOutMenu {
			if int(op.Color.A) < last {
				t.Fatalf("overlay alpha went down: %d -> %d", last, op.Color.A)
			}
			last = int(op.Color.A)
		}
	}
	if h.flow.State() != StateMessage {
		t.Fatalf("expected message, got %s", h.flow.State())
	}
	if h.flow.banner == nil || h.flow.banner.Start != h.now {
		t.Fatalf("banner should start on the transition tick")
	}
}

func TestMessageIgnoresClicks(t *testing.T) {
	h := newHarness(t)
	h.tick(t, clickAt(center(h, -1)), 16)
	h.until(t, StateMessage, 16)

	h.tick(t, clickAt(center(h, 0)), 16)
	if h.flow.State() != StateMessage {
		t.Fatalf("click should not leave the message, got %s", h.flow.State())
	}
}

func TestMessageDrawsBanner(t *testing.T) {
	h := newHarness(t)
	h.tick(t, clickAt(center(h, -1)), 16)
	h.until(t, StateMessage, 16)

	cmds := h.tick(t, obj.NewKeyState(), 16)
	var found bool
	for _, op := range cmds.Ops {
		if text, ok := op.(gfx.TextOp); ok && text.Font == gfx.FontMessage {
			found = true
			if text.Text != h.flow.ctx.Specs.Scene.Message.Text {
				t.Fatalf("unexpected banner text %q", text.Text)
			}
			if text.OutlineWidth != 3 {
				t.Fatalf("expected outline 3, got %d", text.OutlineWidth)
			}
		}
	}
	if !found {
		t.Fatalf("expected the welcome text to be drawn")
	}
}

func TestChapterSelectHeldClick(t *testing.T) {
	h := newHarness(t)
	h.toChapterSelect(t)

	in := &obj.KeyState{PrimaryDown: true}
	p := center(h, 1)
	in.CursorX, in.CursorY = p[0], h.flow.layout.chapters[1].Max.Y-2
	h.tick(t, in, 16)
	if h.flow.State() != StateFadeOutChapter {
		t.Fatalf("expected fade out chapter, got %s", h.flow.State())
	}
	if h.flow.Chosen() != 1 {
		t.Fatalf("expected chapter 1, got %d", h.flow.Chosen())
	}

	h.until(t, StateLoading, 16)
	if h.flow.fade.Speed != 15 {
		t.Fatalf("expected load fade speed 15, got %d", h.flow.fade.Speed)
	}
	h.until(t, StateInLevel, 16)
	if len(h.built) != 1 || h.built[0] != level.PursuitName {
		t.Fatalf("expected pursuit to be built, got %v", h.built)
	}
}

func TestChapterTitleFadesIn(t *testing.T) {
	h := newHarness(t)
	h.toChapterSelect(t)
	for range 60 {
		h.tick(t, obj.NewKeyState(), 16)
	}
	if h.flow.titleAlpha != 255 {
		t.Fatalf("expected title alpha 255, got %d", h.flow.titleAlpha)
	}
}

func TestLevelDoneReturnsToChapters(t *testing.T) {
	h := newHarness(t)
	if err := h.flow.StartChapter(0); err != nil {
		t.Fatalf("StartChapter: %v", err)
	}
	h.until(t, StateInLevel, 16)
	lvl := h.levels[0]

	h.tick(t, obj.NewKeyState(), 16)
	if lvl.steps == 0 || lvl.draws == 0 {
		t.Fatalf("level should be stepped and drawn")
	}

	lvl.done = true
	h.tick(t, obj.NewKeyState(), 16)
	if h.flow.State() != StateChapterSelect {
		t.Fatalf("expected chapter select, got %s", h.flow.State())
	}
	if h.flow.Level() != nil {
		t.Fatalf("level should be released")
	}
	if h.flow.titleAlpha != 0 {
		t.Fatalf("title should fade in again, got %d", h.flow.titleAlpha)
	}
}

func TestLevelLoadFailureReturnsToChapters(t *testing.T) {
	h := newHarness(t)
	h.failOn = level.PuzzleName
	_ = h.flow.StartChapter(0)
	h.until(t, StateChapterSelect, 16)
	if h.flow.Level() != nil {
		t.Fatalf("no level expected")
	}
}

func TestPauseStopsStepping(t *testing.T) {
	h := newHarness(t)
	_ = h.flow.StartChapter(0)
	h.until(t, StateInLevel, 16)
	lvl := h.levels[0]

	h.tick(t, obj.NewKeyState().Press(obj.KeyP), 16)
	if !h.flow.Paused() {
		t.Fatalf("expected paused")
	}
	before := lvl.steps
	for range 5 {
		h.tick(t, obj.NewKeyState(), 16)
	}
	if lvl.steps != before {
		t.Fatalf("paused level stepped %d times", lvl.steps-before)
	}
	if lvl.draws == 0 {
		t.Fatalf("paused level should still draw")
	}

	h.flow.Resume()
	h.tick(t, obj.NewKeyState(), 16)
	if lvl.steps != before+1 {
		t.Fatalf("expected level to step after resume")
	}
}

func TestLeaveLevel(t *testing.T) {
	h := newHarness(t)
	_ = h.flow.StartChapter(1)
	h.until(t, StateInLevel, 16)
	h.flow.TogglePause()

	h.flow.LeaveLevel()
	h.tick(t, obj.NewKeyState(), 16)
	if h.flow.State() != StateChapterSelect {
		t.Fatalf("expected chapter select, got %s", h.flow.State())
	}
	if h.flow.Paused() {
		t.Fatalf("pause should be cleared")
	}
}

func TestStartChapterOutOfRange(t *testing.T) {
	h := newHarness(t)
	if err := h.flow.StartChapter(7); err == nil {
		t.Fatalf("expected error")
	}
	if h.flow.State() != StateMenu {
		t.Fatalf("state should not change, got %s", h.flow.State())
	}
}

func TestResizeKeepsState(t *testing.T) {
	h := newHarness(t)
	h.toChapterSelect(t)
	h.flow.Resize(1920, 1080)
	if h.flow.State() != StateChapterSelect {
		t.Fatalf("resize changed state to %s", h.flow.State())
	}
	if h.flow.layout.width != 1920 || h.flow.layout.height != 1080 {
		t.Fatalf("layout not rebuilt: %dx%d", h.flow.layout.width, h.flow.layout.height)
	}
	h.flow.Resize(0, 0)
	if h.flow.layout.width != 1920 {
		t.Fatalf("zero size should be ignored")
	}
}

func TestPlayButtonHover(t *testing.T) {
	h := newHarness(t)
	base := h.flow.layout.play

	cmds := h.tick(t, obj.NewKeyState(), 16)
	if got := cmds.Ops[1].(gfx.ImageOp).Dst; got != base {
		t.Fatalf("expected %v, got %v", base, got)
	}

	p := center(h, -1)
	cmds = h.tick(t, &obj.KeyState{CursorX: p[0], CursorY: p[1]}, 16)
	got := cmds.Ops[1].(gfx.ImageOp).Dst
	if got.Dx() <= base.Dx() || got.Dy() <= base.Dy() {
		t.Fatalf("hovered button should grow: %v vs %v", got, base)
	}
}

func TestFlowWithRealLevels(t *testing.T) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	logger := log.New(io.Discard)
	store := assets.NewStore(fstest.MapFS{}, "", logger)
	ctx := &Context{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		Assets: store,
		Specs:  specs,
		Logger: logger,
		NewLevel: func(name string, w, hgt int, now int64) (level.Level, error) {
			env := level.Env{Width: w, Height: hgt, Assets: store, Logger: logger, RNG: rand.New(rand.NewPCG(3, 4))}
			return level.New(env, specs, name, now)
		},
	}
	f, err := NewFlow(ctx)
	if err != nil {
		t.Fatalf("NewFlow: %v", err)
	}
	for i := range specs.Scene.ChapterSelect.Chapters {
		if err := f.StartChapter(i); err != nil {
			t.Fatalf("StartChapter(%d): %v", i, err)
		}
		var now int64
		for f.State() != StateInLevel && now < 10000 {
			now += 16
			if _, err := f.Step(obj.NewKeyState(), common.FrameClock{Now: now}); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
		if f.Level() == nil || f.Level().Name() != specs.Scene.ChapterSelect.Chapters[i].Level {
			t.Fatalf("chapter %d did not load its level", i)
		}
		cmds, err := f.Step(obj.NewKeyState(), common.FrameClock{Now: now + 16})
		if err != nil || cmds.Len() == 0 {
			t.Fatalf("expected level draw ops, err=%v", err)
		}
		f.LeaveLevel()
	}
}

func TestLevelOutcomeIsLogged(t *testing.T) {
	h := newHarness(t)
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	h.flow.logger = logger

	_ = h.flow.StartChapter(0)
	h.until(t, StateInLevel, 16)
	lvl := h.levels[0]

	buf.Reset()
	h.tick(t, obj.NewKeyState(), 16)
	if strings.Contains(buf.String(), "level outcome") {
		t.Fatalf("empty outcome should not be logged: %s", buf.String())
	}

	lvl.out = level.Outcome{Picked: []int{1}, Crafted: true}
	h.tick(t, obj.NewKeyState(), 16)
	if got := buf.String(); !strings.Contains(got, "level outcome") || !strings.Contains(got, "crafted=true") {
		t.Fatalf("expected outcome in log, got %q", got)
	}
}

func TestFadeOutChapterKeepsHoverIgnoresClicks(t *testing.T) {
	h := newHarness(t)
	h.toChapterSelect(t)
	p := center(h, 1)
	h.tick(t, &obj.KeyState{CursorX: p[0], CursorY: h.flow.layout.chapters[1].Max.Y - 2, PrimaryDown: true}, 16)
	if h.flow.State() != StateFadeOutChapter {
		t.Fatalf("expected fade out chapter, got %s", h.flow.State())
	}

	p0 := center(h, 0)
	cmds := h.tick(t, &obj.KeyState{CursorX: p0[0], CursorY: h.flow.layout.chapters[0].Min.Y + 2, PrimaryDown: true}, 16)
	if h.flow.Chosen() != 1 {
		t.Fatalf("click during fade changed the chapter to %d", h.flow.Chosen())
	}
	base := h.flow.layout.chapters[0]
	var grown bool
	for _, op := range cmds.Ops {
		if img, ok := op.(gfx.ImageOp); ok && img.Dst.Dx() > base.Dx() {
			grown = true
		}
	}
	if !grown {
		t.Fatalf("hovered thumbnail should still be scaled during the fade")
	}
}
