package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/common"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/level"
	"github.com/milk9111/rocktung/obj"
	"github.com/milk9111/rocktung/prefabs"
	"github.com/milk9111/rocktung/render"
	"github.com/milk9111/rocktung/scene"
)

const prefabsDir = "prefabs"

type Options struct {
	Debug     bool
	Chapter   int
	Seed      uint64
	Watch     bool
	AssetsDir string
	Logger    *log.Logger
}

type Game struct {
	debug bool

	flow     *scene.Flow
	renderer *render.Renderer
	input    obj.Input
	clock    common.Clock
	frame    common.FrameClock
	cmds     *gfx.Commands
	pauseUI  *ebitenui.UI
	specs    *prefabs.Specs
	watcher  *prefabs.Watcher
	logger   *log.Logger
	width    int
	height   int
}

func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var watcher *prefabs.Watcher
	if opts.Watch {
		prefabs.EnableDiskOverrides(prefabsDir)
		w, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			return nil, fmt.Errorf("watch prefabs: %w", err)
		}
		watcher = w
	}

	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(specs.Scene.Fonts, logger)
	if err != nil {
		return nil, err
	}

	store := assets.NewStore(assets.Embedded(), opts.AssetsDir, logger)
	ctx := &scene.Context{
		Width:    common.BaseWidth,
		Height:   common.BaseHeight,
		Assets:   store,
		Specs:    specs,
		Logger:   logger,
		NewLevel: levelFactory(store, specs, logger, rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))),
	}
	flow, err := scene.NewFlow(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Chapter > 0 {
		if err := flow.StartChapter(opts.Chapter - 1); err != nil {
			return nil, err
		}
	}

	g := &Game{
		debug:    opts.Debug,
		flow:     flow,
		renderer: renderer,
		input:    NewInput(),
		clock:    common.NewMonotonicClock(),
		cmds:     &gfx.Commands{},
		specs:    specs,
		watcher:  watcher,
		logger:   logger,
		width:    common.BaseWidth,
		height:   common.BaseHeight,
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// levelFactory builds levels against a shared RNG so one seed fixes a run.
func levelFactory(store *assets.Store, specs *prefabs.Specs, logger *log.Logger, rng *rand.Rand) scene.LevelFactory {
	return func(name string, w, h int, now int64) (level.Level, error) {
		env := level.Env{Width: w, Height: h, Assets: store, Logger: logger, RNG: rng}
		return level.New(env, specs, name, now)
	}
}

// TPS returns the tick rate the fade speeds are tuned for.
func (g *Game) TPS() int {
	return g.specs.Scene.FPS
}

func (g *Game) Update() error {
	g.frame = g.frame.Tick(g.clock)

	if g.input.IsJustPressed(obj.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.reloadSpecs()

	cmds, err := g.flow.Step(g.input, g.frame)
	if errors.Is(err, scene.ErrQuit) {
		g.logger.Info("quit")
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	g.cmds = cmds

	if g.flow.Paused() {
		g.pauseUI.Update()
	}
	return nil
}

// reloadSpecs applies edited prefab files. Running levels keep their values;
// the next level built picks the new ones up.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		g.logger.Warn("prefab watcher", "err", err)
	}
	if len(changed) == 0 {
		return
	}
	for _, name := range changed {
		if mod, ok := prefabs.ModTime(name); ok {
			g.logger.Debug("prefab changed", "file", name, "modified", mod.Format(time.TimeOnly))
		}
	}
	specs, err := prefabs.LoadAll()
	if err != nil {
		g.logger.Error("prefab reload failed", "files", changed, "err", err)
		return
	}
	*g.specs = *specs
	g.flow.Resize(g.width, g.height)
	g.logger.Info("prefabs reloaded", "files", changed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.cmds)
	if g.flow.Paused() {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  state: %s  images: %d",
			ebiten.ActualFPS(), g.flow.State(), g.renderer.Images()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.flow.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.logger.Warn("close watcher", "err", err)
		}
	}
}
