package scene

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/level"
	"github.com/milk9111/rocktung/prefabs"
)

// ErrQuit is returned from Step when the player asks to leave the game.
var ErrQuit = errors.New("scene: quit")

// LevelFactory builds the named level for a w x h screen.
type LevelFactory func(name string, w, h int, now int64) (level.Level, error)

// Context carries what the flow needs from the application shell.
type Context struct {
	Width    int
	Height   int
	Assets   *assets.Store
	Specs    *prefabs.Specs
	Logger   *log.Logger
	NewLevel LevelFactory
}
