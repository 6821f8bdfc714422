package level

import (
	"io"
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/milk9111/rocktung/assets"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/prefabs"
)

func testEnv(seed uint64) Env {
	logger := log.New(io.Discard)
	return Env{
		Width:  1280,
		Height: 720,
		Assets: assets.NewStore(fstest.MapFS{}, "", logger),
		Logger: logger,
		RNG:    rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func testSpecs(t *testing.T) *prefabs.Specs {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return specs
}

func TestNew(t *testing.T) {
	specs := testSpecs(t)
	cases := []struct {
		name    string
		wantErr bool
	}{
		{PuzzleName, false},
		{PursuitName, false},
		{"chapter9", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := New(testEnv(1), specs, c.name, 0)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if lvl.Name() != c.name {
				t.Fatalf("expected %s, got %s", c.name, lvl.Name())
			}
			if lvl.Done() {
				t.Fatalf("new level should not be done")
			}
			lvl.Finish()
			if !lvl.Done() {
				t.Fatalf("expected done after Finish")
			}
		})
	}
}

func countImages(cmds *gfx.Commands) int {
	n := 0
	for _, op := range cmds.Ops {
		if _, ok := op.(gfx.ImageOp); ok {
			n++
		}
	}
	return n
}

func texts(cmds *gfx.Commands) []string {
	var out []string
	for _, op := range cmds.Ops {
		if t, ok := op.(gfx.TextOp); ok {
			out = append(out, t.Text)
		}
	}
	return out
}
