package obj

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rocktung/gfx"
)

// Stone is a collectible resting on the ground. Pos is its midbottom.
type Stone struct {
	Index     int
	Pos       cp.Vector
	Image     *gfx.Image
	Collected bool
}

func (s *Stone) Rect() image.Rectangle {
	return gfx.MidBottom(s.Image, s.Pos.X, s.Pos.Y)
}

// Bounds is Rect as a cp.BB in screen space.
func (s *Stone) Bounds() cp.BB {
	r := s.Rect()
	return cp.BB{L: float64(r.Min.X), B: float64(r.Min.Y), R: float64(r.Max.X), T: float64(r.Max.Y)}
}

// Touches reports whether box overlaps an uncollected stone. Shared edges do
// not count.
func (s *Stone) Touches(box cp.BB) bool {
	if s == nil || s.Collected {
		return false
	}
	b := s.Bounds()
	return box.L < b.R && b.L < box.R && box.B < b.T && b.B < box.T
}
