package gfx

import "image"

// alphaThreshold is the 8-bit alpha above which a pixel counts as solid.
const alphaThreshold = 127

// Mask is a per-pixel opacity bitmap used for pixel-accurate collision.
type Mask struct {
	W, H int
	bits []bool
}

// NewMask marks every pixel of img whose alpha exceeds the threshold.
func NewMask(img image.Image) *Mask {
	if img == nil {
		return &Mask{}
	}
	b := img.Bounds()
	m := &Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.W+x] = a>>8 > alphaThreshold
		}
	}
	return m
}

// At reports whether (x, y) is solid. Out-of-bounds pixels are empty.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipH returns a horizontally mirrored copy.
func (m *Mask) FlipH() *Mask {
	if m == nil {
		return &Mask{}
	}
	out := &Mask{W: m.W, H: m.H, bits: make([]bool, len(m.bits))}
	for y := 0; y < m.H; y++ {
		row := y * m.W
		for x := 0; x < m.W; x++ {
			out.bits[row+m.W-1-x] = m.bits[row+x]
		}
	}
	return out
}

// Overlap reports whether any solid pixel of m coincides with a solid pixel
// of other when other's top-left corner sits at (dx, dy) in m's space.
// a.Overlap(b, dx, dy) == b.Overlap(a, -dx, -dy).
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.W, dx+other.W)
	y1 := min(m.H, dy+other.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.W+x] && other.bits[(y-dy)*other.W+(x-dx)] {
				return true
			}
		}
	}
	return false
}
