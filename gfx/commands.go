package gfx

import (
	"image"
	"image/color"
)

// Font selects one of the renderer's text faces.
type Font int

const (
	FontBody Font = iota
	FontTitle
	FontMessage
	FontLevel
)

// Op is a single draw instruction. Simulation code emits ops; the renderer
// executes them in order.
type Op interface {
	isOp()
}

// FillOp covers the whole screen with Color. Color.A acts as opacity, so a
// black FillOp doubles as a fade overlay.
type FillOp struct {
	Color color.NRGBA
}

// ImageOp scales Image into Dst.
type ImageOp struct {
	Image *Image
	Dst   image.Rectangle
	FlipX bool
	FlipY bool
	Alpha uint8
}

// TextOp draws a single line centered on (CenterX, CenterY). OutlineWidth > 0
// stamps the glyphs in OutlineColor at every offset within that radius first.
type TextOp struct {
	Text         string
	Font         Font
	Color        color.NRGBA
	OutlineColor color.NRGBA
	OutlineWidth int
	CenterX      int
	CenterY      int
	Alpha        uint8
}

func (FillOp) isOp()  {}
func (ImageOp) isOp() {}
func (TextOp) isOp()  {}

// Commands is the per-frame draw list.
type Commands struct {
	Ops []Op
}

func (c *Commands) Add(op Op) {
	if c == nil || op == nil {
		return
	}
	c.Ops = append(c.Ops, op)
}

// Fill queues an opaque full-screen fill.
func (c *Commands) Fill(col color.NRGBA) {
	col.A = 255
	c.Add(FillOp{Color: col})
}

// Overlay queues a black full-screen layer at alpha.
func (c *Commands) Overlay(alpha int) {
	if alpha <= 0 {
		return
	}
	if alpha > 255 {
		alpha = 255
	}
	c.Add(FillOp{Color: color.NRGBA{A: uint8(alpha)}})
}

// Draw queues img fully opaque at dst.
func (c *Commands) Draw(img *Image, dst image.Rectangle) {
	if img == nil {
		return
	}
	c.Add(ImageOp{Image: img, Dst: dst, Alpha: 255})
}

// Len returns the number of queued ops.
func (c *Commands) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Ops)
}

func (c *Commands) Reset() {
	if c == nil {
		return
	}
	c.Ops = c.Ops[:0]
}

// Scale returns r resized by factor about its center.
func Scale(r image.Rectangle, factor float64) image.Rectangle {
	w := int(float64(r.Dx()) * factor)
	h := int(float64(r.Dy()) * factor)
	return CenteredRect(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2, w, h)
}

// CenteredRect returns a w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h int) image.Rectangle {
	x := cx - w/2
	y := cy - h/2
	return image.Rect(x, y, x+w, y+h)
}
