package gfx

import (
	"image"
	"math"
)

// Drawable is anything with a current frame to blit or collide: a static
// *Image or an animated entity.
type Drawable interface {
	Frame() *Image
	Flipped() bool
}

// MidBottom returns the rectangle of d's current frame with its bottom edge
// centered on (x, y).
func MidBottom(d Drawable, x, y float64) image.Rectangle {
	if d == nil {
		return image.Rectangle{}
	}
	w, h := d.Frame().Size()
	left := int(math.Floor(x)) - w/2
	bottom := int(math.Floor(y))
	return image.Rect(left, bottom-h, left+w, bottom)
}

// Collide runs a pixel-mask test between two drawables placed at their
// screen rectangles.
func Collide(a Drawable, ar image.Rectangle, b Drawable, br image.Rectangle) bool {
	if a == nil || b == nil {
		return false
	}
	if !ar.Overlaps(br) {
		return false
	}
	am := a.Frame().Mask(a.Flipped())
	bm := b.Frame().Mask(b.Flipped())
	return am.Overlap(bm, br.Min.X-ar.Min.X, br.Min.Y-ar.Min.Y)
}

// Blit queues d's current frame at dst with its orientation.
func Blit(cmds *Commands, d Drawable, dst image.Rectangle) {
	if cmds == nil || d == nil {
		return
	}
	cmds.Add(ImageOp{Image: d.Frame(), Dst: dst, FlipX: d.Flipped(), Alpha: 255})
}
