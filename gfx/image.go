package gfx

import "image"

// Image is a decoded picture already scaled to the size it is drawn at.
// Opacity masks are built lazily and cached per orientation.
type Image struct {
	Key         string
	Src         image.Image
	Placeholder bool

	masks [2]*Mask
}

func NewImage(key string, src image.Image) *Image {
	return &Image{Key: key, Src: src}
}

// Size returns the pixel dimensions of the image.
func (i *Image) Size() (int, int) {
	if i == nil || i.Src == nil {
		return 0, 0
	}
	b := i.Src.Bounds()
	return b.Dx(), b.Dy()
}

// Mask returns the opacity mask, mirrored horizontally when flipX is set.
func (i *Image) Mask(flipX bool) *Mask {
	if i == nil || i.Src == nil {
		return &Mask{}
	}
	idx := 0
	if flipX {
		idx = 1
	}
	if i.masks[idx] != nil {
		return i.masks[idx]
	}
	m := NewMask(i.Src)
	if flipX {
		m = m.FlipH()
	}
	i.masks[idx] = m
	return m
}

// Frame lets a static image act as a Drawable.
func (i *Image) Frame() *Image { return i }

func (i *Image) Flipped() bool { return false }
