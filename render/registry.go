package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocktung/gfx"
)

// registry uploads each decoded image once and keeps the GPU copy for as
// long as the source is alive in the asset store.
type registry struct {
	images map[*gfx.Image]*ebiten.Image
}

func newRegistry() *registry {
	return &registry{images: map[*gfx.Image]*ebiten.Image{}}
}

func (r *registry) get(img *gfx.Image) *ebiten.Image {
	if img == nil || img.Src == nil {
		return nil
	}
	if cached, ok := r.images[img]; ok {
		return cached
	}
	e := ebiten.NewImageFromImage(img.Src)
	r.images[img] = e
	return e
}

func (r *registry) len() int {
	return len(r.images)
}
