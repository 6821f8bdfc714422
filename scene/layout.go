package scene

import (
	"image"

	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/prefabs"
)

// layout holds screen-size dependent positions. It is rebuilt on resize.
type layout struct {
	width    int
	height   int
	title    image.Point
	spacing  int
	play     image.Rectangle
	chapters []image.Rectangle
}

func computeLayout(w, h int, spec prefabs.SceneSpec, play, thumb *gfx.Image, chapters int) layout {
	l := layout{
		width:   w,
		height:  h,
		title:   image.Pt(w/2, int(float64(h)*spec.ChapterSelect.TitleHeightRatio)),
		spacing: int(float64(h) * spec.ChapterSelect.SpacingRatio),
	}

	pw, ph := play.Size()
	targetH := max(1, int(float64(min(w, h))*spec.Menu.ButtonHeightRatio))
	targetW := max(1, int(float64(pw)*float64(targetH)/float64(max(1, ph))))
	l.play = gfx.CenteredRect(w/2, h/2+int(float64(h)*spec.Menu.ButtonOffsetRatio), targetW, targetH)

	tw, th := thumb.Size()
	cw := int(float64(w) * spec.ChapterSelect.ThumbnailWidthRatio)
	ch := int(float64(th) * float64(cw) / float64(max(1, tw)))
	for i := range chapters {
		offset := (2*i - (chapters - 1)) * l.spacing / 2
		l.chapters = append(l.chapters, gfx.CenteredRect(w/2, h/2+offset, cw, ch))
	}
	return l
}
