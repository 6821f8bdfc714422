// Package render executes frame draw lists on an ebiten screen.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/rocktung/gfx"
	"github.com/milk9111/rocktung/prefabs"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer draws gfx.Commands. It owns the GPU image cache and font faces.
type Renderer struct {
	registry *registry
	faces    map[gfx.Font]*text.GoTextFace
	texts    map[textKey]*ebiten.Image
	logger   *log.Logger
}

// New loads the font faces. A font that cannot be parsed is fatal.
func New(fonts prefabs.FontSpec, logger *log.Logger) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		registry: newRegistry(),
		texts:    map[textKey]*ebiten.Image{},
		faces: map[gfx.Font]*text.GoTextFace{
			gfx.FontBody:    {Source: src, Size: fontSize(fonts.Body, 20)},
			gfx.FontTitle:   {Source: src, Size: fontSize(fonts.Title, 32)},
			gfx.FontMessage: {Source: src, Size: fontSize(fonts.Message, 28)},
			gfx.FontLevel:   {Source: src, Size: fontSize(fonts.Level, 32)},
		},
		logger: logger,
	}, nil
}

func fontSize(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// Draw executes cmds in order.
func (r *Renderer) Draw(screen *ebiten.Image, cmds *gfx.Commands) {
	if screen == nil || cmds == nil {
		return
	}
	for _, op := range cmds.Ops {
		switch op := op.(type) {
		case gfx.FillOp:
			r.fill(screen, op)
		case gfx.ImageOp:
			r.image(screen, op)
		case gfx.TextOp:
			r.text(screen, op)
		default:
			r.logger.Warn("unknown draw op", "op", fmt.Sprintf("%T", op))
		}
	}
}

// Images returns how many images have been uploaded.
func (r *Renderer) Images() int {
	return r.registry.len()
}

func (r *Renderer) fill(screen *ebiten.Image, op gfx.FillOp) {
	b := screen.Bounds()
	vector.FillRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), op.Color, false)
}

func (r *Renderer) image(screen *ebiten.Image, op gfx.ImageOp) {
	if op.Alpha == 0 || op.Dst.Empty() {
		return
	}
	src := r.registry.get(op.Image)
	if src == nil {
		return
	}
	w, h := op.Image.Size()
	opts := &ebiten.DrawImageOptions{GeoM: imageGeoM(w, h, op)}
	opts.ColorScale.ScaleAlpha(float32(op.Alpha) / 255)
	opts.Filter = ebiten.FilterLinear
	screen.DrawImage(src, opts)
}

// imageGeoM maps a w x h source onto op.Dst, mirroring as requested.
func imageGeoM(w, h int, op gfx.ImageOp) ebiten.GeoM {
	var g ebiten.GeoM
	if w <= 0 || h <= 0 {
		return g
	}
	sx, sy := 1.0, 1.0
	tx, ty := 0.0, 0.0
	if op.FlipX {
		sx, tx = -1, float64(w)
	}
	if op.FlipY {
		sy, ty = -1, float64(h)
	}
	g.Scale(sx, sy)
	g.Translate(tx, ty)
	g.Scale(float64(op.Dst.Dx())/float64(w), float64(op.Dst.Dy())/float64(h))
	g.Translate(float64(op.Dst.Min.X), float64(op.Dst.Min.Y))
	return g
}

func (r *Renderer) text(screen *ebiten.Image, op gfx.TextOp) {
	if op.Alpha == 0 || op.Text == "" {
		return
	}
	img := r.textImage(op)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(op.CenterX-w/2), float64(op.CenterY-h/2))
	opts.ColorScale.ScaleAlpha(textAlpha(op))
	screen.DrawImage(img, opts)
}

// textImage returns op's outline and fill composited at full opacity. The
// result is cached; op.Alpha is applied by the caller when drawing it.
func (r *Renderer) textImage(op gfx.TextOp) *ebiten.Image {
	key := newTextKey(op)
	if img, ok := r.texts[key]; ok {
		return img
	}
	face, ok := r.faces[op.Font]
	if !ok {
		face = r.faces[gfx.FontBody]
	}

	pad := max(0, op.OutlineWidth)
	tw, th := text.Measure(op.Text, face, face.Size)
	w := max(1, int(math.Ceil(tw))+2*pad)
	h := max(1, int(math.Ceil(th))+2*pad)
	img := ebiten.NewImage(w, h)
	for _, st := range textStamps(op) {
		opts := &text.DrawOptions{}
		opts.PrimaryAlign = text.AlignCenter
		opts.SecondaryAlign = text.AlignCenter
		opts.GeoM.Translate(float64(w/2+st.Offset.X), float64(h/2+st.Offset.Y))
		opts.ColorScale.ScaleWithColor(st.Color)
		text.Draw(img, op.Text, face, opts)
	}

	if len(r.texts) >= maxCachedTexts {
		clear(r.texts)
	}
	r.texts[key] = img
	return img
}

const maxCachedTexts = 64

// textKey identifies a composited caption independent of its alpha and
// position.
type textKey struct {
	text    string
	font    gfx.Font
	color   color.NRGBA
	outline color.NRGBA
	width   int
}

func newTextKey(op gfx.TextOp) textKey {
	return textKey{text: op.Text, font: op.Font, color: op.Color, outline: op.OutlineColor, width: max(0, op.OutlineWidth)}
}

// textStamp is one glyph pass into the caption image.
type textStamp struct {
	Offset image.Point
	Color  color.NRGBA
}

// textStamps lists the outline passes followed by the fill pass. Colours are
// used as given; the caption's alpha is not part of any stamp.
func textStamps(op gfx.TextOp) []textStamp {
	offsets := outlineOffsets(op.OutlineWidth)
	stamps := make([]textStamp, 0, len(offsets)+1)
	for _, off := range offsets {
		stamps = append(stamps, textStamp{Offset: off, Color: op.OutlineColor})
	}
	return append(stamps, textStamp{Color: op.Color})
}

// textAlpha is the single opacity applied to a composited caption.
func textAlpha(op gfx.TextOp) float32 {
	return float32(op.Alpha) / 255
}

// outlineOffsets returns the non-zero offsets inside a disc of radius width.
func outlineOffsets(width int) []image.Point {
	if width <= 0 {
		return nil
	}
	var pts []image.Point
	for dy := -width; dy <= width; dy++ {
		for dx := -width; dx <= width; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx*dx+dy*dy <= width*width {
				pts = append(pts, image.Pt(dx, dy))
			}
		}
	}
	return pts
}
