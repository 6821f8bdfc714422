package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/rocktung/gfx"
)

func TestOutlineOffsets(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{0, 0},
		{-2, 0},
		{1, 4},
		{2, 12},
		{3, 28},
	}
	for _, c := range cases {
		got := outlineOffsets(c.width)
		if len(got) != c.want {
			t.Fatalf("width %d: expected %d offsets, got %d", c.width, c.want, len(got))
		}
		for _, p := range got {
			if p == (image.Point{}) {
				t.Fatalf("width %d: origin should not be stamped", c.width)
			}
		}
	}
}

func TestImageGeoM(t *testing.T) {
	dst := image.Rect(100, 50, 300, 150)
	cases := []struct {
		name         string
		flipX, flipY bool
		// where source corner (0,0) and (w,h) land
		origin, far [2]float64
	}{
		{"plain", false, false, [2]float64{100, 50}, [2]float64{300, 150}},
		{"flip x", true, false, [2]float64{300, 50}, [2]float64{100, 150}},
		{"flip y", false, true, [2]float64{100, 150}, [2]float64{300, 50}},
		{"flip both", true, true, [2]float64{300, 150}, [2]float64{100, 50}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := imageGeoM(50, 25, gfx.ImageOp{Dst: dst, FlipX: c.flipX, FlipY: c.flipY})
			x, y := g.Apply(0, 0)
			if x != c.origin[0] || y != c.origin[1] {
				t.Fatalf("origin: expected %v, got (%v,%v)", c.origin, x, y)
			}
			x, y = g.Apply(50, 25)
			if x != c.far[0] || y != c.far[1] {
				t.Fatalf("far corner: expected %v, got (%v,%v)", c.far, x, y)
			}
		})
	}
}

func TestImageGeoMEmptySource(t *testing.T) {
	g := imageGeoM(0, 10, gfx.ImageOp{Dst: image.Rect(0, 0, 10, 10)})
	x, y := g.Apply(3, 4)
	if x != 3 || y != 4 {
		t.Fatalf("expected identity, got (%v,%v)", x, y)
	}
}

func TestTextStampsOutlineThenFill(t *testing.T) {
	op := gfx.TextOp{
		Text:         "Welcome",
		Color:        color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		OutlineColor: color.NRGBA{A: 255},
		OutlineWidth: 3,
		Alpha:        128,
	}
	stamps := textStamps(op)
	if len(stamps) != 29 {
		t.Fatalf("expected 28 outline stamps and a fill, got %d", len(stamps))
	}
	for i, st := range stamps[:len(stamps)-1] {
		if st.Color != op.OutlineColor || st.Offset == (image.Point{}) {
			t.Fatalf("stamp %d should be an offset outline pass, got %+v", i, st)
		}
	}
	if last := stamps[len(stamps)-1]; last.Color != op.Color || last.Offset != (image.Point{}) {
		t.Fatalf("fill should be drawn last at the origin, got %+v", last)
	}
}

func TestTextAlphaAppliedOnce(t *testing.T) {
	cases := []struct {
		alpha uint8
		want  float32
	}{
		{255, 1},
		{128, 128.0 / 255},
		{10, 10.0 / 255},
	}
	opaque := gfx.TextOp{Text: "Hi", Color: color.NRGBA{R: 255, A: 255}, OutlineColor: color.NRGBA{A: 255}, OutlineWidth: 2, Alpha: 255}
	want := textStamps(opaque)
	for _, c := range cases {
		op := opaque
		op.Alpha = c.alpha
		op.CenterX, op.CenterY = 100, 200

		if got := textAlpha(op); got != c.want {
			t.Fatalf("alpha %d: expected composite alpha %v, got %v", c.alpha, c.want, got)
		}
		got := textStamps(op)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("alpha %d: stamp %d changed with caption alpha: %+v vs %+v", c.alpha, i, got[i], want[i])
			}
		}
		if newTextKey(op) != newTextKey(opaque) {
			t.Fatalf("alpha %d: cached caption should be shared across alpha and position", c.alpha)
		}
	}
}

func TestTextKeyDistinguishesStyle(t *testing.T) {
	base := gfx.TextOp{Text: "Press F to pick up", Font: gfx.FontLevel, OutlineWidth: 2}
	other := base
	other.OutlineWidth = 3
	if newTextKey(base) == newTextKey(other) {
		t.Fatalf("outline width should be part of the key")
	}
	neg := base
	neg.OutlineWidth = -1
	zero := base
	zero.OutlineWidth = 0
	if newTextKey(neg) != newTextKey(zero) {
		t.Fatalf("negative outline should key like no outline")
	}
}
