package gfx

import (
	"image"
	"testing"
)

func TestOverlayClamps(t *testing.T) {
	var c Commands
	c.Overlay(0)
	if c.Len() != 0 {
		t.Fatalf("zero alpha overlay should be skipped")
	}
	c.Overlay(400)
	op, ok := c.Ops[0].(FillOp)
	if !ok || op.Color.A != 255 {
		t.Fatalf("expected clamped black overlay, got %#v", c.Ops[0])
	}
}

func TestScaleKeepsCenter(t *testing.T) {
	r := image.Rect(100, 100, 300, 180)
	s := Scale(r, 1.05)
	if s.Dx() != 210 || s.Dy() != 84 {
		t.Fatalf("unexpected scaled size %v", s)
	}
	if s.Min.X+s.Dx()/2 != 200 || s.Min.Y+s.Dy()/2 != 140 {
		t.Fatalf("center moved: %v", s)
	}
}

func TestMidBottom(t *testing.T) {
	img := NewImage("p", image.NewNRGBA(image.Rect(0, 0, 100, 150)))
	r := MidBottom(img, 640, 675)
	if r != image.Rect(590, 525, 690, 675) {
		t.Fatalf("unexpected rect %v", r)
	}
}
