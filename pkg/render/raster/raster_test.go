package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

func TestSurfaceScale(t *testing.T) {
	s := New(40, 30, WithScale(2))
	b := s.Image().Bounds()
	if b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("image size = %dx%d, want 80x60", b.Dx(), b.Dy())
	}
}

func TestFillRectangle(t *testing.T) {
	s := New(20, 20)
	s.DrawRectangle(geom.Rect{Left: 0, Top: 0, Width: 20, Height: 20}, render.RGB(255, 0, 0), render.Undefined, 0)

	r, g, b, a := s.Image().At(10, 10).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestClipRestrictsDrawing(t *testing.T) {
	s := New(20, 20)
	s.SetClip(geom.Rect{Left: 0, Top: 0, Width: 10, Height: 20})
	s.DrawRectangle(geom.Rect{Width: 20, Height: 20}, render.Black, render.Undefined, 0)
	s.ResetClip()

	if _, _, _, a := s.Image().At(15, 10).RGBA(); a != 0 {
		t.Error("pixel outside clip should stay transparent")
	}
	if _, _, _, a := s.Image().At(5, 10).RGBA(); a == 0 {
		t.Error("pixel inside clip should be painted")
	}
}

func TestPNG(t *testing.T) {
	s := New(10, 10)
	s.DrawText(geom.Point{X: 5, Y: 5}, "x", render.Black, render.DefaultFont, 8, render.Normal,
		0, render.AlignCenter, render.AlignMiddle)
	s.CleanUp()

	data, err := s.PNG()
	if err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}
