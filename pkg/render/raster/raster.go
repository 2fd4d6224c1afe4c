// Package raster implements [render.Context] on an in-memory image using
// github.com/fogleman/gg. Use it to produce PNG output without external
// converters.
package raster

import (
	"bytes"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/chartkit/pkg/fonts"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Option configures a Surface.
type Option func(*Surface)

// WithScale sets the device pixel ratio (default 1). A 400x300 chart drawn
// at scale 2 produces an 800x600 image.
func WithScale(scale float64) Option {
	return func(s *Surface) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithFaces shares a face cache between surfaces.
func WithFaces(fc *fonts.FaceCache) Option { return func(s *Surface) { s.faces = fc } }

// Surface is a raster drawing surface. It is not safe for concurrent use.
type Surface struct {
	dc    *gg.Context
	scale float64
	faces *fonts.FaceCache
}

// New creates a surface for a chart of width x height device-independent
// pixels.
func New(width, height float64, opts ...Option) *Surface {
	s := &Surface{scale: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.faces == nil {
		s.faces = fonts.NewFaceCache()
	}
	w := int(math.Ceil(math.Max(width, 1) * s.scale))
	h := int(math.Ceil(math.Max(height, 1) * s.scale))
	s.dc = gg.NewContext(w, h)
	s.dc.Scale(s.scale, s.scale)
	return s
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// PNG encodes the rendered image.
func (s *Surface) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Surface) MeasureText(text, font string, size float64, weight render.FontWeight) geom.Size {
	if text == "" {
		return geom.Size{}
	}
	face, err := s.faces.Face(size, weight.IsBold())
	if err != nil {
		return geom.Size{Width: float64(len(text)) * size * 0.6, Height: size * 1.2}
	}
	return fonts.Measure(face, text)
}

func (s *Surface) DrawRectangle(r geom.Rect, fill, stroke render.Color, thickness float64) {
	s.dc.DrawRectangle(r.Left, r.Top, r.Width, r.Height)
	s.paint(fill, stroke, thickness, nil)
}

func (s *Surface) DrawLine(points []geom.Point, stroke render.Color, thickness float64, dash []float64) {
	if len(points) < 2 {
		return
	}
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.paint(render.Undefined, stroke, thickness, dash)
}

func (s *Surface) DrawPolygon(points []geom.Point, fill, stroke render.Color, thickness float64) {
	if len(points) < 3 {
		return
	}
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.paint(fill, stroke, thickness, nil)
}

func (s *Surface) DrawEllipse(r geom.Rect, fill, stroke render.Color, thickness float64) {
	c := r.Center()
	s.dc.DrawEllipse(c.X, c.Y, r.Width/2, r.Height/2)
	s.paint(fill, stroke, thickness, nil)
}

func (s *Surface) DrawText(p geom.Point, text string, c render.Color, font string, size float64, weight render.FontWeight,
	rotation float64, ha render.HorizontalAlignment, va render.VerticalAlignment) {
	if text == "" || !c.IsVisible() {
		return
	}
	face, err := s.faces.Face(size, weight.IsBold())
	if err != nil {
		return
	}

	var ax, ay float64
	switch ha {
	case render.AlignCenter:
		ax = 0.5
	case render.AlignRight:
		ax = 1
	}
	// gg anchors vertically against the baseline: 1 puts the text below y.
	switch va {
	case render.AlignTop:
		ay = 1
	case render.AlignMiddle:
		ay = 0.5
	}

	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetFontFace(face)
	s.dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
	if rotation != 0 {
		s.dc.RotateAbout(gg.Radians(rotation), p.X, p.Y)
	}
	s.dc.DrawStringAnchored(text, p.X, p.Y, ax, ay)
}

func (s *Surface) SetClip(r geom.Rect) {
	s.dc.ResetClip()
	s.dc.DrawRectangle(r.Left, r.Top, r.Width, r.Height)
	s.dc.Clip()
}

func (s *Surface) ResetClip() { s.dc.ResetClip() }

func (s *Surface) CleanUp() {
	s.dc.ResetClip()
	s.faces.Sweep()
}

// paint fills and/or strokes the current path, then clears it.
func (s *Surface) paint(fill, stroke render.Color, thickness float64, dash []float64) {
	doStroke := stroke.IsVisible() && thickness > 0
	if fill.IsVisible() {
		s.dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
		if doStroke {
			s.dc.FillPreserve()
		} else {
			s.dc.Fill()
		}
	}
	if !doStroke {
		s.dc.ClearPath()
		return
	}
	s.dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	s.dc.SetLineWidth(thickness)
	if len(dash) > 0 {
		scaled := make([]float64, len(dash))
		for i, d := range dash {
			scaled[i] = d * thickness
		}
		s.dc.SetDash(scaled...)
	} else {
		s.dc.SetDash()
	}
	s.dc.Stroke()
}
