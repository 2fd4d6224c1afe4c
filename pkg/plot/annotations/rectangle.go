package annotations

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Rectangle shades a region in data space. NaN limits extend to the axis
// limits, so a rectangle with only MinY and MaxY set is a horizontal band.
type Rectangle struct {
	Base
	MinX, MaxX float64
	MinY, MaxY float64

	Fill            render.Color
	Stroke          render.Color
	StrokeThickness float64
}

// NewRectangle returns an unbounded rectangle; set the limits to confine
// it.
func NewRectangle(text string) *Rectangle {
	nan := math.NaN()
	return &Rectangle{
		Base: Base{Text: text},
		MinX: nan, MaxX: nan, MinY: nan, MaxY: nan,
		Fill: render.RGBA(0x30, 0x60, 0xc0, 0x30),
	}
}

// screen returns the screen rectangle of the annotation within the axes
// rectangle.
func (r *Rectangle) screen(f frame) geom.Rect {
	x0, x1 := f.xRange(r.MinX, r.MaxX)
	y0, y1 := f.yRange(r.MinY, r.MaxY)
	return geom.RectFromPoints(f.point(x0, y0), f.point(x1, y1)).Intersect(f.clip)
}

// Render fills the rectangle and centers the text in it.
func (r *Rectangle) Render(rc render.Context, s *plot.Session) {
	f, ok := r.resolve(s)
	if !ok {
		return
	}
	rect := r.screen(f)
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	render.DrawRectangleAsPolygon(rc, rect, r.Fill, r.Stroke, r.StrokeThickness)
	render.DrawMathText(rc, rect.Center(), r.Text, r.textColor(s), r.font(s), r.fontSize(s),
		render.Normal, 0, render.AlignCenter, render.AlignMiddle)
}
