package annotations

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// LineKind is the direction of a line annotation.
type LineKind int

const (
	// Horizontal lines mark a y value.
	Horizontal LineKind = iota
	// Vertical lines mark an x value.
	Vertical
)

// Line marks a data value with a line across the plot.
type Line struct {
	Base
	Kind      LineKind
	Value     float64
	Color     render.Color
	Thickness float64
	Dash      []float64
}

// NewHorizontalLine returns a dashed line at y.
func NewHorizontalLine(y float64, text string) *Line {
	return &Line{Base: Base{Text: text}, Kind: Horizontal, Value: y,
		Color: render.RGB(0xc0, 0x30, 0x30), Thickness: 1, Dash: []float64{4, 2}}
}

// NewVerticalLine returns a dashed line at x.
func NewVerticalLine(x float64, text string) *Line {
	l := NewHorizontalLine(x, text)
	l.Kind = Vertical
	return l
}

// Render draws the line and its label, which sits at the end of the line
// (horizontal) or at its top (vertical).
func (l *Line) Render(rc render.Context, s *plot.Session) {
	f, ok := l.resolve(s)
	if !ok || math.IsNaN(l.Value) {
		return
	}

	var a, b geom.Point
	if l.Kind == Horizontal {
		x0, x1 := f.xRange(math.NaN(), math.NaN())
		a, b = f.point(x0, l.Value), f.point(x1, l.Value)
	} else {
		y0, y1 := f.yRange(math.NaN(), math.NaN())
		a, b = f.point(l.Value, y0), f.point(l.Value, y1)
	}
	if !f.contains(a) && !f.contains(b) {
		return
	}

	rc.SetClip(f.clip)
	defer rc.ResetClip()
	rc.DrawLine([]geom.Point{a, b}, l.Color, l.Thickness, l.Dash)

	if l.Text == "" {
		return
	}
	const gap = 3
	if l.Kind == Horizontal {
		end := a
		if b.X > a.X {
			end = b
		}
		render.DrawMathText(rc, end.Offset(-gap, -gap), l.Text, l.textColor(s), l.font(s), l.fontSize(s),
			render.Normal, 0, render.AlignRight, render.AlignBottom)
		return
	}
	top := a
	if b.Y < a.Y {
		top = b
	}
	render.DrawMathText(rc, top.Offset(gap, gap), l.Text, l.textColor(s), l.font(s), l.fontSize(s),
		render.Normal, 0, render.AlignLeft, render.AlignTop)
}
