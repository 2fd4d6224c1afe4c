package annotations

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Text places a label at a data point.
type Text struct {
	Base
	X, Y float64
	// Offset moves the text in screen units after transforming (X, Y).
	Offset     geom.Point
	Rotation   float64
	FontWeight render.FontWeight
	HAlign     render.HorizontalAlignment
	VAlign     render.VerticalAlignment
}

// NewText returns text centered on (x, y).
func NewText(x, y float64, text string) *Text {
	return &Text{Base: Base{Text: text}, X: x, Y: y, FontWeight: render.Normal,
		HAlign: render.AlignCenter, VAlign: render.AlignMiddle}
}

// Render draws the text if its anchor lies within the axes rectangle.
func (t *Text) Render(rc render.Context, s *plot.Session) {
	f, ok := t.resolve(s)
	if !ok {
		return
	}
	p := f.point(t.X, t.Y)
	if !f.contains(p) {
		return
	}
	render.DrawMathText(rc, p.Offset(t.Offset.X, t.Offset.Y), t.Text, t.textColor(s), t.font(s), t.fontSize(s),
		t.FontWeight, t.Rotation, t.HAlign, t.VAlign)
}
