package series

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// LineSeries connects its points with a polyline and optionally marks them.
type LineSeries struct {
	XY

	Thickness float64
	// Dash is the dash pattern in multiples of Thickness; nil is solid.
	Dash []float64

	Marker       MarkerType
	MarkerSize   float64      // radius
	MarkerFill   render.Color // falls back to the series color
	MarkerStroke render.Color
}

// NewLine returns a solid line series without markers.
func NewLine(title string) *LineSeries {
	return &LineSeries{XY: XY{Title: title}, Thickness: 2, MarkerSize: 3}
}

func (s *LineSeries) SetDefaultValues(ps *plot.Session) { s.setDefaults(ps) }

// Render draws the line clipped to the axes rectangle.
func (s *LineSeries) Render(rc render.Context, ps *plot.Session) {
	if len(s.Points) == 0 || s.xAxis == nil || s.yAxis == nil {
		return
	}
	defer s.clip(rc)()

	lines := s.screenLines()
	for _, l := range lines {
		if len(l) > 1 {
			rc.DrawLine(l, s.actualColor, s.Thickness, s.Dash)
		}
	}
	if s.Marker == MarkerNone {
		return
	}
	fill := s.MarkerFill.Or(s.actualColor)
	for _, l := range lines {
		for _, p := range l {
			drawMarker(rc, p, s.Marker, s.MarkerSize, fill, s.MarkerStroke, 1)
		}
	}
}

// RenderLegend draws a short line through the middle of rect.
func (s *LineSeries) RenderLegend(rc render.Context, rect geom.Rect) {
	mid := rect.Top + rect.Height/2
	rc.DrawLine([]geom.Point{{X: rect.Left, Y: mid}, {X: rect.Right(), Y: mid}}, s.actualColor, s.Thickness, s.Dash)
	if s.Marker != MarkerNone {
		drawMarker(rc, rect.Center(), s.Marker, s.MarkerSize, s.MarkerFill.Or(s.actualColor), s.MarkerStroke, 1)
	}
}
