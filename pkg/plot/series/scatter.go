package series

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// ScatterSeries draws a marker at every point.
type ScatterSeries struct {
	XY

	Marker          MarkerType
	MarkerSize      float64 // radius
	Stroke          render.Color
	StrokeThickness float64
}

// NewScatter returns a scatter series with circle markers.
func NewScatter(title string) *ScatterSeries {
	return &ScatterSeries{XY: XY{Title: title}, Marker: MarkerCircle, MarkerSize: 4, StrokeThickness: 1}
}

func (s *ScatterSeries) SetDefaultValues(ps *plot.Session) { s.setDefaults(ps) }

// Render draws the markers clipped to the axes rectangle.
func (s *ScatterSeries) Render(rc render.Context, ps *plot.Session) {
	if len(s.Points) == 0 || s.xAxis == nil || s.yAxis == nil {
		return
	}
	defer s.clip(rc)()

	for _, l := range s.screenLines() {
		for _, p := range l {
			drawMarker(rc, p, s.marker(), s.MarkerSize, s.actualColor, s.Stroke, s.StrokeThickness)
		}
	}
}

// RenderLegend draws one marker in the middle of rect.
func (s *ScatterSeries) RenderLegend(rc render.Context, rect geom.Rect) {
	r := math.Min(s.MarkerSize, math.Min(rect.Width, rect.Height)/2)
	drawMarker(rc, rect.Center(), s.marker(), r, s.actualColor, s.Stroke, s.StrokeThickness)
}

func (s *ScatterSeries) marker() MarkerType {
	if s.Marker == MarkerNone {
		return MarkerCircle
	}
	return s.Marker
}
