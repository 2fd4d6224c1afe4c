package series

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/plot/axes"
	"github.com/matzehuels/chartkit/pkg/render"
)

// DefaultFillAlpha is the opacity of an area fill derived from the series
// color.
const DefaultFillAlpha = 0x60

// AreaSeries is a line with the region between it and Baseline filled.
type AreaSeries struct {
	XY

	Thickness float64
	// Baseline is the y value the area is filled down to.
	Baseline float64
	// Fill falls back to the series color at DefaultFillAlpha.
	Fill render.Color
}

// NewArea returns an area series filled down to zero.
func NewArea(title string) *AreaSeries {
	return &AreaSeries{XY: XY{Title: title}, Thickness: 2}
}

func (s *AreaSeries) SetDefaultValues(ps *plot.Session) { s.setDefaults(ps) }

// UpdateAxisRanges includes the points and the baseline.
func (s *AreaSeries) UpdateAxisRanges(ps *plot.Session) {
	s.XY.UpdateAxisRanges(ps)
	if len(s.Points) == 0 {
		return
	}
	if yr, ok := s.yAxis.(plot.RangedAxis); ok {
		yr.Include(s.Baseline)
	}
}

func (s *AreaSeries) fill() render.Color {
	if s.Fill.IsUndefined() {
		return s.actualColor.WithAlpha(DefaultFillAlpha)
	}
	return s.Fill
}

// Render draws the filled region and the line on top, clipped to the axes
// rectangle.
func (s *AreaSeries) Render(rc render.Context, ps *plot.Session) {
	if len(s.Points) == 0 || s.xAxis == nil || s.yAxis == nil {
		return
	}
	defer s.clip(rc)()

	lines := s.screenLines()
	fill := s.fill()
	if fill.IsVisible() {
		for _, l := range s.polygons() {
			rc.DrawPolygon(l, fill, render.Undefined, 0)
		}
	}
	for _, l := range lines {
		if len(l) > 1 {
			rc.DrawLine(l, s.actualColor, s.Thickness, nil)
		}
	}
}

// polygons closes every contiguous run of points down to the baseline.
func (s *AreaSeries) polygons() [][]geom.Point {
	var (
		out [][]geom.Point
		run []DataPoint
	)
	flush := func() {
		if len(run) > 1 {
			out = append(out, s.polygon(run))
		}
		run = nil
	}
	for _, p := range s.Points {
		if q, ok := axes.Transform(p.X, p.Y, s.xAxis, s.yAxis); !ok || !finite(q) {
			flush()
			continue
		}
		run = append(run, p)
	}
	flush()
	return out
}

func (s *AreaSeries) polygon(run []DataPoint) []geom.Point {
	pts := make([]geom.Point, 0, 2*len(run))
	for _, p := range run {
		q, _ := axes.Transform(p.X, p.Y, s.xAxis, s.yAxis)
		pts = append(pts, q)
	}
	for i := len(run) - 1; i >= 0; i-- {
		q, ok := axes.Transform(run[i].X, s.Baseline, s.xAxis, s.yAxis)
		if !ok || !finite(q) {
			// baseline outside a log axis: close along the plot edge
			q = geom.Point{X: pts[i].X, Y: s.ScreenRectangle().Bottom()}
		}
		pts = append(pts, q)
	}
	return pts
}

// RenderLegend draws a filled box with the line along its top edge.
func (s *AreaSeries) RenderLegend(rc render.Context, rect geom.Rect) {
	rc.DrawRectangle(rect, s.fill(), render.Undefined, 0)
	rc.DrawLine([]geom.Point{{X: rect.Left, Y: rect.Top}, {X: rect.Right(), Y: rect.Top}}, s.actualColor, s.Thickness, nil)
}
