package series

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/plot/axes"
	"github.com/matzehuels/chartkit/pkg/render"
)

// DataPoint is a point in data space. A NaN coordinate breaks a line.
type DataPoint struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

var (
	_ plot.BackgroundSeries = (*LineSeries)(nil)
	_ plot.LegendSeries     = (*LineSeries)(nil)
	_ plot.RangeSeries      = (*LineSeries)(nil)
	_ plot.BackgroundSeries = (*ScatterSeries)(nil)
	_ plot.LegendSeries     = (*ScatterSeries)(nil)
	_ plot.RangeSeries      = (*ScatterSeries)(nil)
	_ plot.BackgroundSeries = (*AreaSeries)(nil)
	_ plot.LegendSeries     = (*AreaSeries)(nil)
	_ plot.RangeSeries      = (*AreaSeries)(nil)
)

// XY holds what all XY series have in common.
type XY struct {
	Title  string
	Hidden bool

	XAxisKey string
	YAxisKey string

	Points []DataPoint

	// Color is the series color; Undefined takes one from the palette.
	Color render.Color
	// BackgroundColor fills the rectangle spanned by the series axes.
	BackgroundColor render.Color

	actualColor  render.Color
	xAxis, yAxis plot.Axis
	session      *plot.Session
}

func (s *XY) IsVisible() bool          { return !s.Hidden }
func (s *XY) LegendTitle() string      { return s.Title }
func (s *XY) Background() render.Color { return s.BackgroundColor }

// ActualColor returns the color resolved by the last render.
func (s *XY) ActualColor() render.Color { return s.actualColor }

// Axes returns the axes resolved by the last render.
func (s *XY) Axes() (x, y plot.Axis) { return s.xAxis, s.yAxis }

// Add appends a point.
func (s *XY) Add(x, y float64) { s.Points = append(s.Points, DataPoint{X: x, Y: y}) }

// setDefaults resolves the axes and the automatic color.
func (s *XY) setDefaults(ps *plot.Session) {
	s.session = ps
	s.xAxis, s.yAxis = ps.ResolveAxes(s.XAxisKey, s.YAxisKey)
	s.actualColor = s.Color
	if s.Color.IsUndefined() {
		s.actualColor = ps.NextColor()
	}
}

// UpdateAxisRanges includes the points in the data range of the axes.
func (s *XY) UpdateAxisRanges(*plot.Session) {
	xr, xok := s.xAxis.(plot.RangedAxis)
	yr, yok := s.yAxis.(plot.RangedAxis)
	for _, p := range s.Points {
		if xok {
			xr.Include(p.X)
		}
		if yok {
			yr.Include(p.Y)
		}
	}
}

// ScreenRectangle returns the screen rectangle spanned by the series axes.
func (s *XY) ScreenRectangle() geom.Rect {
	if s.session == nil {
		return geom.Rect{}
	}
	return axes.ScreenRect(s.xAxis, s.yAxis, s.session.PlotArea())
}

// screenLines transforms the points into polylines, breaking at points that
// are missing or have no screen position (such as zero on a log axis).
func (s *XY) screenLines() [][]geom.Point {
	var (
		lines [][]geom.Point
		cur   []geom.Point
	)
	for _, p := range s.Points {
		q, ok := axes.Transform(p.X, p.Y, s.xAxis, s.yAxis)
		if !ok || !finite(q) {
			if len(cur) > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, q)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// clip restricts drawing to the series' screen rectangle. The returned
// function undoes it.
func (s *XY) clip(rc render.Context) func() {
	rc.SetClip(s.ScreenRectangle())
	return rc.ResetClip
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
