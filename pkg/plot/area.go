package plot

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// updatePlotArea computes the plot, title and legend areas from the
// viewport size, padding, current margins, titles and legend settings.
func (s *Session) updatePlotArea(rc render.Context) {
	m, l := s.Model, s.Layout

	area := geom.Rect{
		Left:   m.Padding.Left,
		Top:    m.Padding.Top,
		Width:  math.Max(0, l.Width-m.Padding.Horizontal()),
		Height: math.Max(0, l.Height-m.Padding.Vertical()),
	}

	titles := m.measureTitles(rc)
	if th := titles.height(); th > 0 {
		shift := th + m.TitlePadding
		area.Top += shift
		area.Height = math.Max(0, area.Height-shift)
	}

	area = area.Deflate(l.ActualMargins)

	s.legend = legendLayout{}
	if s.isLegendVisible() {
		lg := s.Legend
		available := area.Size()
		if lg.Placement == LegendInside {
			available.Width -= 2 * lg.Margin
			available.Height -= 2 * lg.Margin
		}
		available.Width = math.Max(0, available.Width)
		available.Height = math.Max(0, available.Height)

		s.legend = s.measureLegend(rc, available)
		if lg.Placement == LegendOutside {
			area = shrinkForLegend(area, lg, s.legend.size)
		}
	}

	if area.Height <= 0 {
		area.Height = 1
	}
	if area.Width <= 0 {
		area.Width = 1
	}

	l.PlotArea = area
	l.PlotAndAxisArea = area.Inflate(l.ActualMargins)
	l.TitleArea = geom.Rect{
		Left:   area.Left,
		Top:    m.Padding.Top,
		Width:  area.Width,
		Height: titles.height() + 2*m.TitlePadding,
	}
	l.LegendArea = geom.Rect{}
	if s.isLegendVisible() {
		l.LegendArea = legendRect(s.Legend, s.legend.size, l.PlotArea, l.PlotAndAxisArea)
	}
}

// shrinkForLegend makes room for an outside legend on its edge.
func shrinkForLegend(area geom.Rect, lg Legend, size geom.Size) geom.Rect {
	switch lg.Position.Edge() {
	case PositionLeft:
		d := size.Width + lg.Margin
		area.Left += d
		area.Width -= d
	case PositionRight:
		area.Width -= size.Width + lg.Margin
	case PositionTop:
		d := size.Height + lg.Margin
		area.Top += d
		area.Height -= d
	case PositionBottom:
		area.Height -= size.Height + lg.Margin
	}
	return area
}
