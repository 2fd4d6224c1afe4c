package plot

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// renderPhases issues all drawing in z-order.
func (s *Session) renderPhases(rc render.Context) {
	s.renderBackgrounds(rc)
	s.renderAnnotations(rc, AnnotationBelowAxes)
	s.renderAxes(rc, BelowSeries)
	s.renderAnnotations(rc, AnnotationBelowSeries)
	s.renderSeries(rc)
	s.renderAnnotations(rc, AnnotationAboveSeries)
	s.renderTitle(rc)
	s.renderBox(rc)
	s.renderAxes(rc, AboveSeries)
	if s.isLegendVisible() {
		s.renderLegend(rc, s.legend)
	}
}

func (s *Session) renderBackgrounds(rc render.Context) {
	m, l := s.Model, s.Layout
	if m.Background.IsVisible() {
		rc.DrawRectangle(geom.Rect{Width: l.Width, Height: l.Height}, m.Background, render.Undefined, 0)
	}
	if len(m.Axes) > 0 && m.PlotAreaBackground.IsVisible() {
		render.DrawRectangleAsPolygon(rc, l.PlotArea, m.PlotAreaBackground, render.Undefined, 0)
	}
	for _, ser := range m.Series {
		bs, ok := ser.(BackgroundSeries)
		if !ok || !ser.IsVisible() {
			continue
		}
		if bg := bs.Background(); bg.IsVisible() {
			render.DrawRectangleAsPolygon(rc, bs.ScreenRectangle(), bg, render.Undefined, 0)
		}
	}
}

func (s *Session) renderAnnotations(rc render.Context, layer AnnotationLayer) {
	for _, a := range s.Model.Annotations {
		if a.IsVisible() && a.Layer() == layer {
			a.Render(rc, s)
		}
	}
}

func (s *Session) renderAxes(rc render.Context, layer AxisLayer) {
	for pass := 0; pass < 2; pass++ {
		for _, a := range s.Model.Axes {
			if a.IsVisible() && a.Layer() == layer {
				a.Render(rc, s, layer, pass)
			}
		}
	}
}

func (s *Session) renderSeries(rc render.Context) {
	for _, ser := range s.Model.Series {
		if ser.IsVisible() {
			ser.Render(rc, s)
		}
	}
}

func (s *Session) renderBox(rc render.Context) {
	m := s.Model
	if !m.PlotAreaBorderColor.IsVisible() || m.PlotAreaBorderThickness <= 0 {
		return
	}
	render.DrawRectangleAsPolygon(rc, s.Layout.PlotArea, render.Undefined, m.PlotAreaBorderColor, m.PlotAreaBorderThickness)
}
