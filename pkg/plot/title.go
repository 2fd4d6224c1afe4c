package plot

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

type titleMetrics struct {
	title, subtitle geom.Size
}

func (t titleMetrics) height() float64 { return t.title.Height + t.subtitle.Height }

func (m *Model) titleFont() string {
	if m.TitleFont == "" {
		return m.font()
	}
	return m.TitleFont
}

func (m *Model) titleFontSize() float64 {
	if m.TitleFontSize <= 0 {
		return 18
	}
	return m.TitleFontSize
}

func (m *Model) subtitleFontSize() float64 {
	if m.SubtitleFontSize <= 0 {
		return 14
	}
	return m.SubtitleFontSize
}

func (m *Model) measureTitles(rc render.Context) titleMetrics {
	var tm titleMetrics
	if m.Title != "" {
		tm.title = render.MeasureMathText(rc, m.Title, m.titleFont(), m.titleFontSize(), m.TitleFontWeight)
	}
	if m.Subtitle != "" {
		tm.subtitle = render.MeasureMathText(rc, m.Subtitle, m.titleFont(), m.subtitleFontSize(), render.Normal)
	}
	return tm
}

// renderTitle draws the title and subtitle centred at the top of the title
// area.
func (s *Session) renderTitle(rc render.Context) {
	m := s.Model
	if m.Title == "" && m.Subtitle == "" {
		return
	}
	area := s.Layout.TitleArea
	x := area.Left + area.Width/2
	y := area.Top

	if m.Title != "" {
		render.DrawMathText(rc, geom.Point{X: x, Y: y}, m.Title, m.TitleColor.Or(s.TextColor()),
			m.titleFont(), m.titleFontSize(), m.TitleFontWeight, 0, render.AlignCenter, render.AlignTop)
		y += render.MeasureMathText(rc, m.Title, m.titleFont(), m.titleFontSize(), m.TitleFontWeight).Height
	}
	if m.Subtitle != "" {
		render.DrawMathText(rc, geom.Point{X: x, Y: y}, m.Subtitle, m.SubtitleColor.Or(s.TextColor()),
			m.titleFont(), m.subtitleFontSize(), render.Normal, 0, render.AlignCenter, render.AlignTop)
	}
}
