package plot

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Session is the state of one render call. Axes, series and annotations
// receive it to read the computed geometry and shared defaults. A session is
// only valid during the Render call that created it.
type Session struct {
	Model  *Model
	Layout *Layout
	// Legend is the model's legend with automatic properties resolved.
	Legend Legend
	Logger *log.Logger

	palette    []render.Color
	colorIndex int
	legend     legendLayout
}

func newSession(m *Model, l *Layout) *Session {
	palette := m.Palette
	if len(palette) == 0 {
		palette = render.DefaultPalette()
	}
	return &Session{
		Model:   m,
		Layout:  l,
		Legend:  m.Legend.resolved(),
		Logger:  m.logger(),
		palette: palette,
	}
}

// PlotArea returns the current plot area.
func (s *Session) PlotArea() geom.Rect { return s.Layout.PlotArea }

// NextColor returns the next automatic series color, cycling through the
// palette.
func (s *Session) NextColor() render.Color {
	c := s.palette[s.colorIndex%len(s.palette)]
	s.colorIndex++
	return c
}

func (s *Session) resetDefaultColor() { s.colorIndex = 0 }

// Font returns the model's default font family.
func (s *Session) Font() string { return s.Model.font() }

// FontSize returns the model's default font size.
func (s *Session) FontSize() float64 { return s.Model.fontSize() }

// TextColor returns the model's default text color.
func (s *Session) TextColor() render.Color { return s.Model.TextColor.Or(render.Black) }

// AxisByKey returns the axis with the given key, or nil.
func (s *Session) AxisByKey(key string) Axis {
	if key == "" {
		return nil
	}
	for _, a := range s.Model.Axes {
		if a.Key() == key {
			return a
		}
	}
	return nil
}

// DefaultXAxis returns the first horizontal axis, or for polar plots the
// first angular axis. It returns nil when there is none.
func (s *Session) DefaultXAxis() Axis {
	for _, a := range s.Model.Axes {
		if a.Position().IsHorizontal() {
			return a
		}
	}
	for _, a := range s.Model.Axes {
		if isAngular(a) {
			return a
		}
	}
	return nil
}

// DefaultYAxis returns the first vertical axis, or for polar plots the first
// non-angular axis without a side. It returns nil when there is none.
func (s *Session) DefaultYAxis() Axis {
	for _, a := range s.Model.Axes {
		if a.Position().IsVertical() {
			return a
		}
	}
	for _, a := range s.Model.Axes {
		if a.Position() == PositionNone && !isAngular(a) {
			return a
		}
	}
	return nil
}

// ResolveAxes returns the axes keyed xKey and yKey, falling back to the
// default axes for empty or unknown keys.
func (s *Session) ResolveAxes(xKey, yKey string) (x, y Axis) {
	if x = s.AxisByKey(xKey); x == nil {
		x = s.DefaultXAxis()
	}
	if y = s.AxisByKey(yKey); y == nil {
		y = s.DefaultYAxis()
	}
	return x, y
}

func isAngular(a Axis) bool {
	aa, ok := a.(AngularAxis)
	return ok && aa.IsAngular()
}
