package plot

import (
	"math"
	"time"

	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Render lays out the model for a width x height viewport and draws it on
// rc. A width or height that is not a positive finite number is a no-op. On error nothing is drawn
// and the previous layout is kept.
func (m *Model) Render(rc render.Context, width, height float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil
	}

	start := time.Now()
	l := &Layout{Width: width, Height: height, ActualMargins: m.PlotMargins}
	s := newSession(m, l)

	s.resetDefaultColor()
	for _, ser := range m.Series {
		if ser.IsVisible() {
			ser.SetDefaultValues(s)
		}
	}
	s.updateDataRanges()

	if err := s.updateLayout(rc); err != nil {
		return err
	}

	if m.PlotType == Cartesian {
		s.enforceCartesianTransforms()
		for _, a := range m.Axes {
			a.UpdateTransform(l.PlotArea)
		}
		for _, a := range m.Axes {
			a.UpdateIntervals(l.PlotArea)
		}
	}

	for _, a := range m.Axes {
		a.ResetCurrentValues()
	}

	s.renderPhases(rc)
	rc.CleanUp()

	m.layout = *l
	observability.Layout().OnLayoutComplete(l.Iterations, l.Converged, time.Since(start))
	return nil
}

// updateLayout runs the margin fixed-point loop.
func (s *Session) updateLayout(rc render.Context) error {
	m, l := s.Model, s.Layout
	for {
		s.updatePlotArea(rc)
		for _, a := range m.Axes {
			a.UpdateTransform(l.PlotArea)
		}
		for _, a := range m.Axes {
			a.UpdateIntervals(l.PlotArea)
		}
		l.Iterations++

		if !m.AutoAdjustPlotMargins {
			l.Converged = true
			return nil
		}

		next, changed, err := ResolveMargins(rc, m.Axes, l.ActualMargins)
		if err != nil {
			return err
		}
		if !changed {
			l.Converged = true
			s.Logger.Debug("layout converged", "iterations", l.Iterations, "margins", l.ActualMargins)
			return nil
		}
		if l.Iterations >= MaxLayoutIterations {
			s.Logger.Warn("layout did not converge",
				"iterations", l.Iterations, "margins", l.ActualMargins, "required", next)
			observability.Layout().OnNotConverged(l.Iterations)
			return nil
		}
		s.Logger.Debug("margins widened", "iteration", l.Iterations, "from", l.ActualMargins, "to", next)
		l.ActualMargins = next
	}
}

// updateDataRanges recomputes the range of data-driven axes from the
// visible series.
func (s *Session) updateDataRanges() {
	var ranged []RangedAxis
	for _, a := range s.Model.Axes {
		if ra, ok := a.(RangedAxis); ok {
			ra.ResetDataRange()
			ranged = append(ranged, ra)
		}
	}
	for _, ser := range s.Model.Series {
		if rs, ok := ser.(RangeSeries); ok && ser.IsVisible() {
			rs.UpdateAxisRanges(s)
		}
	}
	for _, ra := range ranged {
		ra.UpdateActualRange()
	}
}

// enforceCartesianTransforms gives all scalable axes the smallest absolute
// scale among them, so every axis still shows at least its own range.
func (s *Session) enforceCartesianTransforms() {
	var axes []ScalableAxis
	shared := math.Inf(1)
	for _, a := range s.Model.Axes {
		if sa, ok := a.(ScalableAxis); ok && sa.Scale() != 0 {
			axes = append(axes, sa)
			shared = math.Min(shared, math.Abs(sa.Scale()))
		}
	}
	for _, a := range axes {
		a.ZoomToScale(shared)
	}
}
