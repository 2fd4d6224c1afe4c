package axes

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// MagnitudeAxis is the radial axis of a polar plot. Values map to distances
// from the center of the plot area.
type MagnitudeAxis struct {
	Base
	center geom.Point
	radius float64
}

// NewMagnitude returns a magnitude axis. Its range starts at zero unless
// Minimum is set.
func NewMagnitude() *MagnitudeAxis {
	a := &MagnitudeAxis{Base: newBase(plot.PositionNone)}
	a.Minimum = 0
	a.MinimumPadding = 0
	a.MajorGridlines = true
	return a
}

// Center returns the pole of the polar plot.
func (a *MagnitudeAxis) Center() geom.Point { return a.center }

// Radius returns the radius of the outer circle.
func (a *MagnitudeAxis) Radius() float64 { return a.radius }

func (a *MagnitudeAxis) IsVertical() bool { return false }

// UpdateTransform maps the range onto [0, radius].
func (a *MagnitudeAxis) UpdateTransform(plotArea geom.Rect) {
	a.plotArea = plotArea
	a.center = plotArea.Center()
	a.radius = math.Max(0, math.Min(plotArea.Width, plotArea.Height)/2)
	a.setTransform(0, a.radius)
}

// UpdateIntervals picks steps for the radius length.
func (a *MagnitudeAxis) UpdateIntervals(plotArea geom.Rect) {
	a.updateLinearIntervals(a.radius)
}

// Measure returns zero: magnitude labels are drawn inside the plot area.
func (a *MagnitudeAxis) Measure(render.Context) geom.Size { return geom.Size{} }

// Render draws circular gridlines in pass 0 and labels along the upward
// radius in pass 1.
func (a *MagnitudeAxis) Render(rc render.Context, s *plot.Session, layer plot.AxisLayer, pass int) {
	if pass == 0 {
		if !a.MajorGridlines || !a.MajorGridColor.IsVisible() {
			return
		}
		for _, v := range a.majorTicks {
			r := a.Transform(v)
			if r <= 0 || r > a.radius+0.5 {
				continue
			}
			rc.DrawEllipse(geom.Rect{Left: a.center.X - r, Top: a.center.Y - r, Width: 2 * r, Height: 2 * r},
				render.Undefined, a.MajorGridColor, 1)
		}
		return
	}

	if a.LineColor.IsVisible() {
		rc.DrawLine([]geom.Point{a.center, a.center.Offset(0, -a.radius)}, a.LineColor, a.LineThickness, nil)
	}
	color := a.textColor(s)
	for i, v := range a.majorTicks {
		r := a.Transform(v)
		if r < 0 || r > a.radius+0.5 || i >= len(a.labels) {
			continue
		}
		render.DrawMathText(rc, a.center.Offset(a.LabelDistance, -r), a.labels[i], color,
			a.font(), a.fontSize(), render.Normal, 0, render.AlignLeft, render.AlignBottom)
	}
}

// AngleAxis is the angular axis of a polar plot. The range (0..360 by
// default) covers the full circle, starting at StartAngle degrees
// counterclockwise from the positive x direction.
type AngleAxis struct {
	Base
	StartAngle float64
	EndAngle   float64
}

// NewAngle returns an angle axis covering 0..360 degrees.
func NewAngle() *AngleAxis {
	a := &AngleAxis{Base: newBase(plot.PositionNone), EndAngle: 360}
	a.Minimum, a.Maximum = 0, 360
	a.MinimumPadding, a.MaximumPadding = 0, 0
	a.MajorGridlines = true
	return a
}

func (a *AngleAxis) IsAngular() bool  { return true }
func (a *AngleAxis) IsVertical() bool { return false }

// UpdateActualRange uses the fixed range; angles never follow the data.
func (a *AngleAxis) UpdateActualRange() {
	a.actualMin, a.actualMax = a.Minimum, a.Maximum
	if math.IsNaN(a.actualMin) {
		a.actualMin = 0
	}
	if math.IsNaN(a.actualMax) {
		a.actualMax = 360
	}
}

// UpdateTransform maps the range onto [StartAngle, EndAngle] degrees.
func (a *AngleAxis) UpdateTransform(plotArea geom.Rect) {
	a.plotArea = plotArea
	a.setTransform(a.StartAngle, a.EndAngle)
}

// angleSteps are the candidate major steps, in degrees, from coarse to fine.
var angleSteps = []float64{90, 45, 30, 15, 10, 5}

// UpdateIntervals picks the finest angle step whose spokes stay at least
// IntervalLength apart on the outer circle.
func (a *AngleAxis) UpdateIntervals(plotArea geom.Rect) {
	a.plotArea = plotArea
	step := a.MajorStep
	if step <= 0 {
		circumference := math.Pi * math.Min(plotArea.Width, plotArea.Height)
		span := math.Abs(a.actualMax - a.actualMin)
		step = angleSteps[0]
		for _, c := range angleSteps[1:] {
			if span/c > circumference/a.IntervalLength {
				break
			}
			step = c
		}
	}
	a.actualMajor = step
	a.majorTicks = tickValues(a.actualMin, a.actualMax, step)
	// the end of a full circle coincides with its start
	if n := len(a.majorTicks); n > 1 && math.Mod(math.Abs(a.Transform(a.majorTicks[n-1])-a.Transform(a.majorTicks[0])), 360) < 1e-9 {
		a.majorTicks = a.majorTicks[:n-1]
	}
	decimals := decimalsFor(step)
	a.labels = make([]string, len(a.majorTicks))
	for i, v := range a.majorTicks {
		a.labels[i] = a.formatLabel(v, decimals)
	}
}

// Measure returns the room needed for labels outside the circle. Width and
// height are the same since the labels surround the plot on all sides.
func (a *AngleAxis) Measure(rc render.Context) geom.Size {
	var extent float64
	for _, l := range a.labels {
		sz := render.MeasureMathText(rc, l, a.font(), a.fontSize(), render.Normal)
		extent = math.Max(extent, math.Max(sz.Width, sz.Height))
	}
	if extent > 0 {
		extent += a.outsideTickLength() + a.LabelDistance
	}
	return geom.Size{Width: extent, Height: extent}
}

// Radians returns the screen angle of v, counterclockwise from the positive
// x direction.
func (a *AngleAxis) Radians(v float64) float64 { return a.Transform(v) * math.Pi / 180 }

// Render draws spokes in pass 0 and the outer circle, ticks and labels in
// pass 1. It needs a magnitude axis in the model for the center and radius.
func (a *AngleAxis) Render(rc render.Context, s *plot.Session, layer plot.AxisLayer, pass int) {
	mag := a.findMagnitude(s)
	if mag == nil {
		return
	}
	c, radius := mag.Center(), mag.Radius()

	if pass == 0 {
		if !a.MajorGridlines || !a.MajorGridColor.IsVisible() {
			return
		}
		for _, v := range a.majorTicks {
			rc.DrawLine([]geom.Point{c, polarPoint(c, radius, a.Radians(v))}, a.MajorGridColor, 1, nil)
		}
		return
	}

	if a.LineColor.IsVisible() {
		rc.DrawEllipse(geom.Rect{Left: c.X - radius, Top: c.Y - radius, Width: 2 * radius, Height: 2 * radius},
			render.Undefined, a.LineColor, a.LineThickness)
	}
	color := a.textColor(s)
	out := a.outsideTickLength()
	for i, v := range a.majorTicks {
		theta := a.Radians(v)
		if out > 0 && a.TickColor.IsVisible() {
			rc.DrawLine([]geom.Point{polarPoint(c, radius, theta), polarPoint(c, radius+out, theta)}, a.TickColor, 1, nil)
		}
		if i >= len(a.labels) {
			continue
		}
		ha, va := radialAlignment(theta)
		render.DrawMathText(rc, polarPoint(c, radius+out+a.LabelDistance, theta), a.labels[i], color,
			a.font(), a.fontSize(), render.Normal, 0, ha, va)
	}
}

func (a *AngleAxis) findMagnitude(s *plot.Session) *MagnitudeAxis {
	if s == nil {
		return nil
	}
	for _, ax := range s.Model.Axes {
		if m, ok := ax.(*MagnitudeAxis); ok {
			return m
		}
	}
	return nil
}

// polarPoint returns the screen point at distance r and angle theta
// (radians, counterclockwise) from c.
func polarPoint(c geom.Point, r, theta float64) geom.Point {
	return geom.Point{X: c.X + r*math.Cos(theta), Y: c.Y - r*math.Sin(theta)}
}

// radialAlignment aligns a label so that it extends away from the circle.
func radialAlignment(theta float64) (render.HorizontalAlignment, render.VerticalAlignment) {
	cos, sin := math.Cos(theta), math.Sin(theta)
	ha, va := render.AlignCenter, render.AlignMiddle
	switch {
	case cos > 0.3:
		ha = render.AlignLeft
	case cos < -0.3:
		ha = render.AlignRight
	}
	switch {
	case sin > 0.3:
		va = render.AlignBottom
	case sin < -0.3:
		va = render.AlignTop
	}
	return ha, va
}
