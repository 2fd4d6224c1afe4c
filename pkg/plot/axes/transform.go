package axes

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// DataAxis is an axis that maps data values to screen coordinates.
type DataAxis interface {
	plot.Axis
	Transform(v float64) float64
	InverseTransform(s float64) float64
	ActualMinimum() float64
	ActualMaximum() float64
}

var (
	_ DataAxis = (*LinearAxis)(nil)
	_ DataAxis = (*LogarithmicAxis)(nil)
	_ DataAxis = (*CategoryAxis)(nil)
	_ DataAxis = (*MagnitudeAxis)(nil)
	_ DataAxis = (*AngleAxis)(nil)

	_ plot.ScalableAxis = (*LinearAxis)(nil)
	_ plot.RangedAxis   = (*LinearAxis)(nil)
	_ plot.RangedAxis   = (*CategoryAxis)(nil)
	_ plot.AngularAxis  = (*AngleAxis)(nil)
)

// Transform maps the data point (x, y) to the screen. xa and ya are either
// two cartesian axes, in any orientation, or an angle and a magnitude axis.
// ok is false when the pair cannot transform points.
func Transform(x, y float64, xa, ya plot.Axis) (p geom.Point, ok bool) {
	if angle, isAngle := xa.(*AngleAxis); isAngle {
		mag, isMag := ya.(*MagnitudeAxis)
		if !isMag {
			return geom.Point{}, false
		}
		return polarPoint(mag.Center(), mag.Transform(y), angle.Radians(x)), true
	}

	dx, okx := xa.(DataAxis)
	dy, oky := ya.(DataAxis)
	if !okx || !oky {
		return geom.Point{}, false
	}
	if dx.IsVertical() && !dy.IsVertical() {
		return geom.Point{X: dy.Transform(y), Y: dx.Transform(x)}, true
	}
	return geom.Point{X: dx.Transform(x), Y: dy.Transform(y)}, true
}

// ScreenRect returns the screen rectangle covered by an axis pair. For polar
// pairs and unknown axes it is the plot area.
func ScreenRect(xa, ya plot.Axis, plotArea geom.Rect) geom.Rect {
	if _, isAngle := xa.(*AngleAxis); isAngle {
		return plotArea
	}
	dx, okx := xa.(DataAxis)
	dy, oky := ya.(DataAxis)
	if !okx || !oky {
		return plotArea
	}
	p0, _ := Transform(dx.ActualMinimum(), dy.ActualMinimum(), xa, ya)
	p1, _ := Transform(dx.ActualMaximum(), dy.ActualMaximum(), xa, ya)
	return geom.RectFromPoints(p0, p1)
}
