package annotations

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/plot/axes"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Base holds what all annotations have in common.
type Base struct {
	Hidden   bool
	Z        plot.AnnotationLayer
	XAxisKey string
	YAxisKey string

	Text      string
	TextColor render.Color
	Font      string
	FontSize  float64
}

func (b *Base) Layer() plot.AnnotationLayer { return b.Z }
func (b *Base) IsVisible() bool             { return !b.Hidden }

// frame is the resolved coordinate system of one render.
type frame struct {
	x, y axes.DataAxis
	clip geom.Rect
}

// resolve returns the cartesian axes of the annotation. Polar axes are not
// supported and yield ok == false.
func (b *Base) resolve(s *plot.Session) (frame, bool) {
	xa, ya := s.ResolveAxes(b.XAxisKey, b.YAxisKey)
	if aa, isAngular := xa.(plot.AngularAxis); isAngular && aa.IsAngular() {
		s.Logger.Debug("annotation skipped on polar axes")
		return frame{}, false
	}
	x, okx := xa.(axes.DataAxis)
	y, oky := ya.(axes.DataAxis)
	if !okx || !oky {
		return frame{}, false
	}
	return frame{x: x, y: y, clip: axes.ScreenRect(x, y, s.PlotArea())}, true
}

// contains reports whether p lies in the axes rectangle, allowing for
// rounding at the edges.
func (f frame) contains(p geom.Point) bool {
	return f.clip.Inflate(geom.Uniform(0.5)).Contains(p)
}

func (f frame) point(x, y float64) geom.Point {
	p, _ := axes.Transform(x, y, f.x, f.y)
	return p
}

// xRange and yRange replace NaN limits with the axis limits.
func (f frame) xRange(lo, hi float64) (float64, float64) {
	return orLimit(lo, f.x.ActualMinimum()), orLimit(hi, f.x.ActualMaximum())
}

func (f frame) yRange(lo, hi float64) (float64, float64) {
	return orLimit(lo, f.y.ActualMinimum()), orLimit(hi, f.y.ActualMaximum())
}

func orLimit(v, limit float64) float64 {
	if math.IsNaN(v) {
		return limit
	}
	return v
}

func (b *Base) font(s *plot.Session) string {
	if b.Font == "" {
		return s.Font()
	}
	return b.Font
}

func (b *Base) fontSize(s *plot.Session) float64 {
	if b.FontSize <= 0 {
		return s.FontSize()
	}
	return b.FontSize
}

func (b *Base) textColor(s *plot.Session) render.Color { return b.TextColor.Or(s.TextColor()) }
