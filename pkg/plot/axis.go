package plot

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// TierPlacement is the band an axis occupies within its side's margin,
// measured outward from the plot area edge. The margin resolver writes it;
// the axis reads it when it transforms and draws itself.
type TierPlacement struct {
	Size     float64 // extent of the axis's tier
	MinShift float64 // offset of the tier's inner edge
	MaxShift float64 // offset of the tier's outer edge
}

// Axis is the capability contract for axes.
type Axis interface {
	// Key identifies the axis for series and annotations. It may be empty.
	Key() string
	Position() AxisPosition
	// PositionTier is the stacking index on the axis's side; tier 0 is
	// innermost.
	PositionTier() int
	Layer() AxisLayer
	IsVisible() bool
	IsVertical() bool

	// Measure returns the space the axis needs next to the plot area. Only
	// the extent perpendicular to the axis is used.
	Measure(rc render.Context) geom.Size

	UpdateTransform(plotArea geom.Rect)
	UpdateIntervals(plotArea geom.Rect)

	// Render draws the axis. It is called twice per layer: pass 0 draws
	// gridlines, pass 1 draws the axis line, ticks, labels and title.
	Render(rc render.Context, s *Session, layer AxisLayer, pass int)

	// ResetCurrentValues clears state cached during the previous render.
	ResetCurrentValues()

	TierPlacement() TierPlacement
	SetTierPlacement(TierPlacement)
}

// ScalableAxis is implemented by axes that can be zoomed to a given scale
// (screen units per data unit). Cartesian plots use it to equalize scales.
type ScalableAxis interface {
	Axis
	Scale() float64
	ZoomToScale(scale float64)
}

// RangedAxis is implemented by axes whose range follows the data.
type RangedAxis interface {
	Axis
	ResetDataRange()
	Include(v float64)
	UpdateActualRange()
}

// AngularAxis is implemented by the angle axis of a polar plot.
type AngularAxis interface {
	Axis
	IsAngular() bool
}

// Series is the capability contract for data series.
type Series interface {
	IsVisible() bool
	// SetDefaultValues resolves colors and axis references. It is called at
	// the start of every render, in collection order.
	SetDefaultValues(s *Session)
	Render(rc render.Context, s *Session)
}

// BackgroundSeries is implemented by series that paint a background behind
// their screen rectangle.
type BackgroundSeries interface {
	Series
	Background() render.Color
	ScreenRectangle() geom.Rect
}

// LegendSeries is implemented by series that appear in the legend.
type LegendSeries interface {
	Series
	LegendTitle() string
	// RenderLegend draws the series symbol into rect.
	RenderLegend(rc render.Context, rect geom.Rect)
}

// RangeSeries is implemented by series that contribute to the data range of
// their axes.
type RangeSeries interface {
	Series
	UpdateAxisRanges(s *Session)
}

// Annotation is the capability contract for annotations.
type Annotation interface {
	Layer() AnnotationLayer
	IsVisible() bool
	Render(rc render.Context, s *Session)
}
