package plot

import (
	"fmt"
	"strings"
)

// PlotType selects how axes relate to each other.
type PlotType int

const (
	// XY plots scale each axis independently.
	XY PlotType = iota
	// Cartesian plots force equal scales on all scalable axes.
	Cartesian
	// Polar plots use angle and magnitude axes.
	Polar
)

var plotTypeNames = []string{"xy", "cartesian", "polar"}

func (t PlotType) String() string { return enumName(plotTypeNames, int(t)) }

// ParsePlotType parses "xy", "cartesian", or "polar".
func ParsePlotType(s string) (PlotType, error) {
	i, err := parseEnum("plot type", plotTypeNames, s)
	return PlotType(i), err
}

// AxisPosition is the side of the plot area an axis is attached to.
// PositionNone marks angular axes, which are drawn around the plot area.
type AxisPosition int

const (
	PositionNone AxisPosition = iota
	PositionLeft
	PositionRight
	PositionTop
	PositionBottom
)

var axisPositionNames = []string{"none", "left", "right", "top", "bottom"}

func (p AxisPosition) String() string { return enumName(axisPositionNames, int(p)) }

// IsVertical reports whether axes at p run vertically.
func (p AxisPosition) IsVertical() bool { return p == PositionLeft || p == PositionRight }

// IsHorizontal reports whether axes at p run horizontally.
func (p AxisPosition) IsHorizontal() bool { return p == PositionTop || p == PositionBottom }

// ParseAxisPosition parses a position name.
func ParseAxisPosition(s string) (AxisPosition, error) {
	i, err := parseEnum("axis position", axisPositionNames, s)
	return AxisPosition(i), err
}

// AxisLayer controls whether an axis is drawn below or above the series.
type AxisLayer int

const (
	BelowSeries AxisLayer = iota
	AboveSeries
)

var axisLayerNames = []string{"below-series", "above-series"}

func (l AxisLayer) String() string { return enumName(axisLayerNames, int(l)) }

// ParseAxisLayer parses "below-series" or "above-series".
func ParseAxisLayer(s string) (AxisLayer, error) {
	i, err := parseEnum("axis layer", axisLayerNames, s)
	return AxisLayer(i), err
}

// AnnotationLayer controls where an annotation sits in the drawing order.
type AnnotationLayer int

const (
	AnnotationAboveSeries AnnotationLayer = iota
	AnnotationBelowSeries
	AnnotationBelowAxes
)

var annotationLayerNames = []string{"above-series", "below-series", "below-axes"}

func (l AnnotationLayer) String() string { return enumName(annotationLayerNames, int(l)) }

// ParseAnnotationLayer parses "above-series", "below-series", or "below-axes".
func ParseAnnotationLayer(s string) (AnnotationLayer, error) {
	i, err := parseEnum("annotation layer", annotationLayerNames, s)
	return AnnotationLayer(i), err
}

// LegendPlacement puts the legend inside or outside the plot area.
type LegendPlacement int

const (
	LegendInside LegendPlacement = iota
	LegendOutside
)

var legendPlacementNames = []string{"inside", "outside"}

func (p LegendPlacement) String() string { return enumName(legendPlacementNames, int(p)) }

// ParseLegendPlacement parses "inside" or "outside".
func ParseLegendPlacement(s string) (LegendPlacement, error) {
	i, err := parseEnum("legend placement", legendPlacementNames, s)
	return LegendPlacement(i), err
}

// LegendPosition names the edge and alignment of the legend box. The first
// word is the edge, the second the alignment along it.
type LegendPosition int

const (
	// LegendAuto resolves to LegendRightTop.
	LegendAuto LegendPosition = iota
	LegendTopLeft
	LegendTopCenter
	LegendTopRight
	LegendBottomLeft
	LegendBottomCenter
	LegendBottomRight
	LegendLeftTop
	LegendLeftMiddle
	LegendLeftBottom
	LegendRightTop
	LegendRightMiddle
	LegendRightBottom
)

var legendPositionNames = []string{
	"auto",
	"top-left", "top-center", "top-right",
	"bottom-left", "bottom-center", "bottom-right",
	"left-top", "left-middle", "left-bottom",
	"right-top", "right-middle", "right-bottom",
}

func (p LegendPosition) String() string { return enumName(legendPositionNames, int(p)) }

// ParseLegendPosition parses a position name such as "right-top".
func ParseLegendPosition(s string) (LegendPosition, error) {
	i, err := parseEnum("legend position", legendPositionNames, s)
	return LegendPosition(i), err
}

// Edge returns the side of the plot the position is attached to.
func (p LegendPosition) Edge() AxisPosition {
	switch p {
	case LegendTopLeft, LegendTopCenter, LegendTopRight:
		return PositionTop
	case LegendBottomLeft, LegendBottomCenter, LegendBottomRight:
		return PositionBottom
	case LegendLeftTop, LegendLeftMiddle, LegendLeftBottom:
		return PositionLeft
	case LegendRightTop, LegendRightMiddle, LegendRightBottom:
		return PositionRight
	}
	return PositionNone
}

// LegendOrientation is the flow direction of legend items.
type LegendOrientation int

const (
	// OrientationAuto is horizontal for outside legends on the top or bottom
	// edge and vertical otherwise.
	OrientationAuto LegendOrientation = iota
	Horizontal
	Vertical
)

var legendOrientationNames = []string{"auto", "horizontal", "vertical"}

func (o LegendOrientation) String() string { return enumName(legendOrientationNames, int(o)) }

// ParseLegendOrientation parses "auto", "horizontal", or "vertical".
func ParseLegendOrientation(s string) (LegendOrientation, error) {
	i, err := parseEnum("legend orientation", legendOrientationNames, s)
	return LegendOrientation(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (valid: %s)", kind, s, strings.Join(names, ", "))
}
