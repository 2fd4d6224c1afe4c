package series

import (
	"fmt"
	"strings"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// MarkerType is the shape drawn at each data point.
type MarkerType int

const (
	MarkerNone MarkerType = iota
	MarkerCircle
	MarkerSquare
	MarkerDiamond
)

var markerNames = []string{"none", "circle", "square", "diamond"}

func (m MarkerType) String() string {
	if m >= 0 && int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("marker(%d)", int(m))
}

// ParseMarkerType parses a marker name. The empty string is MarkerNone.
func ParseMarkerType(s string) (MarkerType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MarkerNone, nil
	}
	for i, n := range markerNames {
		if n == s {
			return MarkerType(i), nil
		}
	}
	return MarkerNone, fmt.Errorf("unknown marker %q", s)
}

// drawMarker draws a marker of the given radius centered on p.
func drawMarker(rc render.Context, p geom.Point, m MarkerType, radius float64, fill, stroke render.Color, thickness float64) {
	switch m {
	case MarkerCircle:
		rc.DrawEllipse(geom.Rect{Left: p.X - radius, Top: p.Y - radius, Width: 2 * radius, Height: 2 * radius},
			fill, stroke, thickness)
	case MarkerSquare:
		rc.DrawPolygon([]geom.Point{
			{X: p.X - radius, Y: p.Y - radius},
			{X: p.X + radius, Y: p.Y - radius},
			{X: p.X + radius, Y: p.Y + radius},
			{X: p.X - radius, Y: p.Y + radius},
		}, fill, stroke, thickness)
	case MarkerDiamond:
		d := radius * 1.4
		rc.DrawPolygon([]geom.Point{
			{X: p.X, Y: p.Y - d},
			{X: p.X + d, Y: p.Y},
			{X: p.X, Y: p.Y + d},
			{X: p.X - d, Y: p.Y},
		}, fill, stroke, thickness)
	}
}
