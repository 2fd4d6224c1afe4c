package render

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
)

// snap aligns v to the pixel grid. Odd stroke widths are centred on a half
// pixel so that they cover whole pixels.
func snap(v, thickness float64) float64 {
	r := math.Round(v)
	if int(math.Round(thickness))%2 == 1 {
		return r + 0.5
	}
	return r
}

// SnapRect aligns the edges of rect to the pixel grid for the given stroke
// thickness.
func SnapRect(rect geom.Rect, thickness float64) geom.Rect {
	left := snap(rect.Left, thickness)
	top := snap(rect.Top, thickness)
	right := snap(rect.Right(), thickness)
	bottom := snap(rect.Bottom(), thickness)
	return geom.Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// DrawRectangleAsPolygon draws rect as a closed pixel-aligned polygon. It is
// used for plot backgrounds and borders that must coincide with tick marks.
func DrawRectangleAsPolygon(rc Context, rect geom.Rect, fill, stroke Color, thickness float64) {
	if !fill.IsVisible() && (!stroke.IsVisible() || thickness <= 0) {
		return
	}
	rc.DrawPolygon(SnapRect(rect, thickness).Corners(), fill, stroke, thickness)
}
