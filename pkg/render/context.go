package render

import "github.com/matzehuels/chartkit/pkg/geom"

// FontWeight is a CSS-style font weight.
type FontWeight float64

// Common font weights.
const (
	Normal FontWeight = 400
	Bold   FontWeight = 700
)

// IsBold reports whether w should be rendered with a bold face.
func (w FontWeight) IsBold() bool { return w >= 600 }

// HorizontalAlignment positions text relative to its anchor point.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment positions text relative to its anchor point.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

// DefaultFont is the font family used when none is configured.
const DefaultFont = "Go"

// Context is a drawing surface.
//
// Rotation angles are in degrees, clockwise. Colors that are not visible
// (see [Color.IsVisible]) disable the corresponding fill or stroke.
type Context interface {
	// MeasureText returns the size of a single line of text.
	MeasureText(text, font string, size float64, weight FontWeight) geom.Size

	DrawRectangle(rect geom.Rect, fill, stroke Color, thickness float64)
	DrawLine(points []geom.Point, stroke Color, thickness float64, dash []float64)
	DrawPolygon(points []geom.Point, fill, stroke Color, thickness float64)
	DrawEllipse(rect geom.Rect, fill, stroke Color, thickness float64)
	DrawText(p geom.Point, text string, c Color, font string, size float64, weight FontWeight,
		rotation float64, ha HorizontalAlignment, va VerticalAlignment)

	// SetClip restricts subsequent drawing to rect until ResetClip.
	SetClip(rect geom.Rect)
	ResetClip()

	// CleanUp releases cached resources that were not used since the
	// previous CleanUp.
	CleanUp()
}
