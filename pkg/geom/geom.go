package geom

import "math"

// Point is a position in screen space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Offset returns p translated by dx, dy.
func (p Point) Offset(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

// Thickness describes the four sides of a margin or padding.
type Thickness struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Uniform returns a thickness with all four sides set to v.
func Uniform(v float64) Thickness { return Thickness{Left: v, Top: v, Right: v, Bottom: v} }

// Equal reports whether all four sides are exactly equal.
// The comparison is exact on purpose: layout convergence is decided on it.
func (t Thickness) Equal(o Thickness) bool {
	return t.Left == o.Left && t.Top == o.Top && t.Right == o.Right && t.Bottom == o.Bottom
}

// Max returns the component-wise maximum of t and o.
func (t Thickness) Max(o Thickness) Thickness {
	return Thickness{
		Left:   math.Max(t.Left, o.Left),
		Top:    math.Max(t.Top, o.Top),
		Right:  math.Max(t.Right, o.Right),
		Bottom: math.Max(t.Bottom, o.Bottom),
	}
}

// GreaterOrEqual reports whether every side of t is at least the matching side of o.
func (t Thickness) GreaterOrEqual(o Thickness) bool {
	return t.Left >= o.Left && t.Top >= o.Top && t.Right >= o.Right && t.Bottom >= o.Bottom
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 { return t.Left + t.Right }

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 { return t.Top + t.Bottom }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromPoints returns the rectangle spanned by two opposite corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Right returns the horizontal coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the vertical coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.Left, Y: r.Top} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Deflate shrinks the rectangle by t on each side.
// The result may have a negative width or height.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		Left:   r.Left + t.Left,
		Top:    r.Top + t.Top,
		Width:  r.Width - t.Horizontal(),
		Height: r.Height - t.Vertical(),
	}
}

// Inflate grows the rectangle by t on each side.
func (r Rect) Inflate(t Thickness) Rect {
	return Rect{
		Left:   r.Left - t.Left,
		Top:    r.Top - t.Top,
		Width:  r.Width + t.Horizontal(),
		Height: r.Height + t.Vertical(),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Intersect returns the overlap of r and o. If they do not overlap the
// result has zero width and/or height.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.Left, o.Left)
	top := math.Max(r.Top, o.Top)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	return Rect{
		Left:   left,
		Top:    top,
		Width:  math.Max(0, right-left),
		Height: math.Max(0, bottom-top),
	}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right(), Y: r.Top},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left, Y: r.Bottom()},
	}
}
