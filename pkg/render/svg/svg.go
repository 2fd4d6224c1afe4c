// Package svg implements [render.Context] as an SVG document.
//
// Text is measured with the embedded Go fonts (see package fonts) and the
// document names the same family, so layout computed against this surface
// matches what a viewer shows.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/chartkit/pkg/fonts"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Option configures a Surface.
type Option func(*Surface)

// WithFaces shares a face cache between surfaces.
func WithFaces(fc *fonts.FaceCache) Option { return func(s *Surface) { s.faces = fc } }

// WithFontFamily overrides the font-family attribute written for text.
func WithFontFamily(family string) Option { return func(s *Surface) { s.family = family } }

// Surface is an SVG drawing surface. It is not safe for concurrent use.
type Surface struct {
	width, height float64
	faces         *fonts.FaceCache
	family        string

	buf     bytes.Buffer
	clipID  int
	clipped bool
}

// New creates a surface with a viewBox of width x height.
func New(width, height float64, opts ...Option) *Surface {
	s := &Surface{width: width, height: height, family: fonts.FallbackFontFamily}
	for _, opt := range opts {
		opt(s)
	}
	if s.faces == nil {
		s.faces = fonts.NewFaceCache()
	}
	return s
}

// Bytes returns the complete SVG document.
func (s *Surface) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	out.Write(s.buf.Bytes())
	if s.clipped {
		out.WriteString("  </g>\n")
	}
	out.WriteString("</svg>\n")
	return out.Bytes()
}

func (s *Surface) MeasureText(text, font string, size float64, weight render.FontWeight) geom.Size {
	if text == "" {
		return geom.Size{}
	}
	face, err := s.faces.Face(size, weight.IsBold())
	if err != nil {
		return geom.Size{Width: float64(len(text)) * size * 0.6, Height: size * 1.2}
	}
	return fonts.Measure(face, text)
}

func (s *Surface) DrawRectangle(r geom.Rect, fill, stroke render.Color, thickness float64) {
	fmt.Fprintf(&s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`+"\n",
		r.Left, r.Top, r.Width, r.Height, paint(fill, stroke, thickness, nil))
}

func (s *Surface) DrawLine(points []geom.Point, stroke render.Color, thickness float64, dash []float64) {
	if len(points) < 2 || !stroke.IsVisible() || thickness <= 0 {
		return
	}
	fmt.Fprintf(&s.buf, `  <polyline points="%s"%s/>`+"\n",
		pointList(points), paint(render.Undefined, stroke, thickness, dash))
}

func (s *Surface) DrawPolygon(points []geom.Point, fill, stroke render.Color, thickness float64) {
	if len(points) < 3 {
		return
	}
	fmt.Fprintf(&s.buf, `  <polygon points="%s"%s/>`+"\n",
		pointList(points), paint(fill, stroke, thickness, nil))
}

func (s *Surface) DrawEllipse(r geom.Rect, fill, stroke render.Color, thickness float64) {
	c := r.Center()
	fmt.Fprintf(&s.buf, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f"%s/>`+"\n",
		c.X, c.Y, r.Width/2, r.Height/2, paint(fill, stroke, thickness, nil))
}

func (s *Surface) DrawText(p geom.Point, text string, c render.Color, font string, size float64, weight render.FontWeight,
	rotation float64, ha render.HorizontalAlignment, va render.VerticalAlignment) {
	if text == "" || !c.IsVisible() {
		return
	}

	anchor := "start"
	switch ha {
	case render.AlignCenter:
		anchor = "middle"
	case render.AlignRight:
		anchor = "end"
	}
	baseline := "hanging"
	switch va {
	case render.AlignMiddle:
		baseline = "central"
	case render.AlignBottom:
		baseline = "text-after-edge"
	}

	family := s.family
	if font != "" && font != render.DefaultFont {
		family = font
	}

	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` font-family="%s" font-size="%.1f"`, escape(family), size)
	if weight != render.Normal {
		fmt.Fprintf(&attrs, ` font-weight="%.0f"`, float64(weight))
	}
	fmt.Fprintf(&attrs, ` fill="%s"`, c.Hex())
	if c.A < 255 {
		fmt.Fprintf(&attrs, ` fill-opacity="%.3f"`, c.Opacity())
	}
	if rotation != 0 {
		fmt.Fprintf(&attrs, ` transform="rotate(%.1f %.2f %.2f)"`, rotation, p.X, p.Y)
	}

	fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		p.X, p.Y, anchor, baseline, attrs.String(), escape(text))
}

func (s *Surface) SetClip(r geom.Rect) {
	s.ResetClip()
	s.clipID++
	fmt.Fprintf(&s.buf, `  <clipPath id="clip%d"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n",
		s.clipID, r.Left, r.Top, r.Width, r.Height)
	fmt.Fprintf(&s.buf, `  <g clip-path="url(#clip%d)">`+"\n", s.clipID)
	s.clipped = true
}

func (s *Surface) ResetClip() {
	if s.clipped {
		s.buf.WriteString("  </g>\n")
		s.clipped = false
	}
}

func (s *Surface) CleanUp() {
	s.ResetClip()
	s.faces.Sweep()
}

func paint(fill, stroke render.Color, thickness float64, dash []float64) string {
	var b strings.Builder
	if fill.IsVisible() {
		fmt.Fprintf(&b, ` fill="%s"`, fill.Hex())
		if fill.A < 255 {
			fmt.Fprintf(&b, ` fill-opacity="%.3f"`, fill.Opacity())
		}
	} else {
		b.WriteString(` fill="none"`)
	}
	if stroke.IsVisible() && thickness > 0 {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%.2f"`, stroke.Hex(), thickness)
		if stroke.A < 255 {
			fmt.Fprintf(&b, ` stroke-opacity="%.3f"`, stroke.Opacity())
		}
		if len(dash) > 0 {
			parts := make([]string, len(dash))
			for i, d := range dash {
				parts[i] = fmt.Sprintf("%.1f", d*thickness)
			}
			fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
		}
		b.WriteString(` stroke-linejoin="round"`)
	}
	return b.String()
}

func pointList(points []geom.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
