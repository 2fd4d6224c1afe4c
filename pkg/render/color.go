package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Color is a non-premultiplied RGBA color.
// The zero value is fully transparent and is never drawn.
type Color struct {
	R, G, B, A uint8
}

// Undefined disables a fill or stroke.
var Undefined = Color{}

// Frequently used colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Gray  = RGB(128, 128, 128)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA returns a color with alpha.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// IsVisible reports whether drawing with c has any effect.
func (c Color) IsVisible() bool { return c.A > 0 }

// IsUndefined reports whether c is the zero value.
func (c Color) IsUndefined() bool { return c == Undefined }

// Or returns c, or fallback when c is undefined.
func (c Color) Or(fallback Color) Color {
	if c.IsUndefined() {
		return fallback
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Opacity returns the alpha channel as a fraction.
func (c Color) Opacity() float64 { return float64(c.A) / 255 }

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String returns "#rrggbb" or "#rrggbbaa" for translucent colors, and
// "none" for undefined.
func (c Color) String() string {
	switch {
	case c.IsUndefined():
		return "none"
	case c.A == 255:
		return c.Hex()
	default:
		return fmt.Sprintf("%s%02x", c.Hex(), c.A)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cf colorful.Color, a uint8) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: a}
}

var namedColors = map[string]Color{
	"black":     Black,
	"white":     White,
	"gray":      Gray,
	"grey":      Gray,
	"lightgray": RGB(211, 211, 211),
	"darkgray":  RGB(169, 169, 169),
	"red":       RGB(255, 0, 0),
	"green":     RGB(0, 128, 0),
	"blue":      RGB(0, 0, 255),
	"orange":    RGB(255, 165, 0),
	"purple":    RGB(128, 0, 128),
	"steelblue": RGB(70, 130, 180),
	"crimson":   RGB(220, 20, 60),
	"goldenrod": RGB(218, 165, 32),
	"teal":      RGB(0, 128, 128),
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa", a small set of CSS
// color names, or "none"/"transparent"/"" for [Undefined].
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent", "undefined":
		return Undefined, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return Undefined, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", s)
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Undefined, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Undefined, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return fromColorful(cf, alpha), nil
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level palette definitions.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Blend interpolates between c and o in HCL space; t=0 yields c.
func (c Color) Blend(o Color, t float64) Color {
	a := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return fromColorful(c.colorful().BlendHcl(o.colorful(), t), uint8(a+0.5))
}
