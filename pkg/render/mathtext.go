package render

import (
	"math"
	"strings"

	"github.com/matzehuels/chartkit/pkg/geom"
)

const (
	scriptScale = 0.62 // size of super/subscript relative to base
	superRaise  = 0.35 // superscript top offset above base top, in base sizes
	subLower    = 0.45 // subscript top offset below base top, in base sizes
)

type mathRun struct {
	text  string
	shift int // -1 superscript, 0 base, 1 subscript
}

// parseMathText splits s into base, superscript ("^{...}") and subscript
// ("_{...}") runs. Markers without braces, or with unbalanced braces, are
// kept as literal text.
func parseMathText(s string) []mathRun {
	var runs []mathRun
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, mathRun{text: cur.String()})
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '^' || c == '_') && i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end >= 0 {
				flush()
				shift := -1
				if c == '_' {
					shift = 1
				}
				runs = append(runs, mathRun{text: s[i+2 : i+2+end], shift: shift})
				i += 2 + end
				continue
			}
		}
		cur.WriteByte(c)
	}
	flush()
	return runs
}

// HasMathMarkup reports whether s contains super- or subscript markup.
func HasMathMarkup(s string) bool {
	return strings.Contains(s, "^{") || strings.Contains(s, "_{")
}

type placedRun struct {
	text string
	size float64
	x, y float64 // top-left offset from the text block's top-left
}

func layoutMathText(rc Context, s, font string, size float64, weight FontWeight) ([]placedRun, geom.Size) {
	runs := parseMathText(s)
	hasSuper := false
	for _, r := range runs {
		if r.shift < 0 {
			hasSuper = true
			break
		}
	}
	baseTop := 0.0
	if hasSuper {
		baseTop = superRaise * size
	}

	placed := make([]placedRun, 0, len(runs))
	var x, height float64
	for _, r := range runs {
		runSize := size
		y := baseTop
		switch {
		case r.shift < 0:
			runSize = size * scriptScale
			y = 0
		case r.shift > 0:
			runSize = size * scriptScale
			y = baseTop + subLower*size
		}
		sz := rc.MeasureText(r.text, font, runSize, weight)
		placed = append(placed, placedRun{text: r.text, size: runSize, x: x, y: y})
		x += sz.Width
		height = math.Max(height, y+sz.Height)
	}
	return placed, geom.Size{Width: x, Height: height}
}

// MeasureMathText measures s, honouring super- and subscript markup.
func MeasureMathText(rc Context, s, font string, size float64, weight FontWeight) geom.Size {
	if s == "" {
		return geom.Size{}
	}
	if !HasMathMarkup(s) {
		return rc.MeasureText(s, font, size, weight)
	}
	_, sz := layoutMathText(rc, s, font, size, weight)
	return sz
}

// DrawMathText draws s at p, honouring super- and subscript markup.
// Alignment applies to the whole text block; rotation turns the block
// around p.
func DrawMathText(rc Context, p geom.Point, s string, c Color, font string, size float64, weight FontWeight,
	rotation float64, ha HorizontalAlignment, va VerticalAlignment) {
	if s == "" || !c.IsVisible() {
		return
	}
	if !HasMathMarkup(s) {
		rc.DrawText(p, s, c, font, size, weight, rotation, ha, va)
		return
	}

	runs, total := layoutMathText(rc, s, font, size, weight)
	var dx, dy float64
	switch ha {
	case AlignCenter:
		dx = -total.Width / 2
	case AlignRight:
		dx = -total.Width
	}
	switch va {
	case AlignMiddle:
		dy = -total.Height / 2
	case AlignBottom:
		dy = -total.Height
	}

	rad := rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	for _, r := range runs {
		ox, oy := dx+r.x, dy+r.y
		pos := geom.Point{X: p.X + ox*cos - oy*sin, Y: p.Y + ox*sin + oy*cos}
		rc.DrawText(pos, r.text, c, font, r.size, weight, rotation, AlignLeft, AlignTop)
	}
}
