// Package fonts provides the font faces used for text measurement and raster
// output.
//
// The Go font family is compiled into the binary (via
// golang.org/x/image/font/gofont), so measurement is deterministic and needs
// no system fonts. SVG output names the same family with fallbacks, so
// browsers without the Go fonts still get proportional text of similar width.
package fonts

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily is used in SVG output for viewers without the Go fonts.
const FallbackFontFamily = `'Go', 'DejaVu Sans', 'Helvetica Neue', Arial, sans-serif`

// Parsed fonts (computed once on first access).
var (
	parseOnce sync.Once
	regular   *opentype.Font
	bold      *opentype.Font
	parseErr  error
)

func parse() {
	regular, parseErr = opentype.Parse(goregular.TTF)
	if parseErr != nil {
		return
	}
	bold, parseErr = opentype.Parse(gobold.TTF)
}

// Font returns the parsed regular or bold font.
func Font(isBold bool) (*opentype.Font, error) {
	parseOnce.Do(parse)
	if parseErr != nil {
		return nil, parseErr
	}
	if isBold {
		return bold, nil
	}
	return regular, nil
}
