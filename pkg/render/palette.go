package render

var defaultPalette = []Color{
	MustParseColor("#4e79a7"),
	MustParseColor("#f28e2b"),
	MustParseColor("#e15759"),
	MustParseColor("#76b7b2"),
	MustParseColor("#59a14f"),
	MustParseColor("#edc948"),
	MustParseColor("#b07aa1"),
	MustParseColor("#ff9da7"),
	MustParseColor("#9c755f"),
	MustParseColor("#bab0ac"),
}

// DefaultPalette returns a copy of the default series colors.
func DefaultPalette() []Color {
	return append([]Color(nil), defaultPalette...)
}

// Palette returns n colors. The first colors come from base; when more are
// requested, additional colors are interpolated between neighbouring base
// entries so that consecutive series stay distinguishable.
func Palette(base []Color, n int) []Color {
	if len(base) == 0 {
		base = defaultPalette
	}
	if n <= len(base) {
		return append([]Color(nil), base[:n]...)
	}

	out := append(make([]Color, 0, n), base...)
	for round := 1; len(out) < n; round++ {
		t := 1 / float64(round+1)
		for i := 0; i < len(base) && len(out) < n; i++ {
			out = append(out, base[i].Blend(base[(i+1)%len(base)], t))
		}
	}
	return out
}
