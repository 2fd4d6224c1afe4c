package axes

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// TickStyle controls where tick marks are drawn relative to the axis line.
type TickStyle int

const (
	TickOutside TickStyle = iota
	TickInside
	TickCross
	TickNone
)

// Base holds what all axes have in common. It implements [plot.Axis] for
// cartesian axes; the polar axes override measuring and drawing.
type Base struct {
	Name   string // key used by series and annotations
	Pos    plot.AxisPosition
	Tier   int
	Z      plot.AxisLayer
	Hidden bool

	Title string
	Unit  string // appended to the title in brackets

	// Minimum and Maximum fix the range; NaN follows the data.
	Minimum float64
	Maximum float64
	// MinimumPadding and MaximumPadding extend an automatic range by a
	// fraction of its span.
	MinimumPadding float64
	MaximumPadding float64

	// StartPosition and EndPosition are the fractions of the plot edge the
	// axis covers, for axes stacked along one side.
	StartPosition float64
	EndPosition   float64

	// MajorStep and MinorStep fix the tick spacing; 0 picks a step so that
	// major intervals are at least IntervalLength pixels long.
	MajorStep      float64
	MinorStep      float64
	IntervalLength float64
	ShowMinorTicks bool

	TickStyle      TickStyle
	MajorTickSize  float64
	MinorTickSize  float64
	LabelDistance  float64 // between tick and label
	TitleDistance  float64 // between labels and title
	MajorGridlines bool
	MinorGridlines bool

	Font           string
	FontSize       float64
	TitleFontSize  float64
	TextColor      render.Color
	LineColor      render.Color
	LineThickness  float64
	TickColor      render.Color
	MajorGridColor render.Color
	MinorGridColor render.Color

	// Locale selects grouping and decimal separators for labels.
	Locale language.Tag
	// LabelFormatter overrides number formatting.
	LabelFormatter func(v float64) string

	placement plot.TierPlacement

	// data range collected from series
	dataMin, dataMax float64

	actualMin, actualMax float64
	actualMajor          float64
	actualMinor          float64

	// screen = (fwd(v) - offset) * scale
	offset, scale float64
	fwd, inv      func(float64) float64

	plotArea   geom.Rect
	majorTicks []float64
	minorTicks []float64
	labels     []string

	printer *message.Printer
	// screen interval of the last drawn label, NaN when none
	lastLabelLo, lastLabelHi float64
}

func newBase(pos plot.AxisPosition) Base {
	return Base{
		Pos:            pos,
		Minimum:        math.NaN(),
		Maximum:        math.NaN(),
		MinimumPadding: 0.01,
		MaximumPadding: 0.01,
		EndPosition:    1,
		IntervalLength: 60,
		MajorTickSize:  7,
		MinorTickSize:  4,
		LabelDistance:  4,
		TitleDistance:  4,
		LineThickness:  1,
		TickColor:      render.Black,
		MajorGridColor: render.RGBA(0, 0, 0, 0x30),
		MinorGridColor: render.RGBA(0, 0, 0, 0x14),
		dataMin:        math.NaN(),
		dataMax:        math.NaN(),
		actualMin:      0,
		actualMax:      100,
		lastLabelLo:    math.NaN(),
		lastLabelHi:    math.NaN(),
	}
}

func (b *Base) Key() string                           { return b.Name }
func (b *Base) Position() plot.AxisPosition           { return b.Pos }
func (b *Base) PositionTier() int                     { return b.Tier }
func (b *Base) Layer() plot.AxisLayer                 { return b.Z }
func (b *Base) IsVisible() bool                       { return !b.Hidden }
func (b *Base) IsVertical() bool                      { return b.Pos.IsVertical() }
func (b *Base) TierPlacement() plot.TierPlacement     { return b.placement }
func (b *Base) SetTierPlacement(p plot.TierPlacement) { b.placement = p }

// ActualMinimum returns the lower end of the displayed range.
func (b *Base) ActualMinimum() float64 { return b.actualMin }

// ActualMaximum returns the upper end of the displayed range.
func (b *Base) ActualMaximum() float64 { return b.actualMax }

// ActualMajorStep returns the step between major ticks of the last layout.
func (b *Base) ActualMajorStep() float64 { return b.actualMajor }

// MajorTicks returns the major tick values of the last layout.
func (b *Base) MajorTicks() []float64 { return b.majorTicks }

// Labels returns the major tick labels of the last layout.
func (b *Base) Labels() []string { return b.labels }

func (b *Base) forward(v float64) float64 {
	if b.fwd == nil {
		return v
	}
	return b.fwd(v)
}

func (b *Base) inverse(v float64) float64 {
	if b.inv == nil {
		return v
	}
	return b.inv(v)
}

// Transform maps a data value to a screen coordinate along the axis.
func (b *Base) Transform(v float64) float64 { return (b.forward(v) - b.offset) * b.scale }

// InverseTransform maps a screen coordinate back to a data value.
func (b *Base) InverseTransform(s float64) float64 {
	if b.scale == 0 {
		return b.actualMin
	}
	return b.inverse(s/b.scale + b.offset)
}

// Scale returns screen units per (transformed) data unit.
func (b *Base) Scale() float64 { return b.scale }

// ZoomToScale changes the range around its center so that the axis has the
// given absolute scale.
func (b *Base) ZoomToScale(scale float64) {
	if scale == 0 || b.scale == 0 {
		return
	}
	a0, a1 := b.segment()
	lo, hi := b.forward(b.actualMin), b.forward(b.actualMax)
	mid := (lo + hi) / 2
	half := math.Abs(a1-a0) / math.Abs(scale) / 2
	b.actualMin, b.actualMax = b.inverse(mid-half), b.inverse(mid+half)
	b.setTransform(a0, a1)
}

// ResetCurrentValues clears per-render caches.
func (b *Base) ResetCurrentValues() { b.lastLabelLo, b.lastLabelHi = math.NaN(), math.NaN() }

// ResetDataRange forgets the data range collected by the previous render.
func (b *Base) ResetDataRange() { b.dataMin, b.dataMax = math.NaN(), math.NaN() }

// Include extends the data range to contain v.
func (b *Base) Include(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if math.IsNaN(b.dataMin) || v < b.dataMin {
		b.dataMin = v
	}
	if math.IsNaN(b.dataMax) || v > b.dataMax {
		b.dataMax = v
	}
}

// UpdateActualRange computes the displayed range from the fixed limits, the
// data range and the padding. It works in transformed space, so padding on a
// logarithmic axis is proportional.
func (b *Base) UpdateActualRange() {
	lo, hi := b.dataMin, b.dataMax
	if math.IsNaN(lo) || math.IsNaN(hi) {
		lo, hi = 0, 100
		if b.fwd != nil {
			lo = 1
		}
	}
	if !math.IsNaN(b.Minimum) {
		lo = b.Minimum
	}
	if !math.IsNaN(b.Maximum) {
		hi = b.Maximum
	}

	flo, fhi := b.forward(lo), b.forward(hi)
	if fhi < flo {
		flo, fhi = fhi, flo
	}
	if fhi == flo {
		d := math.Abs(flo) * 0.1
		if d == 0 {
			d = 1
		}
		if math.IsNaN(b.Minimum) {
			flo -= d
		}
		if math.IsNaN(b.Maximum) {
			fhi += d
		}
	}
	span := fhi - flo
	if math.IsNaN(b.Minimum) {
		flo -= b.MinimumPadding * span
	}
	if math.IsNaN(b.Maximum) {
		fhi += b.MaximumPadding * span
	}
	b.actualMin, b.actualMax = b.inverse(flo), b.inverse(fhi)
}

// segment returns the screen coordinates of the axis start and end along
// the plot edge.
func (b *Base) segment() (float64, float64) {
	r := b.plotArea
	if b.IsVertical() {
		return r.Bottom() - b.StartPosition*r.Height, r.Bottom() - b.EndPosition*r.Height
	}
	return r.Left + b.StartPosition*r.Width, r.Left + b.EndPosition*r.Width
}

func (b *Base) setTransform(a0, a1 float64) {
	lo, hi := b.forward(b.actualMin), b.forward(b.actualMax)
	if hi == lo {
		b.scale, b.offset = 0, lo
		return
	}
	b.scale = (a1 - a0) / (hi - lo)
	b.offset = lo - a0/b.scale
}

// UpdateTransform maps the actual range onto the axis segment.
func (b *Base) UpdateTransform(plotArea geom.Rect) {
	b.plotArea = plotArea
	b.setTransform(b.segment())
}

// screenLength returns the length of the axis segment in pixels.
func (b *Base) screenLength() float64 {
	a0, a1 := b.segment()
	return math.Abs(a1 - a0)
}

// updateLinearIntervals computes major and minor ticks with nice steps for
// an axis that is length pixels long.
func (b *Base) updateLinearIntervals(length float64) {
	span := b.actualMax - b.actualMin
	b.actualMajor = b.MajorStep
	if b.actualMajor <= 0 {
		b.actualMajor = niceStep(length, b.IntervalLength, span)
	}
	b.actualMinor = b.MinorStep
	if b.actualMinor <= 0 {
		b.actualMinor = minorStep(b.actualMajor)
	}

	b.majorTicks = tickValues(b.actualMin, b.actualMax, b.actualMajor)
	b.minorTicks = nil
	if b.ShowMinorTicks || b.MinorGridlines {
		for _, v := range tickValues(b.actualMin, b.actualMax, b.actualMinor) {
			if !isMultiple(v, b.actualMajor) {
				b.minorTicks = append(b.minorTicks, v)
			}
		}
	}

	decimals := decimalsFor(b.actualMajor)
	b.labels = make([]string, len(b.majorTicks))
	for i, v := range b.majorTicks {
		b.labels[i] = b.formatLabel(v, decimals)
	}
}

func isMultiple(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-9
}

func (b *Base) formatLabel(v float64, decimals int) string {
	if b.LabelFormatter != nil {
		return b.LabelFormatter(v)
	}
	if b.printer == nil {
		b.printer = newPrinter(b.Locale)
	}
	return formatNumber(b.printer, v, decimals)
}

// fullTitle returns the title with the unit appended.
func (b *Base) fullTitle() string {
	switch {
	case b.Title == "":
		return ""
	case b.Unit == "":
		return b.Title
	default:
		return b.Title + " [" + b.Unit + "]"
	}
}

func (b *Base) font() string {
	if b.Font == "" {
		return render.DefaultFont
	}
	return b.Font
}

func (b *Base) fontSize() float64 {
	if b.FontSize <= 0 {
		return 12
	}
	return b.FontSize
}

func (b *Base) titleFontSize() float64 {
	if b.TitleFontSize <= 0 {
		return b.fontSize()
	}
	return b.TitleFontSize
}

func (b *Base) textColor(s *plot.Session) render.Color {
	if s == nil {
		return b.TextColor.Or(render.Black)
	}
	return b.TextColor.Or(s.TextColor())
}

// outsideTickLength is how far ticks reach away from the plot area.
func (b *Base) outsideTickLength() float64 {
	switch b.TickStyle {
	case TickOutside, TickCross:
		return b.MajorTickSize
	}
	return 0
}
