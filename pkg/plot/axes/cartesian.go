package axes

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Measure returns the extent of ticks, labels and title perpendicular to
// the axis.
func (b *Base) Measure(rc render.Context) geom.Size {
	labels := b.labels
	if len(labels) == 0 {
		labels = []string{b.formatLabel(b.actualMin, 0), b.formatLabel(b.actualMax, 0)}
	}

	var labelW, labelH float64
	for _, l := range labels {
		sz := render.MeasureMathText(rc, l, b.font(), b.fontSize(), render.Normal)
		labelW = math.Max(labelW, sz.Width)
		labelH = math.Max(labelH, sz.Height)
	}

	extent := b.outsideTickLength() + b.LabelDistance
	if b.IsVertical() {
		extent += labelW
	} else {
		extent += labelH
	}
	if title := b.fullTitle(); title != "" {
		extent += b.TitleDistance + render.MeasureMathText(rc, title, b.font(), b.titleFontSize(), render.Normal).Height
	}

	if b.IsVertical() {
		return geom.Size{Width: extent}
	}
	return geom.Size{Height: extent}
}

// edge returns the screen coordinate of the axis line perpendicular to the
// axis and the outward direction (+1 or -1).
func (b *Base) edge() (float64, float64) {
	r, shift := b.plotArea, b.placement.MinShift
	switch b.Pos {
	case plot.PositionLeft:
		return r.Left - shift, -1
	case plot.PositionRight:
		return r.Right() + shift, 1
	case plot.PositionTop:
		return r.Top - shift, -1
	default:
		return r.Bottom() + shift, 1
	}
}

// point builds a screen point from a coordinate along the axis and one
// across it.
func (b *Base) point(along, across float64) geom.Point {
	if b.IsVertical() {
		return geom.Point{X: across, Y: along}
	}
	return geom.Point{X: along, Y: across}
}

func (b *Base) inSegment(p float64) bool {
	a0, a1 := b.segment()
	lo, hi := math.Min(a0, a1), math.Max(a0, a1)
	return p >= lo-0.5 && p <= hi+0.5
}

// Render draws gridlines in pass 0 and the axis line, ticks, labels and
// title in pass 1.
func (b *Base) Render(rc render.Context, s *plot.Session, layer plot.AxisLayer, pass int) {
	if pass == 0 {
		b.renderGridlines(rc)
		return
	}
	b.renderAxis(rc, s)
}

func (b *Base) renderGridlines(rc render.Context) {
	r := b.plotArea
	draw := func(values []float64, c render.Color, thickness float64) {
		if !c.IsVisible() {
			return
		}
		for _, v := range values {
			p := b.Transform(v)
			if !b.inSegment(p) {
				continue
			}
			var pts []geom.Point
			if b.IsVertical() {
				pts = []geom.Point{{X: r.Left, Y: p}, {X: r.Right(), Y: p}}
			} else {
				pts = []geom.Point{{X: p, Y: r.Top}, {X: p, Y: r.Bottom()}}
			}
			rc.DrawLine(pts, c, thickness, nil)
		}
	}
	if b.MinorGridlines {
		draw(b.minorTicks, b.MinorGridColor, 1)
	}
	if b.MajorGridlines {
		draw(b.majorTicks, b.MajorGridColor, 1)
	}
}

func (b *Base) renderAxis(rc render.Context, s *plot.Session) {
	edge, dir := b.edge()
	a0, a1 := b.segment()

	if b.LineColor.IsVisible() && b.LineThickness > 0 {
		rc.DrawLine([]geom.Point{b.point(a0, edge), b.point(a1, edge)}, b.LineColor, b.LineThickness, nil)
	}

	out := b.outsideTickLength()
	tick := func(v, size float64) {
		p := b.Transform(v)
		if !b.inSegment(p) {
			return
		}
		var in, o float64
		switch b.TickStyle {
		case TickOutside:
			o = size
		case TickInside:
			in = size
		case TickCross:
			in, o = size, size
		}
		rc.DrawLine([]geom.Point{b.point(p, edge-dir*in), b.point(p, edge+dir*o)}, b.TickColor, 1, nil)
	}
	if b.TickStyle != TickNone && b.TickColor.IsVisible() {
		if b.ShowMinorTicks {
			for _, v := range b.minorTicks {
				tick(v, b.MinorTickSize)
			}
		}
		for _, v := range b.majorTicks {
			tick(v, b.MajorTickSize)
		}
	}

	color := b.textColor(s)
	ha, va := b.labelAlignment()
	labelAt := edge + dir*(out+b.LabelDistance)
	for i, v := range b.majorTicks {
		p := b.Transform(v)
		if !b.inSegment(p) || i >= len(b.labels) {
			continue
		}
		text := b.labels[i]
		sz := render.MeasureMathText(rc, text, b.font(), b.fontSize(), render.Normal)
		extent := sz.Width
		if b.IsVertical() {
			extent = sz.Height
		}
		if !b.claimLabelSpace(p-extent/2, p+extent/2) {
			continue
		}
		render.DrawMathText(rc, b.point(p, labelAt), text, color, b.font(), b.fontSize(), render.Normal, 0, ha, va)
	}

	b.renderTitle(rc, color, (a0+a1)/2)
}

// claimLabelSpace reports whether a label spanning [lo, hi] along the axis
// clears the previously drawn label, and records it if so.
func (b *Base) claimLabelSpace(lo, hi float64) bool {
	const gap = 2
	if !math.IsNaN(b.lastLabelLo) && lo < b.lastLabelHi+gap && hi > b.lastLabelLo-gap {
		return false
	}
	b.lastLabelLo, b.lastLabelHi = lo, hi
	return true
}

func (b *Base) labelAlignment() (render.HorizontalAlignment, render.VerticalAlignment) {
	switch b.Pos {
	case plot.PositionLeft:
		return render.AlignRight, render.AlignMiddle
	case plot.PositionRight:
		return render.AlignLeft, render.AlignMiddle
	case plot.PositionTop:
		return render.AlignCenter, render.AlignBottom
	default:
		return render.AlignCenter, render.AlignTop
	}
}

// renderTitle draws the title at the outer edge of the axis tier.
func (b *Base) renderTitle(rc render.Context, color render.Color, mid float64) {
	title := b.fullTitle()
	if title == "" {
		return
	}
	r, shift := b.plotArea, b.placement.MaxShift
	var (
		p        geom.Point
		rotation float64
		va       render.VerticalAlignment
	)
	switch b.Pos {
	case plot.PositionLeft:
		p, rotation, va = geom.Point{X: r.Left - shift, Y: mid}, -90, render.AlignTop
	case plot.PositionRight:
		p, rotation, va = geom.Point{X: r.Right() + shift, Y: mid}, -90, render.AlignBottom
	case plot.PositionTop:
		p, va = geom.Point{X: mid, Y: r.Top - shift}, render.AlignTop
	default:
		p, va = geom.Point{X: mid, Y: r.Bottom() + shift}, render.AlignBottom
	}
	render.DrawMathText(rc, p, title, color, b.font(), b.titleFontSize(), render.Normal, rotation, render.AlignCenter, va)
}
