package plot

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// Legend configures the legend box.
type Legend struct {
	Visible     bool
	Title       string
	Placement   LegendPlacement
	Position    LegendPosition
	Orientation LegendOrientation

	// Margin is the distance between the legend and the plot area (inside)
	// or the axes (outside).
	Margin       float64
	Padding      float64
	ItemSpacing  float64 // horizontal gap between items
	LineSpacing  float64 // vertical gap between rows
	SymbolWidth  float64
	SymbolMargin float64 // gap between symbol and text

	Font            string
	FontSize        float64
	TextColor       render.Color
	Background      render.Color
	Border          render.Color
	BorderThickness float64
}

// DefaultLegend returns a visible legend with default spacing. Position and
// orientation are resolved automatically.
func DefaultLegend() Legend {
	return Legend{
		Visible:         true,
		Margin:          8,
		Padding:         8,
		ItemSpacing:     24,
		LineSpacing:     2,
		SymbolWidth:     16,
		SymbolMargin:    4,
		BorderThickness: 1,
	}
}

// resolved returns a copy with automatic properties filled in.
func (lg Legend) resolved() Legend {
	if lg.Position == LegendAuto {
		lg.Position = LegendRightTop
	}
	if lg.Orientation == OrientationAuto {
		lg.Orientation = Vertical
		if lg.Placement == LegendOutside {
			if e := lg.Position.Edge(); e == PositionTop || e == PositionBottom {
				lg.Orientation = Horizontal
			}
		}
	}
	return lg
}

type legendItem struct {
	series LegendSeries
	title  string
	rect   geom.Rect // item bounds relative to the legend box
}

// legendLayout is the measured legend content, positioned relative to the
// top-left corner of the legend box.
type legendLayout struct {
	size  geom.Size
	title geom.Point
	items []legendItem
}

func legendSeries(m *Model) []LegendSeries {
	var out []LegendSeries
	for _, s := range m.Series {
		ls, ok := s.(LegendSeries)
		if !ok || !s.IsVisible() || ls.LegendTitle() == "" {
			continue
		}
		out = append(out, ls)
	}
	return out
}

func (s *Session) isLegendVisible() bool {
	return s.Legend.Visible && len(legendSeries(s.Model)) > 0
}

func (s *Session) legendFont() (string, float64) {
	font, size := s.Legend.Font, s.Legend.FontSize
	if font == "" {
		font = s.Font()
	}
	if size <= 0 {
		size = s.FontSize()
	}
	return font, size
}

// measureLegend lays out the legend content within available and returns
// its size, clamped to available.
func (s *Session) measureLegend(rc render.Context, available geom.Size) legendLayout {
	lg := s.Legend
	font, fontSize := s.legendFont()
	pad := lg.Padding

	var ll legendLayout
	var w, h float64
	if lg.Title != "" {
		ts := render.MeasureMathText(rc, lg.Title, font, fontSize, render.Bold)
		ll.title = geom.Point{X: pad, Y: pad}
		w = ts.Width
		h = ts.Height + lg.LineSpacing
	}

	maxRow := available.Width - 2*pad
	var x, rowH float64
	for _, ls := range legendSeries(s.Model) {
		title := ls.LegendTitle()
		text := render.MeasureMathText(rc, title, font, fontSize, render.Normal)
		iw := lg.SymbolWidth + lg.SymbolMargin + text.Width
		ih := math.Max(text.Height, fontSize)

		if lg.Orientation == Vertical {
			ll.items = append(ll.items, legendItem{series: ls, title: title,
				rect: geom.Rect{Left: pad, Top: pad + h, Width: iw, Height: ih}})
			w = math.Max(w, iw)
			h += ih + lg.LineSpacing
			continue
		}

		if x > 0 && x+lg.ItemSpacing+iw > maxRow {
			h += rowH + lg.LineSpacing
			x, rowH = 0, 0
		}
		if x > 0 {
			x += lg.ItemSpacing
		}
		ll.items = append(ll.items, legendItem{series: ls, title: title,
			rect: geom.Rect{Left: pad + x, Top: pad + h, Width: iw, Height: ih}})
		x += iw
		w = math.Max(w, x)
		rowH = math.Max(rowH, ih)
	}
	if lg.Orientation == Vertical {
		if len(ll.items) > 0 {
			h -= lg.LineSpacing
		}
	} else {
		h += rowH
	}

	ll.size = geom.Size{
		Width:  math.Min(w+2*pad, available.Width),
		Height: math.Min(h+2*pad, available.Height),
	}
	return ll
}

// legendRect positions a legend of the given size.
func legendRect(lg Legend, size geom.Size, plotArea, plotAndAxisArea geom.Rect) geom.Rect {
	var left, top float64

	if lg.Placement == LegendOutside {
		b := plotAndAxisArea
		switch lg.Position.Edge() {
		case PositionLeft:
			left = b.Left - size.Width - lg.Margin
		case PositionRight:
			left = b.Right() + lg.Margin
		case PositionTop:
			top = b.Top - size.Height - lg.Margin
		case PositionBottom:
			top = b.Bottom() + lg.Margin
		}
		switch lg.Position {
		case LegendTopLeft, LegendBottomLeft:
			left = b.Left
		case LegendTopRight, LegendBottomRight:
			left = b.Right() - size.Width
		case LegendLeftTop, LegendRightTop:
			top = b.Top
		case LegendLeftBottom, LegendRightBottom:
			top = b.Bottom() - size.Height
		case LegendLeftMiddle, LegendRightMiddle:
			top = (b.Top + b.Bottom() - size.Height) / 2
		case LegendTopCenter, LegendBottomCenter:
			left = (b.Left + b.Right() - size.Width) / 2
		}
		return geom.Rect{Left: left, Top: top, Width: size.Width, Height: size.Height}
	}

	b := plotArea
	switch lg.Position.Edge() {
	case PositionLeft:
		left = b.Left + lg.Margin
	case PositionRight:
		left = b.Right() - size.Width - lg.Margin
	case PositionTop:
		top = b.Top + lg.Margin
	case PositionBottom:
		top = b.Bottom() - size.Height - lg.Margin
	}
	switch lg.Position {
	case LegendTopLeft, LegendBottomLeft:
		left = b.Left + lg.Margin
	case LegendTopRight, LegendBottomRight:
		left = b.Right() - size.Width - lg.Margin
	case LegendLeftTop, LegendRightTop:
		top = b.Top + lg.Margin
	case LegendLeftBottom, LegendRightBottom:
		top = b.Bottom() - size.Height - lg.Margin
	case LegendLeftMiddle, LegendRightMiddle:
		top = (b.Top + b.Bottom() - size.Height) / 2
	case LegendTopCenter, LegendBottomCenter:
		left = (b.Left + b.Right() - size.Width) / 2
	}
	return geom.Rect{Left: left, Top: top, Width: size.Width, Height: size.Height}
}

// renderLegend draws the legend box and its items.
func (s *Session) renderLegend(rc render.Context, ll legendLayout) {
	lg := s.Legend
	rect := s.Layout.LegendArea
	render.DrawRectangleAsPolygon(rc, rect, lg.Background, lg.Border, lg.BorderThickness)

	font, fontSize := s.legendFont()
	color := lg.TextColor.Or(s.TextColor())
	if lg.Title != "" {
		render.DrawMathText(rc, ll.title.Offset(rect.Left, rect.Top), lg.Title, color, font, fontSize,
			render.Bold, 0, render.AlignLeft, render.AlignTop)
	}

	for _, it := range ll.items {
		r := it.rect
		r.Left += rect.Left
		r.Top += rect.Top
		if r.Top >= rect.Bottom() {
			break
		}
		symH := math.Min(fontSize, r.Height)
		symbol := geom.Rect{Left: r.Left, Top: r.Top + (r.Height-symH)/2, Width: lg.SymbolWidth, Height: symH}
		it.series.RenderLegend(rc, symbol)

		textPos := geom.Point{X: symbol.Right() + lg.SymbolMargin, Y: r.Top + r.Height/2}
		render.DrawMathText(rc, textPos, it.title, color, font, fontSize, render.Normal,
			0, render.AlignLeft, render.AlignMiddle)
	}
}
