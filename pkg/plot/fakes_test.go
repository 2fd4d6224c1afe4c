package plot

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

type fakeAxis struct {
	name     string
	key      string
	pos      AxisPosition
	tier     int
	layer    AxisLayer
	hidden   bool
	vertical *bool

	// size returns the measured size for the nth Measure call (from 1).
	size     func(n int) geom.Size
	measures int

	placement  TierPlacement
	plotArea   geom.Rect
	transforms int
	intervals  int
	resets     int
}

func newAxis(name string, pos AxisPosition, tier int, extent float64) *fakeAxis {
	a := &fakeAxis{name: name, key: name, pos: pos, tier: tier}
	a.size = func(int) geom.Size { return geom.Size{Width: extent, Height: extent} }
	return a
}

func (a *fakeAxis) Key() string            { return a.key }
func (a *fakeAxis) Position() AxisPosition { return a.pos }
func (a *fakeAxis) PositionTier() int      { return a.tier }
func (a *fakeAxis) Layer() AxisLayer       { return a.layer }
func (a *fakeAxis) IsVisible() bool        { return !a.hidden }
func (a *fakeAxis) IsVertical() bool {
	if a.vertical != nil {
		return *a.vertical
	}
	return a.pos.IsVertical()
}

func (a *fakeAxis) Measure(render.Context) geom.Size {
	a.measures++
	return a.size(a.measures)
}

func (a *fakeAxis) UpdateTransform(r geom.Rect) { a.transforms++; a.plotArea = r }
func (a *fakeAxis) UpdateIntervals(geom.Rect)   { a.intervals++ }
func (a *fakeAxis) ResetCurrentValues()         { a.resets++ }

func (a *fakeAxis) Render(rc render.Context, s *Session, layer AxisLayer, pass int) {
	rc.DrawText(geom.Point{}, fmt.Sprintf("axis:%s:%d", a.name, pass), render.Black, "", 10,
		render.Normal, 0, render.AlignLeft, render.AlignTop)
}

func (a *fakeAxis) TierPlacement() TierPlacement     { return a.placement }
func (a *fakeAxis) SetTierPlacement(p TierPlacement) { a.placement = p }

type scalableAxis struct {
	*fakeAxis
	scale float64
}

func (a *scalableAxis) Scale() float64        { return a.scale }
func (a *scalableAxis) ZoomToScale(s float64) { a.scale = s }

type fakeSeries struct {
	name       string
	hidden     bool
	title      string
	background render.Color
	rect       geom.Rect

	color   render.Color
	setups  int
	ranges  []float64
	xAxis   Axis
	lines   int
	onSetup func(s *Session)
}

func (f *fakeSeries) IsVisible() bool { return !f.hidden }

func (f *fakeSeries) SetDefaultValues(s *Session) {
	f.setups++
	f.color = s.NextColor()
	f.xAxis, _ = s.ResolveAxes("", "")
	if f.onSetup != nil {
		f.onSetup(s)
	}
}

func (f *fakeSeries) Render(rc render.Context, s *Session) {
	rc.DrawText(geom.Point{}, "series:"+f.name, f.color, "", 10, render.Normal, 0, render.AlignLeft, render.AlignTop)
	for i := 0; i < f.lines; i++ {
		rc.DrawLine([]geom.Point{{X: 0, Y: 0}, {X: float64(i), Y: 1}}, f.color, 1, nil)
	}
}

func (f *fakeSeries) Background() render.Color   { return f.background }
func (f *fakeSeries) ScreenRectangle() geom.Rect { return f.rect }
func (f *fakeSeries) LegendTitle() string        { return f.title }

func (f *fakeSeries) RenderLegend(rc render.Context, rect geom.Rect) {
	rc.DrawEllipse(rect, f.color, render.Undefined, 0)
}

func (f *fakeSeries) UpdateAxisRanges(s *Session) {
	if ra, ok := f.xAxis.(RangedAxis); ok {
		for _, v := range f.ranges {
			ra.Include(v)
		}
	}
}

type rangedAxis struct {
	*fakeAxis
	min, max   float64
	actualized bool
}

func (a *rangedAxis) ResetDataRange()    { a.min, a.max = 0, 0; a.actualized = false }
func (a *rangedAxis) Include(v float64)  { a.min = min(a.min, v); a.max = max(a.max, v) }
func (a *rangedAxis) UpdateActualRange() { a.actualized = true }

type fakeAnnotation struct {
	name   string
	layer  AnnotationLayer
	hidden bool
}

func (f *fakeAnnotation) Layer() AnnotationLayer { return f.layer }
func (f *fakeAnnotation) IsVisible() bool        { return !f.hidden }
func (f *fakeAnnotation) Render(rc render.Context, s *Session) {
	rc.DrawText(geom.Point{}, "annotation:"+f.name, render.Black, "", 10, render.Normal, 0, render.AlignLeft, render.AlignTop)
}
