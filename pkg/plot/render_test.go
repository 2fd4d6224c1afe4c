package plot

import (
	"math"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/render/rendertest"
)

func TestRenderNonPositiveSizeIsNoop(t *testing.T) {
	sizes := [][2]float64{
		{0, 100}, {100, 0}, {-5, 100}, {100, -1},
		{math.NaN(), 100}, {100, math.NaN()}, {math.Inf(1), 100}, {100, math.Inf(1)},
	}
	for _, size := range sizes {
		axis := newAxis("x", PositionBottom, 0, 10)
		series := &fakeSeries{name: "s"}
		m := NewModel()
		m.Axes = []Axis{axis}
		m.Series = []Series{series}
		rc := rendertest.New()

		if err := m.Render(rc, size[0], size[1]); err != nil {
			t.Errorf("Render(%v) error: %v", size, err)
		}
		if n := len(rc.Calls()); n != 0 {
			t.Errorf("Render(%v) issued %d draw calls", size, n)
		}
		if rc.Measures() != 0 || axis.transforms != 0 || series.setups != 0 {
			t.Errorf("Render(%v) touched the model", size)
		}
		if m.Layout() != (Layout{}) {
			t.Errorf("Render(%v) published a layout", size)
		}
	}
}

func TestRenderPhaseOrder(t *testing.T) {
	var (
		plotBG   = render.RGB(1, 1, 1)
		border   = render.RGB(2, 2, 2)
		legendBo = render.RGB(3, 3, 3)
		seriesBG = render.RGB(4, 4, 4)
	)

	below := newAxis("below", PositionLeft, 0, 20)
	above := newAxis("above", PositionBottom, 0, 20)
	above.layer = AboveSeries

	m := NewModel()
	m.Title = "Title"
	m.Background = render.White
	m.PlotAreaBackground = plotBG
	m.PlotAreaBorderColor = border
	m.Legend.Border = legendBo
	m.Axes = []Axis{above, below}
	m.Series = []Series{&fakeSeries{name: "s1", title: "s1", background: seriesBG,
		rect: geom.Rect{Left: 50, Top: 50, Width: 10, Height: 10}}}
	m.Annotations = []Annotation{
		&fakeAnnotation{name: "above", layer: AnnotationAboveSeries},
		&fakeAnnotation{name: "below", layer: AnnotationBelowSeries},
		&fakeAnnotation{name: "hidden", layer: AnnotationBelowSeries, hidden: true},
		&fakeAnnotation{name: "axes", layer: AnnotationBelowAxes},
	}

	rc := rendertest.New()
	if err := m.Render(rc, 400, 300); err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, c := range rc.Calls() {
		switch c.Kind {
		case rendertest.KindRectangle:
			got = append(got, "background")
		case rendertest.KindPolygon:
			switch {
			case c.Fill == plotBG:
				got = append(got, "plot-background")
			case c.Fill == seriesBG:
				got = append(got, "series-background")
			case c.Stroke == border:
				got = append(got, "box")
			case c.Stroke == legendBo:
				got = append(got, "legend-box")
			default:
				got = append(got, "polygon?")
			}
		case rendertest.KindEllipse:
			got = append(got, "legend-symbol")
		case rendertest.KindText:
			got = append(got, c.Text)
		default:
			got = append(got, string(c.Kind))
		}
	}

	want := []string{
		"background", "plot-background", "series-background",
		"annotation:axes",
		"axis:below:0", "axis:below:1",
		"annotation:below",
		"series:s1",
		"annotation:above",
		"Title",
		"box",
		"axis:above:0", "axis:above:1",
		"legend-box", "legend-symbol", "s1",
		"cleanup",
	}
	if !slices.Equal(got, want) {
		t.Errorf("draw order:\n got %v\nwant %v", got, want)
	}
}

func TestRenderConverges(t *testing.T) {
	axis := newAxis("y", PositionLeft, 0, 30)
	m := NewModel()
	m.Axes = []Axis{axis}

	if err := m.Render(rendertest.New(), 400, 300); err != nil {
		t.Fatal(err)
	}
	l := m.Layout()

	if !l.Converged || l.Iterations != 2 {
		t.Errorf("Converged = %v, Iterations = %d; want true, 2", l.Converged, l.Iterations)
	}
	if l.ActualMargins.Left != 30 {
		t.Errorf("left margin = %v, want 30", l.ActualMargins.Left)
	}
	if l.PlotArea.Left != 8+30 {
		t.Errorf("PlotArea.Left = %v, want 38", l.PlotArea.Left)
	}
	if axis.placement.MaxShift != 30 {
		t.Errorf("axis placement = %+v", axis.placement)
	}
	if axis.plotArea != l.PlotArea {
		t.Errorf("axis transformed against %+v, final plot area %+v", axis.plotArea, l.PlotArea)
	}
	if axis.resets != 1 {
		t.Errorf("ResetCurrentValues called %d times, want 1", axis.resets)
	}
}

func TestRenderMarginsNeverShrink(t *testing.T) {
	axis := newAxis("y", PositionLeft, 0, 0)
	axis.size = func(n int) geom.Size {
		if n == 1 {
			return geom.Size{Width: 40}
		}
		return geom.Size{Width: 20}
	}
	m := NewModel()
	m.PlotMargins = geom.Thickness{Top: 5}
	m.Axes = []Axis{axis}

	if err := m.Render(rendertest.New(), 400, 300); err != nil {
		t.Fatal(err)
	}
	l := m.Layout()
	if l.ActualMargins.Left != 40 || l.ActualMargins.Top != 5 {
		t.Errorf("ActualMargins = %+v, want left 40 and top 5", l.ActualMargins)
	}
	if !l.Converged {
		t.Error("layout should converge once the axis shrinks")
	}
}

type recordingLayoutHooks struct {
	observability.NoopLayoutHooks
	mu           sync.Mutex
	notConverged []int
	completed    int
}

func (h *recordingLayoutHooks) OnNotConverged(iterations int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notConverged = append(h.notConverged, iterations)
}

func (h *recordingLayoutHooks) OnLayoutComplete(int, bool, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
}

func TestRenderReportsNonConvergence(t *testing.T) {
	hooks := &recordingLayoutHooks{}
	observability.SetLayoutHooks(hooks)
	defer observability.Reset()

	// An axis that grows on every measurement never settles.
	axis := newAxis("y", PositionLeft, 0, 0)
	axis.size = func(n int) geom.Size { return geom.Size{Width: float64(n) * 10} }
	m := NewModel()
	m.Axes = []Axis{axis}

	rc := rendertest.New()
	if err := m.Render(rc, 400, 300); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	l := m.Layout()
	if l.Converged || l.Iterations != MaxLayoutIterations {
		t.Errorf("Converged = %v, Iterations = %d; want false, %d", l.Converged, l.Iterations, MaxLayoutIterations)
	}
	if !slices.Equal(hooks.notConverged, []int{MaxLayoutIterations}) {
		t.Errorf("OnNotConverged calls = %v", hooks.notConverged)
	}
	if hooks.completed != 1 {
		t.Errorf("OnLayoutComplete calls = %d, want 1", hooks.completed)
	}
	if rc.Count(rendertest.KindCleanUp) != 1 {
		t.Error("rendering should continue after non-convergence")
	}
}

func TestRenderWithoutAutoAdjust(t *testing.T) {
	axis := newAxis("y", PositionLeft, 0, 50)
	m := NewModel()
	m.AutoAdjustPlotMargins = false
	m.PlotMargins = geom.Uniform(10)
	m.Axes = []Axis{axis}

	if err := m.Render(rendertest.New(), 400, 300); err != nil {
		t.Fatal(err)
	}
	l := m.Layout()
	if !l.ActualMargins.Equal(geom.Uniform(10)) || l.Iterations != 1 {
		t.Errorf("ActualMargins = %+v, Iterations = %d", l.ActualMargins, l.Iterations)
	}
	if axis.measures != 0 {
		t.Errorf("axes measured %d times without auto adjust", axis.measures)
	}
}

func TestRenderErrorKeepsPreviousLayout(t *testing.T) {
	m := NewModel()
	m.Axes = []Axis{newAxis("y", PositionLeft, 0, 30)}
	rc := rendertest.New()
	if err := m.Render(rc, 400, 300); err != nil {
		t.Fatal(err)
	}
	prev := m.Layout()

	m.Axes = append(m.Axes, newAxis("bad", AxisPosition(99), 0, 10))
	rc.Reset()
	err := m.Render(rc, 800, 600)
	if !errors.Is(err, errors.ErrCodeUnsupportedPosition) {
		t.Fatalf("Render() error = %v, want UNSUPPORTED_POSITION", err)
	}
	if n := len(rc.Calls()); n != 0 {
		t.Errorf("failed render issued %d draw calls", n)
	}
	if m.Layout() != prev {
		t.Errorf("failed render replaced the layout: %+v", m.Layout())
	}
}

func TestRenderCartesianEqualizesScales(t *testing.T) {
	x := &scalableAxis{fakeAxis: newAxis("x", PositionBottom, 0, 0), scale: 2}
	y := &scalableAxis{fakeAxis: newAxis("y", PositionLeft, 0, 0), scale: -0.5}
	m := NewModel()
	m.PlotType = Cartesian
	m.Axes = []Axis{x, y}

	if err := m.Render(rendertest.New(), 400, 300); err != nil {
		t.Fatal(err)
	}
	if x.scale != 0.5 || y.scale != 0.5 {
		t.Errorf("scales = %v, %v; want 0.5, 0.5", x.scale, y.scale)
	}
	// One pass of the margin loop plus one update after equalizing.
	if x.transforms != 2 || x.intervals != 2 {
		t.Errorf("transforms = %d, intervals = %d; want 2, 2", x.transforms, x.intervals)
	}
}

func TestRenderSetsDefaultsInOrder(t *testing.T) {
	a := &fakeSeries{name: "a"}
	hidden := &fakeSeries{name: "h", hidden: true}
	b := &fakeSeries{name: "b"}
	m := NewModel()
	m.Series = []Series{a, hidden, b}
	palette := render.DefaultPalette()

	for i := 0; i < 2; i++ {
		if err := m.Render(rendertest.New(), 100, 100); err != nil {
			t.Fatal(err)
		}
		if a.color != palette[0] || b.color != palette[1] {
			t.Errorf("render %d: colors = %v, %v; want %v, %v", i, a.color, b.color, palette[0], palette[1])
		}
	}
	if hidden.setups != 0 {
		t.Error("hidden series should not be set up")
	}
}

func TestRenderUpdatesDataRanges(t *testing.T) {
	x := &rangedAxis{fakeAxis: newAxis("x", PositionBottom, 0, 10)}
	s := &fakeSeries{name: "s", ranges: []float64{-3, 5, 2}}
	m := NewModel()
	m.Axes = []Axis{x}
	m.Series = []Series{s}

	if err := m.Render(rendertest.New(), 100, 100); err != nil {
		t.Fatal(err)
	}
	if x.min != -3 || x.max != 5 || !x.actualized {
		t.Errorf("range = [%v, %v], actualized = %v", x.min, x.max, x.actualized)
	}
}

func TestConcurrentRendersDoNotInterleave(t *testing.T) {
	m := NewModel()
	m.Legend.Visible = false
	m.Series = []Series{&fakeSeries{name: "s", lines: 20}}
	rc := rendertest.New()

	if err := m.Render(rc, 300, 200); err != nil {
		t.Fatal(err)
	}
	reference := rc.Kinds()
	rc.Reset()

	const workers, renders = 8, 10
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < renders; i++ {
				_ = m.Render(rc, 300, 200)
				_ = m.Layout()
			}
		}()
	}
	wg.Wait()

	kinds := rc.Kinds()
	if len(kinds) != workers*renders*len(reference) {
		t.Fatalf("got %d calls, want %d", len(kinds), workers*renders*len(reference))
	}
	for i := 0; i < len(kinds); i += len(reference) {
		if !slices.Equal(kinds[i:i+len(reference)], reference) {
			t.Fatalf("render starting at call %d interleaved with another render", i)
		}
	}
}
