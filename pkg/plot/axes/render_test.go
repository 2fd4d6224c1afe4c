package axes

import (
	"slices"
	"testing"

	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render/rendertest"
)

func TestRenderWithModel(t *testing.T) {
	x := NewLinear(plot.PositionBottom)
	x.Minimum, x.Maximum = 0, 100
	x.Title = "Time"
	y := NewLinear(plot.PositionLeft)
	y.Minimum, y.Maximum = 0, 100
	y.Title = "Value"
	y.MajorGridlines = true

	m := plot.NewModel()
	m.Axes = []plot.Axis{x, y}
	rc := rendertest.New()
	if err := m.Render(rc, 400, 300); err != nil {
		t.Fatal(err)
	}

	l := m.Layout()
	if !l.Converged {
		t.Errorf("layout did not converge after %d iterations", l.Iterations)
	}
	// left: 7 + 4 + 18 ("100") + 4 + 12; bottom: 7 + 4 + 12 + 4 + 12
	if l.ActualMargins.Left != 45 || l.ActualMargins.Bottom != 39 {
		t.Errorf("margins = %+v, want left 45 bottom 39", l.ActualMargins)
	}

	texts := rc.Texts()
	for _, want := range []string{"0", "100", "Time", "Value"} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing text %q in %v", want, texts)
		}
	}
	for _, c := range rc.Calls() {
		if c.Kind == rendertest.KindText && c.Text == "Value" && c.Rotation != -90 {
			t.Errorf("vertical title rotation = %v, want -90", c.Rotation)
		}
	}
}

func TestRenderPolarModel(t *testing.T) {
	mag := NewMagnitude()
	mag.Maximum = 10
	angle := NewAngle()

	m := plot.NewModel()
	m.PlotType = plot.Polar
	m.Axes = []plot.Axis{angle, mag}
	rc := rendertest.New()
	if err := m.Render(rc, 400, 400); err != nil {
		t.Fatal(err)
	}

	// one grid circle per positive magnitude tick; axis lines are off
	if got, want := rc.Count(rendertest.KindEllipse), len(mag.MajorTicks())-1; got != want {
		t.Errorf("ellipses = %d, want %d", got, want)
	}
	texts := rc.Texts()
	for _, want := range []string{"0", "90", "180", "270", "10"} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing text %q in %v", want, texts)
		}
	}
	if m.Layout().PlotArea.Width <= 0 {
		t.Errorf("empty polar plot area: %+v", m.Layout().PlotArea)
	}
}
