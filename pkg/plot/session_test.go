package plot

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/render"
)

type angleAxis struct{ *fakeAxis }

func (angleAxis) IsAngular() bool { return true }

func TestSessionNextColorCycles(t *testing.T) {
	m := NewModel()
	m.Palette = []render.Color{render.Black, render.White}
	s := newSession(m, &Layout{})

	got := []render.Color{s.NextColor(), s.NextColor(), s.NextColor()}
	want := []render.Color{render.Black, render.White, render.Black}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], want[i])
		}
	}
	s.resetDefaultColor()
	if c := s.NextColor(); c != render.Black {
		t.Errorf("after reset = %v, want black", c)
	}
}

func TestSessionDefaultAxes(t *testing.T) {
	left := newAxis("left", PositionLeft, 0, 0)
	bottom := newAxis("bottom", PositionBottom, 0, 0)
	top := newAxis("top", PositionTop, 0, 0)

	m := NewModel()
	m.Axes = []Axis{left, top, bottom}
	s := newSession(m, &Layout{})

	if s.DefaultXAxis() != top {
		t.Error("DefaultXAxis should be the first horizontal axis")
	}
	if s.DefaultYAxis() != left {
		t.Error("DefaultYAxis should be the first vertical axis")
	}
	if s.AxisByKey("bottom") != bottom || s.AxisByKey("nope") != nil || s.AxisByKey("") != nil {
		t.Error("AxisByKey lookup failed")
	}

	x, y := s.ResolveAxes("bottom", "unknown")
	if x != bottom || y != left {
		t.Errorf("ResolveAxes() = %v, %v", x, y)
	}
}

func TestSessionDefaultPolarAxes(t *testing.T) {
	magnitude := newAxis("magnitude", PositionNone, 0, 0)
	angle := angleAxis{newAxis("angle", PositionNone, 0, 0)}

	m := NewModel()
	m.PlotType = Polar
	m.Axes = []Axis{magnitude, angle}
	s := newSession(m, &Layout{})

	if s.DefaultXAxis() != Axis(angle) {
		t.Error("DefaultXAxis should be the angle axis in polar plots")
	}
	if s.DefaultYAxis() != Axis(magnitude) {
		t.Error("DefaultYAxis should be the magnitude axis in polar plots")
	}
}

func TestSessionNoAxes(t *testing.T) {
	s := newSession(NewModel(), &Layout{})
	if s.DefaultXAxis() != nil || s.DefaultYAxis() != nil {
		t.Error("default axes should be nil without axes")
	}
}

func TestSessionFontDefaults(t *testing.T) {
	m := &Model{}
	s := newSession(m, &Layout{})
	if s.Font() != render.DefaultFont || s.FontSize() != 12 {
		t.Errorf("Font() = %q, FontSize() = %v", s.Font(), s.FontSize())
	}
	if s.TextColor() != render.Black {
		t.Errorf("TextColor() = %v, want black", s.TextColor())
	}
}
