package plot

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render/rendertest"
)

func TestLegendResolved(t *testing.T) {
	tests := []struct {
		name      string
		in        Legend
		wantPos   LegendPosition
		wantOrien LegendOrientation
	}{
		{"auto", Legend{}, LegendRightTop, Vertical},
		{"outside top", Legend{Placement: LegendOutside, Position: LegendTopCenter}, LegendTopCenter, Horizontal},
		{"outside bottom", Legend{Placement: LegendOutside, Position: LegendBottomLeft}, LegendBottomLeft, Horizontal},
		{"outside right", Legend{Placement: LegendOutside, Position: LegendRightMiddle}, LegendRightMiddle, Vertical},
		{"inside top", Legend{Position: LegendTopCenter}, LegendTopCenter, Vertical},
		{"explicit", Legend{Position: LegendLeftTop, Orientation: Horizontal}, LegendLeftTop, Horizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.resolved()
			if got.Position != tt.wantPos || got.Orientation != tt.wantOrien {
				t.Errorf("resolved() = %s/%s, want %s/%s", got.Position, got.Orientation, tt.wantPos, tt.wantOrien)
			}
		})
	}
}

func TestLegendRect(t *testing.T) {
	plotArea := geom.Rect{Left: 100, Top: 100, Width: 200, Height: 100}
	axisArea := geom.Rect{Left: 80, Top: 90, Width: 240, Height: 130}
	size := geom.Size{Width: 50, Height: 20}

	tests := []struct {
		placement LegendPlacement
		pos       LegendPosition
		wantLeft  float64
		wantTop   float64
	}{
		{LegendOutside, LegendRightTop, 328, 90},
		{LegendOutside, LegendLeftMiddle, 22, 145},
		{LegendOutside, LegendBottomCenter, 175, 228},
		{LegendOutside, LegendTopRight, 270, 62},
		{LegendOutside, LegendRightBottom, 328, 200},
		{LegendInside, LegendRightTop, 242, 108},
		{LegendInside, LegendBottomLeft, 108, 172},
		{LegendInside, LegendLeftMiddle, 108, 140},
		{LegendInside, LegendTopCenter, 175, 108},
	}
	for _, tt := range tests {
		t.Run(tt.placement.String()+"/"+tt.pos.String(), func(t *testing.T) {
			lg := Legend{Placement: tt.placement, Position: tt.pos, Margin: 8}
			got := legendRect(lg, size, plotArea, axisArea)
			want := geom.Rect{Left: tt.wantLeft, Top: tt.wantTop, Width: 50, Height: 20}
			if got != want {
				t.Errorf("legendRect() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMeasureLegendHorizontalWraps(t *testing.T) {
	m := NewModel()
	m.Legend.Orientation = Horizontal
	m.Series = []Series{
		&fakeSeries{title: "aa"},
		&fakeSeries{title: "bb"},
		&fakeSeries{title: "cc"},
	}
	s := newSession(m, &Layout{})

	// Each item is 16 + 4 + 12 = 32 wide; two items plus spacing need 88,
	// more than the 64 available inside the padding.
	ll := s.measureLegend(rendertest.New(), geom.Size{Width: 80, Height: 500})
	if len(ll.items) != 3 {
		t.Fatalf("got %d items", len(ll.items))
	}
	if ll.size.Width != 48 || ll.size.Height != 3*12+2*2+16 {
		t.Errorf("size = %+v, want 48x56", ll.size)
	}
	if ll.items[2].rect.Top != 8+2*(12+2) {
		t.Errorf("third row top = %v", ll.items[2].rect.Top)
	}

	wide := s.measureLegend(rendertest.New(), geom.Size{Width: 1000, Height: 500})
	if wide.size.Height != 12+16 {
		t.Errorf("single-row height = %v, want 28", wide.size.Height)
	}
	if wide.items[1].rect.Left != 8+32+24 {
		t.Errorf("second item left = %v", wide.items[1].rect.Left)
	}
}

func TestMeasureLegendClampsToAvailable(t *testing.T) {
	m := NewModel()
	m.Legend.Title = "Legend"
	m.Series = []Series{&fakeSeries{title: "a long series title"}}
	s := newSession(m, &Layout{})

	ll := s.measureLegend(rendertest.New(), geom.Size{Width: 30, Height: 10})
	if ll.size.Width != 30 || ll.size.Height != 10 {
		t.Errorf("size = %+v, want clamped to 30x10", ll.size)
	}
}

func TestLegendSkipsUntitledAndHiddenSeries(t *testing.T) {
	m := NewModel()
	m.Series = []Series{
		&fakeSeries{title: ""},
		&fakeSeries{title: "hidden", hidden: true},
		&fakeSeries{title: "shown"},
	}
	got := legendSeries(m)
	if len(got) != 1 || got[0].LegendTitle() != "shown" {
		t.Errorf("legendSeries() = %v", got)
	}

	m.Series = m.Series[:2]
	if newSession(m, &Layout{}).isLegendVisible() {
		t.Error("legend without titled series should be hidden")
	}
}
