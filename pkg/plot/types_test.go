package plot

import "testing"

func TestParseEnums(t *testing.T) {
	if p, err := ParseAxisPosition("Bottom"); err != nil || p != PositionBottom {
		t.Errorf("ParseAxisPosition(Bottom) = %v, %v", p, err)
	}
	if p, err := ParseLegendPosition("right_middle"); err != nil || p != LegendRightMiddle {
		t.Errorf("ParseLegendPosition(right_middle) = %v, %v", p, err)
	}
	if p, err := ParsePlotType(" polar "); err != nil || p != Polar {
		t.Errorf("ParsePlotType(polar) = %v, %v", p, err)
	}
	if l, err := ParseAnnotationLayer("below-axes"); err != nil || l != AnnotationBelowAxes {
		t.Errorf("ParseAnnotationLayer(below-axes) = %v, %v", l, err)
	}
	if _, err := ParseAxisLayer("sideways"); err == nil {
		t.Error("ParseAxisLayer(sideways) should fail")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{PositionLeft.String(), "left"},
		{AxisPosition(42).String(), "unknown(42)"},
		{LegendTopCenter.String(), "top-center"},
		{LegendOutside.String(), "outside"},
		{Vertical.String(), "vertical"},
		{Cartesian.String(), "cartesian"},
		{AboveSeries.String(), "above-series"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestLegendPositionEdge(t *testing.T) {
	tests := map[LegendPosition]AxisPosition{
		LegendAuto:         PositionNone,
		LegendTopRight:     PositionTop,
		LegendBottomCenter: PositionBottom,
		LegendLeftMiddle:   PositionLeft,
		LegendRightBottom:  PositionRight,
	}
	for pos, want := range tests {
		if got := pos.Edge(); got != want {
			t.Errorf("%s.Edge() = %s, want %s", pos, got, want)
		}
	}
}
