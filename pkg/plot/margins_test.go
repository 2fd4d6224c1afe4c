package plot

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render/rendertest"
)

func TestResolveMargins(t *testing.T) {
	tests := []struct {
		name        string
		axes        []Axis
		current     geom.Thickness
		want        geom.Thickness
		wantChanged bool
	}{
		{
			name:    "no axes",
			current: geom.Uniform(5),
			want:    geom.Uniform(5),
		},
		{
			name: "one axis per side",
			axes: []Axis{
				newAxis("l", PositionLeft, 0, 10),
				newAxis("r", PositionRight, 0, 20),
				newAxis("t", PositionTop, 0, 30),
				newAxis("b", PositionBottom, 0, 40),
			},
			want:        geom.Thickness{Left: 10, Right: 20, Top: 30, Bottom: 40},
			wantChanged: true,
		},
		{
			name:    "never shrinks",
			axes:    []Axis{newAxis("l", PositionLeft, 0, 20)},
			current: geom.Thickness{Left: 50},
			want:    geom.Thickness{Left: 50},
		},
		{
			name:        "stacked tiers",
			axes:        []Axis{newAxis("a", PositionLeft, 0, 20), newAxis("b", PositionLeft, 1, 30)},
			want:        geom.Thickness{Left: 54},
			wantChanged: true,
		},
		{
			name:        "hidden axes ignored",
			axes:        []Axis{&fakeAxis{pos: PositionLeft, hidden: true, size: func(int) geom.Size { return geom.Size{Width: 99} }}},
			current:     geom.Thickness{},
			want:        geom.Thickness{},
			wantChanged: false,
		},
		{
			name:        "angular axis widens all sides",
			axes:        []Axis{newAxis("angle", PositionNone, 0, 15)},
			want:        geom.Uniform(15),
			wantChanged: true,
		},
		{
			name: "angular and side axes",
			axes: []Axis{
				newAxis("angle", PositionNone, 0, 15),
				newAxis("l", PositionLeft, 0, 40),
			},
			want:        geom.Thickness{Left: 40, Top: 15, Right: 15, Bottom: 15},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed, err := ResolveMargins(rendertest.New(), tt.axes, tt.current)
			if err != nil {
				t.Fatalf("ResolveMargins() error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("margins = %+v, want %+v", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if !got.GreaterOrEqual(tt.current) {
				t.Errorf("margins shrank from %+v to %+v", tt.current, got)
			}
		})
	}
}

func TestResolveMarginsAngularIncrease(t *testing.T) {
	rc := rendertest.New()
	side := []Axis{newAxis("l", PositionLeft, 0, 30)}
	before, _, err := ResolveMargins(rc, side, geom.Thickness{})
	if err != nil {
		t.Fatal(err)
	}

	withAngle := append(side, newAxis("angle", PositionNone, 0, 15))
	after, _, err := ResolveMargins(rc, withAngle, geom.Thickness{})
	if err != nil {
		t.Fatal(err)
	}
	if after.Top-before.Top < 15 || after.Right-before.Right < 15 || after.Bottom-before.Bottom < 15 {
		t.Errorf("angular axis did not widen all sides by 15: before %+v, after %+v", before, after)
	}
	if after.Left < 15 {
		t.Errorf("left margin %v below angular extent", after.Left)
	}
}

func TestResolveMarginsUnsupportedPosition(t *testing.T) {
	current := geom.Uniform(3)
	got, changed, err := ResolveMargins(rendertest.New(),
		[]Axis{newAxis("l", PositionLeft, 0, 10), newAxis("bad", AxisPosition(42), 0, 10)}, current)
	if !errors.Is(err, errors.ErrCodeUnsupportedPosition) {
		t.Fatalf("error = %v, want UNSUPPORTED_POSITION", err)
	}
	if changed || !got.Equal(current) {
		t.Errorf("failed resolution returned %+v, changed=%v", got, changed)
	}
}

func TestWidenMargin(t *testing.T) {
	m := geom.Thickness{Left: 5, Top: 5, Right: 5, Bottom: 5}

	got, err := widenMargin(m, PositionBottom, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bottom != 12 || got.Left != 5 {
		t.Errorf("widenMargin(bottom, 12) = %+v", got)
	}

	got, _ = widenMargin(m, PositionTop, 2)
	if got.Top != 5 {
		t.Errorf("widenMargin should never shrink, got top %v", got.Top)
	}

	if _, err := widenMargin(m, PositionNone, 1); !errors.Is(err, errors.ErrCodeUnsupportedPosition) {
		t.Errorf("widenMargin(None) error = %v, want UNSUPPORTED_POSITION", err)
	}
}
