package render

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/geom"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", RGB(255, 0, 0), false},
		{"#F00", RGB(255, 0, 0), false},
		{"#00ff0080", RGBA(0, 255, 0, 128), false},
		{"steelblue", RGB(70, 130, 180), false},
		{"none", Undefined, false},
		{"", Undefined, false},
		{"#zzzzzz", Undefined, true},
		{"chartreuse-ish", Undefined, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("ParseColor(%q) code = %v", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := RGB(255, 0, 0).String(); s != "#ff0000" {
		t.Errorf("String() = %q", s)
	}
	if s := RGBA(0, 0, 255, 128).String(); s != "#0000ff80" {
		t.Errorf("String() = %q", s)
	}
	if s := Undefined.String(); s != "none" {
		t.Errorf("String() = %q", s)
	}
}

func TestColorVisibility(t *testing.T) {
	if Undefined.IsVisible() {
		t.Error("Undefined should not be visible")
	}
	if !Black.IsVisible() {
		t.Error("Black should be visible")
	}
	if got := Undefined.Or(White); got != White {
		t.Errorf("Or() = %v, want white", got)
	}
}

func TestPalette(t *testing.T) {
	base := DefaultPalette()
	if got := Palette(base, 3); len(got) != 3 || got[0] != base[0] {
		t.Errorf("Palette(3) = %v", got)
	}

	got := Palette(base, len(base)+5)
	if len(got) != len(base)+5 {
		t.Fatalf("len = %d, want %d", len(got), len(base)+5)
	}
	for i, c := range got {
		if !c.IsVisible() {
			t.Errorf("color %d not visible", i)
		}
	}
}

func TestParseMathText(t *testing.T) {
	tests := []struct {
		in   string
		want []mathRun
	}{
		{"plain", []mathRun{{text: "plain"}}},
		{"m^{2}", []mathRun{{text: "m"}, {text: "2", shift: -1}}},
		{"x_{i}+1", []mathRun{{text: "x"}, {text: "i", shift: 1}, {text: "+1"}}},
		{"a^b", []mathRun{{text: "a^b"}}},
		{"a^{open", []mathRun{{text: "a^{open"}}},
	}

	for _, tt := range tests {
		got := parseMathText(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseMathText(%q) = %+v, want %+v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseMathText(%q)[%d] = %+v, want %+v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSnapRect(t *testing.T) {
	r := geom.Rect{Left: 10.3, Top: 20.7, Width: 50, Height: 30}

	odd := SnapRect(r, 1)
	if odd.Left != 10.5 || odd.Top != 21.5 {
		t.Errorf("SnapRect(thickness 1) = %+v", odd)
	}

	even := SnapRect(r, 2)
	if even.Left != 10 || even.Top != 21 {
		t.Errorf("SnapRect(thickness 2) = %+v", even)
	}
}
