package axes

import (
	"math"
	"slices"
	"testing"

	"golang.org/x/text/language"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestNiceStep(t *testing.T) {
	tests := []struct {
		name                    string
		available, interval, sp float64
		want                    float64
	}{
		{"five intervals", 300, 60, 100, 20},
		{"ten intervals", 600, 60, 100, 10},
		{"short axis", 100, 60, 1, 1},
		{"fractions", 500, 50, 0.3, 0.05},
		{"zero span", 300, 60, 0, 1},
		{"no room", 0, 60, 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := niceStep(tt.available, tt.interval, tt.sp); !approx(got, tt.want) {
				t.Errorf("niceStep(%v, %v, %v) = %v, want %v", tt.available, tt.interval, tt.sp, got, tt.want)
			}
		})
	}
}

func TestMinorStep(t *testing.T) {
	tests := map[float64]float64{20: 5, 10: 2, 50: 10, 0.5: 0.1, 0: 0}
	for major, want := range tests {
		if got := minorStep(major); !approx(got, want) {
			t.Errorf("minorStep(%v) = %v, want %v", major, got, want)
		}
	}
}

func TestTickValues(t *testing.T) {
	tests := []struct {
		name         string
		lo, hi, step float64
		want         []float64
	}{
		{"exact", 0, 100, 20, []float64{0, 20, 40, 60, 80, 100}},
		{"padded", -1, 101, 20, []float64{0, 20, 40, 60, 80, 100}},
		{"no noise", 0.1, 0.35, 0.1, []float64{0.1, 0.2, 0.3}},
		{"negative", -25, 5, 10, []float64{-20, -10, 0}},
		{"bad step", 0, 1, 0, nil},
		{"inverted", 1, 0, 0.1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tickValues(tt.lo, tt.hi, tt.step); !slices.Equal(got, tt.want) {
				t.Errorf("tickValues(%v, %v, %v) = %v, want %v", tt.lo, tt.hi, tt.step, got, tt.want)
			}
		})
	}
}

func TestDecimalsFor(t *testing.T) {
	tests := map[float64]int{20: 0, 1: 0, 0.5: 1, 0.05: 2, 0.25: 2}
	for step, want := range tests {
		if got := decimalsFor(step); got != want {
			t.Errorf("decimalsFor(%v) = %d, want %d", step, got, want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		v        float64
		decimals int
		want     string
	}{
		{language.English, 1234.5, 1, "1,234.5"},
		{language.English, 1000, 0, "1,000"},
		{language.English, 0.25, 2, "0.25"},
		{language.English, -0.0001, 2, "0.00"},
		{language.German, 1234.5, 1, "1.234,5"},
		{language.Und, 20, 0, "20"},
	}
	for _, tt := range tests {
		if got := formatNumber(newPrinter(tt.tag), tt.v, tt.decimals); got != tt.want {
			t.Errorf("formatNumber(%v, %v, %d) = %q, want %q", tt.tag, tt.v, tt.decimals, got, tt.want)
		}
	}
}
