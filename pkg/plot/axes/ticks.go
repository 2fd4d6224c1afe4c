package axes

import (
	"math"
	"strconv"
)

// removeNoise rounds away floating point noise such as 0.30000000000000004.
func removeNoise(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'e', 14, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func mantissa(v float64) float64 {
	return v / math.Pow(10, math.Floor(math.Log10(v)))
}

// niceStep returns the smallest step of the form {1, 2, 5} x 10^n for which
// span is divided into at most available/maxInterval intervals.
func niceStep(available, maxInterval, span float64) float64 {
	span = math.Abs(span)
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	if available <= 0 || maxInterval <= 0 {
		return span
	}
	maxCount := available / maxInterval

	step := math.Pow(10, math.Ceil(math.Log10(span)))
	for i := 0; i < 64; i++ {
		var next float64
		switch m := math.Round(mantissa(step)); m {
		case 5:
			next = removeNoise(step / 2.5)
		default:
			next = removeNoise(step / 2)
		}
		if span/next > maxCount || next <= 0 {
			break
		}
		step = next
	}
	return step
}

// minorStep subdivides a major step: 5 into 5 parts, 2 into 4, 1 into 5.
func minorStep(major float64) float64 {
	if major <= 0 {
		return 0
	}
	if math.Round(mantissa(major)) == 2 {
		return removeNoise(major / 4)
	}
	return removeNoise(major / 5)
}

// tickValues returns the multiples of step within [lo, hi].
func tickValues(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	const maxTicks = 1000
	eps := step * 1e-9
	first := math.Ceil((lo-eps)/step) * step
	var out []float64
	for v := first; v <= hi+eps && len(out) < maxTicks; v = removeNoise(v + step) {
		if math.Abs(v) < eps {
			v = 0
		}
		out = append(out, removeNoise(v))
	}
	return out
}

// decimalsFor returns the number of fraction digits needed to show
// multiples of step exactly.
func decimalsFor(step float64) int {
	for d := 0; d < 12; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			return d
		}
	}
	return 12
}
