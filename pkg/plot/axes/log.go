package axes

import (
	"math"
	"strconv"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// LogarithmicAxis is a base 10 logarithmic axis. Non-positive data is
// ignored when computing the range.
type LogarithmicAxis struct {
	Base
	// PowerLabels labels ticks as 10^{n} instead of plain numbers.
	PowerLabels bool
}

// NewLogarithmic returns a logarithmic axis at pos.
func NewLogarithmic(pos plot.AxisPosition) *LogarithmicAxis {
	a := &LogarithmicAxis{Base: newBase(pos)}
	a.fwd = math.Log10
	a.inv = func(v float64) float64 { return math.Pow(10, v) }
	a.MinimumPadding, a.MaximumPadding = 0, 0
	a.ShowMinorTicks = true
	return a
}

// Include extends the data range with positive values only.
func (a *LogarithmicAxis) Include(v float64) {
	if v > 0 {
		a.Base.Include(v)
	}
}

// UpdateActualRange ignores non-positive fixed limits so the displayed
// range is always positive.
func (a *LogarithmicAxis) UpdateActualRange() {
	minimum, maximum := a.Minimum, a.Maximum
	if !(a.Minimum > 0) {
		a.Minimum = math.NaN()
	}
	if !(a.Maximum > 0) {
		a.Maximum = math.NaN()
	}
	a.Base.UpdateActualRange()
	a.Minimum, a.Maximum = minimum, maximum

	if !positive(a.actualMin) {
		a.actualMin = 1
	}
	if !positive(a.actualMax) || a.actualMax <= a.actualMin {
		a.actualMax = a.actualMin * 10
	}
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

// UpdateIntervals places major ticks on powers of ten (every n-th decade
// when decades are crowded) and minor ticks on 2..9 multiples.
func (a *LogarithmicAxis) UpdateIntervals(plotArea geom.Rect) {
	a.plotArea = plotArea
	lo, hi := math.Log10(a.actualMin), math.Log10(a.actualMax)
	if hi < lo {
		lo, hi = hi, lo
	}

	a.majorTicks = a.majorTicks[:0]
	a.minorTicks = a.minorTicks[:0]
	a.labels = a.labels[:0]
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return
	}

	decadeStep := a.MajorStep
	if decadeStep <= 0 {
		decadeStep = math.Max(1, math.Ceil(niceStep(a.screenLength(), a.IntervalLength, hi-lo)))
	}
	a.actualMajor = decadeStep

	for e := math.Ceil(lo - 1e-9); e <= hi+1e-9; e++ {
		if math.Mod(e, decadeStep) == 0 {
			a.majorTicks = append(a.majorTicks, math.Pow(10, e))
		}
	}
	if decadeStep == 1 {
		for e := math.Floor(lo); e <= math.Ceil(hi); e++ {
			for k := 2.0; k < 10; k++ {
				v := k * math.Pow(10, e)
				if lv := math.Log10(v); lv >= lo && lv <= hi {
					a.minorTicks = append(a.minorTicks, v)
				}
			}
		}
	}

	a.labels = make([]string, len(a.majorTicks))
	for i, v := range a.majorTicks {
		e := int(math.Round(math.Log10(v)))
		if a.PowerLabels && a.LabelFormatter == nil {
			a.labels[i] = "10^{" + strconv.Itoa(e) + "}"
			continue
		}
		a.labels[i] = a.formatLabel(v, max(0, -e))
	}
}
