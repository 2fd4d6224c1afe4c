package axes

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// CategoryAxis labels integer positions 0..n-1 with category names. Series
// use the category index as their data coordinate.
type CategoryAxis struct {
	Base
	Categories []string
}

// NewCategory returns a category axis at pos.
func NewCategory(pos plot.AxisPosition, categories ...string) *CategoryAxis {
	a := &CategoryAxis{Base: newBase(pos), Categories: categories}
	a.MinimumPadding, a.MaximumPadding = 0, 0
	return a
}

// UpdateActualRange shows every category with half a slot of space on each
// side. Data beyond the last category extends the range.
func (a *CategoryAxis) UpdateActualRange() {
	n := float64(len(a.Categories))
	if !math.IsNaN(a.dataMax) {
		n = math.Max(n, math.Floor(a.dataMax)+1)
	}
	a.actualMin, a.actualMax = -0.5, math.Max(n, 1)-0.5
	if !math.IsNaN(a.Minimum) {
		a.actualMin = a.Minimum
	}
	if !math.IsNaN(a.Maximum) {
		a.actualMax = a.Maximum
	}
}

// UpdateIntervals puts a tick on every category, or on every n-th when the
// labels would be closer than IntervalLength allows.
func (a *CategoryAxis) UpdateIntervals(plotArea geom.Rect) {
	a.plotArea = plotArea
	step := a.MajorStep
	if step <= 0 {
		step = math.Max(1, math.Ceil(niceStep(a.screenLength(), a.IntervalLength, a.actualMax-a.actualMin)))
	}
	a.actualMajor = step
	a.actualMinor = step

	a.majorTicks = a.majorTicks[:0]
	a.labels = a.labels[:0]
	for i := math.Ceil(a.actualMin); i <= a.actualMax; i += step {
		a.majorTicks = append(a.majorTicks, i)
		a.labels = append(a.labels, a.categoryLabel(int(i)))
	}
	a.minorTicks = nil
}

func (a *CategoryAxis) categoryLabel(i int) string {
	if i >= 0 && i < len(a.Categories) {
		return a.Categories[i]
	}
	return a.formatLabel(float64(i), 0)
}
