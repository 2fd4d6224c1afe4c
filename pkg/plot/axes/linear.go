package axes

import (
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// LinearAxis is a numeric axis with a linear scale.
type LinearAxis struct {
	Base
}

// NewLinear returns a linear axis at pos with automatic range and steps.
func NewLinear(pos plot.AxisPosition) *LinearAxis {
	return &LinearAxis{Base: newBase(pos)}
}

// UpdateIntervals picks tick steps for the current screen length.
func (a *LinearAxis) UpdateIntervals(plotArea geom.Rect) {
	a.plotArea = plotArea
	a.updateLinearIntervals(a.screenLength())
}
