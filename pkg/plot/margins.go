package plot

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

// cardinalPositions is the order in which sides are resolved.
var cardinalPositions = []AxisPosition{PositionLeft, PositionRight, PositionTop, PositionBottom}

// ResolveMargins returns current widened so that every side fits the visible
// axes attached to it. Angular axes widen all four sides. Margins never
// shrink. changed reports whether any side differs from current.
//
// As a side effect every visible axis receives its tier placement.
func ResolveMargins(rc render.Context, axes []Axis, current geom.Thickness) (geom.Thickness, bool, error) {
	var angular []Axis
	bySide := make(map[AxisPosition][]Axis, len(cardinalPositions))
	for _, a := range axes {
		if !a.IsVisible() {
			continue
		}
		switch p := a.Position(); p {
		case PositionNone:
			angular = append(angular, a)
		case PositionLeft, PositionRight, PositionTop, PositionBottom:
			bySide[p] = append(bySide[p], a)
		default:
			return current, false, errors.New(errors.ErrCodeUnsupportedPosition,
				"unsupported axis position %d", int(p))
		}
	}

	next := current
	for _, pos := range cardinalPositions {
		sideAxes := bySide[pos]
		if len(sideAxes) == 0 {
			continue
		}
		size := AdjustAxesPositions(rc, sideAxes)
		var err error
		if next, err = widenMargin(next, pos, size); err != nil {
			return current, false, err
		}
	}

	if len(angular) > 0 {
		size := AdjustAxesPositions(rc, angular)
		for _, pos := range cardinalPositions {
			var err error
			if next, err = widenMargin(next, pos, size); err != nil {
				return current, false, err
			}
		}
	}

	return next, !next.Equal(current), nil
}

// widenMargin raises the margin on side pos to at least size.
func widenMargin(m geom.Thickness, pos AxisPosition, size float64) (geom.Thickness, error) {
	switch pos {
	case PositionLeft:
		m.Left = math.Max(m.Left, size)
	case PositionRight:
		m.Right = math.Max(m.Right, size)
	case PositionTop:
		m.Top = math.Max(m.Top, size)
	case PositionBottom:
		m.Bottom = math.Max(m.Bottom, size)
	default:
		return m, errors.New(errors.ErrCodeUnsupportedPosition, "cannot widen margin at position %s", pos)
	}
	return m, nil
}
