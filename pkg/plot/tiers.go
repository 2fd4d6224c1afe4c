package plot

import (
	"math"
	"slices"

	"github.com/matzehuels/chartkit/pkg/render"
)

// MaxSizeOfPositionTier measures the axes of one tier and returns the
// largest extent perpendicular to the axes: width for vertical axes, height
// for horizontal and angular ones. Axes in one tier overlay the same band,
// so their sizes do not add up.
func MaxSizeOfPositionTier(rc render.Context, axes []Axis) float64 {
	var size float64
	for _, a := range axes {
		sz := a.Measure(rc)
		if a.IsVertical() {
			size = math.Max(size, sz.Width)
		} else {
			size = math.Max(size, sz.Height)
		}
	}
	return size
}

// AdjustAxesPositions stacks the tiers of axes that share a side (or the
// set of angular axes) outward from the plot area. Tiers are processed in
// ascending order; consecutive tiers are separated by AxisTierDistance, with
// no gap before the first one. Every axis receives the placement of its tier.
// It returns the total extent of all tiers.
func AdjustAxesPositions(rc render.Context, axes []Axis) float64 {
	byTier := make(map[int][]Axis)
	for _, a := range axes {
		byTier[a.PositionTier()] = append(byTier[a.PositionTier()], a)
	}
	tiers := make([]int, 0, len(byTier))
	for t := range byTier {
		tiers = append(tiers, t)
	}
	slices.Sort(tiers)

	var total float64
	for _, t := range tiers {
		tierAxes := byTier[t]
		size := MaxSizeOfPositionTier(rc, tierAxes)
		if total != 0 {
			total += AxisTierDistance
		}
		placement := TierPlacement{Size: size, MinShift: total, MaxShift: total + size}
		for _, a := range tierAxes {
			a.SetTierPlacement(placement)
		}
		total += size
	}
	return total
}
