// Package axes provides the concrete axes for plot models: linear,
// logarithmic and category axes for XY plots, and angle and magnitude axes
// for polar plots.
//
// All axes share [Base], which carries styling, range handling, the data to
// screen transform and the drawing of cartesian axes. Use the constructors
// (NewLinear, NewLogarithmic, ...) to get sensible defaults; in particular
// Minimum and Maximum default to NaN, which means "follow the data".
package axes
