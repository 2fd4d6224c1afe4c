// Package plot lays out and renders a chart model.
//
// A [Model] holds the declarative chart description: title, padding, margins,
// legend, and collections of [Axis], [Series], and [Annotation]. Concrete
// collaborators live in the subpackages axes, series, and annotations; this
// package only talks to them through the interfaces defined in axis.go.
//
// # Layout
//
// [Model.Render] computes geometry in a fixed-point loop. Axis sizes depend on
// the plot area (tick labels depend on the scale) and the plot area depends on
// axis sizes (margins must fit them), so the loop alternates:
//
//  1. compute the plot area from the current margins
//  2. update axis transforms and tick intervals
//  3. measure axes per side and tier, widening margins where needed
//
// until the margins stop changing or [MaxLayoutIterations] is reached. Margins
// only ever grow, which makes the loop terminate for static models.
//
// # Drawing order
//
// Drawing happens in a fixed z-order: backgrounds, annotations below axes,
// axes below series, annotations below series, series, annotations above
// series, title, plot box, axes above series, legend.
//
// # Concurrency
//
// Render holds the model's mutex for the whole call, so concurrent renders of
// one model are serialized. Each call gets a fresh [Session]; the finished
// [Layout] is published on success and is available from [Model.Layout].
package plot
