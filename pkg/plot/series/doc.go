// Package series provides the XY series drawn by [plot.Model]: lines,
// scatter markers and filled areas.
//
// Series pick their axes by key (XAxisKey, YAxisKey) and fall back to the
// model's default axes. A series without an explicit color takes the next
// color of the model palette at the start of every render.
package series
