// Package geom provides the value types used throughout chart layout.
//
// All coordinates are in device-independent units with the origin at the
// top-left corner of the viewport, X increasing to the right and Y increasing
// downwards.
//
// # Types
//
//   - [Point]: a screen position
//   - [Size]: a width/height pair, as returned by text measurement
//   - [Thickness]: four-sided margins or padding
//   - [Rect]: an axis-aligned rectangle anchored at its top-left corner
//
// Rectangles produced during layout may temporarily carry negative widths or
// heights (for example when margins exceed the viewport). The types never
// clamp on their own; callers decide how to handle degenerate geometry.
package geom
