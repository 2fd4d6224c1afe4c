// Package render defines the drawing surface that charts are rendered onto.
//
// # Overview
//
// The layout engine in [plot] never paints pixels itself. It measures text
// and issues draw calls against a [Context], which concrete surfaces
// implement:
//
//   - [svg]: SVG documents written into a buffer
//   - [raster]: PNG images backed by fogleman/gg
//   - [rendertest]: an in-memory recorder for tests
//
// A Context may cache resources (font faces, measured strings) across the
// calls of one render pass. The layout engine calls [Context.CleanUp] once at
// the end of every pass so the surface can release what was not used.
//
// # Helpers
//
// [DrawRectangleAsPolygon] snaps rectangles to the pixel grid so borders line
// up with tick marks, and [DrawMathText]/[MeasureMathText] handle simple
// super- and subscript markup ("m^{2}", "x_{i}") on top of plain text calls.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert an SVG document using the external
// rsvg-convert tool (from librsvg).
//
// [plot]: github.com/matzehuels/chartkit/pkg/plot
// [svg]: github.com/matzehuels/chartkit/pkg/render/svg
// [raster]: github.com/matzehuels/chartkit/pkg/render/raster
// [rendertest]: github.com/matzehuels/chartkit/pkg/render/rendertest
package render
