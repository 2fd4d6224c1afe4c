// Package pkg provides the libraries behind chartkit, a chart layout and
// rendering toolkit.
//
// # Overview
//
// chartkit turns a declarative chart description into a measured layout and
// rendered artifacts. The layout engine reserves space for titles, legends
// and axis labels around the plot area, iterating until the margins settle,
// and then draws through a pluggable surface. The pkg directory is organized
// into four areas:
//
//  1. Layout: [geom], [plot], [plot/axes], [plot/series], [plot/annotations]
//  2. Surfaces: [render], [render/svg], [render/raster], [fonts]
//  3. Input and orchestration: [chartfile], [pipeline]
//  4. Infrastructure: [cache], [store], [server], [errors], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	chart.toml / chart.json
//	         ↓
//	    [chartfile] package (decode + validate + build model)
//	         ↓
//	    [plot] package (margin loop + layout)
//	         ↓
//	    [render] surfaces (draw)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Load a chart file and render it:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/chartkit/pkg/cache"
//	    "github.com/matzehuels/chartkit/pkg/chartfile"
//	    "github.com/matzehuels/chartkit/pkg/pipeline"
//	)
//
//	c, _ := chartfile.Import("sales.toml")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, _ := runner.Execute(context.Background(), c, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	svg := res.Artifacts["svg"]
//
// # Main Packages
//
// ## Layout
//
// [geom] - Points, sizes, rectangles and margin thicknesses shared by every
// other package.
//
// [plot] - The chart model. [plot.Model.Render] runs the margin loop, places
// title and legend, and draws axes, series and annotations in layer order.
//
// [plot/axes] - Linear, logarithmic, category and polar axes with
// tick generation and label measurement.
//
// ## Surfaces
//
// [render] - The [render.Context] drawing interface, colors, palettes and
// math-text helpers. [render.ToPDF] converts SVG through rsvg-convert.
//
// [render/svg] and [render/raster] implement the context for SVG documents
// and PNG images.
//
// ## Infrastructure
//
// [pipeline] - The build → layout → render pipeline used by the CLI and the
// HTTP server, with cached layouts and artifacts.
//
// [cache] - Content-addressed caching with null, file and Redis backends.
//
// [store] - Saved charts, in memory or in MongoDB.
//
// [server] - The chi-based HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/plot/...             # Specific package
//	CHARTKIT_TEST_REDIS=localhost:6379 go test ./pkg/cache
//	CHARTKIT_TEST_MONGO=mongodb://localhost go test ./pkg/store
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/geom
// [plot]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/plot
// [plot/axes]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/plot/axes
// [plot/series]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/plot/series
// [plot/annotations]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/plot/annotations
// [render]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render/svg
// [render/raster]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render/raster
// [fonts]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/fonts
// [chartfile]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chartfile
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/store
// [server]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/observability
package pkg
