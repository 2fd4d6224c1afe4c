// Package pipeline turns chart files into rendered artifacts.
//
// The CLI and the HTTP service both go through this package so that sizing,
// caching and format handling behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Validate a [chartfile.Chart] and construct a [plot.Model]
//  2. Layout: Run the margin fixed-point loop and publish [plot.Layout]
//  3. Render: Draw the model in each requested format (SVG, PNG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, chart, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// DefaultScale is the PNG device pixel ratio.
const DefaultScale = 2.0

// MaxScale bounds the PNG device pixel ratio.
const MaxScale = 4.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// Options configure a pipeline run.
type Options struct {
	// Width and Height override the chart's own size when positive.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Formats []string `json:"formats,omitempty"`
	// Scale is the PNG device pixel ratio.
	Scale float64 `json:"scale,omitempty"`
	// Refresh skips cache lookups but still stores the results.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ChartHash is the content hash of the canonical chart encoding.
	ChartHash string

	// Layout is the geometry of the chart at the requested size.
	Layout plot.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount      int
	AxisCount        int
	LayoutIterations int
	Converged        bool
	BuildTime        time.Duration
	LayoutTime       time.Duration
	RenderTime       time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	// Zero keeps the chart's own size.
	if o.Width != 0 || o.Height != 0 {
		if err := errors.ValidateDimensions(orOne(o.Width), orOne(o.Height)); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a non-negative number")
	}
	if o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale too large (max %g)", MaxScale)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidateOutputSize checks the artifact size for a w x h chart. PNG
// output is checked at its pixel size, w and h times Scale.
func (o *Options) ValidateOutputSize(w, h float64) error {
	if err := errors.ValidateDimensions(w, h); err != nil {
		return err
	}
	if slices.Contains(o.Formats, FormatPNG) {
		if err := errors.ValidateDimensions(w*o.Scale, h*o.Scale); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDimensions, err, "png at scale %g is too large", o.Scale)
		}
	}
	return nil
}

// Size returns the render size for a chart whose own size is w x h.
func (o *Options) Size(w, h float64) (float64, float64) {
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	return w, h
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(w, h float64) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: w, Height: h}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string, w, h float64) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Width: w, Height: h}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
