package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/plot"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/render/raster"
	"github.com/matzehuels/chartkit/pkg/render/svg"
)

// Render generates output artifacts in the requested formats. Every format
// renders its own model, so formats are drawn in parallel.
func Render(ctx context.Context, c *chartfile.Chart, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidChart, "empty chart")
	}
	w, h := opts.Size(c.Size())
	if err := opts.ValidateOutputSize(w, h); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	out := make([][]byte, len(opts.Formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		i, format := i, format
		g.Go(func() error {
			data, err := renderFormat(gctx, c, format, w, h, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			out[i] = data
			return nil
		})
	}
	err := g.Wait()
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(out))
	for i, format := range opts.Formats {
		artifacts[format] = out[i]
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, c *chartfile.Chart, format string, w, h float64, opts Options) ([]byte, error) {
	m, err := chartfile.Build(c)
	if err != nil {
		return nil, err
	}
	m.Logger = opts.Logger

	switch format {
	case FormatSVG:
		return renderSVG(m, w, h)
	case FormatPNG:
		s := raster.New(w, h, raster.WithScale(opts.Scale))
		if err := m.Render(s, w, h); err != nil {
			return nil, err
		}
		return s.PNG()
	case FormatPDF:
		data, err := renderSVG(m, w, h)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, data)
	case FormatJSON:
		l, err := ComputeLayout(m, w, h)
		if err != nil {
			return nil, err
		}
		return MarshalLayout(l)
	default:
		return nil, ValidateFormat(format)
	}
}

func renderSVG(m *plot.Model, w, h float64) ([]byte, error) {
	s := svg.New(w, h)
	if err := m.Render(s, w, h); err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}
