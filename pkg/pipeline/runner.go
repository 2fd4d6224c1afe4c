package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, c *chartfile.Chart, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Build
	buildStart := time.Now()
	m, err := Build(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.SeriesCount = len(m.Series)
	result.Stats.AxisCount = len(m.Axes)

	if result.ChartHash, err = Hash(c); err != nil {
		return nil, fmt.Errorf("hash chart: %w", err)
	}

	r.Logger.Debug("built chart",
		"title", c.Title,
		"series", result.Stats.SeriesCount,
		"axes", result.Stats.AxisCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.LayoutWithCacheInfo(ctx, m, result.ChartHash, c, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LayoutIterations = layout.Iterations
	result.Stats.Converged = layout.Converged
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"iterations", layout.Iterations,
		"converged", layout.Converged,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, c, result.ChartHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout builds c and computes its layout with caching.
func (r *Runner) Layout(ctx context.Context, c *chartfile.Chart, opts Options) (plot.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return plot.Layout{}, false, fmt.Errorf("invalid options: %w", err)
	}
	m, err := Build(ctx, c, opts)
	if err != nil {
		return plot.Layout{}, false, fmt.Errorf("build: %w", err)
	}
	hash, err := Hash(c)
	if err != nil {
		return plot.Layout{}, false, fmt.Errorf("hash chart: %w", err)
	}
	return r.LayoutWithCacheInfo(ctx, m, hash, c, opts)
}

// LayoutWithCacheInfo computes the layout of m, the model built from c, and
// reports whether it came from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, m *plot.Model, chartHash string, c *chartfile.Chart, opts Options) (plot.Layout, bool, error) {
	w, h := opts.Size(c.Size())
	key := r.Keyer.LayoutKey(chartHash, opts.LayoutKeyOpts(w, h))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cached, err := UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeLayout)
				return cached, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", key, "error", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, keyTypeLayout)

	layout, err := ComputeLayout(m, w, h)
	if err != nil {
		return plot.Layout{}, false, err
	}
	if !layout.Converged {
		r.Logger.Warn("layout did not converge", "iterations", layout.Iterations)
	}

	if data, err := MarshalLayout(layout); err == nil {
		r.store(ctx, key, keyTypeLayout, data, cache.LayoutTTL)
	}
	return layout, false, nil
}

// RenderWithCacheInfo renders the formats of opts, taking what it can from
// the cache. The bool reports whether every artifact was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *chartfile.Chart, chartHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	w, h := opts.Size(c.Size())

	artifacts := make(map[string][]byte, len(opts.Formats))
	keys := make(map[string]string, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format, w, h))
		keys[format] = key
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, c, sub)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		r.store(ctx, keys[format], keyTypeArtifact, data, cache.ArtifactTTL)
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// store writes to the cache. Failures are logged, not returned.
func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
