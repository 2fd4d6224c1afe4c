package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/plot"
)

// Build validates c and constructs its model.
func Build(ctx context.Context, c *chartfile.Chart, opts Options) (*plot.Model, error) {
	name := ""
	if c != nil {
		name = c.Title
	}
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, name)
	start := time.Now()

	m, err := chartfile.Build(c)
	count := 0
	if m != nil {
		count = len(m.Series)
		m.Logger = opts.Logger
	}
	hooks.OnBuildComplete(ctx, name, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Hash returns the content hash of c used in cache keys.
func Hash(c *chartfile.Chart) (string, error) {
	data, err := chartfile.Canonical(c)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
