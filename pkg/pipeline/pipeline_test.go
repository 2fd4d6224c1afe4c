package pipeline

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
)

func sampleChart() *chartfile.Chart {
	return &chartfile.Chart{
		Title:  "Latency",
		Width:  400,
		Height: 300,
		Series: []chartfile.Series{
			{Kind: "line", Title: "p50", Points: [][2]float64{{0, 1}, {1, 3}, {2, 2}}},
			{Kind: "scatter", Title: "samples", Values: []float64{2, 4, 3}},
		},
	}
}

// memCache is a Cache that counts operations.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", o.Scale, DefaultScale)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	o = Options{Formats: []string{"svg", "png", "svg"}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(o.Formats) != 2 {
		t.Errorf("duplicate formats should collapse, got %v", o.Formats)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidDimensions},
		{"huge height", Options{Height: 1e6}, errors.ErrCodeInvalidDimensions},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Scale: -2}, errors.ErrCodeInvalidInput},
		{"nan scale", Options{Formats: []string{FormatPNG}, Scale: math.NaN()}, errors.ErrCodeInvalidInput},
		{"infinite scale", Options{Formats: []string{FormatPNG}, Scale: math.Inf(1)}, errors.ErrCodeInvalidInput},
		{"huge scale", Options{Formats: []string{FormatPNG}, Width: 800, Height: 600, Scale: 1e4}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptionsSize(t *testing.T) {
	o := Options{Width: 1000}
	w, h := o.Size(400, 300)
	if w != 1000 || h != 300 {
		t.Errorf("Size = %vx%v, want 1000x300", w, h)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Scale: 3}
	if got := o.ArtifactKeyOpts(FormatPNG, 10, 20); got.Scale != 3 {
		t.Errorf("png key scale = %v, want 3", got.Scale)
	}
	if got := o.ArtifactKeyOpts(FormatSVG, 10, 20); got.Scale != 0 {
		t.Errorf("svg key should not depend on scale, got %v", got.Scale)
	}
}

func TestHash(t *testing.T) {
	a, err := Hash(sampleChart())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Hash(sampleChart())
	if a != b {
		t.Error("Hash should be deterministic")
	}
	c := sampleChart()
	c.Title = "Other"
	if h, _ := Hash(c); h == a {
		t.Error("changing the chart should change the hash")
	}
}

func TestRender(t *testing.T) {
	artifacts, err := Render(context.Background(), sampleChart(), Options{
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
		Scale:   1,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(artifacts[FormatSVG], []byte("<svg")) {
		t.Errorf("svg output starts with %q", artifacts[FormatSVG][:min(20, len(artifacts[FormatSVG]))])
	}
	if !bytes.HasPrefix(artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png output is not a PNG")
	}
	l, err := UnmarshalLayout(artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if l.Width != 400 || l.Height != 300 {
		t.Errorf("layout size = %vx%v, want 400x300", l.Width, l.Height)
	}
	if l.PlotArea.Width <= 0 || l.PlotArea.Height <= 0 {
		t.Errorf("plot area = %+v", l.PlotArea)
	}
}

func TestValidateOutputSize(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		scale   float64
		w, h    float64
		wantErr bool
	}{
		{"svg large", []string{FormatSVG}, 4, 8000, 6000, false},
		{"png within bounds", []string{FormatPNG}, 2, 8000, 6000, false},
		{"png over bounds", []string{FormatSVG, FormatPNG}, 4, 8000, 6000, true},
		{"chart too large", []string{FormatSVG}, 1, 20000, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options{Formats: tt.formats, Scale: tt.scale}
			if err := o.ValidateAndSetDefaults(); err != nil {
				t.Fatal(err)
			}
			err := o.ValidateOutputSize(tt.w, tt.h)
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidDimensions) {
				t.Errorf("err = %v, want INVALID_DIMENSIONS", err)
			}
		})
	}
}

func TestRenderRejectsOversizedPNG(t *testing.T) {
	_, err := Render(context.Background(), sampleChart(), Options{
		Formats: []string{FormatPNG},
		Width:   10000,
		Height:  500,
		Scale:   4,
	})
	if !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("err = %v, want INVALID_DIMENSIONS", err)
	}
}

func TestRenderInvalidChart(t *testing.T) {
	c := sampleChart()
	c.Series[0].Kind = "pie"
	_, err := Render(context.Background(), c, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("err = %v, want INVALID_CHART", err)
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, sampleChart(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss, got %+v", first.CacheInfo)
	}
	if first.Stats.SeriesCount != 2 || first.Stats.LayoutIterations == 0 {
		t.Errorf("stats = %+v", first.Stats)
	}
	if first.ChartHash == "" {
		t.Error("ChartHash should be set")
	}
	if mc.sets != 3 {
		t.Errorf("cache sets = %d, want 3 (layout + 2 artifacts)", mc.sets)
	}

	second, err := r.Execute(ctx, sampleChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit, got %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}
	if second.Layout != first.Layout {
		t.Errorf("cached layout %+v != %+v", second.Layout, first.Layout)
	}

	opts.Width = 500
	third, err := r.Execute(ctx, sampleChart(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("a different size should not hit the cache")
	}
	if third.Layout.Width != 500 {
		t.Errorf("layout width = %v, want 500", third.Layout.Width)
	}
}

func TestRunnerPartialCacheHit(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)

	if _, err := r.Execute(ctx, sampleChart(), Options{Formats: []string{FormatSVG}}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, sampleChart(), Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("json was not cached, RenderHit should be false")
	}
	if len(res.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(res.Artifacts))
	}
}

func TestRunnerRefresh(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(newMemCache(), cache.NewScopedKeyer(nil, "test:"), nil)
	if _, err := r.Execute(ctx, sampleChart(), Options{}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, sampleChart(), Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerLayout(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	l, hit, err := r.Layout(context.Background(), sampleChart(), Options{Width: 640, Height: 480})
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("NullCache should never hit")
	}
	if l.Width != 640 || l.Height != 480 {
		t.Errorf("layout size = %vx%v", l.Width, l.Height)
	}
	if !l.Converged {
		t.Error("static chart layout should converge")
	}
}

func TestRunnerExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("nil chart: err = %v", err)
	}
	if _, err := r.Execute(context.Background(), sampleChart(), Options{Formats: []string{"bmp"}}); err == nil {
		t.Error("invalid format should fail")
	}
}
