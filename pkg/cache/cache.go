// Package cache stores rendered chart artifacts.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache]
// for the HTTP service and [NullCache] to disable caching. Keys are built by
// a [Keyer] from the chart hash and the render options, so that any change
// to either yields a new key.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Time-to-live for cached entries.
const (
	ArtifactTTL = 7 * 24 * time.Hour
	LayoutTTL   = 7 * 24 * time.Hour
)

// Cache is a byte store with expiry.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// a miss (hit == false), not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the render options that distinguish artifacts of the
// same chart.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
}

// LayoutKeyOpts are the options that distinguish layouts of the same chart.
type LayoutKeyOpts struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
	LayoutKey(chartHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer hashes the chart hash and options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}

func (DefaultKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", chartHash, opts)
}

// DefaultDir returns the directory of the CLI file cache:
// $XDG_CACHE_HOME/chartkit, or the OS user cache directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "chartkit"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chartkit"), nil
}
