// Package store keeps chart files for the HTTP service.
//
// Charts are stored in their canonical JSON encoding under a random UUID.
// [MemoryStore] serves tests and single-process deployments; [MongoStore]
// persists charts in a MongoDB collection.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 100

// Record is a stored chart.
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`

	// Chart is nil in List results.
	Chart *chartfile.Chart `json:"chart,omitempty"`
}

// Store persists charts.
type Store interface {
	// Put stores c under a new ID.
	Put(ctx context.Context, c *chartfile.Chart) (*Record, error)
	// Get returns the chart stored under id, or a CHART_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)
	// Delete removes the chart stored under id, or returns CHART_NOT_FOUND.
	Delete(ctx context.Context, id string) error
	// List returns up to limit records, newest first, without charts.
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// newRecord validates c and returns its record and canonical encoding.
func newRecord(c *chartfile.Chart, now time.Time) (*Record, []byte, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	data, err := chartfile.Canonical(c)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "encode chart")
	}
	return &Record{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Hash:      cache.Hash(data),
		CreatedAt: now.UTC(),
	}, data, nil
}

func decodeChart(data []byte) (*chartfile.Chart, error) {
	c, err := chartfile.Decode(data, chartfile.FormatJSON)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode stored chart")
	}
	return c, nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeChartNotFound, "chart %s not found", id)
}

func listLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
