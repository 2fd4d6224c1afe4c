package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
)

// MemoryStore keeps charts in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	rec  Record
	data []byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Put(ctx context.Context, c *chartfile.Chart) (*Record, error) {
	rec, data, err := newRecord(c, s.now())
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.records[rec.ID] = memoryEntry{rec: *rec, data: data}
	s.mu.Unlock()
	return rec, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := errors.ValidateChartID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	e, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}
	c, err := decodeChart(e.data)
	if err != nil {
		return nil, err
	}
	rec := e.rec
	rec.Chart = c
	return &rec, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateChartID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return notFound(id)
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	out := make([]Record, 0, len(s.records))
	for _, e := range s.records {
		out = append(out, e.rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if n := listLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
