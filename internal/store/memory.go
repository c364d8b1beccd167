// internal/store/memory.go
//
// In-memory implementation of Store.
// Used when no database is configured; history is lost on exit.
//
// Characteristics:
//   - Records keyed by ID in a map, plus insertion order for listing.
//   - Concurrency-safe via RWMutex (the stats server reads while nothing writes).

package store

import (
	"context"
	"sort"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards records
	records map[string]Record // keyed by Record.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{records: make(map[string]Record)}
}

func (m *memory) Save(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Record, error) {
	all := m.sorted()
	// newest first
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memory) Stats(ctx context.Context) (Stats, error) {
	return ComputeStats(m.sorted()), nil
}

func (m *memory) PlayedDaily(ctx context.Context, date string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.DailyDate == date && r.Outcome != OutcomeAbandoned {
			return true, nil
		}
	}
	return false, nil
}

func (m *memory) Close() error { return nil }

// sorted returns a copy of all records, oldest first.
func (m *memory) sorted() []Record {
	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].FinishedAt.Equal(out[j].FinishedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].FinishedAt.Before(out[j].FinishedAt)
	})
	return out
}
