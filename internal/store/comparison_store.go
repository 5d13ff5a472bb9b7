package store

import (
	"sort"
	"time"

	"phonedex/internal/domain"
)

type ComparisonStore struct{ s *Store }

// List returns all saved comparisons, newest first.
func (cs *ComparisonStore) List() []domain.Comparison {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	out := make([]domain.Comparison, 0, len(cs.s.comparisons))
	for _, c := range cs.s.comparisons {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (cs *ComparisonStore) Get(id int) (domain.Comparison, bool) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	c, ok := cs.s.comparisons[id]
	return c, ok
}

// Create stores the comparison as given. Referenced device ids are not
// validated here; resolution is lazy and happens on read.
func (cs *ComparisonStore) Create(c domain.Comparison) domain.Comparison {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	c.ID = cs.s.nextComparisonID
	cs.s.nextComparisonID++
	c.CreatedAt = time.Now().UTC()
	cs.s.comparisons[c.ID] = c
	return c
}

func (cs *ComparisonStore) Delete(id int) bool {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.comparisons[id]; !ok {
		return false
	}
	delete(cs.s.comparisons, id)
	return true
}
