package store

import (
	"sync"

	"phonedex/internal/domain"
)

// Store is the sole authority over catalog state: three keyed collections and
// three id counters, one per entity type. Counters start at 1 and are never
// reused, even after deletes. A single RWMutex guards everything because the
// HTTP server calls in concurrently.
type Store struct {
	mu sync.RWMutex

	devices     map[int]domain.Device
	brands      map[int]domain.Brand
	comparisons map[int]domain.Comparison

	nextDeviceID     int
	nextBrandID      int
	nextComparisonID int
}

func New() *Store {
	return &Store{
		devices:          make(map[int]domain.Device),
		brands:           make(map[int]domain.Brand),
		comparisons:      make(map[int]domain.Comparison),
		nextDeviceID:     1,
		nextBrandID:      1,
		nextComparisonID: 1,
	}
}

func (s *Store) Devices() *DeviceStore         { return &DeviceStore{s: s} }
func (s *Store) Brands() *BrandStore           { return &BrandStore{s: s} }
func (s *Store) Comparisons() *ComparisonStore { return &ComparisonStore{s: s} }
