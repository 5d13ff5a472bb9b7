package store

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"phonedex/internal/domain"
)

type BrandStore struct{ s *Store }

// List returns all brands ordered by name with locale-aware collation, each
// with DeviceCount recomputed from the current device set. Brand-name
// equality is case-insensitive here, matching the device filters.
func (bs *BrandStore) List() []domain.Brand {
	bs.s.mu.RLock()
	defer bs.s.mu.RUnlock()

	out := make([]domain.Brand, 0, len(bs.s.brands))
	for _, b := range bs.s.brands {
		b.DeviceCount = bs.countDevicesLocked(b.Name)
		out = append(out, b)
	}

	c := collate.New(language.English)
	sort.Slice(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

func (bs *BrandStore) Get(id int) (domain.Brand, bool) {
	bs.s.mu.RLock()
	defer bs.s.mu.RUnlock()

	b, ok := bs.s.brands[id]
	return b, ok
}

// Create assigns the next id. DeviceCount starts at 0 and stays stale until
// the next List call.
func (bs *BrandStore) Create(b domain.Brand) domain.Brand {
	bs.s.mu.Lock()
	defer bs.s.mu.Unlock()

	b.ID = bs.s.nextBrandID
	bs.s.nextBrandID++
	b.DeviceCount = 0
	bs.s.brands[b.ID] = b
	return b
}

func (bs *BrandStore) countDevicesLocked(name string) int {
	n := 0
	for _, d := range bs.s.devices {
		if strings.EqualFold(d.Brand, name) {
			n++
		}
	}
	return n
}
