package store

import (
	"sort"
	"strings"
	"time"

	"phonedex/internal/domain"
)

type DeviceStore struct{ s *Store }

// DeviceFilter predicates are ANDed together. Nil pointer fields and empty
// strings mean "no constraint".
type DeviceFilter struct {
	Brand    string
	PriceMin *int
	PriceMax *int
	MinRAM   *int
	FiveG    *bool
	Search   string
}

func (f DeviceFilter) matches(d domain.Device) bool {
	if f.Brand != "" && !strings.EqualFold(d.Brand, f.Brand) {
		return false
	}
	if f.PriceMin != nil && d.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && d.Price > *f.PriceMax {
		return false
	}
	if f.MinRAM != nil && d.RAM < *f.MinRAM {
		return false
	}
	if f.FiveG != nil && d.FiveG != *f.FiveG {
		return false
	}
	if f.Search != "" && !matchesSearch(d, f.Search) {
		return false
	}
	return true
}

func matchesSearch(d domain.Device, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Brand), q) ||
		strings.Contains(strings.ToLower(d.Processor), q)
}

// List returns devices matching every supplied predicate, newest release
// first. Ties on release date keep insertion order, so the slice is built in
// id order and sorted stably.
func (ds *DeviceStore) List(filter DeviceFilter) []domain.Device {
	ds.s.mu.RLock()
	defer ds.s.mu.RUnlock()

	out := ds.collectLocked(filter.matches)
	sortByReleaseDesc(out)
	return out
}

func (ds *DeviceStore) Get(id int) (domain.Device, bool) {
	ds.s.mu.RLock()
	defer ds.s.mu.RUnlock()

	d, ok := ds.s.devices[id]
	return d, ok
}

// Create assigns the next id and stamps both timestamps. The caller supplies
// a record with defaults already applied; id and timestamps are overwritten.
func (ds *DeviceStore) Create(d domain.Device) domain.Device {
	ds.s.mu.Lock()
	defer ds.s.mu.Unlock()

	d.ID = ds.s.nextDeviceID
	ds.s.nextDeviceID++
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	ds.s.devices[d.ID] = d
	return d
}

// Update applies mutate to the stored record under the write lock and
// refreshes UpdatedAt. It reports false when the id is absent. The id and
// CreatedAt are restored afterwards so a patch can never change them.
func (ds *DeviceStore) Update(id int, mutate func(*domain.Device)) (domain.Device, bool) {
	ds.s.mu.Lock()
	defer ds.s.mu.Unlock()

	d, ok := ds.s.devices[id]
	if !ok {
		return domain.Device{}, false
	}
	createdAt := d.CreatedAt
	mutate(&d)
	d.ID = id
	d.CreatedAt = createdAt
	d.UpdatedAt = time.Now().UTC()
	ds.s.devices[id] = d
	return d, true
}

// Delete reports whether a record was removed. There is no cascade: saved
// comparisons may keep referencing the deleted id.
func (ds *DeviceStore) Delete(id int) bool {
	ds.s.mu.Lock()
	defer ds.s.mu.Unlock()

	if _, ok := ds.s.devices[id]; !ok {
		return false
	}
	delete(ds.s.devices, id)
	return true
}

// Featured returns the six most recently released devices, fewer if the
// catalog holds fewer.
func (ds *DeviceStore) Featured() []domain.Device {
	ds.s.mu.RLock()
	defer ds.s.mu.RUnlock()

	out := ds.collectLocked(func(domain.Device) bool { return true })
	sortByReleaseDesc(out)
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

func (ds *DeviceStore) ListByBrand(name string) []domain.Device {
	ds.s.mu.RLock()
	defer ds.s.mu.RUnlock()

	out := ds.collectLocked(func(d domain.Device) bool {
		return strings.EqualFold(d.Brand, name)
	})
	sortByReleaseDesc(out)
	return out
}

// Search matches the query case-insensitively against name, brand and
// processor. An empty query matches everything.
func (ds *DeviceStore) Search(query string) []domain.Device {
	ds.s.mu.RLock()
	defer ds.s.mu.RUnlock()

	out := ds.collectLocked(func(d domain.Device) bool {
		return query == "" || matchesSearch(d, query)
	})
	sortByReleaseDesc(out)
	return out
}

// collectLocked gathers matching devices in id (insertion) order. Callers
// must hold at least the read lock.
func (ds *DeviceStore) collectLocked(keep func(domain.Device) bool) []domain.Device {
	ids := make([]int, 0, len(ds.s.devices))
	for id := range ds.s.devices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]domain.Device, 0, len(ids))
	for _, id := range ids {
		if d := ds.s.devices[id]; keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func sortByReleaseDesc(devices []domain.Device) {
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].ReleaseDate.After(devices[j].ReleaseDate)
	})
}
