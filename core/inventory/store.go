package inventory

import (
	"slices"
	"sync/atomic"
)

// Store serves reads from the currently published Snapshot.
// Reads never lock: each call loads the snapshot pointer once.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store publishing an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(EmptySnapshot())
	return s
}

// Snapshot returns the currently published snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Publish atomically replaces the current snapshot and returns the previous one.
func (s *Store) Publish(snap *Snapshot) *Snapshot {
	if snap == nil {
		snap = EmptySnapshot()
	}
	return s.current.Swap(snap)
}

// ItemAvailability returns the levels of sku across all locations.
// The result is empty, not nil, when the sku is unknown.
func (s *Store) ItemAvailability(sku int) []*Level {
	levels := s.Snapshot().itemLevels(sku)
	if levels == nil {
		return []*Level{}
	}
	return slices.Clone(levels)
}

// Location returns the location with the given id, or false when it is unknown.
func (s *Store) Location(id string) (*Location, bool) {
	return s.Snapshot().Location(id)
}

// Query returns the levels of skus. When locationIDs is non-empty only those locations are
// searched, in the given order, each yielding its levels for skus in the given order.
// Otherwise every level of each sku is returned. Duplicate inputs are ignored.
func (s *Store) Query(skus []int, locationIDs []string) []*Level {
	snap := s.Snapshot()
	skus = dedupe(skus)
	locationIDs = dedupe(locationIDs)

	levels := []*Level{}
	if len(locationIDs) > 0 {
		for _, id := range locationIDs {
			loc, ok := snap.Location(id)
			if !ok {
				continue
			}
			for _, sku := range skus {
				if level, ok := loc.Level(sku); ok {
					levels = append(levels, level)
				}
			}
		}
		return levels
	}

	for _, sku := range skus {
		levels = append(levels, snap.itemLevels(sku)...)
	}
	return levels
}

func dedupe[T comparable](in []T) []T {
	if len(in) < 2 {
		return in
	}
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
