package inventory

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// Snapshot is an immutable, fully indexed view of all inventory at one point in time.
type Snapshot struct {
	byLocation  map[string]*Location
	byItem      map[int][]*Level
	locationIDs []string
	levels      int
	builtAt     time.Time
}

// EmptySnapshot returns a snapshot with no locations.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		byLocation: map[string]*Location{},
		byItem:     map[int][]*Level{},
		builtAt:    time.Now(),
	}
}

// Build indexes locations into a new Snapshot. The map is keyed by location id;
// nil entries are ignored. Levels for one SKU are ordered by location id so results are
// stable for a given set of locations.
//
// The snapshot takes ownership of the map and the locations in it.
func Build(locations map[string]*Location) *Snapshot {
	snap := &Snapshot{
		byLocation: make(map[string]*Location, len(locations)),
		byItem:     make(map[int][]*Level),
		builtAt:    time.Now(),
	}
	for id, loc := range locations {
		if loc != nil {
			snap.byLocation[id] = loc
		}
	}
	snap.locationIDs = slices.Sorted(maps.Keys(snap.byLocation))

	for _, id := range snap.locationIDs {
		loc := snap.byLocation[id]
		for _, sku := range loc.SKUs() {
			snap.byItem[sku] = append(snap.byItem[sku], loc.Inventory[sku])
			snap.levels++
		}
	}
	for sku, levels := range snap.byItem {
		snap.byItem[sku] = slices.Clip(levels)
	}
	return snap
}

// Location returns the location with the given id.
func (s *Snapshot) Location(id string) (*Location, bool) {
	loc, ok := s.byLocation[id]
	return loc, ok
}

// LocationIDs returns all location ids in ascending order.
func (s *Snapshot) LocationIDs() []string {
	return slices.Clone(s.locationIDs)
}

// Locations returns a new map holding every location of the snapshot.
// The map can be modified freely; the locations themselves are shared and read-only.
func (s *Snapshot) Locations() map[string]*Location {
	return maps.Clone(s.byLocation)
}

// LocationCount is the number of locations in the snapshot.
func (s *Snapshot) LocationCount() int { return len(s.byLocation) }

// ItemCount is the number of distinct SKUs in the snapshot.
func (s *Snapshot) ItemCount() int { return len(s.byItem) }

// LevelCount is the total number of levels across all locations.
func (s *Snapshot) LevelCount() int { return s.levels }

// BuiltAt is the time the snapshot was built.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

func (s *Snapshot) itemLevels(sku int) []*Level {
	return s.byItem[sku]
}

// Verify checks that both indices describe exactly the same set of levels.
func (s *Snapshot) Verify() error {
	seen := 0
	for sku, levels := range s.byItem {
		for _, level := range levels {
			if level.SKU != sku {
				return fmt.Errorf("item index %d holds level for sku %d", sku, level.SKU)
			}
			loc, ok := s.byLocation[level.Location.ID]
			if !ok || loc != level.Location {
				return fmt.Errorf("sku %d references location %s outside the snapshot", sku, level.Location.ID)
			}
			if loc.Inventory[sku] != level {
				return fmt.Errorf("sku %d at %s is not the level stored by the location", sku, loc.ID)
			}
			seen++
		}
	}

	total := 0
	for id, loc := range s.byLocation {
		if loc.ID != id {
			return fmt.Errorf("location %s indexed under %s", loc.ID, id)
		}
		for sku, level := range loc.Inventory {
			if level.SKU != sku || level.Location != loc {
				return fmt.Errorf("level for sku %d at %s is inconsistent", sku, id)
			}
			if !slices.Contains(s.byItem[sku], level) {
				return fmt.Errorf("sku %d at %s missing from item index", sku, id)
			}
			total++
		}
	}
	if seen != total || total != s.levels {
		return fmt.Errorf("index sizes differ: by item %d, by location %d, counted %d", seen, total, s.levels)
	}
	return nil
}
