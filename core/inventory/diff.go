package inventory

// Diff lists the locations that differ between two snapshots.
type Diff struct {
	// Added are locations present only in the newer snapshot.
	Added []string `json:"added,omitempty"`
	// Removed are locations present only in the older snapshot.
	Removed []string `json:"removed,omitempty"`
	// Changed are locations present in both whose levels differ.
	Changed []string `json:"changed,omitempty"`
}

// Empty reports whether the snapshots hold the same levels.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Compare returns the location level differences from prev to next. Ids are sorted.
// A nil snapshot compares as empty.
func Compare(prev, next *Snapshot) Diff {
	if prev == nil {
		prev = EmptySnapshot()
	}
	if next == nil {
		next = EmptySnapshot()
	}

	var d Diff
	for _, id := range next.locationIDs {
		old, ok := prev.byLocation[id]
		if !ok {
			d.Added = append(d.Added, id)
			continue
		}
		if !sameLevels(old, next.byLocation[id]) {
			d.Changed = append(d.Changed, id)
		}
	}
	for _, id := range prev.locationIDs {
		if _, ok := next.byLocation[id]; !ok {
			d.Removed = append(d.Removed, id)
		}
	}
	return d
}

func sameLevels(a, b *Location) bool {
	if a == b {
		return true
	}
	if len(a.Inventory) != len(b.Inventory) {
		return false
	}
	for sku, level := range a.Inventory {
		other, ok := b.Inventory[sku]
		if !ok || other.Quantity != level.Quantity {
			return false
		}
	}
	return true
}
