// Package inventory holds the in-memory inventory model and the store that serves it.
//
// All inventory levels live on-heap with no backing storage, so the whole dataset must
// fit in memory. Data is organised as immutable snapshots with two indices over the same
// set of levels:
//
//   - by location: location id -> Location (each Location owns its levels keyed by SKU)
//   - by item: SKU -> levels for that SKU across all locations
//
// # Snapshots
//
// A Snapshot is built once from a complete set of locations by Build and is never
// modified afterwards. Reloading inventory means building a new Snapshot and handing it
// to Store.Publish, which swaps a single atomic pointer.
//
// # Reads
//
// Every Store read loads the current Snapshot exactly once and answers entirely from it,
// so a read that overlaps a publish sees either the old data or the new data, never a mix.
// Unknown items and locations are reported as empty results or a false ok value, never as
// errors.
//
// # Usage
//
//	store := inventory.NewStore()
//	store.Publish(inventory.Build(locations))
//
//	levels := store.ItemAvailability(1234)
//	loc, ok := store.Location("lbe_999010")
package inventory
