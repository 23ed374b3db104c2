// Package reload rebuilds the inventory store from its upstream sources.
//
// A Coordinator owns the registered sources and performs two kinds of reload:
//
//  1. Full: every FullSource is fetched (concurrently), the results are merged by
//     location id in registration order and the merged set replaces the published
//     snapshot entirely. Locations no source returned are dropped.
//
//  2. Partial: each requested location is fetched from the LocationSource, merged into a
//     copy of the current locations, and the result is then narrowed to exactly the
//     requested ids. A partial reload therefore publishes only the requested locations.
//
// # Serialization
//
// Reloads never interleave. FullReload and PartialReload wait for a running reload to
// finish; TryFullReload returns inventory.ErrReloadInProgress instead. A failed fetch
// aborts the reload before anything is published, so readers keep the previous snapshot.
//
// # Lifecycle
//
//	Idle -> Fetching -> Merging -> Building -> Publishing -> Idle
//
// The current state and the report of the last finished reload are exposed for status
// endpoints.
//
// # Scheduling
//
// Scheduler triggers TryFullReload on a fixed interval so clients never see data older
// than the configured freshness horizon.
package reload
