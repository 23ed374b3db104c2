// Package metrics exposes Prometheus metrics about inventory reloads.
//
// Metrics are registered on a private registry (plus the standard Go and process
// collectors) and served by Handler. The Metrics type implements reload.Recorder so the
// coordinator can report every finished reload without knowing about Prometheus.
//
// # Exported series
//
//   - inventory_reloads_total{kind,status}
//   - inventory_reload_duration_seconds{kind}
//   - inventory_source_failures_total{source}
//   - inventory_snapshot_locations, inventory_snapshot_items, inventory_snapshot_levels
//   - inventory_snapshot_built_timestamp_seconds
package metrics
