// Package sources implements the upstream inventory feeds, one per base store.
//
// Every feed translates its origin's schema into inventory.Location values tagged with
// the right base store and hands them to the reload coordinator; none of them touches
// the store directly.
//
// # Feeds
//
//   - NO (SLQ): JSON over HTTPS. One document with every pharmacy for full reloads, and
//     a per-pharmacy endpoint used by partial reloads.
//   - SE (Lloyds Apotek): JSON over HTTPS, one flat row per store and item.
//   - BE (Lloyds Pharmacia): the main warehouse's daily semicolon separated stock file,
//     read from a local path or the newest object under a bucket prefix.
//   - DE (Recusana): the partner's stock_levels table, read through GORM.
//
// # Errors
//
// Unreachable origins fail with inventory.SourceUnavailableError, which aborts the
// reload. Individual malformed records (missing location id, negative quantity, short
// warehouse lines) are skipped with a warning. A non-numeric SKU or quantity in the
// warehouse file aborts the file unless BE skip_invalid is set.
package sources
