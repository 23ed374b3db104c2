// Package availability exposes the inventory store over HTTP.
//
// Routes:
//
//	GET  /item/:sku/availability                      levels of one item across all locations
//	GET  /location/:location/item/:sku/availability   one level, 422 when unknown
//	GET  /inventory_levels?skus=&locations=           bulk query
//	GET  /location/:location                          location summary
//	POST /reload, GET /reload                         full reload
//	POST /reload_locations, GET /reload_locations     partial reload of ?locations=
//	GET  /reload/status                               coordinator state and last report
//	GET  /metrics                                     Prometheus exposition
//
// Availability responses carry a Cache-Control max-age derived from the refresh interval.
package availability
