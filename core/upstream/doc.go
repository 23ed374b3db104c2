// Package upstream is the HTTP client used by network inventory feeds.
//
// Each origin gets its own Client with basic authentication, strict transport timeouts
// and a circuit breaker. Every failure is reported as an inventory.SourceUnavailableError
// carrying the origin name, so the reload coordinator can abort the reload and keep the
// published snapshot.
//
// # Usage
//
//	client := upstream.NewClient("NO", cfg.Upstream, logger)
//	var payload []slqLocation
//	err := client.GetJSON(ctx, "https://slq.example/fullunrestrictedinventory.json", &payload)
package upstream
