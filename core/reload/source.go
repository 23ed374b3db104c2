package reload

import (
	"context"
	"time"

	"inventory-levels/core/inventory"
)

// FullSource returns every location of one upstream origin in a single fetch.
type FullSource interface {
	// Name identifies the origin in logs, errors and metrics.
	Name() string
	// FetchAll returns all locations of the origin, tagged with their base store.
	// Transport failures are reported as inventory.SourceUnavailableError.
	FetchAll(ctx context.Context) ([]*inventory.Location, error)
}

// LocationSource fetches a single location by id.
type LocationSource interface {
	Name() string
	FetchLocation(ctx context.Context, id string) (*inventory.Location, error)
}

// Recorder receives reload outcomes, typically for metrics.
// snap is nil when the reload failed.
type Recorder interface {
	ReloadFinished(kind string, err error, snap *inventory.Snapshot, elapsed time.Duration)
	SourceFailed(source string)
}

type nopRecorder struct{}

func (nopRecorder) ReloadFinished(string, error, *inventory.Snapshot, time.Duration) {}
func (nopRecorder) SourceFailed(string)                                              {}
