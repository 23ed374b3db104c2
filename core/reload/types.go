package reload

import (
	"errors"
	"time"
)

var (
	// ErrNoSources is returned by a full reload when no full source is registered.
	ErrNoSources = errors.New("no full sources registered")
	// ErrNoLocationSource is returned by a partial reload without a location source.
	ErrNoLocationSource = errors.New("no per-location source registered")
	// ErrNoLocations is returned by a partial reload with an empty location list.
	ErrNoLocations = errors.New("no locations requested")
)

// Kind is the kind of reload.
type Kind string

const (
	KindFull    Kind = "full"
	KindPartial Kind = "partial"
)

// State is the lifecycle state of the coordinator.
type State int32

const (
	StateIdle State = iota
	StateFetching
	StateMerging
	StateBuilding
	StatePublishing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateMerging:
		return "merging"
	case StateBuilding:
		return "building"
	case StatePublishing:
		return "publishing"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Report summarises one finished reload.
type Report struct {
	// Kind is full or partial.
	Kind Kind `json:"kind"`

	// Requested lists the location ids of a partial reload.
	Requested []string `json:"requested,omitempty"`

	// Locations is the number of locations in the published snapshot.
	Locations int `json:"locations"`

	// Items is the number of distinct SKUs in the published snapshot.
	Items int `json:"items"`

	// Levels is the total number of inventory levels in the published snapshot.
	Levels int `json:"levels"`

	// Added, Removed and Changed count the locations that differ from the previous snapshot.
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Changed int `json:"changed"`

	// StartedAt is when the reload acquired the reload lock.
	StartedAt time.Time `json:"started_at"`

	// Duration is the time from StartedAt until publish or failure.
	Duration time.Duration `json:"-"`

	// DurationMS is Duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Error holds the failure message; empty on success.
	Error string `json:"error,omitempty"`
}

// Succeeded reports whether the reload published a snapshot.
func (r *Report) Succeeded() bool {
	return r.Error == ""
}
