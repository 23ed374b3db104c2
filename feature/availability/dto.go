package availability

import (
	"time"

	"inventory-levels/core/inventory"
	"inventory-levels/core/reload"
)

// LevelResponse is the wire form of one inventory level.
type LevelResponse struct {
	SKU       string    `json:"sku" example:"001234"`
	Location  string    `json:"location" example:"100"`
	Quantity  int       `json:"quantity" example:"3"`
	Available bool      `json:"available" example:"true"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewLevelResponse renders level; now stands in for an unknown update time.
func NewLevelResponse(level *inventory.Level, now time.Time) LevelResponse {
	return LevelResponse{
		SKU:       level.FormattedSKU(),
		Location:  level.Location.ID,
		Quantity:  level.Quantity,
		Available: level.Available(),
		UpdatedAt: level.UpdatedAt(now),
	}
}

func newLevelResponses(levels []*inventory.Level, now time.Time) []LevelResponse {
	out := make([]LevelResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, NewLevelResponse(level, now))
	}
	return out
}

// LocationResponse summarises one location.
type LocationResponse struct {
	ID        string     `json:"id" example:"100"`
	BaseStore string     `json:"baseStore" example:"NO_VITUSAPOTEK"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Levels    int        `json:"levels" example:"1520"`
}

// NewLocationResponse renders loc.
func NewLocationResponse(loc *inventory.Location) LocationResponse {
	return LocationResponse{
		ID:        loc.ID,
		BaseStore: loc.BaseStore.String(),
		UpdatedAt: loc.LastUpdatedUTC,
		Levels:    len(loc.Inventory),
	}
}

// ReloadResponse is returned by the reload endpoints.
type ReloadResponse struct {
	Status     string   `json:"status" example:"ok"`
	Kind       string   `json:"kind" example:"full"`
	Requested  []string `json:"requested,omitempty"`
	Locations  int      `json:"locations"`
	Items      int      `json:"items"`
	Levels     int      `json:"levels"`
	Added      int      `json:"added"`
	Removed    int      `json:"removed"`
	Changed    int      `json:"changed"`
	DurationMS int64    `json:"duration_ms"`
}

// NewReloadResponse renders a successful report.
func NewReloadResponse(report *reload.Report) ReloadResponse {
	return ReloadResponse{
		Status:     "ok",
		Kind:       string(report.Kind),
		Requested:  report.Requested,
		Locations:  report.Locations,
		Items:      report.Items,
		Levels:     report.Levels,
		Added:      report.Added,
		Removed:    report.Removed,
		Changed:    report.Changed,
		DurationMS: report.DurationMS,
	}
}

// SnapshotResponse summarises the published snapshot.
type SnapshotResponse struct {
	Locations int        `json:"locations"`
	Items     int        `json:"items"`
	Levels    int        `json:"levels"`
	BuiltAt   *time.Time `json:"built_at,omitempty"`
}

// StatusResponse is returned by GET /reload/status.
type StatusResponse struct {
	State      string           `json:"state" example:"idle"`
	Sources    []string         `json:"sources"`
	LastReload *reload.Report   `json:"last_reload,omitempty"`
	Snapshot   SnapshotResponse `json:"snapshot"`
}
