package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-levels/core/inventory"
	"inventory-levels/core/reload"

	"go.uber.org/zap"
)

var (
	// ErrUnknownLocation is returned when a location is not in the current snapshot.
	ErrUnknownLocation = errors.New("unknown location")
	// ErrUnknownItem is returned when a location does not stock the requested SKU.
	ErrUnknownItem = errors.New("unknown item")
)

// Service answers availability queries from the store and triggers reloads.
type Service struct {
	store       *inventory.Store
	coordinator *reload.Coordinator
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new availability service.
func NewService(store *inventory.Store, coordinator *reload.Coordinator, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		coordinator: coordinator,
		logger:      logger,
		now:         time.Now,
	}
}

// ItemAvailability returns the levels of sku at every location that stocks it.
func (s *Service) ItemAvailability(sku int) []*inventory.Level {
	return s.store.ItemAvailability(sku)
}

// LevelAt returns the level of sku at one location.
func (s *Service) LevelAt(locationID string, sku int) (*inventory.Level, error) {
	loc, ok := s.store.Location(locationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, locationID)
	}
	level, ok := loc.Level(sku)
	if !ok {
		return nil, fmt.Errorf("%w: sku %d at %s", ErrUnknownItem, sku, locationID)
	}
	return level, nil
}

// Query returns the levels for the requested SKUs at the requested locations.
func (s *Service) Query(skus []int, locationIDs []string) []*inventory.Level {
	return s.store.Query(skus, locationIDs)
}

// Location returns one location of the current snapshot.
func (s *Service) Location(id string) (*inventory.Location, error) {
	loc, ok := s.store.Location(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, id)
	}
	return loc, nil
}

// Reload runs a full reload unless one is already running.
func (s *Service) Reload(ctx context.Context) (*reload.Report, error) {
	return s.coordinator.TryFullReload(ctx)
}

// ReloadLocations runs a partial reload of ids.
func (s *Service) ReloadLocations(ctx context.Context, ids []string) (*reload.Report, error) {
	return s.coordinator.PartialReload(ctx, ids)
}

// Status describes the coordinator and the published snapshot.
func (s *Service) Status() StatusResponse {
	snap := s.store.Snapshot()
	status := StatusResponse{
		State:      s.coordinator.State().String(),
		Sources:    s.coordinator.SourceNames(),
		LastReload: s.coordinator.LastReport(),
		Snapshot: SnapshotResponse{
			Locations: snap.LocationCount(),
			Items:     snap.ItemCount(),
			Levels:    snap.LevelCount(),
		},
	}
	if built := snap.BuiltAt(); !built.IsZero() {
		status.Snapshot.BuiltAt = &built
	}
	return status
}
