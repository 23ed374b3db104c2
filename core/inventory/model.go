package inventory

import (
	"fmt"
	"slices"
	"time"
)

// Level is the inventory level of one item at one location.
//
// SKUs are kept as integers to keep the footprint low and are only formatted with the
// base store specific width when rendered. The location is referenced rather than copied
// so id and update time are stored once per location.
type Level struct {
	SKU      int
	Quantity int
	Location *Location
}

// Available reports whether at least one unit is in stock.
func (l *Level) Available() bool {
	return l.Quantity > 0
}

// FormattedSKU renders the SKU with the width of the owning location's base store.
func (l *Level) FormattedSKU() string {
	return l.Location.BaseStore.FormatSKU(l.SKU)
}

// UpdatedAt returns the owning location's last update, or now when the feed did not say.
func (l *Level) UpdatedAt(now time.Time) time.Time {
	if l.Location.LastUpdatedUTC == nil {
		return now
	}
	return *l.Location.LastUpdatedUTC
}

func (l *Level) String() string {
	return fmt.Sprintf("sku %d, %s, %d quantity", l.SKU, l.Location, l.Quantity)
}

// Location is an inventory location, typically a pharmacy or a warehouse.
// Sources populate it with AddLevel; once it is part of a Snapshot it must not change.
type Location struct {
	ID             string
	LastUpdatedUTC *time.Time
	BaseStore      BaseStore
	Inventory      map[int]*Level
}

// NewLocation creates an empty location for the given base store.
func NewLocation(baseStore BaseStore, id string) *Location {
	return &Location{
		ID:        id,
		BaseStore: baseStore,
		Inventory: make(map[int]*Level),
	}
}

// AddLevel stores the quantity for sku, replacing any earlier value for the same sku.
// Negative quantities are rejected.
func (l *Location) AddLevel(sku, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("sku %d at %s: negative quantity %d: %w", sku, l.ID, quantity, ErrMalformedRecord)
	}
	l.Inventory[sku] = &Level{SKU: sku, Quantity: quantity, Location: l}
	return nil
}

// Level returns the level for sku at this location.
func (l *Location) Level(sku int) (*Level, bool) {
	level, ok := l.Inventory[sku]
	return level, ok
}

// SKUs returns the stocked SKUs in ascending order.
func (l *Location) SKUs() []int {
	skus := make([]int, 0, len(l.Inventory))
	for sku := range l.Inventory {
		skus = append(skus, sku)
	}
	slices.Sort(skus)
	return skus
}

func (l *Location) String() string {
	updated := "unknown"
	if l.LastUpdatedUTC != nil {
		updated = l.LastUpdatedUTC.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("Location %s (updated %s), %d inventory levels", l.ID, updated, len(l.Inventory))
}
