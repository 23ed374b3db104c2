package inventory_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"inventory-levels/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func location(t *testing.T, id string, levels map[int]int) *inventory.Location {
	t.Helper()
	loc := inventory.NewLocation(inventory.BaseStoreNO, id)
	for sku, qty := range levels {
		require.NoError(t, loc.AddLevel(sku, qty))
	}
	return loc
}

func exampleStore(t *testing.T) *inventory.Store {
	store := inventory.NewStore()
	store.Publish(inventory.Build(map[string]*inventory.Location{
		"loc1": location(t, "loc1", map[int]int{10: 5}),
		"loc2": location(t, "loc2", map[int]int{10: 0, 20: 3}),
	}))
	return store
}

type levelView struct {
	SKU      int
	Quantity int
	Location string
}

func views(levels []*inventory.Level) []levelView {
	out := make([]levelView, 0, len(levels))
	for _, l := range levels {
		out = append(out, levelView{SKU: l.SKU, Quantity: l.Quantity, Location: l.Location.ID})
	}
	return out
}

func TestStore_Example(t *testing.T) {
	store := exampleStore(t)

	t.Run("ItemAvailability", func(t *testing.T) {
		assert.Equal(t, []levelView{
			{SKU: 10, Quantity: 5, Location: "loc1"},
			{SKU: 10, Quantity: 0, Location: "loc2"},
		}, views(store.ItemAvailability(10)))
	})

	t.Run("QueryAtLocation", func(t *testing.T) {
		assert.Equal(t, []levelView{
			{SKU: 10, Quantity: 0, Location: "loc2"},
			{SKU: 20, Quantity: 3, Location: "loc2"},
		}, views(store.Query([]int{10, 20}, []string{"loc2"})))
	})

	t.Run("UnknownLocation", func(t *testing.T) {
		loc, ok := store.Location("loc3")
		assert.False(t, ok)
		assert.Nil(t, loc)
	})
}

func TestStore_ItemAvailability_Unknown(t *testing.T) {
	store := exampleStore(t)

	levels := store.ItemAvailability(999)
	assert.NotNil(t, levels)
	assert.Empty(t, levels)
}

func TestStore_ItemAvailability_ReturnsCopy(t *testing.T) {
	store := exampleStore(t)

	levels := store.ItemAvailability(10)
	levels[0] = nil

	assert.NotNil(t, store.ItemAvailability(10)[0])
}

func TestStore_Query(t *testing.T) {
	store := exampleStore(t)

	t.Run("AllLocations", func(t *testing.T) {
		assert.Equal(t, []levelView{
			{SKU: 20, Quantity: 3, Location: "loc2"},
			{SKU: 10, Quantity: 5, Location: "loc1"},
			{SKU: 10, Quantity: 0, Location: "loc2"},
		}, views(store.Query([]int{20, 10}, nil)))
	})

	t.Run("LocationOrderFollowsInput", func(t *testing.T) {
		assert.Equal(t, []levelView{
			{SKU: 10, Quantity: 0, Location: "loc2"},
			{SKU: 10, Quantity: 5, Location: "loc1"},
		}, views(store.Query([]int{10}, []string{"loc2", "loc1"})))
	})

	t.Run("UnknownInputsContributeNothing", func(t *testing.T) {
		assert.Equal(t, []levelView{
			{SKU: 20, Quantity: 3, Location: "loc2"},
		}, views(store.Query([]int{99, 20}, []string{"nope", "loc2"})))
	})

	t.Run("DuplicatesIgnored", func(t *testing.T) {
		assert.Len(t, store.Query([]int{10, 10}, []string{"loc1", "loc1"}), 1)
	})

	t.Run("Empty", func(t *testing.T) {
		levels := store.Query(nil, nil)
		assert.NotNil(t, levels)
		assert.Empty(t, levels)
	})
}

func TestStore_RemovedItemIsEmpty(t *testing.T) {
	store := exampleStore(t)
	require.Len(t, store.ItemAvailability(20), 1)

	store.Publish(inventory.Build(map[string]*inventory.Location{
		"loc1": location(t, "loc1", map[int]int{10: 7}),
	}))

	assert.Empty(t, store.ItemAvailability(20))
	assert.Empty(t, store.Query([]int{20}, nil))
}

func TestStore_PublishReturnsPrevious(t *testing.T) {
	store := inventory.NewStore()
	first := store.Snapshot()
	assert.Equal(t, 0, first.LocationCount())

	next := inventory.Build(map[string]*inventory.Location{"a": location(t, "a", nil)})
	prev := store.Publish(next)
	assert.Same(t, first, prev)
	assert.Same(t, next, store.Snapshot())

	store.Publish(nil)
	assert.Equal(t, 0, store.Snapshot().LocationCount())
}

func TestStore_ReaderHoldsSnapshotAcrossPublish(t *testing.T) {
	store := exampleStore(t)
	held := store.Snapshot()

	store.Publish(inventory.Build(map[string]*inventory.Location{
		"loc9": location(t, "loc9", map[int]int{10: 1}),
	}))

	_, ok := held.Location("loc1")
	assert.True(t, ok)
	_, ok = held.Location("loc9")
	assert.False(t, ok)
	assert.Equal(t, []string{"loc1", "loc2"}, held.LocationIDs())
	assert.NoError(t, held.Verify())

	assert.Equal(t, []levelView{{SKU: 10, Quantity: 1, Location: "loc9"}}, views(store.ItemAvailability(10)))
}

// Every snapshot in this test has one uniform generation number on all of its levels,
// so a read that mixed two snapshots would see two different quantities.
func TestStore_ConcurrentReadsNeverMix(t *testing.T) {
	build := func(gen int) *inventory.Snapshot {
		locs := make(map[string]*inventory.Location)
		for _, id := range []string{"a", "b", "c", "d"} {
			loc := inventory.NewLocation(inventory.BaseStoreSE, id)
			for sku := 1; sku <= 20; sku++ {
				_ = loc.AddLevel(sku, gen)
			}
			locs[id] = loc
		}
		return inventory.Build(locs)
	}

	store := inventory.NewStore()
	store.Publish(build(0))

	stop := make(chan struct{})
	var wg sync.WaitGroup
	errs := make(chan error, 8)

	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				levels := store.Query([]int{1, 5, 10, 20}, nil)
				if len(levels) != 16 {
					errs <- errors.New("unexpected level count")
					return
				}
				for _, l := range levels[1:] {
					if l.Quantity != levels[0].Quantity {
						errs <- errors.New("read observed two snapshots")
						return
					}
				}
			}
		}()
	}

	for gen := 1; gen <= 200; gen++ {
		store.Publish(build(gen))
	}
	close(stop)
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

func TestLevel_UpdatedAt(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	loc := location(t, "x", map[int]int{1: 2})
	level, ok := loc.Level(1)
	require.True(t, ok)

	assert.Equal(t, now, level.UpdatedAt(now))

	updated := now.Add(-time.Minute)
	loc.LastUpdatedUTC = &updated
	assert.Equal(t, updated, level.UpdatedAt(now))
	assert.True(t, level.Available())
	assert.Equal(t, "000001", level.FormattedSKU())
}

func TestLocation_AddLevel_Negative(t *testing.T) {
	loc := inventory.NewLocation(inventory.BaseStoreBE, "lbe_999010")
	err := loc.AddLevel(1, -1)
	assert.ErrorIs(t, err, inventory.ErrMalformedRecord)
	assert.Empty(t, loc.Inventory)
}
