package inventory_test

import (
	"errors"
	"fmt"
	"testing"

	"inventory-levels/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_IndexCoherence(t *testing.T) {
	locs := make(map[string]*inventory.Location)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("loc%02d", i)
		loc := inventory.NewLocation(inventory.AllBaseStores()[i%4], id)
		for sku := i; sku < i+40; sku += 3 {
			require.NoError(t, loc.AddLevel(sku, sku%5))
		}
		locs[id] = loc
	}

	snap := inventory.Build(locs)
	require.NoError(t, snap.Verify())
	assert.Equal(t, 25, snap.LocationCount())

	total := 0
	for _, loc := range locs {
		total += len(loc.Inventory)
	}
	assert.Equal(t, total, snap.LevelCount())
}

func TestBuild_SkipsNil(t *testing.T) {
	snap := inventory.Build(map[string]*inventory.Location{"a": nil})
	assert.Equal(t, 0, snap.LocationCount())
	assert.NoError(t, snap.Verify())
}

func TestSnapshot_Verify_DetectsDrift(t *testing.T) {
	loc := inventory.NewLocation(inventory.BaseStoreNO, "a")
	require.NoError(t, loc.AddLevel(1, 1))
	snap := inventory.Build(map[string]*inventory.Location{"a": loc})
	require.NoError(t, snap.Verify())

	// Mutating a published location breaks the by-item index.
	require.NoError(t, loc.AddLevel(2, 1))
	assert.Error(t, snap.Verify())
}

func TestSnapshot_LocationsIsCopy(t *testing.T) {
	loc := inventory.NewLocation(inventory.BaseStoreNO, "a")
	snap := inventory.Build(map[string]*inventory.Location{"a": loc})

	m := snap.Locations()
	delete(m, "a")

	_, ok := snap.Location("a")
	assert.True(t, ok)
}

func TestErrors(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("reload: %w", inventory.Unavailable("NO", cause))

	assert.ErrorIs(t, err, inventory.ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)

	var sue *inventory.SourceUnavailableError
	require.ErrorAs(t, err, &sue)
	assert.Equal(t, "NO", sue.Origin)

	mre := &inventory.MalformedRecordError{Origin: "BE", Line: 3, Reason: "too few fields"}
	assert.ErrorIs(t, mre, inventory.ErrMalformedRecord)
	assert.Equal(t, "malformed record from BE at line 3: too few fields", mre.Error())
}
