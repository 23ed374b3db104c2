package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"inventory-levels/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildComponents_WarehouseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku;name;total;liege\n1234567;A;3;2\n"), 0o600))

	cfg := &config.Config{}
	cfg.Sources.BE.Enabled = true
	cfg.Sources.BE.Path = path
	cfg.Sources.BE.LocationID = "lbe_999010"

	rt, err := buildComponents(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"BE"}, rt.coordinator.SourceNames())

	report, err := rt.coordinator.FullReload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Locations)

	levels := rt.store.ItemAvailability(1234567)
	require.Len(t, levels, 1)
	assert.Equal(t, 2, levels[0].Quantity)
}

func TestBuildComponents_DatabaseUnavailable(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sources.DE.Enabled = true
	cfg.Database.Driver = "oracle"

	rt, err := buildComponents(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, rt.coordinator.SourceNames(), "DE is skipped without a database")
}

func TestSplitLocations(t *testing.T) {
	assert.Equal(t, []string{"100", "lbe_999010"}, splitLocations(" 100,,lbe_999010 "))
	assert.Nil(t, splitLocations(""))
}
