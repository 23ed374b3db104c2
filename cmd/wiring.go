package cmd

import (
	"context"
	"fmt"
	"time"

	"inventory-levels/core/config"
	"inventory-levels/core/database"
	"inventory-levels/core/inventory"
	"inventory-levels/core/metrics"
	"inventory-levels/core/reload"
	"inventory-levels/core/storage"
	"inventory-levels/feature/sources"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// components are the parts shared by the start and reload commands.
type components struct {
	store       *inventory.Store
	coordinator *reload.Coordinator
	metrics     *metrics.Metrics
}

// buildComponents connects the optional database and storage, builds the enabled feeds
// and a coordinator publishing into a fresh store.
func buildComponents(cfg *config.Config, logg *zap.Logger) (*components, error) {
	deps := sources.Dependencies{
		Upstream: cfg.Upstream,
		Bucket:   cfg.Storage.Bucket,
		Logger:   logg,
	}

	if cfg.Sources.DE.Enabled {
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to Recusana database", zap.String("driver", cfg.Database.Driver))
		}
		deps.DB = db
	}

	if cfg.Sources.BE.Enabled && cfg.Sources.BE.Path == "" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		cancel()
		switch {
		case err != nil:
			logg.Warn("Could not check warehouse bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		case !exists:
			logg.Warn("Warehouse bucket does not exist", zap.String("bucket", cfg.Storage.Bucket))
		}
		deps.Storage = client
	}

	set, err := sources.New(cfg.Sources, deps)
	if err != nil {
		return nil, err
	}

	m := metrics.New("inventory")
	store := inventory.NewStore()
	opts := []reload.Option{
		reload.WithFullSources(set.Full...),
		reload.WithRecorder(m),
	}
	if set.PerLocation != nil {
		opts = append(opts, reload.WithLocationSource(set.PerLocation))
	}

	return &components{
		store:       store,
		coordinator: reload.NewCoordinator(store, logg, opts...),
		metrics:     m,
	}, nil
}
