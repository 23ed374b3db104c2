package sources

import (
	"errors"
	"fmt"

	"inventory-levels/core/inventory"
	"inventory-levels/core/reload"
	"inventory-levels/core/storage"
	"inventory-levels/core/upstream"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the shared clients the feeds are built from. Storage and DB are
// optional; feeds that need a missing one are skipped with a warning.
type Dependencies struct {
	Upstream upstream.Config
	Storage  storage.Client
	Bucket   string
	DB       *gorm.DB
	Logger   *zap.Logger
}

// Set is the outcome of New, ready to hand to reload.NewCoordinator.
type Set struct {
	// Full holds the enabled feeds in merge order: NO, SE, BE, DE.
	Full []reload.FullSource
	// PerLocation serves partial reloads; nil when the NO feed is disabled.
	PerLocation reload.LocationSource
}

// Names returns the names of the full feeds in merge order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Full))
	for _, src := range s.Full {
		names = append(names, src.Name())
	}
	return names
}

// New builds the enabled feeds. It fails when a feed is enabled but misconfigured in a
// way that cannot be recovered at reload time.
func New(cfg Config, deps Dependencies) (*Set, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	set := &Set{}

	if cfg.NO.Enabled {
		if cfg.NO.URL == "" {
			return nil, errors.New("sources.no.url is required")
		}
		client := upstream.NewClient(inventory.BaseStoreNO.Code(), deps.Upstream, logger)
		slq := NewSLQSource(client, cfg.NO, logger)
		set.Full = append(set.Full, slq)
		if cfg.NO.LocationURL != "" {
			set.PerLocation = slq
		}
	}

	if cfg.SE.Enabled {
		if cfg.SE.URL == "" {
			return nil, errors.New("sources.se.url is required")
		}
		client := upstream.NewClient(inventory.BaseStoreSE.Code(), deps.Upstream, logger)
		set.Full = append(set.Full, NewLloydsSESource(client, cfg.SE, logger))
	}

	if cfg.BE.Enabled {
		if cfg.BE.Path == "" && deps.Storage == nil {
			logger.Warn("BE feed enabled without a file path or storage, skipping")
		} else {
			set.Full = append(set.Full, NewWarehouseSource(cfg.BE, deps.Storage, deps.Bucket, logger))
		}
	}

	if cfg.DE.Enabled {
		if deps.DB == nil {
			logger.Warn("DE feed enabled without a database connection, skipping")
		} else {
			de, err := NewRecusanaSource(deps.DB, cfg.DE, logger)
			if err != nil {
				return nil, fmt.Errorf("DE feed: %w", err)
			}
			set.Full = append(set.Full, de)
		}
	}

	logger.Info("Configured inventory feeds", zap.Strings("sources", set.Names()), zap.Bool("partial_reload", set.PerLocation != nil))
	return set, nil
}
