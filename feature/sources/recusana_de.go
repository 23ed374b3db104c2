package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventory-levels/core/database"
	"inventory-levels/core/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StockLevel is one row of the Recusana stock table.
type StockLevel struct {
	StoreNo        string    `gorm:"column:store_no;size:32;primaryKey"`
	ItemNo         int       `gorm:"column:item_no;primaryKey"`
	AvailableStock int       `gorm:"column:available_stock"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName is the default table; DEConfig.Table overrides it at query time.
func (StockLevel) TableName() string {
	return "stock_levels"
}

var stockLevelColumns = []string{"store_no", "item_no", "available_stock", "updated_at"}

// RecusanaSource reads German stores from the Recusana database.
type RecusanaSource struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

// NewRecusanaSource creates the DE feed and checks the stock table has the expected columns.
func NewRecusanaSource(db *gorm.DB, cfg DEConfig, logger *zap.Logger) (*RecusanaSource, error) {
	table := cfg.Table
	if table == "" {
		table = StockLevel{}.TableName()
	}
	missing, err := database.MissingColumns(db, table, stockLevelColumns...)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
	}
	return &RecusanaSource{
		db:     db,
		table:  table,
		logger: logger.With(zap.String("source", inventory.BaseStoreDE.Code())),
	}, nil
}

// Name implements reload.FullSource.
func (s *RecusanaSource) Name() string {
	return inventory.BaseStoreDE.Code()
}

// FetchAll implements reload.FullSource. Each store's update time is the newest
// updated_at among its rows.
func (s *RecusanaSource) FetchAll(ctx context.Context) ([]*inventory.Location, error) {
	var rows []StockLevel
	err := s.db.WithContext(ctx).
		Table(s.table).
		Order("store_no").
		Order("item_no").
		Find(&rows).Error
	if err != nil {
		return nil, inventory.Unavailable(s.Name(), fmt.Errorf("query %s: %w", s.table, err))
	}

	byStore := make(map[string]*inventory.Location)
	var locations []*inventory.Location
	skipped := 0
	for i, row := range rows {
		if row.StoreNo == "" {
			s.logger.Warn("Skipping row", zap.Error(&inventory.MalformedRecordError{
				Origin: s.Name(), Line: i + 1, Reason: "missing store_no",
			}))
			skipped++
			continue
		}
		loc, ok := byStore[row.StoreNo]
		if !ok {
			loc = inventory.NewLocation(inventory.BaseStoreDE, row.StoreNo)
			byStore[row.StoreNo] = loc
			locations = append(locations, loc)
		}
		if !row.UpdatedAt.IsZero() && (loc.LastUpdatedUTC == nil || row.UpdatedAt.After(*loc.LastUpdatedUTC)) {
			t := row.UpdatedAt.UTC()
			loc.LastUpdatedUTC = &t
		}
		if err := loc.AddLevel(row.ItemNo, row.AvailableStock); err != nil {
			s.logger.Warn("Skipping row", zap.Int("row", i+1), zap.Error(err))
			skipped++
		}
	}

	s.logger.Debug("Loaded stores", zap.Int("stores", len(locations)), zap.Int("rows", len(rows)), zap.Int("skipped", skipped))
	return locations, nil
}
