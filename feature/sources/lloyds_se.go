package sources

import (
	"context"

	"inventory-levels/core/inventory"

	"go.uber.org/zap"
)

type lloydsLevel struct {
	StoreNo        string `json:"storeNo"`
	ItemNo         int    `json:"itemNo"`
	AvailableStock int    `json:"availableStock"`
}

// LloydsSESource reads Lloyds Apotek stores. The feed is one flat row per store and item.
type LloydsSESource struct {
	client jsonGetter
	url    string
	logger *zap.Logger
}

// NewLloydsSESource creates the SE feed.
func NewLloydsSESource(client jsonGetter, cfg SEConfig, logger *zap.Logger) *LloydsSESource {
	return &LloydsSESource{
		client: client,
		url:    cfg.URL,
		logger: logger.With(zap.String("source", inventory.BaseStoreSE.Code())),
	}
}

// Name implements reload.FullSource.
func (s *LloydsSESource) Name() string {
	return inventory.BaseStoreSE.Code()
}

// FetchAll implements reload.FullSource. Stores are returned in order of first appearance.
func (s *LloydsSESource) FetchAll(ctx context.Context) ([]*inventory.Location, error) {
	var rows []lloydsLevel
	if err := s.client.GetJSON(ctx, s.url, &rows); err != nil {
		return nil, err
	}

	byStore := make(map[string]*inventory.Location)
	var locations []*inventory.Location
	skipped := 0
	for i, row := range rows {
		if row.StoreNo == "" {
			s.logger.Warn("Skipping row", zap.Error(&inventory.MalformedRecordError{
				Origin: s.Name(), Line: i + 1, Reason: "missing storeNo",
			}))
			skipped++
			continue
		}
		loc, ok := byStore[row.StoreNo]
		if !ok {
			loc = inventory.NewLocation(inventory.BaseStoreSE, row.StoreNo)
			byStore[row.StoreNo] = loc
			locations = append(locations, loc)
		}
		if err := loc.AddLevel(row.ItemNo, row.AvailableStock); err != nil {
			s.logger.Warn("Skipping row", zap.Int("row", i+1), zap.Error(err))
			skipped++
		}
	}

	s.logger.Debug("Loaded stores", zap.Int("stores", len(locations)), zap.Int("rows", len(rows)), zap.Int("skipped", skipped))
	return locations, nil
}
