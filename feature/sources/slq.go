package sources

import (
	"context"
	"net/url"
	"strings"

	"inventory-levels/core/inventory"

	"go.uber.org/zap"
)

// jsonGetter is the part of upstream.Client the HTTP feeds use.
type jsonGetter interface {
	GetJSON(ctx context.Context, url string, v any) error
}

type slqLocation struct {
	PharmacyID     string     `json:"pharmacyId"`
	LastUpdatedUTC *feedTime  `json:"lastUpdatedUTC"`
	StockLevels    []slqLevel `json:"stockLevels"`
}

type slqLevel struct {
	SKU      int `json:"sku"`
	Quantity int `json:"quantity"`
}

// SLQSource reads Vitusapotek pharmacies from SLQ. It serves both full reloads and
// single pharmacy reloads.
type SLQSource struct {
	client      jsonGetter
	url         string
	locationURL string
	logger      *zap.Logger
}

// NewSLQSource creates the NO feed.
func NewSLQSource(client jsonGetter, cfg NOConfig, logger *zap.Logger) *SLQSource {
	return &SLQSource{
		client:      client,
		url:         cfg.URL,
		locationURL: cfg.LocationURL,
		logger:      logger.With(zap.String("source", inventory.BaseStoreNO.Code())),
	}
}

// Name implements reload.FullSource.
func (s *SLQSource) Name() string {
	return inventory.BaseStoreNO.Code()
}

// FetchAll implements reload.FullSource.
func (s *SLQSource) FetchAll(ctx context.Context) ([]*inventory.Location, error) {
	var payload []slqLocation
	if err := s.client.GetJSON(ctx, s.url, &payload); err != nil {
		return nil, err
	}

	locations := make([]*inventory.Location, 0, len(payload))
	for i := range payload {
		loc, err := s.toLocation(&payload[i])
		if err != nil {
			s.logger.Warn("Skipping pharmacy", zap.Int("index", i), zap.Error(err))
			continue
		}
		s.logger.Debug("Loaded", zap.Stringer("location", loc))
		locations = append(locations, loc)
	}
	return locations, nil
}

// FetchLocation implements reload.LocationSource.
func (s *SLQSource) FetchLocation(ctx context.Context, id string) (*inventory.Location, error) {
	var payload slqLocation
	if err := s.client.GetJSON(ctx, s.pharmacyURL(id), &payload); err != nil {
		return nil, err
	}
	return s.toLocation(&payload)
}

func (s *SLQSource) pharmacyURL(id string) string {
	return strings.ReplaceAll(s.locationURL, "{id}", url.PathEscape(id))
}

func (s *SLQSource) toLocation(p *slqLocation) (*inventory.Location, error) {
	if p.PharmacyID == "" {
		return nil, &inventory.MalformedRecordError{Origin: s.Name(), Reason: "missing pharmacyId"}
	}
	loc := inventory.NewLocation(inventory.BaseStoreNO, p.PharmacyID)
	loc.LastUpdatedUTC = p.LastUpdatedUTC.ptr()
	for _, level := range p.StockLevels {
		if err := loc.AddLevel(level.SKU, level.Quantity); err != nil {
			s.logger.Warn("Skipping stock level", zap.String("location", p.PharmacyID), zap.Error(err))
		}
	}
	return loc, nil
}
