package sources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"inventory-levels/core/inventory"
	"inventory-levels/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	warehouseSeparator   = ";"
	warehouseSKUColumn   = 0
	warehouseQtyColumn   = 3 // stock at the Liège warehouse
	warehouseMinColumns  = 4
	warehouseMaxLineSize = 1 << 20
)

// WarehouseSource reads the Lloyds Pharmacia main warehouse stock file:
// semicolon separated, one header line, SKU in the first column and quantity in the
// fourth. The whole file is a single location.
type WarehouseSource struct {
	cfg    BEConfig
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewWarehouseSource creates the BE feed. client may be nil when cfg.Path is set.
func NewWarehouseSource(cfg BEConfig, client storage.Client, bucket string, logger *zap.Logger) *WarehouseSource {
	return &WarehouseSource{
		cfg:    cfg,
		client: client,
		bucket: bucket,
		logger: logger.With(zap.String("source", inventory.BaseStoreBE.Code())),
	}
}

// Name implements reload.FullSource.
func (s *WarehouseSource) Name() string {
	return inventory.BaseStoreBE.Code()
}

// FetchAll implements reload.FullSource.
func (s *WarehouseSource) FetchAll(ctx context.Context) ([]*inventory.Location, error) {
	r, name, modified, err := s.open(ctx)
	if err != nil {
		return nil, inventory.Unavailable(s.Name(), err)
	}
	defer r.Close()

	loc, err := s.parse(r)
	if err != nil {
		return nil, err
	}
	if !modified.IsZero() {
		t := modified.UTC()
		loc.LastUpdatedUTC = &t
	}
	s.logger.Debug("Loaded warehouse file", zap.String("file", name), zap.Stringer("location", loc))
	return []*inventory.Location{loc}, nil
}

func (s *WarehouseSource) open(ctx context.Context) (io.ReadCloser, string, time.Time, error) {
	if s.cfg.Path != "" {
		f, err := os.Open(s.cfg.Path)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		var modified time.Time
		if info, err := f.Stat(); err == nil {
			modified = info.ModTime()
		}
		return f, s.cfg.Path, modified, nil
	}

	if s.client == nil {
		return nil, "", time.Time{}, errors.New("no warehouse file path and no storage client configured")
	}
	latest, found, err := storage.LatestObject(ctx, s.client, s.bucket, s.cfg.ObjectPrefix)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !found {
		return nil, "", time.Time{}, fmt.Errorf("no warehouse file under %s/%s", s.bucket, s.cfg.ObjectPrefix)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, latest.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("get %s/%s: %w", s.bucket, latest.Key, err)
	}
	return obj, latest.Key, latest.LastModified, nil
}

func (s *WarehouseSource) parse(r io.Reader) (*inventory.Location, error) {
	loc := inventory.NewLocation(inventory.BaseStoreBE, s.cfg.LocationID)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), warehouseMaxLineSize)

	line := 0
	skipped := 0
	blank := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			s.logger.Debug("Skipping blank warehouse line", zap.Int("line", line))
			blank++
			continue
		}

		fields := strings.Split(text, warehouseSeparator)
		if len(fields) < warehouseMinColumns {
			s.logger.Warn("Skipping warehouse line", zap.Error(&inventory.MalformedRecordError{
				Origin: s.Name(), Line: line, Reason: fmt.Sprintf("expected %d fields, got %d", warehouseMinColumns, len(fields)),
			}))
			skipped++
			continue
		}

		sku, qty, err := parseWarehouseNumbers(fields)
		if err != nil {
			malformed := &inventory.MalformedRecordError{Origin: s.Name(), Line: line, Reason: "invalid number", Cause: err}
			if !s.cfg.SkipInvalid {
				return nil, malformed
			}
			s.logger.Warn("Skipping warehouse line", zap.Error(malformed))
			skipped++
			continue
		}

		if err := loc.AddLevel(sku, qty); err != nil {
			s.logger.Warn("Skipping warehouse line", zap.Int("line", line), zap.Error(err))
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, inventory.Unavailable(s.Name(), fmt.Errorf("read warehouse file: %w", err))
	}

	if skipped > 0 {
		s.logger.Warn("Warehouse file had malformed lines", zap.Int("skipped", skipped), zap.Int("lines", line))
	}
	if blank > 0 {
		s.logger.Info("Warehouse file had blank lines", zap.Int("blank", blank), zap.Int("lines", line))
	}
	return loc, nil
}

func parseWarehouseNumbers(fields []string) (sku, qty int, err error) {
	sku, err = strconv.Atoi(strings.TrimSpace(fields[warehouseSKUColumn]))
	if err != nil {
		return 0, 0, fmt.Errorf("sku: %w", err)
	}
	qty, err = strconv.Atoi(strings.TrimSpace(fields[warehouseQtyColumn]))
	if err != nil {
		return 0, 0, fmt.Errorf("quantity: %w", err)
	}
	return sku, qty, nil
}
