package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-levels/core/inventory"
	"inventory-levels/core/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const slqFull = `[
  {"pharmacyId": "100", "lastUpdatedUTC": "2018-12-18T06:00:00.000+0000",
   "stockLevels": [{"sku": 1234, "quantity": 3}, {"sku": 99, "quantity": 0}]},
  {"pharmacyId": "", "stockLevels": [{"sku": 1, "quantity": 1}]},
  {"pharmacyId": "200", "lastUpdatedUTC": 1545112800000,
   "stockLevels": [{"sku": 1234, "quantity": -1}, {"sku": 5, "quantity": 7}]}
]`

func newSLQServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/full", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(slqFull))
	})
	mux.HandleFunc("/pharmacy/100/unrestrictedinventory", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pharmacyId": "100", "stockLevels": [{"sku": 1234, "quantity": 8}]}`))
	})
	mux.HandleFunc("/pharmacy/300/unrestrictedinventory", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stockLevels": []}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSLQ(srv *httptest.Server) *SLQSource {
	client := upstream.NewClient("NO", upstream.Config{BreakerFailures: 10}, nil)
	return NewSLQSource(client, NOConfig{
		URL:         srv.URL + "/full",
		LocationURL: srv.URL + "/pharmacy/{id}/unrestrictedinventory",
	}, zap.NewNop())
}

func TestSLQSource_FetchAll(t *testing.T) {
	src := newSLQ(newSLQServer(t))
	assert.Equal(t, "NO", src.Name())

	locations, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2, "pharmacy without id is skipped")

	first := locations[0]
	assert.Equal(t, "100", first.ID)
	assert.Equal(t, inventory.BaseStoreNO, first.BaseStore)
	require.NotNil(t, first.LastUpdatedUTC)
	assert.Equal(t, time.Date(2018, 12, 18, 6, 0, 0, 0, time.UTC), *first.LastUpdatedUTC)
	level, ok := first.Level(1234)
	require.True(t, ok)
	assert.Equal(t, 3, level.Quantity)
	assert.Equal(t, "001234", level.FormattedSKU())

	second := locations[1]
	assert.Equal(t, "200", second.ID)
	require.NotNil(t, second.LastUpdatedUTC)
	assert.Equal(t, time.Date(2018, 12, 18, 6, 0, 0, 0, time.UTC), *second.LastUpdatedUTC)
	_, ok = second.Level(1234)
	assert.False(t, ok, "negative quantity is skipped")
	assert.Equal(t, []int{5}, second.SKUs())
}

func TestSLQSource_FetchLocation(t *testing.T) {
	src := newSLQ(newSLQServer(t))

	loc, err := src.FetchLocation(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, "100", loc.ID)
	assert.Nil(t, loc.LastUpdatedUTC)
	level, ok := loc.Level(1234)
	require.True(t, ok)
	assert.Equal(t, 8, level.Quantity)

	_, err = src.FetchLocation(context.Background(), "300")
	assert.ErrorIs(t, err, inventory.ErrMalformedRecord)

	_, err = src.FetchLocation(context.Background(), "404")
	assert.ErrorIs(t, err, inventory.ErrSourceUnavailable)
}

func TestSLQSource_PharmacyURL(t *testing.T) {
	src := NewSLQSource(nil, NOConfig{LocationURL: "https://slq/pharmacy/{id}/inv"}, zap.NewNop())
	assert.Equal(t, "https://slq/pharmacy/a%2Fb/inv", src.pharmacyURL("a/b"))
}
