package availability

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-levels/core/inventory"
	"inventory-levels/core/reload"
	"inventory-levels/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2018, 12, 18, 12, 0, 0, 0, time.UTC)

type stubSource struct {
	name    string
	locs    []*inventory.Location
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchAll(ctx context.Context) ([]*inventory.Location, error) {
	if s.started != nil {
		close(s.started)
		<-s.release
	}
	return s.locs, s.err
}

func (s *stubSource) FetchLocation(ctx context.Context, id string) (*inventory.Location, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, l := range s.locs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, inventory.Unavailable(s.name, io.EOF)
}

func location(id string, updated *time.Time, levels map[int]int) *inventory.Location {
	l := inventory.NewLocation(inventory.BaseStoreNO, id)
	l.LastUpdatedUTC = updated
	for sku, qty := range levels {
		_ = l.AddLevel(sku, qty)
	}
	return l
}

func seededStore() *inventory.Store {
	updated := testNow.Add(-100 * time.Second)
	store := inventory.NewStore()
	store.Publish(inventory.Build(map[string]*inventory.Location{
		"loc1": location("loc1", &updated, map[int]int{10: 5}),
		"loc2": location("loc2", nil, map[int]int{10: 0, 20: 3}),
	}))
	return store
}

func setupTestApp(t *testing.T, store *inventory.Store, opts ...reload.Option) (*fiber.App, *reload.Coordinator) {
	t.Helper()
	logger := zap.NewNop()
	coordinator := reload.NewCoordinator(store, logger, opts...)
	svc := NewService(store, coordinator, logger)
	svc.now = func() time.Time { return testNow }

	app := fiber.New()
	NewHandler(svc, server.Config{MaxAgeSeconds: 300}).RegisterRoutes(app)
	return app, coordinator
}

func doRequest(t *testing.T, app *fiber.App, method, target string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHandleItemAvailability(t *testing.T) {
	app, _ := setupTestApp(t, seededStore())

	var levels []LevelResponse
	resp := doRequest(t, app, "GET", "/item/10/availability", &levels)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "max-age=300", resp.Header.Get("Cache-Control"))
	require.Len(t, levels, 2)
	assert.Equal(t, LevelResponse{SKU: "000010", Location: "loc1", Quantity: 5, Available: true, UpdatedAt: testNow.Add(-100 * time.Second)}, levels[0])
	assert.Equal(t, LevelResponse{SKU: "000010", Location: "loc2", Quantity: 0, Available: false, UpdatedAt: testNow}, levels[1])

	t.Run("UnknownItem", func(t *testing.T) {
		var levels []LevelResponse
		resp := doRequest(t, app, "GET", "/item/999/availability", &levels)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotNil(t, levels)
		assert.Empty(t, levels)
	})

	t.Run("InvalidSKU", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/item/abc/availability", nil)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleLevel(t *testing.T) {
	app, _ := setupTestApp(t, seededStore())

	t.Run("RemainingMaxAge", func(t *testing.T) {
		var level LevelResponse
		resp := doRequest(t, app, "GET", "/location/loc1/item/000010/availability", &level)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "max-age=200", resp.Header.Get("Cache-Control"))
		assert.Equal(t, 5, level.Quantity)
		assert.Equal(t, "000010", level.SKU)
	})

	t.Run("UnknownUpdateTime", func(t *testing.T) {
		var level LevelResponse
		resp := doRequest(t, app, "GET", "/location/loc2/item/20/availability", &level)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "max-age=300", resp.Header.Get("Cache-Control"))
		assert.Equal(t, testNow, level.UpdatedAt)
	})

	t.Run("UnknownLocation", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/location/nope/item/10/availability", nil)
		assert.Equal(t, 422, resp.StatusCode)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/location/loc1/item/20/availability", nil)
		assert.Equal(t, 422, resp.StatusCode)
	})
}

func TestHandleQuery(t *testing.T) {
	app, _ := setupTestApp(t, seededStore())

	var levels []LevelResponse
	resp := doRequest(t, app, "GET", "/inventory_levels?skus=10,20,10&locations=loc2,loc1,ghost", &levels)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "max-age=300", resp.Header.Get("Cache-Control"))
	require.Len(t, levels, 3)
	assert.Equal(t, "loc2", levels[0].Location)
	assert.Equal(t, "000010", levels[0].SKU)
	assert.Equal(t, "loc2", levels[1].Location)
	assert.Equal(t, "000020", levels[1].SKU)
	assert.Equal(t, "loc1", levels[2].Location)

	t.Run("AllLocations", func(t *testing.T) {
		var levels []LevelResponse
		resp := doRequest(t, app, "GET", "/inventory_levels?skus=10", &levels)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Len(t, levels, 2)
	})

	for _, target := range []string{"/inventory_levels", "/inventory_levels?locations=loc1", "/inventory_levels?skus=x&locations=loc1"} {
		resp := doRequest(t, app, "GET", target, nil)
		assert.Equal(t, 400, resp.StatusCode, target)
	}
}

func TestHandleLocation(t *testing.T) {
	app, _ := setupTestApp(t, seededStore())

	var loc LocationResponse
	resp := doRequest(t, app, "GET", "/location/loc2", &loc)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, LocationResponse{ID: "loc2", BaseStore: "NO_VITUSAPOTEK", Levels: 2}, loc)

	resp = doRequest(t, app, "GET", "/location/nope", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReload(t *testing.T) {
	t.Run("ReplacesInventory", func(t *testing.T) {
		src := &stubSource{name: "NO", locs: []*inventory.Location{location("loc3", nil, map[int]int{30: 1})}}
		app, _ := setupTestApp(t, seededStore(), reload.WithFullSources(src))

		var body ReloadResponse
		resp := doRequest(t, app, "POST", "/reload", &body)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, ReloadResponse{Status: "ok", Kind: "full", Locations: 1, Items: 1, Levels: 1, Added: 1, Removed: 2, DurationMS: body.DurationMS}, body)

		resp = doRequest(t, app, "GET", "/location/loc1", nil)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("SourceUnavailable", func(t *testing.T) {
		src := &stubSource{name: "NO", err: inventory.Unavailable("NO", io.ErrUnexpectedEOF)}
		app, _ := setupTestApp(t, seededStore(), reload.WithFullSources(src))

		resp := doRequest(t, app, "GET", "/reload", nil)
		assert.Equal(t, 502, resp.StatusCode)

		resp = doRequest(t, app, "GET", "/location/loc1", nil)
		assert.Equal(t, 200, resp.StatusCode, "failed reload keeps the inventory")
	})

	t.Run("NoSources", func(t *testing.T) {
		app, _ := setupTestApp(t, seededStore())
		resp := doRequest(t, app, "POST", "/reload", nil)
		assert.Equal(t, 501, resp.StatusCode)
	})

	t.Run("InProgress", func(t *testing.T) {
		src := &stubSource{name: "NO", started: make(chan struct{}), release: make(chan struct{})}
		app, coordinator := setupTestApp(t, seededStore(), reload.WithFullSources(src))

		done := make(chan error, 1)
		go func() {
			_, err := coordinator.FullReload(context.Background())
			done <- err
		}()
		<-src.started

		resp := doRequest(t, app, "POST", "/reload", nil)
		assert.Equal(t, 409, resp.StatusCode)

		close(src.release)
		require.NoError(t, <-done)
	})
}

func TestHandleReloadLocations(t *testing.T) {
	src := &stubSource{name: "NO", locs: []*inventory.Location{
		location("loc1", nil, map[int]int{10: 9}),
		location("loc2", nil, map[int]int{20: 1}),
	}}
	app, _ := setupTestApp(t, seededStore(), reload.WithLocationSource(src))

	var body ReloadResponse
	resp := doRequest(t, app, "POST", "/reload_locations?locations=loc1", &body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "partial", body.Kind)
	assert.Equal(t, []string{"loc1"}, body.Requested)
	assert.Equal(t, 1, body.Locations)

	resp = doRequest(t, app, "GET", "/location/loc2", nil)
	assert.Equal(t, 404, resp.StatusCode, "partial reload keeps only the requested locations")

	resp = doRequest(t, app, "POST", "/reload_locations", nil)
	assert.Equal(t, 400, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/reload_locations?locations=ghost", nil)
	assert.Equal(t, 502, resp.StatusCode)

	t.Run("NoLocationSource", func(t *testing.T) {
		app, _ := setupTestApp(t, seededStore())
		resp := doRequest(t, app, "POST", "/reload_locations?locations=loc1", nil)
		assert.Equal(t, 501, resp.StatusCode)
	})
}

// The stored report must not share memory with fiber's reused request buffers.
func TestHandleReloadLocations_ReportSurvivesLaterRequests(t *testing.T) {
	src := &stubSource{name: "NO", locs: []*inventory.Location{location("loc1", nil, map[int]int{10: 9})}}
	app, coordinator := setupTestApp(t, seededStore(), reload.WithLocationSource(src))

	resp := doRequest(t, app, "POST", "/reload_locations?locations=loc1", nil)
	require.Equal(t, 200, resp.StatusCode)

	for i := 0; i < 20; i++ {
		resp := doRequest(t, app, "GET", "/inventory_levels?skus=9999&locations=ZZZZ", nil)
		require.Equal(t, 200, resp.StatusCode)
	}

	var status StatusResponse
	doRequest(t, app, "GET", "/reload/status", &status)
	require.NotNil(t, status.LastReload)
	assert.Equal(t, []string{"loc1"}, status.LastReload.Requested)
	assert.Equal(t, []string{"loc1"}, coordinator.LastReport().Requested)
}

func TestHandleStatus(t *testing.T) {
	src := &stubSource{name: "NO", locs: []*inventory.Location{location("loc3", nil, map[int]int{30: 1})}}
	app, coordinator := setupTestApp(t, seededStore(), reload.WithFullSources(src))
	_, err := coordinator.FullReload(context.Background())
	require.NoError(t, err)

	var status StatusResponse
	resp := doRequest(t, app, "GET", "/reload/status", &status)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "idle", status.State)
	assert.Equal(t, []string{"NO"}, status.Sources)
	require.NotNil(t, status.LastReload)
	assert.Equal(t, reload.KindFull, status.LastReload.Kind)
	assert.Equal(t, 1, status.Snapshot.Locations)
	assert.NotNil(t, status.Snapshot.BuiltAt)
}
