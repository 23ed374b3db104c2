package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"inventory-levels/core/inventory"
	"inventory-levels/core/logger"
	"inventory-levels/core/reload"
	"inventory-levels/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory availability.
type Handler struct {
	service *Service
	cfg     server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg server.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the availability and reload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/item/:sku/availability", h.HandleItemAvailability)
	app.Get("/location/:location/item/:sku/availability", h.HandleLevel)
	app.Get("/location/:location", h.HandleLocation)
	app.Get("/inventory_levels", h.HandleQuery)

	app.Get("/reload/status", h.HandleStatus)
	app.Post("/reload", h.HandleReload)
	app.Get("/reload", h.HandleReload)
	app.Post("/reload_locations", h.HandleReloadLocations)
	app.Get("/reload_locations", h.HandleReloadLocations)
}

// HandleItemAvailability returns the levels of one item.
// @Summary Item Availability
// @Description Returns the inventory level of the item at every location that stocks it.
// @Tags availability
// @Produce json
// @Param sku path int true "SKU, leading zeros allowed"
// @Success 200 {array} LevelResponse
// @Failure 400 {object} map[string]string "Invalid SKU"
// @Router /item/{sku}/availability [get]
func (h *Handler) HandleItemAvailability(c *fiber.Ctx) error {
	sku, err := parseSKU(c.Params("sku"))
	if err != nil {
		return badRequest(c, err)
	}

	levels := h.service.ItemAvailability(sku)
	h.cacheFor(c, int(h.cfg.MaxAge().Seconds()))
	return c.JSON(newLevelResponses(levels, h.service.now()))
}

// HandleLevel returns a single level.
// @Summary Level At Location
// @Description Returns the inventory level of one item at one location. Cache lifetime is the time left until the location's next refresh.
// @Tags availability
// @Produce json
// @Param location path string true "Location id"
// @Param sku path int true "SKU, leading zeros allowed"
// @Success 200 {object} LevelResponse
// @Failure 400 {object} map[string]string "Invalid SKU"
// @Failure 422 {object} map[string]string "Unknown location or item"
// @Router /location/{location}/item/{sku}/availability [get]
func (h *Handler) HandleLevel(c *fiber.Ctx) error {
	sku, err := parseSKU(c.Params("sku"))
	if err != nil {
		return badRequest(c, err)
	}

	level, err := h.service.LevelAt(c.Params("location"), sku)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	now := h.service.now()
	h.cacheFor(c, h.cfg.RemainingMaxAge(level.UpdatedAt(now), now))
	return c.JSON(NewLevelResponse(level, now))
}

// HandleQuery returns levels for a set of items and locations.
// @Summary Bulk Inventory Levels
// @Description Returns the levels for every requested SKU at every requested location, or at all locations when none are given. Unknown SKUs and locations are ignored.
// @Tags availability
// @Produce json
// @Param skus query string true "Comma separated SKUs"
// @Param locations query string false "Comma separated location ids"
// @Success 200 {array} LevelResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /inventory_levels [get]
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	skus, err := parseSKUs(c.Query("skus"))
	if err != nil {
		return badRequest(c, err)
	}
	locations := splitList(c.Query("locations"))
	if len(skus) == 0 {
		return badRequest(c, errors.New("skus is required"))
	}

	levels := h.service.Query(skus, locations)
	h.cacheFor(c, int(h.cfg.MaxAge().Seconds()))
	return c.JSON(newLevelResponses(levels, h.service.now()))
}

// HandleLocation returns a location summary.
// @Summary Location
// @Description Returns the base store, update time and number of levels of one location.
// @Tags availability
// @Produce json
// @Param location path string true "Location id"
// @Success 200 {object} LocationResponse
// @Failure 404 {object} map[string]string "Unknown location"
// @Router /location/{location} [get]
func (h *Handler) HandleLocation(c *fiber.Ctx) error {
	loc, err := h.service.Location(c.Params("location"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(NewLocationResponse(loc))
}

// HandleReload triggers a full reload.
// @Summary Reload All Locations
// @Description Fetches every configured feed and replaces the whole inventory. Fails with 409 while another reload runs.
// @Tags reload
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 409 {object} map[string]string "Reload in progress"
// @Failure 502 {object} map[string]string "Upstream feed failed"
// @Router /reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering full reload")

	report, err := h.service.Reload(c.Context())
	if err != nil {
		return h.reloadError(c, l, err)
	}
	return c.JSON(NewReloadResponse(report))
}

// HandleReloadLocations triggers a partial reload.
// @Summary Reload Locations
// @Description Refetches the given locations. The inventory afterwards holds only those locations.
// @Tags reload
// @Produce json
// @Param locations query string true "Comma separated location ids"
// @Success 200 {object} ReloadResponse
// @Failure 400 {object} map[string]string "No locations"
// @Failure 502 {object} map[string]string "Upstream feed failed"
// @Router /reload_locations [post]
func (h *Handler) HandleReloadLocations(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	// Query values alias fiber's request buffer; the ids outlive the request in the report.
	ids := splitList(utils.CopyString(c.Query("locations")))
	l.Info("Triggering partial reload", zap.Strings("locations", ids))

	report, err := h.service.ReloadLocations(c.Context(), ids)
	if err != nil {
		return h.reloadError(c, l, err)
	}
	return c.JSON(NewReloadResponse(report))
}

// HandleStatus reports the reload state.
// @Summary Reload Status
// @Description Returns the coordinator state, the configured feeds, the last reload report and snapshot counts.
// @Tags reload
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /reload/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

func (h *Handler) reloadError(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := reloadStatus(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Reload failed", zap.Error(err))
	} else {
		l.Warn("Reload rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func reloadStatus(err error) int {
	switch {
	case errors.Is(err, inventory.ErrReloadInProgress):
		return fiber.StatusConflict
	case errors.Is(err, reload.ErrNoLocations):
		return fiber.StatusBadRequest
	case errors.Is(err, reload.ErrNoLocationSource), errors.Is(err, reload.ErrNoSources):
		return fiber.StatusNotImplemented
	case errors.Is(err, inventory.ErrSourceUnavailable), errors.Is(err, inventory.ErrMalformedRecord):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) cacheFor(c *fiber.Ctx, seconds int) {
	c.Set(fiber.HeaderCacheControl, fmt.Sprintf("max-age=%d", seconds))
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func parseSKU(raw string) (int, error) {
	sku, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || sku < 0 {
		return 0, fmt.Errorf("invalid sku %q", raw)
	}
	return sku, nil
}

func parseSKUs(raw string) ([]int, error) {
	parts := splitList(raw)
	skus := make([]int, 0, len(parts))
	for _, p := range parts {
		sku, err := parseSKU(p)
		if err != nil {
			return nil, err
		}
		skus = append(skus, sku)
	}
	return skus, nil
}

// splitList splits a comma separated parameter, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
