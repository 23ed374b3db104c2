package availability

import (
	"net/http"

	"inventory-levels/core/inventory"
	"inventory-levels/core/reload"
	"inventory-levels/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"
)

// MetricsPath is where the Prometheus handler is mounted.
const MetricsPath = "/metrics"

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	metrics http.Handler
}

// NewFeature creates the availability feature. metrics may be nil.
func NewFeature(store *inventory.Store, coordinator *reload.Coordinator, cfg server.Config, metrics http.Handler, logger *zap.Logger) *Feature {
	svc := NewService(store, coordinator, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc, cfg),
		metrics: metrics,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "availability"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	if f.metrics != nil {
		app.Get(MetricsPath, adaptor.HTTPHandler(f.metrics))
	}
	return nil
}
