package metrics

import (
	"net/http"
	"time"

	"inventory-levels/core/inventory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the reload metrics.
type Metrics struct {
	registry *prometheus.Registry

	ReloadsTotal      *prometheus.CounterVec
	ReloadDuration    *prometheus.HistogramVec
	SourceFailures    *prometheus.CounterVec
	SnapshotLocations prometheus.Gauge
	SnapshotItems     prometheus.Gauge
	SnapshotLevels    prometheus.Gauge
	SnapshotBuilt     prometheus.Gauge
}

// New creates and registers the metrics under namespace.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.ReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Total number of inventory reloads",
		},
		[]string{"kind", "status"},
	)

	m.ReloadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reload_duration_seconds",
			Help:      "Inventory reload duration in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"kind"},
	)

	m.SourceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Total number of failed upstream source fetches",
		},
		[]string{"source"},
	)

	m.SnapshotLocations = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_locations",
		Help:      "Number of locations in the published snapshot",
	})

	m.SnapshotItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_items",
		Help:      "Number of distinct SKUs in the published snapshot",
	})

	m.SnapshotLevels = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_levels",
		Help:      "Number of inventory levels in the published snapshot",
	})

	m.SnapshotBuilt = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_built_timestamp_seconds",
		Help:      "Unix time the published snapshot was built",
	})

	registry.MustRegister(
		m.ReloadsTotal,
		m.ReloadDuration,
		m.SourceFailures,
		m.SnapshotLocations,
		m.SnapshotItems,
		m.SnapshotLevels,
		m.SnapshotBuilt,
	)
	return m
}

// ReloadFinished records one finished reload.
func (m *Metrics) ReloadFinished(kind string, err error, snap *inventory.Snapshot, elapsed time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.ReloadsTotal.WithLabelValues(kind, status).Inc()
	m.ReloadDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

	if snap != nil {
		m.SnapshotLocations.Set(float64(snap.LocationCount()))
		m.SnapshotItems.Set(float64(snap.ItemCount()))
		m.SnapshotLevels.Set(float64(snap.LevelCount()))
		m.SnapshotBuilt.Set(float64(snap.BuiltAt().Unix()))
	}
}

// SourceFailed counts a failed fetch from source.
func (m *Metrics) SourceFailed(source string) {
	m.SourceFailures.WithLabelValues(source).Inc()
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
