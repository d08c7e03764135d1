package providers

import (
	"hydrod/internal/services"
	"hydrod/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DrinkAccepted = "accepted"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(endpoint string)
	IncCacheMisses(endpoint string)
	ObservePersistenceDuration(duration time.Duration)
	IncDrinks(outcome string)
	ObserveDrinkVolume(volume int)
	IncTicks()
	SetAlertActive(active bool)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	drinksTotal         *prometheus.CounterVec
	drinkVolume         prometheus.Histogram
	ticksTotal          prometheus.Counter
	alertActive         prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(endpoint string) {
	m.cacheHits.WithLabelValues(endpoint).Inc()
}

func (m *MetricsProvider) IncCacheMisses(endpoint string) {
	m.cacheMisses.WithLabelValues(endpoint).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

// IncDrinks counts drink attempts by outcome: DrinkAccepted or a rejection reason.
func (m *MetricsProvider) IncDrinks(outcome string) {
	m.drinksTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveDrinkVolume(volume int) {
	m.drinkVolume.Observe(float64(volume))
}

func (m *MetricsProvider) IncTicks() {
	m.ticksTotal.Inc()
}

func (m *MetricsProvider) SetAlertActive(active bool) {
	if active {
		m.alertActive.Set(1)
		return
	}
	m.alertActive.Set(0)
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service services.HydrationServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hydrod_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hydrod_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hydrod_cache_hits_total",
			Help: "Response cache hits per endpoint",
		}, []string{"endpoint"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hydrod_cache_misses_total",
			Help: "Response cache misses per endpoint",
		}, []string{"endpoint"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hydrod_persistence_duration_seconds",
			Help:    "Duration of snapshot persistence in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		drinksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hydrod_drinks_total",
			Help: "Drink attempts by outcome",
		}, []string{"outcome"}),

		drinkVolume: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hydrod_drink_volume_ml",
			Help:    "Volume of accepted drinks in ml",
			Buckets: []float64{50, 100, 150, 200, 300, 500, 750},
		}),

		ticksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hydrod_alert_ticks_total",
			Help: "Number of alert evaluations",
		}),

		alertActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hydrod_alert_active",
			Help: "1 while the hydration alert is active",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "hydrod_bottle_volume_ml",
		Help: "Current bottle fill volume in ml",
	}, func() float64 {
		return float64(service.Snapshot().Volume)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "hydrod_daily_consumption_ml",
		Help: "Volume consumed today in ml",
	}, func() float64 {
		return float64(service.Snapshot().DailyConsumption)
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "hydrod_daily_min_progress_percent",
		Help: "Daily consumption as a percentage of the minimum target",
	}, func() float64 {
		snap := service.Snapshot()
		return float64(service.Progress(snap.MinTarget))
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncDrinks(_ string)                               {}
func (n *noopMetrics) ObserveDrinkVolume(_ int)                         {}
func (n *noopMetrics) IncTicks()                                        {}
func (n *noopMetrics) SetAlertActive(_ bool)                            {}
