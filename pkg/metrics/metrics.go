package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики (заполняются в middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики поллера слотов
	SlotFetchesTotal    *prometheus.CounterVec
	SlotFetchErrors     *prometheus.CounterVec
	StaleSnapshotsTotal *prometheus.CounterVec

	// Текущее количество активных почасовых окон
	ActiveWindows prometheus.Gauge

	// Метрики исходящих запросов к PropertyService
	UpstreamRequestsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SlotFetchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "hourly_slot_fetches_total",
			Help:        "Total number of slot snapshot fetches from PropertyService",
			ConstLabels: constLabels,
		}, []string{"result"}),

		SlotFetchErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "hourly_slot_fetch_errors_total",
			Help:        "Total number of failed slot snapshot fetches",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		StaleSnapshotsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "hourly_stale_snapshots_dropped_total",
			Help:        "Slot snapshots discarded because a newer fetch already applied",
			ConstLabels: constLabels,
		}, []string{"hotel"}),

		ActiveWindows: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "hourly_active_windows",
			Help:        "Number of hotels with an active hourly window right now",
			ConstLabels: constLabels,
		}),

		UpstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "propertyservice_requests_total",
			Help:        "Total number of requests issued to PropertyService",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
	}
}

// IncUpstreamRequest инкрементирует счётчик исходящих запросов к PropertyService
func (m *Metrics) IncUpstreamRequest(operation, status string) {
	m.UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
}

// IncSlotFetch инкрементирует счётчик опросов снимка слотов
func (m *Metrics) IncSlotFetch(result string) {
	m.SlotFetchesTotal.WithLabelValues(result).Inc()
}

// IncSlotFetchError инкрементирует счётчик неудачных опросов
func (m *Metrics) IncSlotFetchError(reason string) {
	m.SlotFetchErrors.WithLabelValues(reason).Inc()
}

// IncStaleDrop инкрементирует счётчик отброшенных устаревших снимков
func (m *Metrics) IncStaleDrop(hotelID int64) {
	m.StaleSnapshotsTotal.WithLabelValues(strconv.FormatInt(hotelID, 10)).Inc()
}

// AddActiveWindows изменяет gauge активных окон на delta
func (m *Metrics) AddActiveWindows(delta float64) {
	m.ActiveWindows.Add(delta)
}
