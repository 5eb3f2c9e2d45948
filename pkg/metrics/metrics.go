package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы записи безопасны для nil-получателя: при выключенных метриках
// в зависимости можно передавать nil.
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	CallStatisticsTotal *prometheus.CounterVec
	PresaleReplaceTotal *prometheus.CounterVec
	RateLimitedRequests  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		CallStatisticsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_call_statistics_total",
			Help: "Call statistics requests by identity rule",
		}, []string{"service", "rule"}),

		PresaleReplaceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_presale_replace_total",
			Help: "Presale slot replacements by result",
		}, []string{"service", "result"}),

		RateLimitedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.CallStatisticsTotal,
		m.PresaleReplaceTotal,
		m.RateLimitedRequests,
	)

	return m
}

// ServiceName возвращает значение метки service
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// ObserveHTTPRequest записывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBInUseConnections.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBIdleConnections.WithLabelValues(m.serviceName).Set(float64(idle))
	m.DBWaitCount.WithLabelValues(m.serviceName).Set(float64(waitCount))
}

// RecordCallStatistics считает запрос статистики по сработавшему правилу идентификации
func (m *Metrics) RecordCallStatistics(rule string) {
	if m == nil {
		return
	}
	m.CallStatisticsTotal.WithLabelValues(m.serviceName, rule).Inc()
}

// RecordPresaleReplace считает замену пресейл-слотов
func (m *Metrics) RecordPresaleReplace(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "error"
	}
	m.PresaleReplaceTotal.WithLabelValues(m.serviceName, result).Inc()
}

// RecordRateLimited считает отклонённый лимитером запрос
func (m *Metrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.RateLimitedRequests.WithLabelValues(m.serviceName).Inc()
}
