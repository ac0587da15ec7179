package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics : Prometheus 지표 모음 (전용 레지스트리 사용)
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Simulations       *prometheus.CounterVec
	SimulationSamples prometheus.Histogram
}

// NewMetrics : namespace 아래에 지표 등록
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "simulations_total",
				Help:      "Total number of BAC simulations by unit",
			},
			[]string{"unit"},
		),
		SimulationSamples: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "simulation_samples",
				Help:      "Number of samples produced per simulation",
				Buckets:   prometheus.LinearBuckets(0, 50, 10),
			},
		),
	}
	m.registry.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Simulations, m.SimulationSamples)
	return m
}

// Handler : 요청 수와 지연 시간 기록
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// 등록되지 않은 경로는 라벨 폭증 방지를 위해 하나로 묶음
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Expose : /metrics 핸들러
func (m *Metrics) Expose() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObserveSimulation : 시뮬레이션 한 번 기록 (nil이면 무시)
func (m *Metrics) ObserveSimulation(unit string, samples int) {
	if m == nil {
		return
	}
	m.Simulations.WithLabelValues(unit).Inc()
	m.SimulationSamples.Observe(float64(samples))
}

// AppMetrics : 앱 전역 지표 (METRICS_ENABLED=false면 nil)
var AppMetrics *Metrics
