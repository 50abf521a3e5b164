package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/doblock-backend/pkg/ctxutil"
)

// Metrics records per-route request counters and latency histograms.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics registers the HTTP collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doblock_http_requests_total",
			Help: "The total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "doblock_http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}, []string{"method", "route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "doblock_http_requests_in_flight",
			Help: "The current number of HTTP requests being served",
		}),
	}
}

// Middleware returns the instrumenting middleware.
func (m *Metrics) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			ctx := ctxutil.WithRouteHolder(r.Context())

			m.inFlight.Inc()
			defer m.inFlight.Dec()

			next.ServeHTTP(sw, r.WithContext(ctx))

			route := routeLabel(ctxutil.RouteFromHolder(ctx))
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// routeLabel turns the matched mux pattern into a label. Requests that
// matched no route share a single label.
func routeLabel(pattern string) string {
	if pattern == "" {
		return "unmatched"
	}
	// Drop the method from "GET /path"; it is a separate label.
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}
