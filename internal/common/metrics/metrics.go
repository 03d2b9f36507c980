// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks HTTP latency by method, route pattern and status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "restaurant",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// OrdersPlaced counts successfully committed checkouts.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "restaurant",
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed.",
	})

	// StatusTransitions counts order status changes by resulting status.
	StatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant",
			Name:      "order_status_transitions_total",
			Help:      "Total number of order status transitions.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration, OrdersPlaced, StatusTransitions)
}

// Handler serves the scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// Middleware records duration and status for every request, labelled with the
// chi route pattern rather than the raw URL so cardinality stays bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		RequestDuration.WithLabelValues(
			r.Method, pattern, strconv.Itoa(ww.Status()),
		).Observe(time.Since(start).Seconds())
	})
}
