package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cabbooking"

var (
	TripsBookedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "trips_booked_total", Help: "Trips created, by initial status"},
		[]string{"status"},
	)
	NoDriverAvailableTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "no_driver_available_total", Help: "Immediate bookings rejected for lack of a driver"})
	ReservationConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "reservation_conflicts_total", Help: "Driver reservations lost to a concurrent booking"})
	MatchLatency              = promauto.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: "match_latency_seconds", Help: "Time spent selecting and reserving a driver"})

	TripTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "trip_transitions_total", Help: "Trip status transitions"},
		[]string{"from", "to"},
	)
	TripRatingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "trip_ratings_total", Help: "Ratings submitted, by score"},
		[]string{"rating"},
	)

	SweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "sweep_runs_total", Help: "Scheduled-trip sweep runs, by outcome"},
		[]string{"outcome"},
	)
	SweepPromotedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "sweep_promoted_total", Help: "Scheduled trips promoted to CONFIRMED"})
	SweepFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "sweep_failures_total", Help: "Scheduled trips that failed to promote"})

	AccountsRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "accounts_registered_total", Help: "Accounts created, by role"},
		[]string{"role"},
	)
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "logins_total", Help: "Login attempts, by outcome"},
		[]string{"outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// EchoMiddleware records request count and latency per route template
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := prometheus.Labels{
				"method": c.Request().Method,
				"path":   path,
				"status": strconv.Itoa(status),
			}
			HTTPRequestsTotal.With(labels).Inc()
			HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RegisterMetricsEndpoint exposes the default registry on /metrics
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
