// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var Deposits = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "poupix_deposits_total",
		Help: "How many deposits were made into goals, partitioned by deposit method.",
	},
	[]string{"method"},
)

var ChallengePeriods = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "poupix_challenge_periods_total",
		Help: "How many challenge periods were completed, partitioned by challenge type.",
	},
	[]string{"type"},
)

var Achievements = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "poupix_achievements_total",
		Help: "How many achievements were unlocked, partitioned by achievement type.",
	},
	[]string{"type"},
)

var collectors = []prometheus.Collector{
	RequestCount,
	RequestDuration,
	Deposits,
	ChallengePeriods,
	Achievements,
}

// Register registers all collectors with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all collectors. This is needed to cleanly exit
// and to create more than one router in the same process.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

// Handler serves the metrics of the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
