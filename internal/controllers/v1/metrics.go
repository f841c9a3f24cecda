package v1

import (
	"github.com/prometheus/client_golang/prometheus"
)

var earningsRecordedCount = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "ozongoal_earnings_recorded_total",
	Help: "Number of shifts for which earnings have been recorded",
})

// Metrics returns the collectors of this package so the router can
// manage their registration lifecycle together with its own.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{earningsRecordedCount}
}
