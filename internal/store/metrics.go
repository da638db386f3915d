package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// readFailures counts read operations that degraded to an empty result.
// Without it the swallow-and-continue read policy would make backend
// trouble invisible in production.
var readFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lostfound_read_failures_total",
	Help: "Item read operations that failed and degraded to an empty result.",
}, []string{"op"})
