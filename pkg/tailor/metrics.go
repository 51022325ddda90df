package tailor

import (
	"math/rand/v2"
)

// Metrics holds randomized figures woven into bullet copy so repeated runs
// do not produce identical phrasing.
type Metrics struct {
	Performance int
	Uptime      string
	Reduction   int
}

//nolint:gochecknoglobals // Static lookup table
var performancePool = []int{25, 30, 35, 40, 45, 50, 60, 65, 70}

//nolint:gochecknoglobals // Static lookup table
var uptimePool = []string{"99.9%", "99.95%", "99.8%", "high availability", "enterprise-grade reliability"}

//nolint:gochecknoglobals // Static lookup table
var reductionPool = []int{15, 20, 25, 30, 35, 40, 45, 50, 55, 60}

// VariedMetrics draws a fresh set of figures from the pools.
func VariedMetrics() (metrics Metrics) {
	metrics = Metrics{
		Performance: performancePool[rand.IntN(len(performancePool))],
		Uptime:      uptimePool[rand.IntN(len(uptimePool))],
		Reduction:   reductionPool[rand.IntN(len(reductionPool))],
	}

	return metrics
}
