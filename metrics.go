package currencyapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "currencyapi",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"endpoint", "error"},
)

func observeRequest(endpoint string, elapsed time.Duration, err bool) {
	histogramRequestTime.
		WithLabelValues(endpoint, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
