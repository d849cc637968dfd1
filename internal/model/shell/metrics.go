package shell

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var histogramOperationTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "fintrack",
		Subsystem: "shell",
		Name:      "histogram_operation_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"operation", "status"},
)

func observeOperation(operation string, elapsed time.Duration, failed bool) {
	status := statusOK
	if failed {
		status = statusError
	}
	histogramOperationTime.
		WithLabelValues(operation, status).
		Observe(elapsed.Seconds())
}
