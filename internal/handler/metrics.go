package handler

import (
	"fmt"
	"net/http"

	"github.com/steelerp/erpclient/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	for _, c := range snap.Calls {
		writeMetric(w, "erp_rpc_calls_total{method=%q,code=%q} %d\n", c.Method, c.Code, c.Count)
	}
	for _, c := range snap.Calls {
		writeMetric(w, "erp_rpc_duration_seconds_sum{method=%q,code=%q} %.6f\n", c.Method, c.Code, float64(c.DurationTotalNs)/1e9)
	}
	writeMetric(w, "erp_sessions_expired_total %d\n", snap.SessionsExpired)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
