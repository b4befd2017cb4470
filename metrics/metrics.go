// Package metrics provides Prometheus metrics for the ETS Score MCP server.
// It tracks tool call counts, latencies, and upstream API health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "etscore_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool call latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Tool call latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of tool calls currently being processed",
	}, []string{"tool"})

	// ToolFailures counts tool failures by tool name and error class
	ToolFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "tool_failures_total",
		Help:      "Tool failures by tool and error class",
	}, []string{"tool", "error_code"})

	// UpstreamLatency measures vendor API call latency by action
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_api_latency_seconds",
		Help:      "Vendor API call latency by action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	// UpstreamRequestsTotal counts vendor API requests
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_api_requests_total",
		Help:      "Total vendor API requests by action and status",
	}, []string{"action", "status"})

	// UpstreamErrors counts vendor API errors by error code
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_api_errors_total",
		Help:      "Vendor API errors by action and error code",
	}, []string{"action", "error_code"})

	// PanicsRecovered counts panics recovered in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordToolFailure records a classified tool failure
func RecordToolFailure(tool, errorCode string) {
	if errorCode == "" {
		return
	}
	ToolFailures.WithLabelValues(tool, errorCode).Inc()
}

// RecordUpstreamCall records a vendor API call
func RecordUpstreamCall(action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(action, status).Inc()
	UpstreamLatency.WithLabelValues(action).Observe(duration)
	if errorCode != "" {
		UpstreamErrors.WithLabelValues(action, errorCode).Inc()
	}
}
