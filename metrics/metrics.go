// Package metrics records per-run counters for the network generator. A run
// owns its registry; nothing is served over HTTP. The registry is written once,
// at the end of a run, in the node exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons for SegmentsSkipped
const (
	ReasonRollover = "rollover"
	ReasonNegative = "negative"
)

// Registry holds the metrics of one generation run
type Registry struct {
	registry *prometheus.Registry

	StopTimesRead     *prometheus.CounterVec
	TripStarts        *prometheus.CounterVec
	SegmentsSkipped   *prometheus.CounterVec
	AttributesApplied *prometheus.CounterVec

	GraphNodes      prometheus.Gauge
	GraphEdges      prometheus.Gauge
	GraphComponents prometheus.Gauge
	RunDuration     prometheus.Gauge
	RunTimestamp    prometheus.Gauge
}

// NewRegistry creates a registry with every metric registered
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initFeedMetrics()
	r.initGraphMetrics()
	return r
}

func (r *Registry) initFeedMetrics() {
	r.StopTimesRead = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "transnet_stop_times_read_total",
			Help: "stop_times rows read, per source",
		},
		[]string{"source"},
	)

	r.TripStarts = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "transnet_trip_starts_total",
			Help: "Rows with stop_sequence 0, per source",
		},
		[]string{"source"},
	)

	r.SegmentsSkipped = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "transnet_segments_skipped_total",
			Help: "Consecutive stop pairs that did not produce a segment",
		},
		[]string{"reason"},
	)

	r.AttributesApplied = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "transnet_stop_attributes_applied_total",
			Help: "Stop-point rows whose attributes were applied, per source",
		},
		[]string{"source"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "transnet_graph_nodes",
			Help: "Stops in the generated graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "transnet_graph_edges",
			Help: "Segments in the generated graph",
		},
	)

	r.GraphComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "transnet_graph_components",
			Help: "Connected components in the generated graph",
		},
	)

	r.RunDuration = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "transnet_run_duration_seconds",
			Help: "Wall time of the last generation run",
		},
	)

	r.RunTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "transnet_run_last_success_timestamp_seconds",
			Help: "Unix time the last successful run finished",
		},
	)
}

// Gatherer exposes the underlying registry
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// RecordSource adds the counters of one processed source. A nil registry is a
// no-op so callers need not check.
func (r *Registry) RecordSource(source string, stopTimes, tripStarts, rollovers, negatives, attributes int) {
	if r == nil {
		return
	}
	r.StopTimesRead.WithLabelValues(source).Add(float64(stopTimes))
	r.TripStarts.WithLabelValues(source).Add(float64(tripStarts))
	r.SegmentsSkipped.WithLabelValues(ReasonRollover).Add(float64(rollovers))
	r.SegmentsSkipped.WithLabelValues(ReasonNegative).Add(float64(negatives))
	r.AttributesApplied.WithLabelValues(source).Add(float64(attributes))
}

// RecordGraph sets the graph gauges and the run duration
func (r *Registry) RecordGraph(nodes, edges, components int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphComponents.Set(float64(components))
	r.RunDuration.Set(elapsed.Seconds())
	r.RunTimestamp.SetToCurrentTime()
}

// WriteTextfile writes every metric to path, replacing it atomically
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
