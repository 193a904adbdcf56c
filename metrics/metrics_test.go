package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetGauge().GetValue()
}

func TestRecordSource(t *testing.T) {
	r := NewRegistry()
	r.RecordSource("line1", 8, 3, 2, 1, 3)
	r.RecordSource("line2", 3, 1, 0, 0, 1)

	assert.Equal(t, 8.0, counterValue(t, r.StopTimesRead.WithLabelValues("line1")))
	assert.Equal(t, 1.0, counterValue(t, r.TripStarts.WithLabelValues("line2")))
	assert.Equal(t, 2.0, counterValue(t, r.SegmentsSkipped.WithLabelValues(ReasonRollover)))
	assert.Equal(t, 1.0, counterValue(t, r.SegmentsSkipped.WithLabelValues(ReasonNegative)))
	assert.Equal(t, 3.0, counterValue(t, r.AttributesApplied.WithLabelValues("line1")))
}

func TestRecordGraph(t *testing.T) {
	r := NewRegistry()
	r.RecordGraph(5, 3, 2, 1500*time.Millisecond)

	assert.Equal(t, 5.0, gaugeValue(t, r.GraphNodes))
	assert.Equal(t, 3.0, gaugeValue(t, r.GraphEdges))
	assert.Equal(t, 2.0, gaugeValue(t, r.GraphComponents))
	assert.Equal(t, 1.5, gaugeValue(t, r.RunDuration))
	assert.Greater(t, gaugeValue(t, r.RunTimestamp), 0.0)
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.RecordSource("x", 1, 1, 1, 1, 1)
		r.RecordGraph(1, 1, 1, time.Second)
	})
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.RecordSource("s", 4, 0, 0, 0, 0)
	assert.Equal(t, 0.0, counterValue(t, b.StopTimesRead.WithLabelValues("s")))

	families, err := a.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordSource("feeds/line1", 8, 3, 2, 0, 3)
	r.RecordGraph(4, 2, 2, time.Second)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `transnet_stop_times_read_total{source="feeds/line1"} 8`)
	assert.Contains(t, text, `transnet_segments_skipped_total{reason="rollover"} 2`)
	assert.Contains(t, text, `transnet_segments_skipped_total{reason="negative"} 0`)
	assert.Contains(t, text, "transnet_graph_nodes 4")
	assert.True(t, strings.Contains(text, "# TYPE transnet_graph_edges gauge"))
}
