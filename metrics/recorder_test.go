package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/stegoweave/gtal/metrics"
)

func TestRecorder_ObserveBatchIncrementsCountersAndHistogram(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveBatch(7, 10*time.Millisecond)
	r.ObserveMatched(3)
	r.ObserveAdjusted(1)

	families, err := reg.Gather()
	require.NoError(err)

	values := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			values[fam.GetName()] = counterOrHistogramCount(m)
		}
	}

	require.Equal(float64(1), values["gtal_batches_total"])
	require.Equal(float64(7), values["gtal_edges_found_total"])
	require.Equal(float64(3), values["gtal_matched_vertices_total"])
	require.Equal(float64(1), values["gtal_adjusted_vertices_total"])
}

func counterOrHistogramCount(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	if h := m.GetHistogram(); h != nil {
		return float64(h.GetSampleCount())
	}
	return 0
}

func TestRecorder_NilIsANoOp(t *testing.T) {
	require := require.New(t)

	var r *metrics.Recorder
	require.NotPanics(func() {
		r.ObserveBatch(5, time.Second)
		r.ObserveMatched(2)
		r.ObserveAdjusted(2)
	})
}
