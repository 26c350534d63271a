package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder wraps the instruments one engine instance reports through.
// The zero value is not usable; construct with NewRecorder. A nil
// *Recorder is valid everywhere and turns every method into a no-op.
type Recorder struct {
	batches          prometheus.Counter
	edgesFound       prometheus.Counter
	matchedVertices  prometheus.Counter
	adjustedVertices prometheus.Counter
	batchDuration    prometheus.Histogram
}

// NewRecorder builds a Recorder with the engine's instruments. If reg is
// non-nil, every instrument is registered against it; a duplicate
// registration (same Recorder built twice against one Registerer) panics,
// matching prometheus's own MustRegister convention.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gtal_batches_total",
			Help: "Total number of vertex batches processed by the matching loop.",
		}),
		edgesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gtal_edges_found_total",
			Help: "Total number of candidate swap edges EdgeFinder registered.",
		}),
		matchedVertices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gtal_matched_vertices_total",
			Help: "Total number of vertices committed by Matcher or ReserveMatcher.",
		}),
		adjustedVertices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gtal_adjusted_vertices_total",
			Help: "Total number of vertices forced to their target by Adjuster.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gtal_batch_duration_seconds",
			Help:    "Wall-clock duration of one EdgeFinder+Matcher batch.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(r.batches, r.edgesFound, r.matchedVertices, r.adjustedVertices, r.batchDuration)
	}

	return r
}

// ObserveBatch records one completed batch: edgesFound edges discovered,
// over the given wall-clock duration.
func (r *Recorder) ObserveBatch(edgesFound int, duration time.Duration) {
	if r == nil {
		return
	}
	r.batches.Inc()
	r.edgesFound.Add(float64(edgesFound))
	r.batchDuration.Observe(duration.Seconds())
}

// ObserveMatched adds n to the matched-vertex counter.
func (r *Recorder) ObserveMatched(n int) {
	if r == nil {
		return
	}
	r.matchedVertices.Add(float64(n))
}

// ObserveAdjusted adds n to the adjusted-vertex counter.
func (r *Recorder) ObserveAdjusted(n int) {
	if r == nil {
		return
	}
	r.adjustedVertices.Add(float64(n))
}
