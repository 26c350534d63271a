package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stegoweave/gtal/adjust"
	"github.com/stegoweave/gtal/edgefind"
	"github.com/stegoweave/gtal/extract"
	"github.com/stegoweave/gtal/flush"
	"github.com/stegoweave/gtal/match"
	"github.com/stegoweave/gtal/message"
	"github.com/stegoweave/gtal/metrics"
	"github.com/stegoweave/gtal/rng"
	"github.com/stegoweave/gtal/sample"
	"github.com/stegoweave/gtal/spatial"
	"github.com/stegoweave/gtal/vertex"
)

// Carrier is the capability this engine consumes, independent of
// whatever concrete format (image, WAV) produced it.
type Carrier interface {
	Bytes() []byte
	BytesPerSample() int
}

// Progress is one advisory update sent on an Embed caller's progress
// channel. Sends are non-blocking; a dropped update is logged at debug
// level and otherwise harmless.
type Progress struct {
	BatchesDone   int
	BatchesTotal  int
	MatchedCount  int
	AdjustedCount int
}

// Result summarises one completed Embed call.
type Result struct {
	OperationID   string
	MatchedCount  int
	AdjustedCount int
	BatchCount    int
}

// Engine holds the optional collaborators (logger, metrics recorder)
// shared across Embed/Extract calls. The zero value is usable but holds
// an empty zerolog.Logger, so it writes no logs and records no metrics;
// New installs zerolog's global logger instead.
type Engine struct {
	logger   zerolog.Logger
	recorder *metrics.Recorder
}

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithLogger overrides the engine's logger.
func WithLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithRecorder attaches a metrics recorder. A nil recorder (the
// default) disables metrics without error.
func WithRecorder(r *metrics.Recorder) EngineOption {
	return func(e *Engine) { e.recorder = r }
}

// New builds an Engine, applying opts over zerolog's global logger and
// a nil (no-op) recorder.
func New(opts ...EngineOption) *Engine {
	e := &Engine{logger: log.Logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Embed runs the full pipeline — VertexBuilder, the batched
// EdgeFinder+Matcher loop, ReserveMatcher, Adjuster, and Flusher — over
// carrier, steering it toward encoding payload under params. progress
// may be nil; if non-nil, one update is sent per completed batch plus a
// final update, best-effort.
func (e *Engine) Embed(ctx context.Context, carrier Carrier, payload []byte, params Params, progress chan<- Progress) (Result, error) {
	opID := uuid.New().String()
	logger := e.logger.With().Str("operation_id", opID).Logger()

	if carrier.BytesPerSample() != sample.BytesPerSample {
		return Result{}, ErrUnsupportedCarrier
	}

	mask := params.Mask()
	view, err := sample.New(carrier.Bytes(), mask)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCarrierTooSmall, err)
	}

	perm, err := rng.NewPermutation(params.Seed, view.Len())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCarrierTooSmall, err)
	}

	wire := message.BuildWire(payload)
	chunks, err := message.PackChunks(wire, params.MessageBitsPerVertex)
	if err != nil {
		return Result{}, err
	}

	vertices, err := vertex.Build(view, perm, chunks, params.SamplesPerVertex, params.ModFactor(), mask)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCarrierTooSmall, err)
	}

	logger.Info().
		Int("vertex_count", len(vertices)).
		Int("chunk_count", len(chunks)).
		Msg("embed started")

	var leftover []*vertex.Vertex
	batchCount := 0
	matched := 0

	for start := 0; start < len(vertices); start += params.VerticesPerMatching {
		if err := checkCancel(ctx); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		end := start + params.VerticesPerMatching
		if end > len(vertices) {
			end = len(vertices)
		}

		batchStart := time.Now()
		batch := vertex.NewBatch(vertices[start:end])
		idx := spatial.Build(batch, params.Shift())
		if err := edgefind.Find(ctx, batch, idx, params.DistanceMax, edgefind.DefaultProgressWeight, nil); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		edgesFound := len(batch.Edges)

		before := countMessageBearing(batch.Vertices)
		batchLeftover := match.Greedy(batch, mask)
		matchedHere := before - countMessageBearing(batchLeftover)
		matched += matchedHere
		batchCount++

		e.recorder.ObserveBatch(edgesFound, time.Since(batchStart))
		e.recorder.ObserveMatched(matchedHere)

		for _, v := range batchLeftover {
			if v.IsMessageBearing {
				leftover = append(leftover, v)
			}
		}

		logger.Debug().
			Int("batch", batchCount).
			Int("edges_found", edgesFound).
			Int("matched", matchedHere).
			Int("leftover_so_far", len(leftover)).
			Msg("batch processed")

		sendProgress(progress, &logger, Progress{BatchesDone: batchCount, MatchedCount: matched})
	}

	reserves := reserveVertices(vertices)
	remaining, err := match.Reserve(ctx, leftover, reserves, params.DistanceMax, params.Shift(), params.ReserveMatching, mask)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	reserveMatched := len(leftover) - len(remaining)
	matched += reserveMatched
	e.recorder.ObserveMatched(reserveMatched)

	if len(remaining) > 0 {
		logger.Warn().Int("residual", len(remaining)).Msg("reserve matching exhausted with residual leftovers")
	}

	adjust.All(remaining, params.ModFactor(), mask, processLocalRand())
	e.recorder.ObserveAdjusted(len(remaining))

	flush.View(view)

	result := Result{
		OperationID:   opID,
		MatchedCount:  matched,
		AdjustedCount: len(remaining),
		BatchCount:    batchCount,
	}

	logger.Info().
		Int("matched", result.MatchedCount).
		Int("adjusted", result.AdjustedCount).
		Int("batches", result.BatchCount).
		Msg("embed complete")

	sendProgress(progress, &logger, Progress{
		BatchesDone:   batchCount,
		BatchesTotal:  batchCount,
		MatchedCount:  matched,
		AdjustedCount: len(remaining),
	})

	return result, nil
}

// Extract re-derives the permutation for params.Seed and reads the
// payload back out of carrier, per spec §4.9.
func (e *Engine) Extract(ctx context.Context, carrier Carrier, params Params) ([]byte, error) {
	opID := uuid.New().String()
	logger := e.logger.With().Str("operation_id", opID).Logger()

	if carrier.BytesPerSample() != sample.BytesPerSample {
		return nil, ErrUnsupportedCarrier
	}

	mask := params.Mask()
	view, err := sample.New(carrier.Bytes(), mask)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCarrierTooSmall, err)
	}

	perm, err := rng.NewPermutation(params.Seed, view.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCarrierTooSmall, err)
	}

	payload, err := extract.Run(ctx, view, perm, params.SamplesPerVertex, params.MessageBitsPerVertex, mask)
	if err != nil {
		return nil, wrapExtractError(err)
	}

	logger.Info().Int("payload_len", len(payload)).Msg("extract complete")
	return payload, nil
}

func wrapExtractError(err error) error {
	switch {
	case errors.Is(err, message.ErrSignatureMismatch):
		return fmt.Errorf("%w: %w", ErrSignatureMismatch, err)
	case errors.Is(err, message.ErrLengthOutOfRange):
		return fmt.Errorf("%w: %w", ErrLengthOutOfRange, err)
	case errors.Is(err, extract.ErrCarrierTooSmall):
		return fmt.Errorf("%w: %w", ErrCarrierTooSmall, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	default:
		return err
	}
}

func reserveVertices(vertices []*vertex.Vertex) []*vertex.Vertex {
	var reserves []*vertex.Vertex
	for _, v := range vertices {
		if !v.IsMessageBearing {
			reserves = append(reserves, v)
		}
	}
	return reserves
}

func countMessageBearing(vs []*vertex.Vertex) int {
	n := 0
	for _, v := range vs {
		if v.IsMessageBearing {
			n++
		}
	}
	return n
}

func processLocalRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func checkCancel(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func sendProgress(ch chan<- Progress, logger *zerolog.Logger, p Progress) {
	if ch == nil {
		return
	}
	select {
	case ch <- p:
	default:
		logger.Debug().Msg("dropped progress update")
	}
}
