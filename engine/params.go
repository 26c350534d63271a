package engine

import "math/bits"

// Params holds every tunable named in spec's data model, §3. The zero
// value is not meaningful; build one with NewParams or one of the named
// presets.
type Params struct {
	// SamplesPerVertex (s) — samples aggregated per vertex, clamped 1..4.
	SamplesPerVertex int

	// MessageBitsPerVertex (b) — payload bits carried per vertex; must be
	// a power of two in {1, 2, 4} (mod_factor = 2^b, mask = mod_factor-1).
	MessageBitsPerVertex int

	// DistanceMax (D) — max per-channel Chebyshev distance for a
	// candidate edge, clamped 2..128.
	DistanceMax int

	// Quantum is the public, always-power-of-two view of distance
	// precision: internally converted to the right-shift exponent p via
	// Shift. Clamped to [1,32] and rounded down to a power of two, so it is
	// always one of {1,2,4,8,16,32}.
	Quantum int

	// VerticesPerMatching bounds the matching loop's batch size, floored
	// at 10000.
	VerticesPerMatching int

	// ReserveMatching caps how many reserve-matching passes run,
	// clamped 0..8.
	ReserveMatching int

	// Seed drives the deterministic permutation; any int64 is valid.
	Seed int64
}

// Option mutates a Params under construction. Options ignore
// out-of-range input rather than panicking; clamping happens once,
// centrally, here.
type Option func(*Params)

// WithSamplesPerVertex sets s, clamped to [1,4].
func WithSamplesPerVertex(s int) Option {
	return func(p *Params) { p.SamplesPerVertex = clampInt(s, 1, 4) }
}

// WithMessageBitsPerVertex sets b, clamped to the nearest supported
// value in {1,2,4}.
func WithMessageBitsPerVertex(b int) Option {
	return func(p *Params) { p.MessageBitsPerVertex = clampBits(b) }
}

// WithDistanceMax sets D, clamped to [2,128].
func WithDistanceMax(d int) Option {
	return func(p *Params) { p.DistanceMax = clampInt(d, 2, 128) }
}

// WithQuantum sets the public quantum, clamped to [1,32] and rounded
// down to a power of two in {1,2,4,8,16,32}.
func WithQuantum(q int) Option {
	return func(p *Params) { p.Quantum = clampQuantum(q) }
}

// WithVerticesPerMatching sets the batch size, floored at 10000.
func WithVerticesPerMatching(v int) Option {
	return func(p *Params) {
		if v < 10000 {
			v = 10000
		}
		p.VerticesPerMatching = v
	}
}

// WithReserveMatching sets the reserve-pass cap, clamped to [0,8].
func WithReserveMatching(n int) Option {
	return func(p *Params) { p.ReserveMatching = clampInt(n, 0, 8) }
}

// WithSeed sets the permutation seed.
func WithSeed(seed int64) Option {
	return func(p *Params) { p.Seed = seed }
}

// NewParams builds a Params from spec's documented Default preset
// (vpm=50000, p=2 i.e. quantum=4, D=8, b=2, s=2, reserve_matching=1,
// seed=42), then applies opts in order.
func NewParams(opts ...Option) Params {
	p := Params{
		SamplesPerVertex:     2,
		MessageBitsPerVertex: 2,
		DistanceMax:          8,
		Quantum:              4,
		VerticesPerMatching:  50000,
		ReserveMatching:      1,
		Seed:                 42,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Default returns spec's documented default preset unmodified.
func Default() Params { return NewParams() }

// Imperceptibility trades throughput for a tighter colour-distance
// window and an extra reserve-matching pass, minimising the visual cost
// of whatever Adjuster fallback remains necessary.
func Imperceptibility() Params {
	return NewParams(
		WithDistanceMax(4),
		WithQuantum(2),
		WithReserveMatching(2),
	)
}

// Performance widens the batch size and search window to favour fewer,
// larger matching passes over visual fidelity.
func Performance() Params {
	return NewParams(
		WithVerticesPerMatching(100000),
		WithDistanceMax(16),
		WithReserveMatching(0),
	)
}

// ModFactor returns 2^MessageBitsPerVertex.
func (p Params) ModFactor() int { return 1 << uint(p.MessageBitsPerVertex) }

// Mask returns ModFactor()-1, the AND-mask used throughout the pipeline.
func (p Params) Mask() byte { return byte(p.ModFactor() - 1) }

// Shift returns the right-shift exponent log2(Quantum), applied to
// colour channels and DistanceMax when bucketising.
func (p Params) Shift() uint { return uint(bits.TrailingZeros(uint(p.Quantum))) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampBits(b int) int {
	switch {
	case b <= 1:
		return 1
	case b <= 2:
		return 2
	default:
		return 4
	}
}

func clampQuantum(q int) int {
	if q < 1 {
		return 1
	}
	if q > 32 {
		return 32
	}
	v := 1
	for v*2 <= q {
		v *= 2
	}
	return v
}
