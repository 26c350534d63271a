package carrier

import (
	"errors"
	"io"
)

// ErrUnsupportedCarrier indicates the decoded source cannot be
// addressed as a stream of 3-byte samples (e.g. a non-8-bit or
// non-3-channel WAV).
var ErrUnsupportedCarrier = errors.New("carrier: source cannot be addressed as 3-byte samples")

// Carrier is the capability interface the engine package depends on. It
// never imports this package directly; callers construct a concrete
// Image or WAV and pass it through the engine.Carrier interface, which
// this type satisfies structurally.
type Carrier interface {
	// Bytes returns the mutable, sample-major addressable buffer.
	Bytes() []byte

	// BytesPerSample returns the carrier's sample width. The engine
	// requires exactly 3.
	BytesPerSample() int

	// Save persists the carrier (with whatever mutations were made to
	// Bytes()) to w in its native format.
	Save(w io.Writer) error
}
