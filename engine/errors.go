package engine

import "errors"

// Sentinel errors named in spec's error table (§7). Embed and Extract
// wrap the narrower, package-specific sentinel that actually fired
// alongside one of these via a double %w, so callers can match on
// either the broad engine-level kind or the precise underlying cause.
var (
	ErrUnsupportedCarrier = errors.New("engine: carrier bytes_per_sample must equal 3")
	ErrCarrierTooSmall    = errors.New("engine: carrier cannot host the requested payload")
	ErrCancelled          = errors.New("engine: operation cancelled")
	ErrSignatureMismatch  = errors.New("engine: signature mismatch, likely wrong seed or key")
	ErrLengthOutOfRange   = errors.New("engine: decoded length exceeds available capacity")
)
