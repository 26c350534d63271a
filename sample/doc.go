// Package sample exposes a carrier's byte buffer as a sequence of
// fixed-size samples (3 bytes each — the sole carrier shape this engine
// supports) and tracks each sample's running modular "mod value".
//
// A View copies each sample's bytes out of the carrier buffer and records
// the byte offset they came from; Samples are mutated in place, and the
// carrier buffer changes only when Flushing (package flush) writes the
// current values back at those offsets.
package sample
