// Package flush implements the Flusher: the last embedding stage, which
// serialises every sample's current channel bytes back into the carrier
// buffer they were drawn from.
package flush
