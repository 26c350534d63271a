// Package carrier implements the two concrete Carrier types the engine
// consumes: Image (lossless PNG, RGB addressable, alpha untouched) and
// WAV (the data chunk of an 8-bit PCM RIFF/WAVE file). Both expose the
// same narrow capability interface the engine package depends on.
package carrier
