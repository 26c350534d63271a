// Package engine owns the configuration surface (Params, Presets), the
// sentinel errors callers see, and the two public entry points,
// Embed and Extract, that drive the pipeline implemented across message,
// sample, vertex, spatial, edgefind, match, adjust, flush, and extract.
//
// Params follows the teacher corpus's functional-options convention
// (see builder.BuilderOption): a constructor applies sensible defaults
// and then each Option in order, with clamping centralised there rather
// than scattered across mutable setters.
package engine
