// Package extract implements the Extractor: the read-only counterpart to
// VertexBuilder, Matcher, and Flusher. It re-derives the same permutation
// embedding used, accumulates each vertex's aggregate mod value the same
// way VertexBuilder computed it, and decodes the resulting chunk stream
// back into a payload.
package extract
