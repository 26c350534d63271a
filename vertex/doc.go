// Package vertex builds Vertex groups from a permuted sample stream and
// defines the Edge/Batch types that EdgeFinder, Matcher, and
// ReserveMatcher operate on.
//
// A Vertex owns exactly s samples, never shared with any other vertex.
// Message-bearing vertices (the first N, N = number of message chunks)
// carry a per-sample TargetModValue; the remainder are reserves with no
// target, serving only as sample donors during reserve matching.
//
// Edges are owned by a Batch (the slice of vertices processed together,
// bounded by vertices_per_matching) and referenced from both endpoint
// vertices by index into the Batch's Edges arena — sidestepping cyclic
// pointer ownership, per the teacher corpus's arena-over-pointers idiom.
package vertex
