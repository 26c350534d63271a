// Package message turns a payload byte stream into the ordered sequence
// of small modular chunks that VertexBuilder assigns to message-bearing
// vertices, and turns that sequence back into bytes on extraction.
//
// Wire format (spec.md §6): 4 literal signature bytes "GTAl", a 4-byte
// little-endian payload length, then the payload bytes themselves. The
// whole stream is bit-packed least-significant-bit-first into chunks of
// b bits; trailing partial groups are discarded when packing and are
// never produced when unpacking an exact byte count.
package message
