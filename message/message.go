package message

import (
	"encoding/binary"
	"errors"
)

// Signature is the 4 literal bytes prepended to every embedded payload so
// extraction can detect a wrong key/seed before trusting the decoded
// length and data.
var Signature = [4]byte{0x47, 0x54, 0x41, 0x6c} // "GTAl"

// ErrBadBitsPerChunk indicates a bitsPerChunk value outside the supported
// {1,2,4} set (mod_factor must be a power of two per spec.md §3).
var ErrBadBitsPerChunk = errors.New("message: bits-per-chunk must be 1, 2, or 4")

// ErrSignatureMismatch indicates the decoded stream's first 4 bytes were
// not Signature — almost always a wrong seed or key.
var ErrSignatureMismatch = errors.New("message: signature mismatch")

// ErrLengthOutOfRange indicates a decoded length field exceeds the bytes
// actually available to read.
var ErrLengthOutOfRange = errors.New("message: length out of range")

func validateBits(bitsPerChunk int) error {
	switch bitsPerChunk {
	case 1, 2, 4:
		return nil
	default:
		return ErrBadBitsPerChunk
	}
}

// BuildWire prepends Signature and a 4-byte little-endian length to
// payload, producing the exact byte stream that gets bit-packed into
// chunks.
func BuildWire(payload []byte) []byte {
	out := make([]byte, 0, 4+4+len(payload))
	out = append(out, Signature[:]...)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	out = append(out, lenBuf[:]...)
	out = append(out, payload...)
	return out
}

// PackChunks splits data into successive bitsPerChunk-bit little-endian
// groups, LSB-of-first-byte first, discarding any trailing partial group.
//
// Complexity: O(len(data)) time and space.
func PackChunks(data []byte, bitsPerChunk int) ([]byte, error) {
	if err := validateBits(bitsPerChunk); err != nil {
		return nil, err
	}

	totalBits := len(data) * 8
	nChunks := totalBits / bitsPerChunk
	chunks := make([]byte, nChunks)

	for c := 0; c < nChunks; c++ {
		var v byte
		for b := 0; b < bitsPerChunk; b++ {
			bitIdx := c*bitsPerChunk + b
			byteIdx := bitIdx / 8
			bitInByte := bitIdx % 8
			bit := (data[byteIdx] >> uint(bitInByte)) & 1
			v |= bit << uint(b)
		}
		chunks[c] = v
	}

	return chunks, nil
}

// UnpackBytes is PackChunks' inverse: it concatenates nChunks chunks
// LSB-first into nBytes bytes. len(chunks) must be >= ceil(nBytes*8 /
// bitsPerChunk).
func UnpackBytes(chunks []byte, bitsPerChunk int, nBytes int) ([]byte, error) {
	if err := validateBits(bitsPerChunk); err != nil {
		return nil, err
	}

	needed := (nBytes*8 + bitsPerChunk - 1) / bitsPerChunk
	if len(chunks) < needed {
		return nil, ErrLengthOutOfRange
	}

	out := make([]byte, nBytes)
	for c := 0; c < needed; c++ {
		v := chunks[c]
		for b := 0; b < bitsPerChunk; b++ {
			bitIdx := c*bitsPerChunk + b
			byteIdx := bitIdx / 8
			if byteIdx >= nBytes {
				break
			}
			bitInByte := bitIdx % 8
			bit := (v >> uint(b)) & 1
			out[byteIdx] |= bit << uint(bitInByte)
		}
	}

	return out, nil
}

// ChunkCount returns how many bitsPerChunk-bit chunks data packs into,
// without performing the packing itself — used by the Extractor to know
// how many vertices to read for a given byte count.
func ChunkCount(byteLen int, bitsPerChunk int) int {
	return (byteLen * 8) / bitsPerChunk
}

// ParseHeader validates the signature prefix of a decoded byte stream and
// returns the payload length it declares.
func ParseHeader(decoded []byte) (payloadLen int, err error) {
	if len(decoded) < 8 {
		return 0, ErrLengthOutOfRange
	}
	if [4]byte(decoded[:4]) != Signature {
		return 0, ErrSignatureMismatch
	}
	return int(binary.LittleEndian.Uint32(decoded[4:8])), nil
}
