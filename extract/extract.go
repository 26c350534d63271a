package extract

import (
	"context"
	"errors"

	"github.com/stegoweave/gtal/message"
	"github.com/stegoweave/gtal/rng"
	"github.com/stegoweave/gtal/sample"
)

// ErrCarrierTooSmall indicates the permutation was exhausted before the
// signature and length header could be fully read — the carrier holds
// fewer samples than the header needs.
var ErrCarrierTooSmall = errors.New("extract: carrier exhausted before header or payload could be read")

// headerBytes is the fixed signature+length prefix every wire stream
// carries, independent of payload length.
const headerBytes = 4 + 4

// Run re-walks perm over view in the same order VertexBuilder drew
// samples, reading one vertex at a time: first enough vertices to cover
// the header, to learn the declared payload length, then enough more to
// cover the payload itself. It returns the decoded payload (with the
// signature and length prefix stripped) or an error if the signature
// does not match, the carrier ran out of samples early, or the declared
// length needs more samples than remain (message.ErrLengthOutOfRange).
func Run(ctx context.Context, view *sample.View, perm *rng.Permutation, samplesPerVertex, bitsPerChunk int, mask byte) ([]byte, error) {
	headerChunks := message.ChunkCount(headerBytes, bitsPerChunk)
	chunks := make([]byte, 0, headerChunks)

	for i := 0; i < headerChunks; i++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		c, err := readChunk(view, perm, samplesPerVertex, mask)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	header, err := message.UnpackBytes(chunks, bitsPerChunk, headerBytes)
	if err != nil {
		return nil, err
	}
	payloadLen, err := message.ParseHeader(header)
	if err != nil {
		return nil, err
	}

	payloadChunks := message.ChunkCount(payloadLen, bitsPerChunk)
	if payloadChunks*samplesPerVertex > perm.Remaining() {
		return nil, message.ErrLengthOutOfRange
	}
	for i := 0; i < payloadChunks; i++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}
		c, err := readChunk(view, perm, samplesPerVertex, mask)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	wire, err := message.UnpackBytes(chunks, bitsPerChunk, headerBytes+payloadLen)
	if err != nil {
		return nil, err
	}
	return wire[headerBytes:], nil
}

// readChunk advances perm by samplesPerVertex and returns the aggregate
// mod value of the samples drawn — mirroring vertex.Build's own
// aggregation exactly, so embed and extract agree bit-for-bit.
func readChunk(view *sample.View, perm *rng.Permutation, samplesPerVertex int, mask byte) (byte, error) {
	var sum byte
	for i := 0; i < samplesPerVertex; i++ {
		idx, ok := perm.Next()
		if !ok {
			return 0, ErrCarrierTooSmall
		}
		s := view.At(idx)
		sum += s.ModValue
	}
	return sum & mask, nil
}

func checkCancel(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
