package engine

import "github.com/stegoweave/gtal/sample"

// ComputeBandwidth returns the maximum user-available payload size, in
// bytes, for a carrier buffer of bufferLen bytes under params — the
// bandwidth formula from spec's §6: floor(floor(bufferLen/3)/s · b/8),
// minus the 8 header bytes (message.BuildWire's 4-byte signature plus
// 4-byte length) Embed always prepends. The result is clamped at 0, so 0
// covers both a carrier whose header exactly fills it (an empty payload
// still fits) and one too small to hold the header at all.
func ComputeBandwidth(bufferLen int, params Params) int {
	vertices := (bufferLen / sample.BytesPerSample) / params.SamplesPerVertex
	totalBytes := (vertices * params.MessageBitsPerVertex) / 8
	user := totalBytes - 8
	if user < 0 {
		return 0
	}
	return user
}
