package resultenc

import "slices"

// NoOpCodec passes data through unchanged, for callers that want the JSON
// payload without a compression layer.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns a copy of the input. The copy keeps the caller-owns-the-
// result contract shared by all codecs: later mutation of the input never
// leaks into the returned payload.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return slices.Clone(data), nil
}

// Decompress returns a copy of the input.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return slices.Clone(data), nil
}
