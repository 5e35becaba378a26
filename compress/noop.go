package compress

// NoOpCodec passes data through unchanged. It serves caches that disable
// recompression, and the fallback path for payloads the PX encoder cannot
// fit into a container (stored uncompressed by the caller instead).
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, without copying. The result
// shares memory with the input.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without copying. The result
// shares memory with the input.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
