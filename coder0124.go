package streamvbyte64

// Coder0124 packs groups of 4 uint32 values into 0, 1, 2, or 4 bytes each. A
// value tag of 0 means the value is literally zero and consumes no data
// bytes, which makes this parameterization well suited to sparse or
// mostly-zero integer sequences. Acceleration support mirrors Coder1234
// except the x86_64 path requires SSE4.1 rather than SSSE3.
type Coder0124 struct {
	c codec[uint32]
}

// NewCoder0124 creates a Coder0124 using the best backend available on the
// host.
func NewCoder0124() Coder0124 {
	kernel, backend := selectKernel0124()
	return Coder0124{c: codec[uint32]{desc: &descriptor0124, kernel: kernel, backend: backend}}
}

// Backend reports which implementation this coder selected.
func (c Coder0124) Backend() string { return c.c.backend }

// MaxCompressedBytes returns the worst-case (tagBytes, dataBytes) a caller
// must allocate to encode n values.
func (c Coder0124) MaxCompressedBytes(n int) (tagBytes, dataBytes int) {
	return c.c.maxCompressedBytes(n)
}

// Encode writes tags and data for values, returning the number of bytes
// written to data. len(values) must be a multiple of 4.
func (c Coder0124) Encode(values []uint32, tags []byte, data []byte) int {
	return c.c.encode(values, tags, data)
}

// EncodeDeltas encodes values as first-differences against initial.
func (c Coder0124) EncodeDeltas(initial uint32, values []uint32, tags []byte, data []byte) int {
	return c.c.encodeDeltas(initial, values, tags, data)
}

// Decode reconstructs values from tags and data, returning the number of
// bytes consumed from data.
func (c Coder0124) Decode(tags []byte, data []byte, values []uint32) int {
	return c.c.decode(tags, data, values)
}

// DecodeDeltas reconstructs values from a delta-coded tags/data stream.
func (c Coder0124) DecodeDeltas(initial uint32, tags []byte, data []byte, values []uint32) int {
	return c.c.decodeDeltas(initial, tags, data, values)
}

// DataLen returns the number of data bytes tags describes, without touching
// the data stream itself.
func (c Coder0124) DataLen(tags []byte) int { return c.c.dataLen(tags) }

// SkipDeltas skips over a delta-coded region, returning the number of data
// bytes consumed and the cumulative sum of the deltas skipped.
func (c Coder0124) SkipDeltas(tags []byte, data []byte) (int, uint32) {
	return c.c.skipDeltas(tags, data)
}
