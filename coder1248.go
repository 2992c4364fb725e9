package streamvbyte64

// Coder1248 packs groups of 4 uint64 values into 1, 2, 4, or 8 bytes each.
// It is the only 64-bit parameterization; its tag classification is
// non-linear relative to Coder1234/Coder0124.
type Coder1248 struct {
	c codec[uint64]
}

// NewCoder1248 creates a Coder1248 using the best backend available on the
// host.
func NewCoder1248() Coder1248 {
	kernel, backend := selectKernel1248()
	return Coder1248{c: codec[uint64]{desc: &descriptor1248, kernel: kernel, backend: backend}}
}

// Backend reports which implementation this coder selected.
func (c Coder1248) Backend() string { return c.c.backend }

// MaxCompressedBytes returns the worst-case (tagBytes, dataBytes) a caller
// must allocate to encode n values.
func (c Coder1248) MaxCompressedBytes(n int) (tagBytes, dataBytes int) {
	return c.c.maxCompressedBytes(n)
}

// Encode writes tags and data for values, returning the number of bytes
// written to data. len(values) must be a multiple of 4.
func (c Coder1248) Encode(values []uint64, tags []byte, data []byte) int {
	return c.c.encode(values, tags, data)
}

// EncodeDeltas encodes values as first-differences against initial.
func (c Coder1248) EncodeDeltas(initial uint64, values []uint64, tags []byte, data []byte) int {
	return c.c.encodeDeltas(initial, values, tags, data)
}

// Decode reconstructs values from tags and data, returning the number of
// bytes consumed from data.
func (c Coder1248) Decode(tags []byte, data []byte, values []uint64) int {
	return c.c.decode(tags, data, values)
}

// DecodeDeltas reconstructs values from a delta-coded tags/data stream.
func (c Coder1248) DecodeDeltas(initial uint64, tags []byte, data []byte, values []uint64) int {
	return c.c.decodeDeltas(initial, tags, data, values)
}

// DataLen returns the number of data bytes tags describes, without touching
// the data stream itself.
func (c Coder1248) DataLen(tags []byte) int { return c.c.dataLen(tags) }

// SkipDeltas skips over a delta-coded region, returning the number of data
// bytes consumed and the cumulative sum of the deltas skipped.
func (c Coder1248) SkipDeltas(tags []byte, data []byte) (int, uint64) {
	return c.c.skipDeltas(tags, data)
}
