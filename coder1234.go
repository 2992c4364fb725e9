package streamvbyte64

// Coder1234 packs groups of 4 uint32 values into 1, 2, 3, or 4 bytes each,
// chosen as the smallest width that covers the value. It has
// acceleration support on little-endian aarch64 (NEON) and, when available,
// x86_64 (SSSE3).
//
// A Coder1234 is a tiny immutable handle; NewCoder1234 probes the host once
// and the result never changes, so values may be freely copied and shared
// across goroutines.
type Coder1234 struct {
	c codec[uint32]
}

// NewCoder1234 creates a Coder1234 using the best backend available on the
// host.
func NewCoder1234() Coder1234 {
	kernel, backend := selectKernel1234()
	return Coder1234{c: codec[uint32]{desc: &descriptor1234, kernel: kernel, backend: backend}}
}

// Backend reports which implementation this coder selected ("scalar",
// "ssse3", or "neon"). Intended for diagnostics and tests.
func (c Coder1234) Backend() string { return c.c.backend }

// MaxCompressedBytes returns the worst-case (tagBytes, dataBytes) a caller
// must allocate to encode n values.
func (c Coder1234) MaxCompressedBytes(n int) (tagBytes, dataBytes int) {
	return c.c.maxCompressedBytes(n)
}

// Encode writes tags and data for values, returning the number of bytes
// written to data. len(values) must be a multiple of 4.
func (c Coder1234) Encode(values []uint32, tags []byte, data []byte) int {
	return c.c.encode(values, tags, data)
}

// EncodeDeltas encodes values as first-differences against initial.
func (c Coder1234) EncodeDeltas(initial uint32, values []uint32, tags []byte, data []byte) int {
	return c.c.encodeDeltas(initial, values, tags, data)
}

// Decode reconstructs values from tags and data, returning the number of
// bytes consumed from data.
func (c Coder1234) Decode(tags []byte, data []byte, values []uint32) int {
	return c.c.decode(tags, data, values)
}

// DecodeDeltas reconstructs values from a delta-coded tags/data stream.
func (c Coder1234) DecodeDeltas(initial uint32, tags []byte, data []byte, values []uint32) int {
	return c.c.decodeDeltas(initial, tags, data, values)
}

// DataLen returns the number of data bytes tags describes, without touching
// the data stream itself.
func (c Coder1234) DataLen(tags []byte) int { return c.c.dataLen(tags) }

// SkipDeltas skips over a delta-coded region, returning the number of data
// bytes consumed and the cumulative sum of the deltas skipped (usable as the
// initial anchor for decoding the next region).
func (c Coder1234) SkipDeltas(tags []byte, data []byte) (int, uint32) {
	return c.c.skipDeltas(tags, data)
}
