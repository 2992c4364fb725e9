package streamvbyte64

// The scalar backend is the reference semantics: every accelerated backend
// must reproduce its observable behavior bit-exactly.
// It uses only little-endian byte loads/stores and the descriptor's
// tag_value classifier, so it is correct and portable on any host.

// writeLE stores the low `length` bytes of v into out, little-endian.
func writeLE[E uintElem](out []byte, v E, length int) {
	x := uint64(v)
	for i := 0; i < length; i++ {
		out[i] = byte(x)
		x >>= 8
	}
}

// readLE loads `length` little-endian bytes from in and zero-extends to E.
func readLE[E uintElem](in []byte, length int) E {
	var x uint64
	for i := 0; i < length; i++ {
		x |= uint64(in[i]) << (8 * i)
	}
	return E(x)
}

func scalarEncodeGroup[E uintElem](desc *descriptor, out []byte, g [4]E) (byte, int) {
	var tag int
	written := 0
	for i := 0; i < 4; i++ {
		t, l := desc.classify(uint64(g[i]))
		tag |= int(t) << (2 * i)
		writeLE(out[written:], g[i], l)
		written += l
	}
	return byte(tag), written
}

func scalarEncodeDeltaGroup[E uintElem](desc *descriptor, out []byte, base E, g [4]E) (byte, int) {
	deltas := [4]E{g[0] - base, g[1] - g[0], g[2] - g[1], g[3] - g[2]}
	return scalarEncodeGroup(desc, out, deltas)
}

func scalarDecodeGroup[E uintElem](desc *descriptor, in []byte, tag byte) (int, [4]E) {
	var g [4]E
	read := 0
	for i := 0; i < 4; i++ {
		vt := (tag >> (2 * i)) & 0x3
		l := desc.tagLen[vt]
		g[i] = readLE[E](in[read:], l)
		read += l
	}
	return read, g
}

func scalarDecodeDeltaGroup[E uintElem](desc *descriptor, in []byte, tag byte, base E) (int, [4]E) {
	read, deltas := scalarDecodeGroup[E](desc, in, tag)
	var g [4]E
	g[0] = base + deltas[0]
	g[1] = g[0] + deltas[1]
	g[2] = g[1] + deltas[2]
	g[3] = g[2] + deltas[3]
	return read, g
}

func scalarSkipDeltaGroup[E uintElem](desc *descriptor, in []byte, tag byte) (int, E) {
	read, deltas := scalarDecodeGroup[E](desc, in, tag)
	return read, deltas[0] + deltas[1] + deltas[2] + deltas[3]
}

func scalarKernel[E uintElem](desc *descriptor) groupKernel[E] {
	return groupKernel[E]{
		desc: desc,
		encode: func(out []byte, g [4]E) (byte, int) {
			return scalarEncodeGroup(desc, out, g)
		},
		encodeDeltas: func(out []byte, base E, g [4]E) (byte, int) {
			return scalarEncodeDeltaGroup(desc, out, base, g)
		},
		decode: func(in []byte, tag byte) (int, [4]E) {
			return scalarDecodeGroup[E](desc, in, tag)
		},
		decodeDeltas: func(in []byte, tag byte, base E) (int, [4]E) {
			return scalarDecodeDeltaGroup(desc, in, tag, base)
		},
		skipDeltas: func(in []byte, tag byte) (int, E) {
			return scalarSkipDeltaGroup(desc, in, tag)
		},
	}
}
