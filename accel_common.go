package streamvbyte64

// This file implements the table-driven "accelerated" group kernel: per-tag
// gather/decode shuffle tables built once, consulted per group instead of
// recomputing tag_len offsets byte by byte. It is the software-gather/
// scatter equivalent of the NEON/SSSE3/SSE4.1 shuffle-register kernels that
// motivate this design; see DESIGN.md for why this repository does not
// hand-emit the actual SIMD instructions. The wiring
// (which backend gets selected per architecture) lives in accel_amd64.go,
// accel_arm64.go and accel_other.go.
//
// A group's raw representation is the 4 lanes' full element width laid out
// back to back, untruncated; the shuffle tables gather the live low bytes of
// each lane into contiguous positions (encode) or scatter compact payload
// bytes back into their lane position, zero-filling the rest (decode).

func accelEncodeGroup[E uintElem](desc *descriptor, tables *shuffleTables, out []byte, g [4]E) (byte, int) {
	var raw [32]byte
	width := desc.elemWidth
	var tag byte
	for lane := 0; lane < 4; lane++ {
		t, _ := desc.classify(uint64(g[lane]))
		tag |= t << (2 * lane)
		writeLE(raw[lane*width:], g[lane], width)
	}
	idx := tables.encode[tag]
	for j, srcIdx := range idx {
		out[j] = raw[srcIdx]
	}
	return tag, len(idx)
}

func accelDecodeGroup[E uintElem](desc *descriptor, tables *shuffleTables, in []byte, tag byte) (int, [4]E) {
	var raw [32]byte
	width := desc.elemWidth
	idx := tables.decode[tag]
	for j, srcIdx := range idx {
		if srcIdx&zeroFillSentinel != 0 {
			raw[j] = 0
		} else {
			raw[j] = in[srcIdx]
		}
	}
	var g [4]E
	for lane := 0; lane < 4; lane++ {
		g[lane] = readLE[E](raw[lane*width:], width)
	}
	return int(desc.dataLen[tag]), g
}

func accelEncodeDeltaGroup[E uintElem](desc *descriptor, tables *shuffleTables, out []byte, base E, g [4]E) (byte, int) {
	deltas := [4]E{g[0] - base, g[1] - g[0], g[2] - g[1], g[3] - g[2]}
	return accelEncodeGroup(desc, tables, out, deltas)
}

func accelDecodeDeltaGroup[E uintElem](desc *descriptor, tables *shuffleTables, in []byte, tag byte, base E) (int, [4]E) {
	read, deltas := accelDecodeGroup[E](desc, tables, in, tag)
	var g [4]E
	g[0] = base + deltas[0]
	g[1] = g[0] + deltas[1]
	g[2] = g[1] + deltas[2]
	g[3] = g[2] + deltas[3]
	return read, g
}

func accelSkipDeltaGroup[E uintElem](desc *descriptor, tables *shuffleTables, in []byte, tag byte) (int, E) {
	read, deltas := accelDecodeGroup[E](desc, tables, in, tag)
	return read, deltas[0] + deltas[1] + deltas[2] + deltas[3]
}

func accelKernel[E uintElem](desc *descriptor, tables *shuffleTables) groupKernel[E] {
	return groupKernel[E]{
		desc: desc,
		encode: func(out []byte, g [4]E) (byte, int) {
			return accelEncodeGroup(desc, tables, out, g)
		},
		encodeDeltas: func(out []byte, base E, g [4]E) (byte, int) {
			return accelEncodeDeltaGroup(desc, tables, out, base, g)
		},
		decode: func(in []byte, tag byte) (int, [4]E) {
			return accelDecodeGroup[E](desc, tables, in, tag)
		},
		decodeDeltas: func(in []byte, tag byte, base E) (int, [4]E) {
			return accelDecodeDeltaGroup(desc, tables, in, tag, base)
		},
		skipDeltas: func(in []byte, tag byte) (int, E) {
			return accelSkipDeltaGroup(desc, tables, in, tag)
		},
	}
}
