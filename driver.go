package streamvbyte64

import (
	"encoding/binary"
	"fmt"
)

// groupKernel is the set of per-group primitive operations a backend
// supplies. The stream driver below is generic over E and
// calls through these function values exactly once per group. The backend
// is chosen once, at construction time; each group is still one indirect
// call through the selected function value, not an inlined kernel.
type groupKernel[E uintElem] struct {
	desc *descriptor

	encode       func(out []byte, g [4]E) (tag byte, written int)
	encodeDeltas func(out []byte, base E, g [4]E) (tag byte, written int)
	decode       func(in []byte, tag byte) (read int, g [4]E)
	decodeDeltas func(in []byte, tag byte, base E) (read int, g [4]E)
	skipDeltas   func(in []byte, tag byte) (read int, sum E)
}

// codec is the shared, generic implementation backing Coder1234, Coder0124
// and Coder1248. It owns no mutable state past construction.
type codec[E uintElem] struct {
	desc    *descriptor
	kernel  groupKernel[E]
	backend string
}

// maxCompressedBytes returns the worst-case (tagBytes, dataBytes) a caller
// must allocate to encode n values,.
func (c *codec[E]) maxCompressedBytes(n int) (tagBytes, dataBytes int) {
	groups := (n + 3) / 4
	return groups, groups * 4 * c.desc.elemWidth
}

func requireMultipleOfFour(n int) int {
	if n%4 != 0 {
		panic(fmt.Sprintf("streamvbyte64: values length %d is not a multiple of 4", n))
	}
	return n / 4
}

func (c *codec[E]) encode(values []E, tags []byte, data []byte) int {
	numGroups := requireMultipleOfFour(len(values))
	if len(tags) < numGroups {
		panic(fmt.Sprintf("streamvbyte64: tags buffer too small: need %d, have %d", numGroups, len(tags)))
	}
	maxLen := c.desc.tagLen[3]
	if len(data) < numGroups*maxLen*4 {
		panic(fmt.Sprintf("streamvbyte64: data buffer too small: need %d, have %d", numGroups*maxLen*4, len(data)))
	}

	written := 0
	for g := 0; g < numGroups; g++ {
		group := [4]E{values[4*g], values[4*g+1], values[4*g+2], values[4*g+3]}
		tag, n := c.kernel.encode(data[written:], group)
		tags[g] = tag
		written += n
	}
	return written
}

func (c *codec[E]) encodeDeltas(initial E, values []E, tags []byte, data []byte) int {
	numGroups := requireMultipleOfFour(len(values))
	if len(tags) < numGroups {
		panic(fmt.Sprintf("streamvbyte64: tags buffer too small: need %d, have %d", numGroups, len(tags)))
	}
	maxLen := c.desc.tagLen[3]
	if len(data) < numGroups*maxLen*4 {
		panic(fmt.Sprintf("streamvbyte64: data buffer too small: need %d, have %d", numGroups*maxLen*4, len(data)))
	}

	written := 0
	base := initial
	for g := 0; g < numGroups; g++ {
		group := [4]E{values[4*g], values[4*g+1], values[4*g+2], values[4*g+3]}
		tag, n := c.kernel.encodeDeltas(data[written:], base, group)
		tags[g] = tag
		written += n
		base = group[3]
	}
	return written
}

// decodeSink abstracts what happens with a decoded group so decode, decode
// deltas and skip-deltas can share one tail/batching walk, mirroring
// original_source/src/group_impl.rs's decode_to_sink.
type decodeSink[E uintElem] struct {
	kernel     *groupKernel[E]
	out        []E // nil for skipDeltas-style sinks that don't materialize values
	base       E   // running delta base; unused in plain decode
	deltaSum   E   // accumulated delta sum for skipDeltas
	useDeltas  bool
	skipValues bool
}

func (s *decodeSink[E]) handleOne(groupIndex int, tag byte, in []byte) int {
	switch {
	case s.skipValues:
		read, sum := s.kernel.skipDeltas(in, tag)
		s.deltaSum += sum
		return read
	case s.useDeltas:
		read, group := s.kernel.decodeDeltas(in, tag, s.base)
		s.base = group[3]
		copy(s.out[groupIndex*4:groupIndex*4+4], group[:])
		return read
	default:
		read, group := s.kernel.decode(in, tag)
		copy(s.out[groupIndex*4:groupIndex*4+4], group[:])
		return read
	}
}

// decodeToSink is the blocked-tail stream driver: it
// consumes 8 tags at a time as long as the data buffer has the batched
// headroom the kernel needs, falls back to one tag at a time, and once fewer
// than W*4 bytes remain, decodes every remaining group from a
// zero-padded scratch buffer so the kernel's bounded overread never reads
// past the real input.
func decodeToSink[E uintElem](desc *descriptor, tags []byte, data []byte, sink *decodeSink[E]) int {
	maxLen := desc.tagLen[3]
	minLen := desc.tagLen[0]
	read := 0
	tagIndex := 0

	for tagIndex+8 <= len(tags) {
		tag8 := binary.LittleEndian.Uint64(tags[tagIndex : tagIndex+8])
		maxRead := desc.dataLen8(tag8) + (maxLen-minLen)*4
		if read+maxRead > len(data) {
			break
		}
		for i := 0; i < 8; i++ {
			tag := byte(tag8 >> (8 * i))
			read += sink.handleOne(tagIndex+i, tag, data[read:])
		}
		tagIndex += 8
	}

	for tagIndex < len(tags) {
		if read+maxLen*4 > len(data) {
			break
		}
		read += sink.handleOne(tagIndex, tags[tagIndex], data[read:])
		tagIndex++
	}

	if tagIndex < len(tags) {
		if read > len(data) {
			panic("streamvbyte64: internal error, read past end of data before tail handling")
		}
		scratch := make([]byte, 2*desc.elemWidth*4)
		copy(scratch, data[read:])
		bufr := 0
		for ; tagIndex < len(tags); tagIndex++ {
			if bufr >= maxLen*4 {
				panic("streamvbyte64: internal error, tail group exceeded one group's max length")
			}
			bufr += sink.handleOne(tagIndex, tags[tagIndex], scratch[bufr:])
		}
		read += bufr
		if read > len(data) {
			panic("streamvbyte64: internal error, tail decode consumed bytes beyond input")
		}
	}

	return read
}

func (c *codec[E]) decode(tags []byte, data []byte, values []E) int {
	numGroups := requireMultipleOfFour(len(values))
	if len(tags) < numGroups {
		panic(fmt.Sprintf("streamvbyte64: tags slice too short: need %d, have %d", numGroups, len(tags)))
	}
	sink := &decodeSink[E]{kernel: &c.kernel, out: values}
	return decodeToSink(c.desc, tags[:numGroups], data, sink)
}

func (c *codec[E]) decodeDeltas(initial E, tags []byte, data []byte, values []E) int {
	numGroups := requireMultipleOfFour(len(values))
	if len(tags) < numGroups {
		panic(fmt.Sprintf("streamvbyte64: tags slice too short: need %d, have %d", numGroups, len(tags)))
	}
	sink := &decodeSink[E]{kernel: &c.kernel, out: values, base: initial, useDeltas: true}
	return decodeToSink(c.desc, tags[:numGroups], data, sink)
}

func (c *codec[E]) dataLen(tags []byte) int {
	length := 0
	tagIndex := 0
	for tagIndex+8 <= len(tags) {
		tag8 := binary.LittleEndian.Uint64(tags[tagIndex : tagIndex+8])
		length += c.desc.dataLen8(tag8)
		tagIndex += 8
	}
	for ; tagIndex < len(tags); tagIndex++ {
		length += int(c.desc.dataLen[tags[tagIndex]])
	}
	return length
}

func (c *codec[E]) skipDeltas(tags []byte, data []byte) (int, E) {
	sink := &decodeSink[E]{kernel: &c.kernel, skipValues: true}
	read := decodeToSink(c.desc, tags, data, sink)
	return read, sink.deltaSum
}
