package streamvbyte64

import "math/bits"

// uintElem is the set of element types a coder may operate on.
type uintElem interface {
	~uint32 | ~uint64
}

// descriptor bundles the compile-time parameters of one wire format: element
// width, the byte length assigned to each 2-bit value tag, and the
// classifier that picks the smallest tag covering a given value. Descriptors
// are built once in package init and never mutated.
type descriptor struct {
	elemWidth int        // bytes per element: 4 or 8
	tagLen    [4]int     // byte length for value tag 0..3
	tagMax    [4]uint64  // largest value coded by each tag; not read by the coders
	dataLen   [256]uint8
	classify  func(v uint64) (tag uint8, length int)
}

func tagMaskTable(tagLen [4]int, width int) [4]uint64 {
	var out [4]uint64
	for i, l := range tagLen {
		if l >= width {
			out[i] = ^uint64(0) >> (64 - 8*width)
			if width == 8 {
				out[i] = ^uint64(0)
			}
			continue
		}
		out[i] = (uint64(1) << (8 * l)) - 1
	}
	return out
}

// tagLengthTable builds the 256-entry data_len table: table[tag] is the sum
// of tagLen[(tag>>2i)&3] for i in 0..4.
func tagLengthTable(tagLen [4]int) [256]uint8 {
	var table [256]uint8
	for tag := 0; tag < 256; tag++ {
		sum := tagLen[tag&0x3] + tagLen[(tag>>2)&0x3] + tagLen[(tag>>4)&0x3] + tagLen[(tag>>6)&0x3]
		table[tag] = uint8(sum)
	}
	return table
}

// classify1234 implements the Coder1234 tag_value function: the smallest
// value tag t such that v fits in tagLen[t] bytes, tagLen = [1,2,3,4].
// Reference derivation: tag = max(0, 3 - leadingZeroBytes(v)).
func classify1234(v uint64) (uint8, int) {
	v32 := uint32(v)
	leadingZeroBytes := bits.LeadingZeros32(v32) / 8
	tag := 3 - leadingZeroBytes
	if tag < 0 {
		tag = 0
	}
	return uint8(tag), tag + 1
}

// tagValueMap0124 maps "bytes needed" (0..4) to the Coder0124 value tag.
// Three and four byte values both collapse onto the 4-byte tag.
var tagValueMap0124 = [5]uint8{0, 1, 2, 3, 3}

// classify0124 implements the Coder0124 tag_value function (tagLen =
// [0,1,2,4]): bytesNeeded = 4 - leadingZeroBytes(v), tag =
// tagValueMap0124[bytesNeeded].
func classify0124(v uint64) (uint8, int) {
	v32 := uint32(v)
	leadingZeroBytes := bits.LeadingZeros32(v32) / 8
	bytesNeeded := 4 - leadingZeroBytes
	tag := tagValueMap0124[bytesNeeded]
	return tag, tagLen0124[tag]
}

var tagLen0124 = [4]int{0, 1, 2, 4}

// classify1248 implements the Coder1248 tag_value function (tagLen =
// [1,2,4,8]). t3 is a saturated 3-bit "bytes required beyond the first"
// measure; tag is t3's bit length, which is equivalent to ceil(log2(t3+1)).
func classify1248(v uint64) (uint8, int) {
	leadingZeroBytes := bits.LeadingZeros64(v) / 8
	t3 := 7 - leadingZeroBytes
	if t3 < 0 {
		t3 = 0
	}
	tag := bits.Len32(uint32(t3))
	return uint8(tag), tagLen1248[tag]
}

var tagLen1248 = [4]int{1, 2, 4, 8}

var descriptor1234 = descriptor{
	elemWidth: 4,
	tagLen:    [4]int{1, 2, 3, 4},
	classify:  classify1234,
}

var descriptor0124 = descriptor{
	elemWidth: 4,
	tagLen:    [4]int{0, 1, 2, 4},
	classify:  classify0124,
}

var descriptor1248 = descriptor{
	elemWidth: 8,
	tagLen:    [4]int{1, 2, 4, 8},
	classify:  classify1248,
}

func init() {
	for _, d := range []*descriptor{&descriptor1234, &descriptor0124, &descriptor1248} {
		d.tagMax = tagMaskTable(d.tagLen, d.elemWidth)
		d.dataLen = tagLengthTable(d.tagLen)
	}
}

// dataLen8 sums data_len across 8 packed tag bytes.
func (d *descriptor) dataLen8(tag8 uint64) int {
	n := 0
	for i := 0; i < 8; i++ {
		n += int(d.dataLen[byte(tag8>>(8*i))])
	}
	return n
}
