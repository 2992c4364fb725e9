package streamvbyte64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groupForTag1234, groupForTag0124 and groupForTag1248 build a [4]E whose
// per-lane classification matches tag exactly, so iterating tag 0..255
// exercises every width combination the accelerated and scalar kernels must
// agree on.
func groupForTag1234(tag byte) [4]uint32 {
	sample := [4]uint32{0, 0x0102, 0x030405, 0x06070809}
	var g [4]uint32
	for lane := 0; lane < 4; lane++ {
		vt := (tag >> (2 * lane)) & 0x3
		g[lane] = sample[vt]
	}
	return g
}

func groupForTag0124(tag byte) [4]uint32 {
	sample := [4]uint32{0, 0xAB, 0xCDEF, 0x12345678}
	var g [4]uint32
	for lane := 0; lane < 4; lane++ {
		vt := (tag >> (2 * lane)) & 0x3
		g[lane] = sample[vt]
	}
	return g
}

func groupForTag1248(tag byte) [4]uint64 {
	sample := [4]uint64{0x01, 0x0102, 0x01020304, 0x0102030405060708}
	var g [4]uint64
	for lane := 0; lane < 4; lane++ {
		vt := (tag >> (2 * lane)) & 0x3
		g[lane] = sample[vt]
	}
	return g
}

// The TestAccelMatchesScalarEncode* tests verify property 4 (cross-backend
// bit-exactness) across the full 256-tag space for every parameterization.
func TestAccelMatchesScalarEncode1234(t *testing.T) {
	scalar := scalarKernel[uint32](&descriptor1234)
	accel := accelKernel[uint32](&descriptor1234, tables1234)
	for tag := 0; tag < 256; tag++ {
		g := groupForTag1234(byte(tag))
		wantOut := make([]byte, 16)
		gotOut := make([]byte, 16)
		wantTag, wantN := scalar.encode(wantOut, g)
		gotTag, gotN := accel.encode(gotOut, g)
		require.Equal(t, wantTag, gotTag, "tag=%d", tag)
		require.Equal(t, wantN, gotN, "tag=%d", tag)
		assert.Equal(t, wantOut[:wantN], gotOut[:gotN], "tag=%d", tag)
	}
}

func TestAccelMatchesScalarDecode1234(t *testing.T) {
	scalar := scalarKernel[uint32](&descriptor1234)
	accel := accelKernel[uint32](&descriptor1234, tables1234)
	for tag := 0; tag < 256; tag++ {
		g := groupForTag1234(byte(tag))
		buf := make([]byte, 16)
		_, n := scalar.encode(buf, g)

		wantRead, wantGroup := scalar.decode(buf[:n], byte(tag))
		gotRead, gotGroup := accel.decode(buf[:n], byte(tag))
		assert.Equal(t, wantRead, gotRead, "tag=%d", tag)
		assert.Equal(t, wantGroup, gotGroup, "tag=%d", tag)
	}
}

func TestAccelMatchesScalarEncode0124(t *testing.T) {
	scalar := scalarKernel[uint32](&descriptor0124)
	accel := accelKernel[uint32](&descriptor0124, tables0124)
	for tag := 0; tag < 256; tag++ {
		g := groupForTag0124(byte(tag))
		wantOut := make([]byte, 16)
		gotOut := make([]byte, 16)
		wantTag, wantN := scalar.encode(wantOut, g)
		gotTag, gotN := accel.encode(gotOut, g)
		require.Equal(t, wantTag, gotTag, "tag=%d", tag)
		require.Equal(t, wantN, gotN, "tag=%d", tag)
		assert.Equal(t, wantOut[:wantN], gotOut[:gotN], "tag=%d", tag)
	}
}

func TestAccelMatchesScalarEncode1248(t *testing.T) {
	scalar := scalarKernel[uint64](&descriptor1248)
	accel := accelKernel[uint64](&descriptor1248, tables1248)
	for tag := 0; tag < 256; tag++ {
		g := groupForTag1248(byte(tag))
		wantOut := make([]byte, 32)
		gotOut := make([]byte, 32)
		wantTag, wantN := scalar.encode(wantOut, g)
		gotTag, gotN := accel.encode(gotOut, g)
		require.Equal(t, wantTag, gotTag, "tag=%d", tag)
		require.Equal(t, wantN, gotN, "tag=%d", tag)
		assert.Equal(t, wantOut[:wantN], gotOut[:gotN], "tag=%d", tag)

		wantRead, wantGroup := scalar.decode(wantOut[:wantN], byte(tag))
		gotRead, gotGroup := accel.decode(gotOut[:gotN], byte(tag))
		assert.Equal(t, wantRead, gotRead, "tag=%d", tag)
		assert.Equal(t, wantGroup, gotGroup, "tag=%d", tag)
	}
}

func TestShuffleTableSizesMatchWidth(t *testing.T) {
	for _, tc := range []struct {
		tables *shuffleTables
		width  int
	}{
		{tables1234, 4},
		{tables0124, 4},
		{tables1248, 8},
	} {
		for tag := 0; tag < 256; tag++ {
			assert.Len(t, tc.tables.decode[tag], tc.width*4, "tag=%d", tag)
			assert.LessOrEqual(t, len(tc.tables.encode[tag]), tc.width*4, "tag=%d", tag)
		}
	}
}

func TestSelectedBackendIsValid(t *testing.T) {
	valid := map[string]bool{"scalar": true, "ssse3": true, "sse41": true, "neon": true}
	for _, backend := range []string{NewCoder1234().Backend(), NewCoder0124().Backend(), NewCoder1248().Backend()} {
		assert.True(t, valid[backend], "unexpected backend name %q", backend)
	}
}
