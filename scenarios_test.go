package streamvbyte64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioEmpty pins the empty-input concrete scenario.
func TestScenarioEmpty(t *testing.T) {
	c := NewCoder1234()
	tags := make([]byte, 0)
	data := make([]byte, 0)
	written := c.Encode(nil, tags, data)
	assert.Equal(t, 0, written)
}

// TestScenarioMixedWidths1234 pins the literal tag byte and data bytes for
// the single-group mixed-width example: values [1, 256, 65536, 16777216]
// select value-tags 0, 1, 2, 3 in turn.
func TestScenarioMixedWidths1234(t *testing.T) {
	c := NewCoder1234()
	values := []uint32{1, 256, 65536, 16777216}
	tags := make([]byte, 1)
	data := make([]byte, 16)
	written := c.Encode(values, tags, data)

	require.Equal(t, 10, written)
	assert.Equal(t, byte(0b11_10_01_00), tags[0])
	assert.Equal(t, []byte{0x01, 0x00, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01}, data[:written])

	got := make([]uint32, 4)
	read := c.Decode(tags, data[:written], got)
	assert.Equal(t, written, read)
	assert.Equal(t, values, got)
}

// TestScenarioZeroGroup0124 pins the all-zero group under Coder0124: tag
// 0x00 and zero data bytes written.
func TestScenarioZeroGroup0124(t *testing.T) {
	c := NewCoder0124()
	values := []uint32{0, 0, 0, 0}
	tags := make([]byte, 1)
	data := make([]byte, 16)
	written := c.Encode(values, tags, data)

	assert.Equal(t, 0, written)
	assert.Equal(t, byte(0x00), tags[0])
}

// TestScenarioDeltaTrivial pins the trivial delta example: values [1,2,3,4]
// against initial 0 encode as deltas [1,1,1,1], tag 0x00, data 01 01 01 01.
func TestScenarioDeltaTrivial(t *testing.T) {
	c := NewCoder1234()
	var initial uint32 = 0
	values := []uint32{1, 2, 3, 4}
	tags := make([]byte, 1)
	data := make([]byte, 16)
	written := c.EncodeDeltas(initial, values, tags, data)

	require.Equal(t, 4, written)
	assert.Equal(t, byte(0x00), tags[0])
	assert.Equal(t, []byte{0x01, 0x01, 0x01, 0x01}, data[:written])

	got := make([]uint32, 4)
	read := c.DecodeDeltas(initial, tags, data[:written], got)
	assert.Equal(t, written, read)
	assert.Equal(t, values, got)

	sumRead, sum := c.SkipDeltas(tags, data[:written])
	assert.Equal(t, 4, sumRead)
	assert.Equal(t, uint32(4), sum)
}
