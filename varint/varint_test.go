package varint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinebound/nbt/errs"
)

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40, ^uint64(0)}

	for _, v := range cases {
		buf := AppendUvarint(nil, v)
		assert.Len(t, buf, UvarintLen(v))

		got, n, err := Uvarint(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestUvarintTruncated(t *testing.T) {
	// A continuation byte with nothing after it.
	_, _, err := Uvarint([]byte{0x80})
	assert.ErrorIs(t, err, errs.ErrTruncated)
}

func TestUvarintNOverflow(t *testing.T) {
	// At 32-bit width a varint takes at most 5 bytes, and the fifth byte
	// can hold only 4 bits (32 - 4*7 = 4); a fifth byte of 0x10 sets bit 32
	// and overflows.
	overflowing := []byte{0xff, 0xff, 0xff, 0xff, 0x10}
	_, _, err := UvarintN(overflowing, 32)
	assert.Error(t, err)
}

func TestZigZagEncodeDecode(t *testing.T) {
	cases := []int64{0, -1, 1, -2, 2, 2147483647, -2147483648}

	for _, v := range cases {
		buf := AppendZigZag(nil, v)
		got, n, err := ZigZag(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestZigZagCanonicalFormula(t *testing.T) {
	// Canonical formula: S = (U >> 1) ^ -(U & 1).
	assert.EqualValues(t, 0, ZigZagDecode(0))
	assert.EqualValues(t, -1, ZigZagDecode(1))
	assert.EqualValues(t, 1, ZigZagDecode(2))
	assert.EqualValues(t, -2, ZigZagDecode(3))
}
