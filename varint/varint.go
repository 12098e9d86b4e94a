// Package varint implements the unsigned and zig-zag signed
// variable-length integer encodings used by the LittleVarInt dialect,
// including width-aware overflow detection on decode.
package varint

import "github.com/brinebound/nbt/errs"

// maxVarintBytes is ceil(64/7), the most continuation bytes a 64-bit
// unsigned varint can take before it must be malformed.
const maxVarintBytes = 10

// AppendUvarint appends the unsigned varint encoding of v to buf and
// returns the extended slice.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// UvarintLen returns the number of bytes AppendUvarint(nil, v) would produce,
// without allocating.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Uvarint decodes an unsigned varint from the start of buf against the full
// 64-bit width. It returns the decoded value, the number of bytes consumed,
// and an error if buf is truncated mid-sequence or the encoding overflows
// 64 bits.
func Uvarint(buf []byte) (uint64, int, error) {
	return UvarintN(buf, 64)
}

// UvarintN decodes an unsigned varint from the start of buf, rejecting a
// value that needs more than `bits` bits to represent. Used when decoding
// a 32-bit Int or an array/list length under LittleVarInt.
func UvarintN(buf []byte, bits int) (uint64, int, error) {
	maxBytes := (bits + 6) / 7
	var result uint64

	for i := 0; i < len(buf) && i < maxBytes; i++ {
		b := buf[i]
		chunk := uint64(b & 0x7f)

		// The final allowed byte may only contribute the bits remaining
		// after (maxBytes-1)*7; anything beyond that is an overflow.
		shift := 7 * uint(i)
		if i == maxBytes-1 {
			remaining := bits - 7*i
			if remaining < 7 && chunk>>uint(remaining) != 0 {
				return 0, 0, errs.ErrVarintOverflow
			}
		}

		result |= chunk << shift

		if b < 0x80 {
			return result, i + 1, nil
		}
	}

	if len(buf) < maxBytes {
		return 0, 0, errs.ErrTruncated
	}

	return 0, 0, errs.ErrVarintOverflow
}

// ZigZagEncode converts a signed value to its zig-zag unsigned form:
// 0, -1, 1, -2, 2, ... maps to 0, 1, 2, 3, 4, ...
func ZigZagEncode(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}

// ZigZagDecode applies the canonical S = (U >> 1) ^ -(U & 1) formula.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// AppendZigZag appends the zig-zag varint encoding of a signed value.
func AppendZigZag(buf []byte, v int64) []byte {
	return AppendUvarint(buf, ZigZagEncode(v))
}

// ZigZag decodes a 64-bit zig-zag varint from the start of buf, returning
// the signed value and bytes consumed.
func ZigZag(buf []byte) (int64, int, error) {
	return ZigZagN(buf, 64)
}

// ZigZagN decodes a zig-zag varint against a target bit width, used for
// 32-bit Int payloads and lengths under LittleVarInt.
func ZigZagN(buf []byte, bits int) (int64, int, error) {
	u, n, err := UvarintN(buf, bits)
	if err != nil {
		return 0, 0, err
	}

	return ZigZagDecode(u), n, nil
}
