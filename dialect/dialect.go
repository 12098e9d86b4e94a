// Package dialect defines the three NBT wire dialects and the optional
// Bedrock-style file header, and selects byte order per dialect via the
// endian package's EndianEngine abstraction.
package dialect

import "github.com/brinebound/nbt/endian"

// Dialect selects endianness and integer encoding for lengths and the
// Int/Long payload kinds.
type Dialect uint8

const (
	// Big is Java Edition's big-endian, fixed-width dialect.
	Big Dialect = iota
	// Little is Bedrock's little-endian, fixed-width dialect.
	Little
	// LittleVarInt is Bedrock's little-endian dialect with zig-zag
	// varint-encoded Int/Long payloads and lengths.
	LittleVarInt
)

func (d Dialect) String() string {
	switch d {
	case Big:
		return "Big"
	case Little:
		return "Little"
	case LittleVarInt:
		return "LittleVarInt"
	default:
		return "Unknown"
	}
}

// VarInt reports whether Int/Long payloads and sequence lengths are
// zig-zag varint encoded under d.
func (d Dialect) VarInt() bool {
	return d == LittleVarInt
}

// Engine combines binary.ByteOrder and binary.AppendByteOrder, so
// fixed-width scalars can be both read with Uint16/Uint32/Uint64 and
// appended with AppendUint16/... without an intermediate allocation.
type Engine = endian.EndianEngine

// Engine returns the fixed-width byte-order engine for d. LittleVarInt uses
// the little-endian engine for its fixed-width fields (Short, Float,
// Double, and the two 8-bit scalars); its Int/Long/length fields bypass
// this engine entirely in favor of the varint package.
func (d Dialect) Engine() Engine {
	if d == Big {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Header selects whether the optional 8-byte Bedrock-style file header is
// present.
type Header uint8

const (
	// Without omits the 8-byte storage_version|payload_length prefix.
	Without Header = iota
	// With reads/writes the 8-byte storage_version|payload_length prefix.
	With
)

func (h Header) String() string {
	if h == With {
		return "With"
	}

	return "Without"
}

// HeaderSize is the fixed size in bytes of the optional Bedrock file header.
const HeaderSize = 8
