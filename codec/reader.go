// Package codec implements the NBT binary reader and writer: the wire codec
// parameterized by Dialect and Header. A Reader wraps a borrowed byte slice
// plus a cursor; a Writer appends to a pooled buffer. Each is constructed
// once per call and is not reused.
package codec

import (
	"math"
	"unicode/utf8"

	"github.com/brinebound/nbt/dialect"
	"github.com/brinebound/nbt/errs"
	"github.com/brinebound/nbt/internal/options"
	"github.com/brinebound/nbt/tag"
	"github.com/brinebound/nbt/varint"
)

// Reader parses a byte buffer into a root Tag under a fixed Dialect and
// Header configuration. It is not thread-safe and not reusable: one Reader
// consumes one buffer once.
type Reader struct {
	data             []byte
	pos              int
	dialect          dialect.Dialect
	rejectDuplicates bool
}

// ReaderOption configures a Reader at construction time.
type ReaderOption = options.Option[*Reader]

// WithRejectDuplicateKeys makes a Compound read fail with
// errs.ErrDuplicateKey on a repeated key instead of the default last-wins
// policy.
func WithRejectDuplicateKeys() ReaderOption {
	return options.NoError(func(r *Reader) {
		r.rejectDuplicates = true
	})
}

// NewReader creates a Reader over data, positioned past the optional
// Bedrock header if hdr == dialect.With.
func NewReader(data []byte, d dialect.Dialect, hdr dialect.Header, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{data: data, dialect: d}

	if hdr == dialect.With {
		if len(data) < dialect.HeaderSize {
			return nil, errs.ErrHeaderTruncated
		}

		r.pos = dialect.HeaderSize
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// ReadRoot reads the root TagId, the root name, and the root payload, and
// returns the parsed tag together with the name recovered at that step
// (needed to reproduce a bit-exact round-trip with Writer.WriteRoot).
func (r *Reader) ReadRoot() (tag.Tag, string, error) {
	id, err := r.readTagID()
	if err != nil {
		return tag.Tag{}, "", err
	}

	if id == tag.IDEnd {
		return tag.Tag{}, "", errs.ErrUnexpectedEnd
	}

	name, err := r.readString()
	if err != nil {
		return tag.Tag{}, "", err
	}

	t, err := r.readPayload(id)
	if err != nil {
		return tag.Tag{}, "", err
	}

	return t, name, nil
}

// readPayload reads the payload for a non-End TagId, recursing into List
// and Compound as needed.
func (r *Reader) readPayload(id tag.ID) (tag.Tag, error) {
	switch id {
	case tag.IDByte:
		v, err := r.readI8()
		return tag.Byte(v), err
	case tag.IDShort:
		v, err := r.readI16()
		return tag.Short(v), err
	case tag.IDInt:
		v, err := r.readI32()
		return tag.Int(v), err
	case tag.IDLong:
		v, err := r.readI64()
		return tag.Long(v), err
	case tag.IDFloat:
		v, err := r.readF32()
		return tag.Float(v), err
	case tag.IDDouble:
		v, err := r.readF64()
		return tag.Double(v), err
	case tag.IDByteArray:
		return r.readByteArray()
	case tag.IDString:
		s, err := r.readString()
		return tag.String(s), err
	case tag.IDList:
		return r.readList()
	case tag.IDCompound:
		return r.readCompound()
	case tag.IDIntArray:
		return r.readIntArray()
	case tag.IDLongArray:
		return r.readLongArray()
	case tag.IDEnd:
		return tag.Tag{}, errs.ErrUnexpectedEnd
	default:
		return tag.Tag{}, errs.ErrUnknownTagID
	}
}

func (r *Reader) readTagID() (tag.ID, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}

	id := tag.ID(b)
	if !id.Valid() {
		return 0, errs.ErrUnknownTagID
	}

	return id, nil
}

func (r *Reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errs.ErrTruncated
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, errs.ErrTruncated
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *Reader) readI8() (int8, error) {
	b, err := r.readByte()
	return int8(b), err //nolint:gosec
}

func (r *Reader) readI16() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return int16(r.dialect.Engine().Uint16(b)), nil //nolint:gosec
}

func (r *Reader) readI32() (int32, error) {
	if r.dialect.VarInt() {
		v, n, err := varint.ZigZagN(r.data[r.pos:], 32)
		if err != nil {
			return 0, err
		}

		r.pos += n

		return int32(v), nil
	}

	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return int32(r.dialect.Engine().Uint32(b)), nil //nolint:gosec
}

func (r *Reader) readI64() (int64, error) {
	if r.dialect.VarInt() {
		v, n, err := varint.ZigZag(r.data[r.pos:])
		if err != nil {
			return 0, err
		}

		r.pos += n

		return v, nil
	}

	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return int64(r.dialect.Engine().Uint64(b)), nil //nolint:gosec
}

// readLength reads a sequence length (list length, array count). Floats
// are always fixed-width, but lengths follow the same Int rule as readI32
// under LittleVarInt.
func (r *Reader) readLength() (int, error) {
	n, err := r.readI32()
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, errs.ErrNegativeLength
	}

	return int(n), nil
}

func (r *Reader) readF32() (float32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(r.dialect.Engine().Uint32(b)), nil
}

func (r *Reader) readF64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.dialect.Engine().Uint64(b)), nil
}

// readString reads a length-prefixed string: the length is an unsigned
// 16-bit fixed field in Big/Little, or an unsigned (non-zig-zag) varint in
// LittleVarInt.
func (r *Reader) readString() (string, error) {
	var length int

	if r.dialect.VarInt() {
		u, n, err := varint.UvarintN(r.data[r.pos:], 32)
		if err != nil {
			return "", err
		}

		r.pos += n
		length = int(u)
	} else {
		b, err := r.take(2)
		if err != nil {
			return "", err
		}

		length = int(r.dialect.Engine().Uint16(b))
	}

	b, err := r.take(length)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.ErrInvalidText
	}

	return string(b), nil
}

func (r *Reader) readByteArray() (tag.Tag, error) {
	n, err := r.readLength()
	if err != nil {
		return tag.Tag{}, err
	}

	b, err := r.take(n)
	if err != nil {
		return tag.Tag{}, err
	}

	out := make([]int8, n)
	for i, v := range b {
		out[i] = int8(v) //nolint:gosec
	}

	return tag.ByteArray(out), nil
}

func (r *Reader) readIntArray() (tag.Tag, error) {
	n, err := r.readLength()
	if err != nil {
		return tag.Tag{}, err
	}

	out := make([]int32, n)
	for i := range out {
		v, err := r.readI32()
		if err != nil {
			return tag.Tag{}, err
		}

		out[i] = v
	}

	return tag.IntArray(out), nil
}

func (r *Reader) readLongArray() (tag.Tag, error) {
	n, err := r.readLength()
	if err != nil {
		return tag.Tag{}, err
	}

	out := make([]int64, n)
	for i := range out {
		v, err := r.readI64()
		if err != nil {
			return tag.Tag{}, err
		}

		out[i] = v
	}

	return tag.LongArray(out), nil
}

func (r *Reader) readList() (tag.Tag, error) {
	elem, err := r.readTagID()
	if err != nil {
		return tag.Tag{}, err
	}

	n, err := r.readLength()
	if err != nil {
		return tag.Tag{}, err
	}

	items := make([]tag.Tag, n)

	for i := range items {
		if elem == tag.IDEnd {
			// An End element type with nonzero length is malformed; only
			// the canonical empty-list encoding (elem=End, length=0) is valid.
			return tag.Tag{}, errs.ErrListTypeMismatch
		}

		item, err := r.readPayload(elem)
		if err != nil {
			return tag.Tag{}, err
		}

		items[i] = item
	}

	return tag.ListTag(elem, items), nil
}

func (r *Reader) readCompound() (tag.Tag, error) {
	c := tag.NewCompound()

	for {
		id, err := r.readTagID()
		if err != nil {
			return tag.Tag{}, err
		}

		if id == tag.IDEnd {
			break
		}

		name, err := r.readString()
		if err != nil {
			return tag.Tag{}, err
		}

		payload, err := r.readPayload(id)
		if err != nil {
			return tag.Tag{}, err
		}

		// The format does not ban duplicate keys on the wire; the default
		// is last-wins (documented in DESIGN.md), but WithRejectDuplicateKeys
		// makes a repeat a structural error.
		if r.rejectDuplicates && c.Has(name) {
			return tag.Tag{}, errs.ErrDuplicateKey
		}

		c.Set(name, payload)
	}

	return tag.CompoundTag(c), nil
}
