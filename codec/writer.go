package codec

import (
	"math"
	"unicode/utf8"

	"github.com/brinebound/nbt/dialect"
	"github.com/brinebound/nbt/errs"
	"github.com/brinebound/nbt/internal/pool"
	"github.com/brinebound/nbt/tag"
	"github.com/brinebound/nbt/varint"
)

// Writer serializes a root Tag to bytes under a fixed Dialect and Header
// configuration. Not thread-safe, not reusable — one Writer produces one
// buffer once.
type Writer struct {
	buf     *pool.ByteBuffer
	dialect dialect.Dialect
	header  dialect.Header
}

// NewWriter creates a Writer for the given dialect and header configuration.
func NewWriter(d dialect.Dialect, hdr dialect.Header) *Writer {
	return &Writer{
		buf:     pool.GetBuffer(),
		dialect: d,
		header:  hdr,
	}
}

// WriteRoot serializes root under the given name. If the header is enabled,
// the root must be a Compound carrying an Int field named StorageVersion; a
// missing or mistyped field fails the write rather than emitting a
// malformed header.
func (w *Writer) WriteRoot(root tag.Tag, name string) ([]byte, error) {
	defer pool.PutBuffer(w.buf)

	if w.header == dialect.With {
		w.buf.Grow(dialect.HeaderSize)
		w.buf.MustWrite(make([]byte, dialect.HeaderSize))
	}

	headerStart := w.buf.Len()

	w.writeTagID(root.ID())

	if err := w.writeString(name); err != nil {
		return nil, err
	}

	if err := w.writePayload(root); err != nil {
		return nil, err
	}

	out := append([]byte(nil), w.buf.Bytes()...)

	if w.header == dialect.With {
		storageVersion, err := storageVersionOf(root)
		if err != nil {
			return nil, err
		}

		bh := dialect.BedrockHeader{
			StorageVersion: storageVersion,
			PayloadLength:  uint32(len(out) - headerStart), //nolint:gosec
		}
		copy(out[:dialect.HeaderSize], bh.Bytes())
	}

	return out, nil
}

// storageVersionOf extracts the StorageVersion Int field required by a
// header-framed write.
func storageVersionOf(root tag.Tag) (int32, error) {
	c, ok := root.AsCompound()
	if !ok {
		return 0, errs.ErrHeaderNotCompound
	}

	v, ok := c.Get("StorageVersion")
	if !ok {
		return 0, errs.ErrMissingStorageVersion
	}

	iv, ok := v.AsInt()
	if !ok {
		return 0, errs.ErrMissingStorageVersion
	}

	return iv, nil
}

func (w *Writer) writePayload(t tag.Tag) error {
	switch t.ID() {
	case tag.IDByte:
		v, _ := t.AsByte()
		w.writeI8(v)
	case tag.IDShort:
		v, _ := t.AsShort()
		w.writeI16(v)
	case tag.IDInt:
		v, _ := t.AsInt()
		w.writeI32(v)
	case tag.IDLong:
		v, _ := t.AsLong()
		w.writeI64(v)
	case tag.IDFloat:
		v, _ := t.AsFloat()
		w.writeF32(v)
	case tag.IDDouble:
		v, _ := t.AsDouble()
		w.writeF64(v)
	case tag.IDByteArray:
		v, _ := t.AsByteArray()
		w.writeByteArray(v)
	case tag.IDString:
		v, _ := t.AsString()
		return w.writeString(v)
	case tag.IDList:
		v, _ := t.AsList()
		return w.writeList(v)
	case tag.IDCompound:
		v, _ := t.AsCompound()
		return w.writeCompound(v)
	case tag.IDIntArray:
		v, _ := t.AsIntArray()
		w.writeIntArray(v)
	case tag.IDLongArray:
		v, _ := t.AsLongArray()
		w.writeLongArray(v)
	case tag.IDEnd:
		return errs.ErrUnexpectedEnd
	default:
		return errs.ErrUnknownTagID
	}

	return nil
}

func (w *Writer) writeTagID(id tag.ID) {
	w.buf.Grow(1)
	w.buf.MustWrite([]byte{byte(id)})
}

func (w *Writer) writeI8(v int8) {
	w.buf.Grow(1)
	w.buf.MustWrite([]byte{byte(v)})
}

func (w *Writer) writeI16(v int16) {
	w.buf.Grow(2)
	b := w.buf.Bytes()
	w.buf.B = w.dialect.Engine().AppendUint16(b, uint16(v)) //nolint:gosec
}

func (w *Writer) writeI32(v int32) {
	if w.dialect.VarInt() {
		w.buf.B = varint.AppendZigZag(w.buf.Bytes(), int64(v))
		return
	}

	w.buf.Grow(4)
	w.buf.B = w.dialect.Engine().AppendUint32(w.buf.Bytes(), uint32(v)) //nolint:gosec
}

func (w *Writer) writeI64(v int64) {
	if w.dialect.VarInt() {
		w.buf.B = varint.AppendZigZag(w.buf.Bytes(), v)
		return
	}

	w.buf.Grow(8)
	w.buf.B = w.dialect.Engine().AppendUint64(w.buf.Bytes(), uint64(v)) //nolint:gosec
}

// writeLength writes a sequence length under the same rule as writeI32.
func (w *Writer) writeLength(n int) {
	w.writeI32(int32(n)) //nolint:gosec
}

func (w *Writer) writeF32(v float32) {
	w.buf.Grow(4)
	w.buf.B = w.dialect.Engine().AppendUint32(w.buf.Bytes(), math.Float32bits(v))
}

func (w *Writer) writeF64(v float64) {
	w.buf.Grow(8)
	w.buf.B = w.dialect.Engine().AppendUint64(w.buf.Bytes(), math.Float64bits(v))
}

// writeString writes a length-prefixed string: unsigned 16-bit fixed
// length in Big/Little, unsigned varint length in LittleVarInt.
func (w *Writer) writeString(s string) error {
	if !utf8.ValidString(s) {
		return errs.ErrInvalidText
	}

	if w.dialect.VarInt() {
		w.buf.B = varint.AppendUvarint(w.buf.Bytes(), uint64(len(s)))
	} else {
		if len(s) > math.MaxUint16 {
			return errs.ErrTextTooLong
		}

		w.buf.Grow(2)
		w.buf.B = w.dialect.Engine().AppendUint16(w.buf.Bytes(), uint16(len(s))) //nolint:gosec
	}

	w.buf.Grow(len(s))
	w.buf.MustWrite([]byte(s))

	return nil
}

func (w *Writer) writeByteArray(v []int8) {
	w.writeLength(len(v))
	w.buf.Grow(len(v))

	for _, b := range v {
		w.buf.MustWrite([]byte{byte(b)})
	}
}

func (w *Writer) writeIntArray(v []int32) {
	w.writeLength(len(v))

	for _, n := range v {
		w.writeI32(n)
	}
}

func (w *Writer) writeLongArray(v []int64) {
	w.writeLength(len(v))

	for _, n := range v {
		w.writeI64(n)
	}
}

// writeList writes the element TagId, the count, then each element. An
// empty list writes element TagId = End and count = 0. An item whose TagId
// differs from the element TagId fails the write with ErrListTypeMismatch.
func (w *Writer) writeList(l tag.List) error {
	w.writeTagID(l.Elem)
	w.writeLength(len(l.Items))

	for _, item := range l.Items {
		if item.ID() != l.Elem {
			return errs.ErrListTypeMismatch
		}

		if err := w.writePayload(item); err != nil {
			return err
		}
	}

	return nil
}

// writeCompound writes each entry in insertion order, then a terminating
// End TagId.
func (w *Writer) writeCompound(c *tag.Compound) error {
	for k, v := range c.All() {
		w.writeTagID(v.ID())

		if err := w.writeString(k); err != nil {
			return err
		}

		if err := w.writePayload(v); err != nil {
			return err
		}
	}

	w.writeTagID(tag.IDEnd)

	return nil
}
