// Package binding implements the reflective producer/consumer pair — ToTree
// and FromTree — that translate between ordinary Go values and Tag trees.
// A unit enum variant binds to a bare String; a payload-carrying variant
// binds to a single-key Compound; struct fields are walked in declaration
// order. Struct descriptors are cached by internal/bind so repeated
// ToTree/FromTree calls on the same type pay the reflection cost once.
package binding

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/brinebound/nbt/errs"
	"github.com/brinebound/nbt/internal/bind"
	"github.com/brinebound/nbt/tag"
)

// ByteArray, IntArray, and LongArray are the distinguished wrapper shapes
// used to disambiguate a numeric array tag from a plain List of the same
// element kind. A field or value of one of these named types
// always produces and expects the matching array tag; a plain []int8,
// []int32, or []int64 (not one of these types) is instead bound as a List.
type ByteArray []int8
type IntArray []int32
type LongArray []int64

// Enum is implemented by a user type to drive the producer side of an
// enumeration. NBTVariant returns the wire variant name and, for a
// payload-carrying variant, the Go value to serialize as
// the Compound's single value; hasPayload is false for a unit variant.
type Enum interface {
	NBTVariant() (name string, hasPayload bool, payload any)
}

// EnumReceiver is implemented by a pointer receiver to drive the consumer
// side of an enumeration. FromTree calls ReceiveNBTVariant with the
// recovered variant name; payload is the Compound's single value and
// hasPayload reports whether a payload was present (a unit variant String
// tag carries none). The receiver is responsible for binding payload into
// its own state, typically via a nested FromTree call.
type EnumReceiver interface {
	ReceiveNBTVariant(name string, payload tag.Tag, hasPayload bool) error
}

// ToTree is the producer half of the binding layer: it translates v into
// a Tag tree.
func ToTree(v any) (tag.Tag, error) {
	if e, ok := v.(Enum); ok {
		return enumToTree(e)
	}

	return valueToTree(reflect.ValueOf(v))
}

func enumToTree(e Enum) (tag.Tag, error) {
	name, hasPayload, payload := e.NBTVariant()
	if !hasPayload {
		return tag.String(name), nil
	}

	payloadTag, err := ToTree(payload)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("nbt: binding enum variant %q: %w", name, err)
	}

	c := tag.NewCompound()
	c.Set(name, payloadTag)

	return tag.CompoundTag(c), nil
}

func valueToTree(rv reflect.Value) (tag.Tag, error) { //nolint:cyclop
	if !rv.IsValid() {
		return tag.Tag{}, errs.ErrUnsupportedShape
	}

	switch v := rv.Interface().(type) {
	case ByteArray:
		return tag.ByteArray([]int8(v)), nil
	case IntArray:
		return tag.IntArray([]int32(v)), nil
	case LongArray:
		return tag.LongArray([]int64(v)), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return tag.Boolean(rv.Bool()), nil
	case reflect.Int8:
		return tag.Byte(int8(rv.Int())), nil
	case reflect.Int16:
		return tag.Short(int16(rv.Int())), nil
	case reflect.Int32:
		return tag.Int(int32(rv.Int())), nil
	case reflect.Int64:
		return tag.Long(rv.Int()), nil
	case reflect.Uint8:
		return tag.Byte(int8(rv.Uint())), nil //nolint:gosec
	case reflect.Uint16:
		return tag.Short(int16(rv.Uint())), nil //nolint:gosec
	case reflect.Uint32:
		return tag.Int(int32(rv.Uint())), nil //nolint:gosec
	case reflect.Uint64:
		return tag.Long(int64(rv.Uint())), nil //nolint:gosec
	case reflect.Float32:
		return tag.Float(float32(rv.Float())), nil
	case reflect.Float64:
		return tag.Double(rv.Float()), nil
	case reflect.String:
		return tag.String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return sliceToTree(rv)
	case reflect.Map:
		return mapToTree(rv)
	case reflect.Struct:
		return structToTree(rv)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			// A nil pointer or interface has no shape to bind; a present
			// pointer/interface is simply dereferenced.
			return tag.Tag{}, errs.ErrUnsupportedShape
		}

		return valueToTree(rv.Elem())
	default:
		return tag.Tag{}, errs.ErrUnsupportedShape
	}
}

func sliceToTree(rv reflect.Value) (tag.Tag, error) {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]int8, rv.Len())
		for i := range out {
			out[i] = int8(rv.Index(i).Uint()) //nolint:gosec
		}

		return tag.ByteArray(out), nil
	}

	items := make([]tag.Tag, rv.Len())

	var elem tag.ID = tag.IDEnd

	for i := 0; i < rv.Len(); i++ {
		t, err := valueToTree(rv.Index(i))
		if err != nil {
			return tag.Tag{}, fmt.Errorf("nbt: binding list element %d: %w", i, err)
		}

		items[i] = t
		elem = t.ID()
	}

	return tag.ListTag(elem, items), nil
}

func mapToTree(rv reflect.Value) (tag.Tag, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return tag.Tag{}, errs.ErrUnsupportedShape
	}

	// Go map iteration order is unspecified; sort keys so ToTree is
	// deterministic across calls.
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	byName := make(map[string]reflect.Value, len(keys))

	for i, k := range keys {
		names[i] = k.String()
		byName[k.String()] = rv.MapIndex(k)
	}

	sort.Strings(names)

	c := tag.NewCompound()

	for _, name := range names {
		t, err := valueToTree(byName[name])
		if err != nil {
			return tag.Tag{}, fmt.Errorf("nbt: binding map key %q: %w", name, err)
		}

		c.Set(name, t)
	}

	return tag.CompoundTag(c), nil
}

func structToTree(rv reflect.Value) (tag.Tag, error) {
	ti := bind.Of(rv.Type())
	c := tag.NewCompound()

	for _, f := range ti.Fields {
		t, err := valueToTree(rv.Field(f.Index))
		if err != nil {
			return tag.Tag{}, fmt.Errorf("nbt: binding field %q: %w", f.Name, err)
		}

		c.Set(f.Name, t)
	}

	return tag.CompoundTag(c), nil
}

// FromTree is the consumer half of the binding layer: it populates dst from
// t. dst must be a non-nil pointer.
func FromTree(t tag.Tag, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errs.ErrNotAddressable
	}

	if r, ok := dst.(EnumReceiver); ok {
		return enumFromTree(t, r)
	}

	return valueFromTree(t, rv.Elem())
}

func enumFromTree(t tag.Tag, r EnumReceiver) error {
	if s, ok := t.AsString(); ok {
		return r.ReceiveNBTVariant(s, tag.Tag{}, false)
	}

	c, ok := t.AsCompound()
	if !ok || c.Len() != 1 {
		return errs.ErrUnsupportedShape
	}

	name := c.Keys()[0]
	payload, _ := c.Get(name)

	return r.ReceiveNBTVariant(name, payload, true)
}

func valueFromTree(t tag.Tag, rv reflect.Value) error { //nolint:cyclop
	switch rv.Interface().(type) {
	case ByteArray:
		v, ok := t.AsByteArray()
		if !ok {
			return errs.ErrExpectedByteArray
		}

		rv.Set(reflect.ValueOf(ByteArray(v)))

		return nil
	case IntArray:
		v, ok := t.AsIntArray()
		if !ok {
			return errs.ErrExpectedIntArray
		}

		rv.Set(reflect.ValueOf(IntArray(v)))

		return nil
	case LongArray:
		v, ok := t.AsLongArray()
		if !ok {
			return errs.ErrExpectedLongArray
		}

		rv.Set(reflect.ValueOf(LongArray(v)))

		return nil
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Bool:
		b, ok := t.AsBoolean()
		if !ok {
			if _, isByte := t.AsByte(); isByte {
				return errs.ErrInvalidBool
			}

			return errs.ErrExpectedByte
		}

		rv.SetBool(b)

		return nil
	case reflect.Int8:
		v, ok := t.AsByte()
		if !ok {
			return errs.ErrExpectedByte
		}

		rv.SetInt(int64(v))

		return nil
	case reflect.Int16:
		v, ok := t.AsShort()
		if !ok {
			return errs.ErrExpectedShort
		}

		rv.SetInt(int64(v))

		return nil
	case reflect.Int32:
		v, ok := t.AsInt()
		if !ok {
			return errs.ErrExpectedInt
		}

		rv.SetInt(int64(v))

		return nil
	case reflect.Int64:
		v, ok := t.AsLong()
		if !ok {
			return errs.ErrExpectedLong
		}

		rv.SetInt(v)

		return nil
	case reflect.Uint8:
		v, ok := t.AsByte()
		if !ok {
			return errs.ErrExpectedByte
		}

		rv.SetUint(uint64(uint8(v))) //nolint:gosec

		return nil
	case reflect.Uint16:
		v, ok := t.AsShort()
		if !ok {
			return errs.ErrExpectedShort
		}

		rv.SetUint(uint64(uint16(v))) //nolint:gosec

		return nil
	case reflect.Uint32:
		v, ok := t.AsInt()
		if !ok {
			return errs.ErrExpectedInt
		}

		rv.SetUint(uint64(uint32(v))) //nolint:gosec

		return nil
	case reflect.Uint64:
		v, ok := t.AsLong()
		if !ok {
			return errs.ErrExpectedLong
		}

		rv.SetUint(uint64(v)) //nolint:gosec

		return nil
	case reflect.Float32:
		v, ok := t.AsFloat()
		if !ok {
			return errs.ErrExpectedFloat
		}

		rv.SetFloat(float64(v))

		return nil
	case reflect.Float64:
		v, ok := t.AsDouble()
		if !ok {
			return errs.ErrExpectedDouble
		}

		rv.SetFloat(v)

		return nil
	case reflect.String:
		v, ok := t.AsString()
		if !ok {
			return errs.ErrExpectedString
		}

		rv.SetString(v)

		return nil
	case reflect.Slice, reflect.Array:
		return sliceFromTree(t, rv)
	case reflect.Map:
		return mapFromTree(t, rv)
	case reflect.Struct:
		return structFromTree(t, rv)
	case reflect.Ptr:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}

		return valueFromTree(t, rv.Elem())
	default:
		return errs.ErrUnsupportedShape
	}
}

func sliceFromTree(t tag.Tag, rv reflect.Value) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		v, ok := t.AsByteArray()
		if !ok {
			return errs.ErrExpectedByteArray
		}

		out := reflect.MakeSlice(rv.Type(), len(v), len(v))
		for i, b := range v {
			out.Index(i).SetUint(uint64(uint8(b))) //nolint:gosec
		}

		rv.Set(out)

		return nil
	}

	l, ok := t.AsList()
	if !ok {
		return errs.ErrExpectedList
	}

	out := reflect.MakeSlice(rv.Type(), len(l.Items), len(l.Items))

	for i, item := range l.Items {
		if err := valueFromTree(item, out.Index(i)); err != nil {
			return fmt.Errorf("nbt: binding list element %d: %w", i, err)
		}
	}

	rv.Set(out)

	return nil
}

func mapFromTree(t tag.Tag, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return errs.ErrUnsupportedShape
	}

	c, ok := t.AsCompound()
	if !ok {
		return errs.ErrExpectedCompound
	}

	out := reflect.MakeMapWithSize(rv.Type(), c.Len())

	for k, v := range c.All() {
		elem := reflect.New(rv.Type().Elem()).Elem()
		if err := valueFromTree(v, elem); err != nil {
			return fmt.Errorf("nbt: binding map key %q: %w", k, err)
		}

		out.SetMapIndex(reflect.ValueOf(k), elem)
	}

	rv.Set(out)

	return nil
}

func structFromTree(t tag.Tag, rv reflect.Value) error {
	c, ok := t.AsCompound()
	if !ok {
		return errs.ErrExpectedCompound
	}

	ti := bind.Of(rv.Type())
	seen := make(map[string]bool, len(ti.Fields))

	for key, val := range c.All() {
		f, ok := ti.FieldByName(key)
		if !ok {
			continue // unknown Compound key, ignored
		}

		if err := valueFromTree(val, rv.Field(f.Index)); err != nil {
			return fmt.Errorf("nbt: binding field %q: %w", f.Name, err)
		}

		seen[f.Name] = true
	}

	for _, f := range ti.Fields {
		if !f.Optional && !seen[f.Name] {
			return fmt.Errorf("nbt: field %q: %w", f.Name, errs.ErrValueMissing)
		}
	}

	return nil
}
