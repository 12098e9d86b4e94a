package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsRoundTripThroughAccessors(t *testing.T) {
	b := Byte(127)
	v, ok := b.AsByte()
	require.True(t, ok)
	assert.EqualValues(t, 127, v)

	s := Short(-32768)
	sv, ok := s.AsShort()
	require.True(t, ok)
	assert.EqualValues(t, -32768, sv)

	i := Int(2147483647)
	iv, ok := i.AsInt()
	require.True(t, ok)
	assert.EqualValues(t, 2147483647, iv)

	l := Long(9223372036854775807)
	lv, ok := l.AsLong()
	require.True(t, ok)
	assert.EqualValues(t, 9223372036854775807, lv)

	str := String("hello world")
	strv, ok := str.AsString()
	require.True(t, ok)
	assert.Equal(t, "hello world", strv)
}

func TestAccessorsRejectWrongKind(t *testing.T) {
	i := Int(42)

	_, ok := i.AsShort()
	assert.False(t, ok)

	_, ok = i.AsCompound()
	assert.False(t, ok)
}

func TestBooleanEncoding(t *testing.T) {
	tru := Boolean(true)
	v, ok := tru.AsByte()
	require.True(t, ok)
	assert.EqualValues(t, 1, v)

	b, ok := tru.AsBoolean()
	require.True(t, ok)
	assert.True(t, b)

	_, ok = Byte(2).AsBoolean()
	assert.False(t, ok, "any byte other than 0/1 is not a valid boolean")
}

func TestEmptyListCarriesEndElementID(t *testing.T) {
	empty := ListTag(IDEnd, nil)
	list, ok := empty.AsList()
	require.True(t, ok)
	assert.Equal(t, IDEnd, list.Elem)
	assert.Empty(t, list.Items)
}

func TestIDValid(t *testing.T) {
	assert.True(t, IDCompound.Valid())
	assert.True(t, IDLongArray.Valid())
	assert.False(t, ID(13).Valid())
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "Compound", IDCompound.String())
	assert.Equal(t, "Unknown", ID(200).String())
}
