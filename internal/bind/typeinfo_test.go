package bind

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `nbt:"name"`
	Age  int32  `nbt:"age,omitempty"`
	skip string //nolint:unused
	Ignored string `nbt:"-"`
}

func TestOfBuildsDeclarationOrderedFields(t *testing.T) {
	ti := Of(reflect.TypeOf(sample{}))

	require.Len(t, ti.Fields, 2)
	assert.Equal(t, "name", ti.Fields[0].Name)
	assert.False(t, ti.Fields[0].Optional)
	assert.Equal(t, "age", ti.Fields[1].Name)
	assert.True(t, ti.Fields[1].Optional)
}

func TestOfCachesByType(t *testing.T) {
	a := Of(reflect.TypeOf(sample{}))
	b := Of(reflect.TypeOf(sample{}))
	assert.Same(t, a, b)
}

func TestFieldByNameLookup(t *testing.T) {
	ti := Of(reflect.TypeOf(sample{}))

	f, ok := ti.FieldByName("name")
	require.True(t, ok)
	assert.Equal(t, 0, f.Index)

	_, ok = ti.FieldByName("missing")
	assert.False(t, ok)
}

type duplicateWireName struct {
	A string `nbt:"x"`
	B string `nbt:"x"`
}

func TestOfPanicsOnDuplicateWireName(t *testing.T) {
	assert.Panics(t, func() {
		Of(reflect.TypeOf(duplicateWireName{}))
	})
}
