package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundPreservesInsertionOrder(t *testing.T) {
	c := NewCompound()
	c.Set("z", Int(1))
	c.Set("a", Int(2))
	c.Set("m", Int(3))

	assert.Equal(t, []string{"z", "a", "m"}, c.Keys())

	var gotKeys []string
	for k := range c.All() {
		gotKeys = append(gotKeys, k)
	}
	assert.Equal(t, []string{"z", "a", "m"}, gotKeys)
}

func TestCompoundOverwriteDoesNotReorder(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("a", Int(99))

	assert.Equal(t, []string{"a", "b"}, c.Keys())

	v, ok := c.Get("a")
	require.True(t, ok)
	iv, _ := v.AsInt()
	assert.EqualValues(t, 99, iv)
}

func TestCompoundDeleteCompactsOrder(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("c", Int(3))
	c.Delete("b")

	assert.Equal(t, []string{"a", "c"}, c.Keys())
	assert.False(t, c.Has("b"))
}

func TestCompoundPath(t *testing.T) {
	inner := NewCompound()
	inner.Set("name", String("Zesty"))

	outer := NewCompound()
	outer.Set("player", CompoundTag(inner))

	root := CompoundTag(outer)

	v, ok := root.Get("player", "name")
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "Zesty", s)

	_, ok = root.Get("player", "missing")
	assert.False(t, ok)

	_, ok = root.Get("missing")
	assert.False(t, ok)
}
