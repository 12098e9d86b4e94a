package tag

import "iter"

// Compound is an ordered mapping from unique text keys to Tag values.
// Iteration order is insertion order, which is semantically significant:
// it is exactly the order the Writer emits entries in, and is required for
// a bit-exact round-trip.
//
// The zero value is not usable; construct with NewCompound.
type Compound struct {
	keys   []string
	values map[string]Tag
}

// NewCompound returns an empty, ready-to-use Compound.
func NewCompound() *Compound {
	return &Compound{values: make(map[string]Tag)}
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	return len(c.keys)
}

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get returns the tag stored under key, and whether it was found.
func (c *Compound) Get(key string) (Tag, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set inserts or overwrites the tag stored under key. Overwriting an
// existing key does not move it in iteration order; inserting a new key
// appends it, preserving the insertion-order invariant.
func (c *Compound) Set(key string, value Tag) {
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}

	c.values[key] = value
}

// Delete removes key, if present, and compacts the key order.
func (c *Compound) Delete(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}

	delete(c.values, key)

	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by the caller.
func (c *Compound) Keys() []string {
	return c.keys
}

// All returns an iterator over (key, tag) pairs in insertion order, the
// order the Writer walks a Compound in.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

// Path walks nested compounds by key, returning the tag found at the end
// of the path, if any. This is a direct walk with no caching or index
// structure built.
func (c *Compound) Path(keys ...string) (Tag, bool) {
	cur := c
	for i, k := range keys {
		v, ok := cur.Get(k)
		if !ok {
			return Tag{}, false
		}

		if i == len(keys)-1 {
			return v, true
		}

		next, ok := v.AsCompound()
		if !ok {
			return Tag{}, false
		}

		cur = next
	}

	return Tag{}, false
}

// Get walks a path of compound keys starting at t, returning the tag found
// at the end, if any. See Compound.Path.
func (t Tag) Get(keys ...string) (Tag, bool) {
	c, ok := t.AsCompound()
	if !ok {
		return Tag{}, false
	}

	return c.Path(keys...)
}
