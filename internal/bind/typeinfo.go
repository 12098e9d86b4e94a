// Package bind caches reflected struct layouts for the binding layer. Field
// wire names are hashed with internal/hash.ID and indexed through
// internal/collision.Tracker, catching two struct fields renamed to the
// same wire name and guarding against a 64-bit hash collision between two
// distinct names.
package bind

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/brinebound/nbt/internal/collision"
	"github.com/brinebound/nbt/internal/hash"
)

// Field describes one declared struct field as the binding layer sees it:
// its wire name (post rename-tag), its index into the struct, and whether
// a missing Compound entry for it is tolerated.
type Field struct {
	Name     string
	Index    int
	Optional bool
}

// TypeInfo is the cached, declaration-ordered field layout for one struct
// type, plus a hash index for O(1) wire-name lookup during from_tree.
type TypeInfo struct {
	Fields []Field
	byHash map[uint64]int // hash.ID(Name) -> index into Fields
	// collides is true when two distinct field names in this struct share
	// a hash; FieldByName then verifies with a linear scan instead of
	// trusting the hash bucket alone.
	collides bool
}

// FieldByName looks up a field by its wire name via a hash-bucketed index,
// falling back to the Fields slice when this type's Tracker flagged a hash
// collision, rather than trusting the hash alone.
func (ti *TypeInfo) FieldByName(name string) (Field, bool) {
	i, ok := ti.byHash[hash.ID(name)]
	if !ok {
		return Field{}, false
	}

	if !ti.collides || ti.Fields[i].Name == name {
		return ti.Fields[i], true
	}

	for _, f := range ti.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

var cache sync.Map // reflect.Type -> *TypeInfo

// Of returns the cached TypeInfo for a struct type, building and storing it
// on first use. t must be a struct type, not a pointer.
func Of(t reflect.Type) *TypeInfo {
	if v, ok := cache.Load(t); ok {
		return v.(*TypeInfo) //nolint:forcetypeassert
	}

	ti := build(t)
	actual, _ := cache.LoadOrStore(t, ti)

	return actual.(*TypeInfo) //nolint:forcetypeassert
}

// build walks t's exported fields in declaration order, applying the same
// `nbt:"name,omitempty"` tag convention encoding/json uses: a bare "-"
// skips the field, a leading name segment renames it, and "omitempty"
// marks the field optional for from_tree's missing-field check.
//
// It panics if two fields resolve to the same wire name — a struct
// definition bug, not a runtime input error — since that is caught once
// per type on first use, not once per value.
func build(t reflect.Type) *TypeInfo {
	ti := &TypeInfo{byHash: make(map[uint64]int)}
	tracker := collision.NewTracker()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}

		name, optional, skip := parseTag(sf)
		if skip {
			continue
		}

		h := hash.ID(name)
		if err := tracker.Track(name, h); err != nil {
			panic(fmt.Sprintf("nbt: %s.%s: %v", t.Name(), sf.Name, err))
		}

		ti.byHash[h] = len(ti.Fields)
		ti.Fields = append(ti.Fields, Field{Name: name, Index: i, Optional: optional})
	}

	ti.collides = tracker.HasCollision()

	return ti
}

func parseTag(sf reflect.StructField) (name string, optional bool, skip bool) {
	tagVal, ok := sf.Tag.Lookup("nbt")
	if !ok {
		return sf.Name, false, false
	}

	parts := strings.Split(tagVal, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}

	name = sf.Name
	if parts[0] != "" {
		name = parts[0]
	}

	for _, opt := range parts[1:] {
		if opt == "omitempty" || opt == "optional" {
			optional = true
		}
	}

	return name, optional, false
}
