// Package nbt provides a space-efficient, self-describing binary tree
// format for structured data, plus the reflective binding layer that
// translates ordinary Go values to and from it.
//
// # Core Features
//
//   - Three wire dialects: Big (Java Edition), Little and LittleVarInt
//     (Bedrock), selecting endianness and integer width (dialect package)
//   - Optional 8-byte Bedrock-style file header coupled to a root
//     StorageVersion field (dialect.BedrockHeader)
//   - DEFLATE-family compression: Deflate, Gzip, DeflateRaw (compress package)
//   - Reflective to-tree/from-tree binding with struct-tag renaming and a
//     distinguished-wrapper convention for numeric arrays (binding package)
//
// # Basic Usage
//
// Marshaling a struct to bytes:
//
//	type Player struct {
//	    Name string `nbt:"name"`
//	    HP   int32  `nbt:"hp"`
//	}
//
//	data, err := nbt.Marshal(Player{Name: "Steve", HP: 20}, "root", dialect.Big, dialect.Without)
//
// Unmarshaling bytes back into a struct:
//
//	var p Player
//	_, err := nbt.Unmarshal(data, &p, dialect.Big, dialect.Without)
//
// For direct Tag-tree access (no reflection), use the codec package's
// Reader/Writer and the tag package's Tag/Compound/List types directly.
package nbt

import (
	"github.com/brinebound/nbt/binding"
	"github.com/brinebound/nbt/codec"
	"github.com/brinebound/nbt/compress"
	"github.com/brinebound/nbt/dialect"
	"github.com/brinebound/nbt/tag"
)

// ReadRoot is a thin wrapper over codec.NewReader/ReadRoot for callers who
// want the raw Tag tree without binding it into a Go type.
func ReadRoot(data []byte, d dialect.Dialect, hdr dialect.Header) (tag.Tag, string, error) {
	r, err := codec.NewReader(data, d, hdr)
	if err != nil {
		return tag.Tag{}, "", err
	}

	return r.ReadRoot()
}

// WriteRoot is a thin wrapper over codec.NewWriter/WriteRoot.
func WriteRoot(root tag.Tag, name string, d dialect.Dialect, hdr dialect.Header) ([]byte, error) {
	w := codec.NewWriter(d, hdr)
	return w.WriteRoot(root, name)
}

// Marshal binds v to a Tag tree via binding.ToTree, then serializes it
// under the given dialect and header configuration.
func Marshal(v any, name string, d dialect.Dialect, hdr dialect.Header) ([]byte, error) {
	t, err := binding.ToTree(v)
	if err != nil {
		return nil, err
	}

	return WriteRoot(t, name, d, hdr)
}

// Unmarshal reads a root Tag from data and binds it into dst via
// binding.FromTree, returning the root name recovered from the stream.
func Unmarshal(data []byte, dst any, d dialect.Dialect, hdr dialect.Header) (string, error) {
	t, name, err := ReadRoot(data, d, hdr)
	if err != nil {
		return "", err
	}

	if err := binding.FromTree(t, dst); err != nil {
		return "", err
	}

	return name, nil
}

// Compress compresses data under the given format.
func Compress(data []byte, format compress.Format) ([]byte, error) {
	return compress.Compress(data, format)
}

// Decompress decompresses data under the given format.
func Decompress(data []byte, format compress.Format) ([]byte, error) {
	return compress.Decompress(data, format)
}
