package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinebound/nbt/binding"
	"github.com/brinebound/nbt/compress"
	"github.com/brinebound/nbt/dialect"
)

type player struct {
	Name string `nbt:"name"`
	HP   int32  `nbt:"hp"`
	Tags binding.IntArray `nbt:"tags"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	p := player{Name: "Steve", HP: 20, Tags: binding.IntArray{1, 2, 3}}

	data, err := Marshal(p, "root", dialect.Big, dialect.Without)
	require.NoError(t, err)

	var out player
	name, err := Unmarshal(data, &out, dialect.Big, dialect.Without)
	require.NoError(t, err)
	assert.Equal(t, "root", name)
	assert.Equal(t, p, out)
}

func TestMarshalUnmarshalWithBedrockHeader(t *testing.T) {
	type level struct {
		StorageVersion int32  `nbt:"StorageVersion"`
		LevelName      string `nbt:"LevelName"`
	}

	l := level{StorageVersion: 9, LevelName: "My World"}

	data, err := Marshal(l, "", dialect.LittleVarInt, dialect.With)
	require.NoError(t, err)

	var out level
	_, err = Unmarshal(data, &out, dialect.LittleVarInt, dialect.With)
	require.NoError(t, err)
	assert.Equal(t, l, out)
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	data, err := Marshal(player{Name: "Alex", HP: 10}, "root", dialect.Big, dialect.Without)
	require.NoError(t, err)

	compressed, err := Compress(data, compress.Gzip)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, compress.Gzip)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}
