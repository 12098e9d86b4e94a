package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntOnlyForLittleVarInt(t *testing.T) {
	assert.False(t, Big.VarInt())
	assert.False(t, Little.VarInt())
	assert.True(t, LittleVarInt.VarInt())
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "Big", Big.String())
	assert.Equal(t, "Little", Little.String())
	assert.Equal(t, "LittleVarInt", LittleVarInt.String())
}

func TestBedrockHeaderRoundTrip(t *testing.T) {
	h := BedrockHeader{StorageVersion: 9, PayloadLength: 12345}
	b := h.Bytes()
	require.Len(t, b, HeaderSize)

	var got BedrockHeader
	require.NoError(t, got.Parse(b))
	assert.Equal(t, h, got)
}

func TestBedrockHeaderParseTruncated(t *testing.T) {
	var h BedrockHeader
	assert.Error(t, h.Parse([]byte{1, 2, 3}))
}
