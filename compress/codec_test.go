package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAllFormats(t *testing.T) {
	payload := []byte("HELLO WORLD THIS IS A TEST STRING \xc3\x85\xc3\x84\xc3\x96!")

	formats := []Format{Deflate, Gzip, DeflateRaw}
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			compressed, err := Compress(payload, f)
			require.NoError(t, err)
			assert.NotEmpty(t, compressed)

			decompressed, err := Decompress(compressed, f)
			require.NoError(t, err)
			assert.Equal(t, payload, decompressed)
		})
	}
}

func TestCreateCodecInvalidFormat(t *testing.T) {
	_, err := CreateCodec(Format(99))
	assert.Error(t, err)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "Deflate", Deflate.String())
	assert.Equal(t, "Gzip", Gzip.String())
	assert.Equal(t, "DeflateRaw", DeflateRaw.String())
	assert.Equal(t, "Unknown", Format(7).String())
}

func TestDecompressRejectsGarbage(t *testing.T) {
	_, err := Decompress([]byte{1, 2, 3, 4}, Gzip)
	assert.Error(t, err)
}
