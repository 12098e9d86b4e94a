package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec implements Deflate: zlib-wrapped (RFC 1950) deflate.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a new zlib-framed deflate codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress compresses data using zlib framing.
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses zlib-framed data.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
