package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// FlateCodec implements DeflateRaw: headerless deflate (RFC 1951, no
// wrapper).
type FlateCodec struct{}

var _ Codec = FlateCodec{}

// NewFlateCodec creates a new headerless deflate codec.
func NewFlateCodec() FlateCodec {
	return FlateCodec{}
}

// Compress compresses data with no framing.
func (c FlateCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses headerless deflate data.
func (c FlateCodec) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	return io.ReadAll(r)
}
