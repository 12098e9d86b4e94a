package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements Gzip: gzip-wrapped (RFC 1952) deflate.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a new gzip-framed deflate codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress compresses data using gzip framing.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses gzip-framed data.
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
