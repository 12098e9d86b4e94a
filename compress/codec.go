// Package compress is a thin front over a DEFLATE-family codec that lets
// callers sandwich the Reader/Writer with a compressed stream. It never
// inspects NBT; its only job is compressing and decompressing byte slices
// under a chosen format.
package compress

import "fmt"

// Format identifies one of the three DEFLATE-family streams this gateway
// supports.
type Format uint8

const (
	// Deflate is zlib-wrapped deflate (RFC 1950 framing over RFC 1951).
	Deflate Format = iota
	// Gzip is gzip-wrapped deflate (RFC 1952 framing over RFC 1951).
	Gzip
	// DeflateRaw is headerless deflate (RFC 1951 with no wrapper).
	DeflateRaw
)

func (f Format) String() string {
	switch f {
	case Deflate:
		return "Deflate"
	case Gzip:
		return "Gzip"
	case DeflateRaw:
		return "DeflateRaw"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte slice under one DEFLATE-family format.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for one format.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory returning the Codec for the requested format.
func CreateCodec(format Format) (Codec, error) {
	switch format {
	case Deflate:
		return NewZlibCodec(), nil
	case Gzip:
		return NewGzipCodec(), nil
	case DeflateRaw:
		return NewFlateCodec(), nil
	default:
		return nil, fmt.Errorf("compress: invalid format: %s", format)
	}
}

// Compress compresses data under the named format.
func Compress(data []byte, format Format) ([]byte, error) {
	codec, err := CreateCodec(format)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// Decompress decompresses data under the named format.
func Decompress(data []byte, format Format) ([]byte, error) {
	codec, err := CreateCodec(format)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
