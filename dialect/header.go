package dialect

import (
	"encoding/binary"

	"github.com/brinebound/nbt/errs"
)

// BedrockHeader is the optional 8-byte little-endian prefix: a
// storage-version integer followed by the payload length.
type BedrockHeader struct {
	// StorageVersion is read from, and written to, the root Compound's
	// StorageVersion Int field.
	StorageVersion int32
	// PayloadLength is the byte count of the stream following the header.
	PayloadLength uint32
}

// Parse reads a BedrockHeader from the first HeaderSize bytes of data.
func (h *BedrockHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrHeaderTruncated
	}

	h.StorageVersion = int32(binary.LittleEndian.Uint32(data[0:4])) //nolint:gosec
	h.PayloadLength = binary.LittleEndian.Uint32(data[4:8])

	return nil
}

// Bytes serializes h into a fresh HeaderSize-byte slice.
func (h BedrockHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], uint32(h.StorageVersion)) //nolint:gosec
	binary.LittleEndian.PutUint32(b[4:8], h.PayloadLength)

	return b
}
