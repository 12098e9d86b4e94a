// Package errs defines the sentinel errors returned by the tag model, the
// binary codec, and the binding layer.
//
// Call sites wrap these with fmt.Errorf("...: %w", errs.ErrXxx) to attach
// positional or field context; callers that only need to classify a failure
// can still match with errors.Is against the sentinels here.
package errs

import "errors"

// Structural errors.
var (
	// ErrUnknownTagID is returned when a TagId byte outside the 0-12 range is read.
	ErrUnknownTagID = errors.New("nbt: unknown tag id")
	// ErrUnexpectedEnd is returned when an End tag is read where a payload is required.
	ErrUnexpectedEnd = errors.New("nbt: unexpected End tag in payload position")
	// ErrListTypeMismatch is returned when a List element does not match its declared element TagId.
	ErrListTypeMismatch = errors.New("nbt: list element type mismatch")
	// ErrDuplicateKey is returned when a Compound read from the wire repeats a key and
	// the reader is configured to reject duplicates.
	ErrDuplicateKey = errors.New("nbt: duplicate compound key")
)

// Range errors.
var (
	// ErrVarintOverflow is returned when a variable-length integer exceeds its target width.
	ErrVarintOverflow = errors.New("nbt: varint overflow")
	// ErrNegativeLength is returned when a decoded length prefix is negative.
	ErrNegativeLength = errors.New("nbt: negative length")
)

// I/O errors.
var (
	// ErrTruncated is returned when a fixed-size read runs past the end of the input.
	ErrTruncated = errors.New("nbt: truncated input")
)

// Encoding errors.
var (
	// ErrInvalidText is returned when string bytes are not valid UTF-8.
	ErrInvalidText = errors.New("nbt: invalid text encoding")
	// ErrTextTooLong is returned when a string exceeds the length its dialect can express.
	ErrTextTooLong = errors.New("nbt: text exceeds maximum length")
)

// Header errors.
var (
	// ErrMissingStorageVersion is returned when a header-framed write targets a root
	// Compound that lacks an Int field named StorageVersion.
	ErrMissingStorageVersion = errors.New("nbt: root compound missing StorageVersion Int field")
	// ErrHeaderNotCompound is returned when a header-framed write targets a non-Compound root.
	ErrHeaderNotCompound = errors.New("nbt: header requires a Compound root")
	// ErrHeaderTruncated is returned when fewer than 8 bytes are available for the file header.
	ErrHeaderTruncated = errors.New("nbt: truncated file header")
)

// Binding errors, one sentinel per expected-kind mismatch plus the generic
// "missing" and "unsupported shape" cases.
var (
	ErrExpectedByte      = errors.New("nbt: expected Byte tag")
	ErrExpectedShort     = errors.New("nbt: expected Short tag")
	ErrExpectedInt       = errors.New("nbt: expected Int tag")
	ErrExpectedLong      = errors.New("nbt: expected Long tag")
	ErrExpectedFloat     = errors.New("nbt: expected Float tag")
	ErrExpectedDouble    = errors.New("nbt: expected Double tag")
	ErrExpectedByteArray = errors.New("nbt: expected ByteArray tag")
	ErrExpectedString    = errors.New("nbt: expected String tag")
	ErrExpectedList      = errors.New("nbt: expected List tag")
	ErrExpectedCompound  = errors.New("nbt: expected Compound tag")
	ErrExpectedIntArray  = errors.New("nbt: expected IntArray tag")
	ErrExpectedLongArray = errors.New("nbt: expected LongArray tag")

	// ErrValueMissing is returned when a required struct field has no matching Compound key.
	ErrValueMissing = errors.New("nbt: required field value missing")
	// ErrUnsupportedShape is returned for Go shapes the binding layer does not (yet) map:
	// silently producing a wrong tag kind is prohibited.
	ErrUnsupportedShape = errors.New("nbt: unsupported binding shape")
	// ErrInvalidBool is returned when a Byte tag backing a bool field holds a value other than 0 or 1.
	ErrInvalidBool = errors.New("nbt: byte value is not a valid boolean (0 or 1)")
	// ErrNotAddressable is returned when from_tree is called on a non-pointer destination.
	ErrNotAddressable = errors.New("nbt: destination must be a non-nil pointer")
	// ErrDuplicateFieldName is returned when a struct declares two fields with the
	// same wire name (after rename tags are applied).
	ErrDuplicateFieldName = errors.New("nbt: struct declares two fields with the same wire name")
)
