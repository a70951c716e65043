// Package errs defines sentinel errors shared across the bcur packages.
//
// All public API errors wrap one of these sentinels, so callers can match
// with errors.Is regardless of the contextual detail added at the call site:
//
//	if errors.Is(err, errs.ErrInvalidChecksum) {
//	    // corrupted part, ask for a retransmission
//	}
package errs

import "errors"

var (
	// ErrInvalidScheme indicates a URI that does not start with "ur:" or
	// whose type component is not a valid UR type.
	ErrInvalidScheme = errors.New("invalid ur scheme")

	// ErrInvalidIndices indicates a multi-part URI whose sequence numbers
	// are missing, zero or not decimal.
	ErrInvalidIndices = errors.New("invalid sequence indices")

	// ErrInvalidWord indicates bytewords text containing a token that is
	// not in the alphabet.
	ErrInvalidWord = errors.New("invalid byteword")

	// ErrInvalidLength indicates text or payload whose length disagrees
	// with the declared or style-implied size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChecksum indicates a CRC-32 mismatch, either in a
	// bytewords trailer or over a reassembled message.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrInvalidCbor indicates a multi-part header that is not well-formed
	// CBOR or does not match the part schema.
	ErrInvalidCbor = errors.New("invalid cbor")

	// ErrInconsistentHeaders indicates a part whose fragment count, message
	// length or checksum disagrees with the values locked in by the first
	// received part, or whose URI sequence numbers disagree with its CBOR.
	ErrInconsistentHeaders = errors.New("inconsistent part headers")

	// ErrInconsistentData indicates fountain propagation arriving at a
	// contradiction: the XOR of known segments over a known index set does
	// not equal the received data.
	ErrInconsistentData = errors.New("inconsistent part data")

	// ErrEncoderExhausted indicates the part sequence counter would
	// overflow its 32-bit range.
	ErrEncoderExhausted = errors.New("encoder sequence exhausted")

	// ErrInvalidType indicates an encoder constructed with an invalid UR
	// type string.
	ErrInvalidType = errors.New("invalid ur type")

	// ErrEmpty indicates an empty payload or empty part.
	ErrEmpty = errors.New("empty input")
)
