// Package bcur encodes and decodes arbitrary binary payloads as Uniform
// Resources (UR): URI-compatible, QR-friendly text forms, optionally
// fragmented across a fountain-coded stream of parts so a receiver can
// reconstruct the payload even after missing arbitrary transmissions.
//
// # Core Features
//
//   - Bytewords text codec with CRC-32 integrity trailer
//   - Rateless fountain fragmentation: any sufficiently large sample of
//     the part stream reconstructs the payload
//   - Deterministic part generation shared with other UR implementations
//   - Optional payload shaping (Zstd, S2, LZ4) for low-bandwidth channels
//   - Strict error taxonomy for adversarial or noisy input
//
// # Basic Usage
//
// Encoding a payload as a stream of parts:
//
//	import "github.com/arloliu/bcur"
//
//	encoder, _ := bcur.NewBytesEncoder(payload, 100)
//	for i := 0; i < 3*encoder.FragmentCount(); i++ {
//	    part, _ := encoder.NextPart()
//	    show(part) // e.g. render as a QR frame
//	}
//
// Decoding from whatever parts arrive:
//
//	decoder, _ := bcur.NewDecoder()
//	for !decoder.Complete() {
//	    _ = decoder.Receive(nextCapturedPart())
//	}
//	payload, _ := decoder.Message()
//
// Small payloads can skip fragmentation entirely:
//
//	text, _ := bcur.Encode("crypto-seed", seed)
//	kind, payload, _ := bcur.Decode(text)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the ur
// package, simplifying the most common use cases. For fine-grained control
// use the ur, bytewords and fountain packages directly.
package bcur

import (
	"github.com/arloliu/bcur/format"
	"github.com/arloliu/bcur/ur"
)

// Encode frames payload as a single-part UR of the given type.
func Encode(typ string, payload []byte) (string, error) {
	return ur.Encode(typ, payload)
}

// Decode parses a UR string, reporting whether it was single- or
// multi-part along with the decoded payload bytes.
func Decode(s string) (format.Kind, []byte, error) {
	return ur.Decode(s)
}

// NewEncoder creates a multi-part encoder for payload with segments of at
// most maxFragmentLen source bytes, framed with the given UR type.
func NewEncoder(payload []byte, maxFragmentLen int, typ string, opts ...ur.EncoderOption) (*ur.Encoder, error) {
	return ur.NewEncoder(payload, maxFragmentLen, typ, opts...)
}

// NewBytesEncoder creates a multi-part encoder with the generic "bytes"
// type.
func NewBytesEncoder(payload []byte, maxFragmentLen int, opts ...ur.EncoderOption) (*ur.Encoder, error) {
	return ur.NewBytesEncoder(payload, maxFragmentLen, opts...)
}

// NewDecoder creates an empty decoder that accepts both single- and
// multi-part URs.
func NewDecoder(opts ...ur.DecoderOption) (*ur.Decoder, error) {
	return ur.NewDecoder(opts...)
}
