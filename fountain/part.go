// Package fountain implements the rateless erasure code used to spread a
// message across an unbounded stream of parts.
//
// A message is split into equal-length segments; every part carries the XOR
// of a deterministically chosen subset of them. The first SeqLen parts
// carry the segments verbatim, later parts mix pseudo-random subsets, so a
// receiver can reconstruct the message from any sufficiently large sample
// of the stream regardless of which transmissions were lost.
package fountain

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/bcur/errs"
)

// MaxFragmentCount caps the number of segments a message may be split into,
// bounding decoder memory at roughly N segments plus N^2 index-set bits.
const MaxFragmentCount = 1 << 16

// Part is one transmissible fountain fragment.
//
// On the wire it is the canonical CBOR array
// [seqNum, seqLen, messageLen, checksum, data].
type Part struct {
	_          struct{} `cbor:",toarray"`
	SeqNum     uint32
	SeqLen     uint64
	MessageLen uint64
	Checksum   uint32
	Data       []byte
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("fountain: cbor encode mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("fountain: cbor decode mode: %v", err))
	}
}

// Encode serializes the part as its canonical CBOR array.
func (p *Part) Encode() ([]byte, error) {
	data, err := encMode.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCbor, err)
	}

	return data, nil
}

// DecodePart parses a CBOR part and validates its header fields.
func DecodePart(data []byte) (*Part, error) {
	var p Part
	if err := decMode.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCbor, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Part) validate() error {
	if p.SeqNum == 0 {
		return fmt.Errorf("%w: sequence number is zero", errs.ErrInvalidIndices)
	}
	if p.SeqLen == 0 {
		return fmt.Errorf("%w: fragment count is zero", errs.ErrInvalidIndices)
	}
	if p.SeqLen > MaxFragmentCount {
		return fmt.Errorf("%w: %d fragments exceed the %d cap",
			errs.ErrInvalidLength, p.SeqLen, MaxFragmentCount)
	}
	if p.MessageLen == 0 {
		return fmt.Errorf("%w: message length is zero", errs.ErrEmpty)
	}
	if len(p.Data) == 0 {
		return fmt.Errorf("%w: part carries no data", errs.ErrEmpty)
	}
	// Segment length is pinned by the header: L = ceil(messageLen/seqLen).
	if want := (p.MessageLen + p.SeqLen - 1) / p.SeqLen; uint64(len(p.Data)) != want {
		return fmt.Errorf("%w: segment length %d disagrees with declared size %d",
			errs.ErrInvalidLength, len(p.Data), want)
	}

	return nil
}

func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}

func isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}

	return true
}
