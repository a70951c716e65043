package fountain

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/internal/random"
)

// Encoder turns a message into an endless stream of fountain parts.
//
// The message is split into FragmentCount equal segments (the last one
// zero-padded); each NextPart call XORs the segments selected for the next
// sequence number. The encoder is not safe for concurrent use.
type Encoder struct {
	segments   [][]byte
	messageLen int
	checksum   uint32
	seqNum     uint32
}

// NewEncoder creates an encoder over message with segments no longer than
// maxFragmentLen source bytes.
func NewEncoder(message []byte, maxFragmentLen int) (*Encoder, error) {
	if len(message) == 0 {
		return nil, fmt.Errorf("%w: empty message", errs.ErrEmpty)
	}
	if maxFragmentLen <= 0 {
		return nil, fmt.Errorf("%w: max fragment length %d", errs.ErrInvalidLength, maxFragmentLen)
	}

	count := (len(message) + maxFragmentLen - 1) / maxFragmentLen
	if count > MaxFragmentCount {
		return nil, fmt.Errorf("%w: %d fragments exceed the %d cap",
			errs.ErrInvalidLength, count, MaxFragmentCount)
	}
	fragmentLen := (len(message) + count - 1) / count

	segments := make([][]byte, count)
	for i := range segments {
		segment := make([]byte, fragmentLen)
		copy(segment, message[i*fragmentLen:])
		segments[i] = segment
	}

	return &Encoder{
		segments:   segments,
		messageLen: len(message),
		checksum:   crc32.ChecksumIEEE(message),
	}, nil
}

// FragmentCount returns the number of segments the message was split into.
func (e *Encoder) FragmentCount() int {
	return len(e.segments)
}

// CurrentIndex returns the sequence number of the last emitted part, or
// zero before the first NextPart call.
func (e *Encoder) CurrentIndex() uint32 {
	return e.seqNum
}

// Checksum returns the CRC-32 of the whole message.
func (e *Encoder) Checksum() uint32 {
	return e.checksum
}

// NextPart emits the part for the next sequence number.
//
// Sequence numbers start at 1 and never wrap; once the 32-bit range is
// exhausted every further call fails with errs.ErrEncoderExhausted.
func (e *Encoder) NextPart() (*Part, error) {
	if e.seqNum == math.MaxUint32 {
		return nil, fmt.Errorf("%w: sequence number reached 2^32-1", errs.ErrEncoderExhausted)
	}
	e.seqNum++

	indexes := random.ChooseFragments(e.seqNum, len(e.segments), e.checksum)
	data := make([]byte, len(e.segments[0]))
	for _, idx := range indexes {
		xorInto(data, e.segments[idx])
	}

	return &Part{
		SeqNum:     e.seqNum,
		SeqLen:     uint64(len(e.segments)),
		MessageLen: uint64(e.messageLen),
		Checksum:   e.checksum,
		Data:       data,
	}, nil
}
