package ur

import (
	"fmt"
	"strconv"

	"github.com/arloliu/bcur/bytewords"
	"github.com/arloliu/bcur/compress"
	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/format"
	"github.com/arloliu/bcur/fountain"
	"github.com/arloliu/bcur/internal/pool"
)

// Encoder emits a payload as an unbounded stream of multi-part URs.
//
// Each NextPart call produces the text for the next fountain part; a
// receiver sampling the stream anywhere can reconstruct the payload once
// it has seen enough parts. Not safe for concurrent use.
type Encoder struct {
	typ         string
	fountain    *fountain.Encoder
	compression format.CompressionType
}

// EncoderOption configures an Encoder during construction.
type EncoderOption func(*Encoder) error

// WithCompression shapes the payload with the given codec before
// fragmentation.
//
// The wire format does not carry the choice; the receiving Decoder must be
// constructed with the same option. Leave unset for interoperability with
// foreign UR implementations.
func WithCompression(compression format.CompressionType) EncoderOption {
	return func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	}
}

// NewEncoder creates an encoder for payload with segments of at most
// maxFragmentLen source bytes, framed with the given UR type.
func NewEncoder(payload []byte, maxFragmentLen int, typ string, opts ...EncoderOption) (*Encoder, error) {
	if !ValidType(typ) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidType, typ)
	}

	e := &Encoder{
		typ:         typ,
		compression: format.CompressionNone,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.compression != format.CompressionNone {
		codec, err := compress.GetCodec(e.compression)
		if err != nil {
			return nil, err
		}
		payload, err = codec.Compress(payload)
		if err != nil {
			return nil, fmt.Errorf("compress payload: %w", err)
		}
	}

	f, err := fountain.NewEncoder(payload, maxFragmentLen)
	if err != nil {
		return nil, err
	}
	e.fountain = f

	return e, nil
}

// NewBytesEncoder creates an encoder with the generic "bytes" type.
func NewBytesEncoder(payload []byte, maxFragmentLen int, opts ...EncoderOption) (*Encoder, error) {
	return NewEncoder(payload, maxFragmentLen, "bytes", opts...)
}

// Type returns the UR type the encoder frames its parts with.
func (e *Encoder) Type() string {
	return e.typ
}

// FragmentCount returns the number of segments the payload was split into.
func (e *Encoder) FragmentCount() int {
	return e.fountain.FragmentCount()
}

// CurrentIndex returns the 1-based sequence number of the last emitted
// part, or zero before the first NextPart call.
func (e *Encoder) CurrentIndex() uint32 {
	return e.fountain.CurrentIndex()
}

// NextPart emits the next part of the stream.
//
// The payload always travels in the multi-part form, "1-1" included, so a
// stream stays self-describing even when it fits a single fragment.
func (e *Encoder) NextPart() (string, error) {
	part, err := e.fountain.NextPart()
	if err != nil {
		return "", err
	}

	cborData, err := part.Encode()
	if err != nil {
		return "", err
	}
	text, err := bytewords.Encode(cborData, format.StyleMinimal)
	if err != nil {
		return "", err
	}

	buf := pool.GetPartBuffer()
	defer pool.PutPartBuffer(buf)
	buf.Grow(len(scheme) + len(e.typ) + len(text) + 24)
	buf.MustWrite([]byte(scheme))
	buf.MustWrite([]byte(e.typ))
	buf.MustWriteByte('/')
	buf.B = strconv.AppendUint(buf.B, uint64(part.SeqNum), 10)
	buf.MustWriteByte('-')
	buf.B = strconv.AppendUint(buf.B, part.SeqLen, 10)
	buf.MustWriteByte('/')
	buf.MustWrite([]byte(text))

	return string(buf.Bytes()), nil
}
