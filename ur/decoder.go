package ur

import (
	"fmt"

	"github.com/arloliu/bcur/bytewords"
	"github.com/arloliu/bcur/compress"
	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/format"
	"github.com/arloliu/bcur/fountain"
)

// Decoder reassembles a payload from received UR strings.
//
// It accepts both forms: a single-part UR completes the decoder
// immediately, multi-part URs feed the fountain decoder until every
// segment is recovered. Parts may arrive in any order, duplicated or with
// gaps; a rejected part never discards accumulated progress. Not safe for
// concurrent use.
type Decoder struct {
	typ         string
	message     []byte
	fountain    *fountain.Decoder
	compression format.CompressionType
}

// DecoderOption configures a Decoder during construction.
type DecoderOption func(*Decoder) error

// WithDecompression undoes the sender's WithCompression after reassembly.
func WithDecompression(compression format.CompressionType) DecoderOption {
	return func(d *Decoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		d.compression = compression

		return nil
	}
}

// NewDecoder creates an empty decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		fountain:    fountain.NewDecoder(),
		compression: format.CompressionNone,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Receive folds one UR string into the decoder.
//
// The first part locks the UR type; later parts of a different type are
// rejected with errs.ErrInconsistentHeaders. For multi-part URs the
// decimal sequence numbers in the URI must equal the ones inside the CBOR
// header. Parts arriving after completion are ignored.
func (d *Decoder) Receive(s string) error {
	p, err := parse(s)
	if err != nil {
		return err
	}
	if d.typ != "" && p.typ != d.typ {
		return fmt.Errorf("%w: part type %q, locked type %q", errs.ErrInconsistentHeaders, p.typ, d.typ)
	}
	if d.Complete() {
		return nil
	}

	decoded, err := bytewords.Decode(p.body, format.StyleMinimal)
	if err != nil {
		return err
	}

	switch p.kind {
	case format.KindSinglePart:
		if d.fountain.ExpectedFragmentCount() > 0 {
			return fmt.Errorf("%w: single-part resource in a multi-part stream", errs.ErrInconsistentHeaders)
		}
		d.message = decoded
	case format.KindMultiPart:
		part, err := fountain.DecodePart(decoded)
		if err != nil {
			return err
		}
		if part.SeqNum != p.seqNum || part.SeqLen != uint64(p.seqLen) {
			return fmt.Errorf("%w: uri sequence %d-%d, cbor sequence %d-%d",
				errs.ErrInconsistentHeaders, p.seqNum, p.seqLen, part.SeqNum, part.SeqLen)
		}
		if err := d.fountain.Receive(part); err != nil {
			return err
		}
	}
	d.typ = p.typ

	return nil
}

// Complete reports whether the full payload has been recovered.
func (d *Decoder) Complete() bool {
	return d.message != nil || d.fountain.Complete()
}

// Progress estimates the fraction of the reception already done.
func (d *Decoder) Progress() float64 {
	if d.message != nil {
		return 1
	}

	return d.fountain.Progress()
}

// Type returns the UR type locked by the first received part, or the
// empty string before that.
func (d *Decoder) Type() string {
	return d.typ
}

// ExpectedFragmentCount returns the fragment count of the multi-part
// stream, or zero before the first multi-part was received.
func (d *Decoder) ExpectedFragmentCount() int {
	return d.fountain.ExpectedFragmentCount()
}

// Message returns the reconstructed payload once Complete is true,
// undoing the configured payload shaping.
func (d *Decoder) Message() ([]byte, error) {
	message := d.message
	if message == nil {
		var err error
		message, err = d.fountain.Message()
		if err != nil {
			return nil, err
		}
	}

	if d.compression != format.CompressionNone {
		codec, err := compress.GetCodec(d.compression)
		if err != nil {
			return nil, err
		}
		message, err = codec.Decompress(message)
		if err != nil {
			return nil, fmt.Errorf("decompress payload: %w", err)
		}
	}

	return message, nil
}
