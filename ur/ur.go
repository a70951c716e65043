// Package ur implements the Uniform Resources (UR) textual envelope for
// transporting binary payloads over URI- and QR-compatible channels.
//
// A payload small enough to travel whole is framed as
//
//	ur:<type>/<payload>
//
// and a fragmented payload as a stream of
//
//	ur:<type>/<seq>-<total>/<payload>
//
// where the payload text is the minimal bytewords encoding and multi-part
// payloads wrap fountain-coded fragments in CBOR. Encoder and Decoder
// orchestrate the full pipeline; Encode and Decode are the single-part
// conveniences.
package ur

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/bcur/bytewords"
	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/format"
)

const scheme = "ur:"

// ValidType reports whether typ is a well-formed UR type: lowercase ASCII
// letters, digits or '-', non-empty, with no leading or trailing '-'.
func ValidType(typ string) bool {
	if typ == "" || typ[0] == '-' || typ[len(typ)-1] == '-' {
		return false
	}
	for i := 0; i < len(typ); i++ {
		c := typ[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}

	return true
}

// Encode frames payload as a single-part UR of the given type.
func Encode(typ string, payload []byte) (string, error) {
	if !ValidType(typ) {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidType, typ)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty payload", errs.ErrEmpty)
	}

	text, err := bytewords.Encode(payload, format.StyleMinimal)
	if err != nil {
		return "", err
	}

	return scheme + typ + "/" + text, nil
}

// Decode parses a UR string and returns its kind along with the decoded
// payload bytes: the raw payload for a single-part UR, the CBOR-encoded
// fountain part for a multi-part UR.
func Decode(s string) (format.Kind, []byte, error) {
	p, err := parse(s)
	if err != nil {
		return 0, nil, err
	}

	decoded, err := bytewords.Decode(p.body, format.StyleMinimal)
	if err != nil {
		return 0, nil, err
	}

	return p.kind, decoded, nil
}

// parsed is the syntactic decomposition of a UR string, before any
// bytewords or CBOR decoding.
type parsed struct {
	typ    string
	kind   format.Kind
	seqNum uint32
	seqLen uint32
	body   string
}

func parse(s string) (*parsed, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty part", errs.ErrEmpty)
	}

	// The whole envelope is case-insensitive; fold once so scheme, type
	// and bytewords checks all see lowercase.
	s = strings.ToLower(s)
	if !strings.HasPrefix(s, scheme) {
		return nil, fmt.Errorf("%w: missing %q prefix", errs.ErrInvalidScheme, scheme)
	}

	components := strings.Split(s[len(scheme):], "/")
	p := &parsed{typ: components[0]}
	if !ValidType(p.typ) {
		return nil, fmt.Errorf("%w: invalid type %q", errs.ErrInvalidScheme, p.typ)
	}

	switch len(components) {
	case 2:
		p.kind = format.KindSinglePart
		p.body = components[1]
	case 3:
		p.kind = format.KindMultiPart
		p.body = components[2]
		var err error
		p.seqNum, p.seqLen, err = parseSequence(components[1])
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d path components", errs.ErrInvalidScheme, len(components))
	}
	if p.body == "" {
		return nil, fmt.Errorf("%w: empty payload", errs.ErrEmpty)
	}

	return p, nil
}

// parseSequence parses the strict-decimal "<seq>-<total>" component.
//
// Both numbers must be nonzero; seq beyond total is legal, that is what a
// rateless stream emits once the fixed-rate prefix is exhausted.
func parseSequence(s string) (uint32, uint32, error) {
	seqText, lenText, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed sequence %q", errs.ErrInvalidIndices, s)
	}

	seqNum, err := parseSeqUint(seqText)
	if err != nil {
		return 0, 0, err
	}
	seqLen, err := parseSeqUint(lenText)
	if err != nil {
		return 0, 0, err
	}

	return seqNum, seqLen, nil
}

func parseSeqUint(s string) (uint32, error) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("%w: %q is not a decimal number", errs.ErrInvalidIndices, s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal number", errs.ErrInvalidIndices, s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: sequence numbers start at one", errs.ErrInvalidIndices)
	}

	return uint32(v), nil
}
