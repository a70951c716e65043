package fountain

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"slices"

	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/internal/random"
)

// Decoder reconstructs a message from fountain parts received in any
// order, with duplicates and omissions.
//
// Incoming parts are peeled: single-segment parts populate the segment
// table and are XORed out of every pending mixed part; mixed parts are
// reduced against everything already known before being retained. The
// pending family is kept canonical — no retained set is a subset of
// another — which bounds retained parts by the fragment count.
//
// A rejected part never invalidates previously accepted progress.
// The decoder is not safe for concurrent use.
type Decoder struct {
	seqLen      int
	messageLen  int
	checksum    uint32
	fragmentLen int

	solved      [][]byte
	solvedCount int
	pending     map[uint64]*reducedPart
}

type reducedPart struct {
	set  *indexSet
	data []byte
}

// NewDecoder creates an empty decoder; the first received part locks the
// message geometry.
func NewDecoder() *Decoder {
	return &Decoder{
		pending: make(map[uint64]*reducedPart),
	}
}

// Receive folds one part into the decoder state.
//
// The first part locks (seqLen, messageLen, checksum, fragment length);
// any later part disagreeing with those is rejected, with
// errs.ErrInvalidLength for a differing fragment length and
// errs.ErrInconsistentHeaders otherwise, while the decoder state survives. Parts that
// contradict already-recovered data fail with errs.ErrInconsistentData.
// Parts arriving after completion are ignored.
func (d *Decoder) Receive(p *Part) error {
	if err := p.validate(); err != nil {
		return err
	}

	if d.seqLen == 0 {
		d.seqLen = int(p.SeqLen)
		d.messageLen = int(p.MessageLen)
		d.checksum = p.Checksum
		d.fragmentLen = len(p.Data)
		d.solved = make([][]byte, d.seqLen)
	} else {
		if int(p.SeqLen) != d.seqLen || int(p.MessageLen) != d.messageLen || p.Checksum != d.checksum {
			return fmt.Errorf("%w: part (len=%d, msg=%d, crc=0x%08x) vs locked (len=%d, msg=%d, crc=0x%08x)",
				errs.ErrInconsistentHeaders,
				p.SeqLen, p.MessageLen, p.Checksum,
				d.seqLen, d.messageLen, d.checksum)
		}
		if len(p.Data) != d.fragmentLen {
			return fmt.Errorf("%w: segment length %d disagrees with declared size %d",
				errs.ErrInvalidLength, len(p.Data), d.fragmentLen)
		}
	}

	if d.Complete() {
		return nil
	}

	set := newIndexSetOf(random.ChooseFragments(p.SeqNum, d.seqLen, d.checksum), d.seqLen)

	return d.reduce(&reducedPart{set: set, data: slices.Clone(p.Data)})
}

// reduce runs the peeling loop starting from one incoming part.
func (d *Decoder) reduce(incoming *reducedPart) error {
	queue := []*reducedPart{incoming}
	for len(queue) > 0 {
		rp := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		// XOR out segments that are already solved.
		for _, idx := range rp.set.indexes() {
			if d.solved[idx] != nil {
				xorInto(rp.data, d.solved[idx])
				rp.set.remove(idx)
			}
		}
		// XOR out pending parts that are strict subsets of this one.
		for changed := true; changed; {
			changed = false
			for _, other := range d.pending {
				if other.set.strictSubsetOf(rp.set) {
					rp.set.xor(other.set)
					xorInto(rp.data, other.data)
					changed = true
				}
			}
		}

		switch rp.set.size {
		case 0:
			// Fully explained by what we already know: the data must agree.
			if !isZero(rp.data) {
				return fmt.Errorf("%w: redundant part disagrees with recovered segments",
					errs.ErrInconsistentData)
			}
		case 1:
			if err := d.solve(rp, &queue); err != nil {
				return err
			}
		default:
			d.retain(rp, &queue)
		}
	}

	return nil
}

// solve installs a single-segment part and propagates it through the
// pending parts, queueing any that collapse to a single segment.
func (d *Decoder) solve(rp *reducedPart, queue *[]*reducedPart) error {
	idx := rp.set.first()
	if d.solved[idx] != nil {
		if !bytes.Equal(d.solved[idx], rp.data) {
			return fmt.Errorf("%w: conflicting data for segment %d", errs.ErrInconsistentData, idx)
		}

		return nil
	}

	d.solved[idx] = rp.data
	d.solvedCount++

	for key, other := range d.pending {
		if !other.set.has(idx) {
			continue
		}
		delete(d.pending, key)
		xorInto(other.data, rp.data)
		other.set.remove(idx)
		if other.set.size == 1 {
			*queue = append(*queue, other)
		} else {
			d.pending[other.set.id()] = other
		}
	}

	return nil
}

// retain stores a reduced mixed part, first shrinking any pending superset
// so that no retained set contains another.
func (d *Decoder) retain(rp *reducedPart, queue *[]*reducedPart) {
	key := rp.set.id()
	if _, ok := d.pending[key]; ok {
		// Same index set already pending; a duplicate adds nothing.
		return
	}

	for otherKey, other := range d.pending {
		if !rp.set.strictSubsetOf(other.set) {
			continue
		}
		delete(d.pending, otherKey)
		other.set.xor(rp.set)
		xorInto(other.data, rp.data)
		if other.set.size == 1 {
			*queue = append(*queue, other)
		} else {
			d.pending[other.set.id()] = other
		}
	}

	d.pending[key] = rp
}

// Complete reports whether every segment has been recovered.
func (d *Decoder) Complete() bool {
	return d.seqLen > 0 && d.solvedCount == d.seqLen
}

// Progress estimates the fraction of the reception already done.
//
// Fountain streams typically need around 1.75x the fragment count in
// distinct useful parts; the estimate saturates just below one until the
// message is actually complete.
func (d *Decoder) Progress() float64 {
	if d.seqLen == 0 {
		return 0
	}
	if d.Complete() {
		return 1
	}

	estimated := float64(d.seqLen) * 1.75
	p := float64(d.solvedCount+len(d.pending)) / estimated
	if p > 0.99 {
		p = 0.99
	}

	return p
}

// ExpectedFragmentCount returns the fragment count locked in by the first
// part, or zero before any part was received.
func (d *Decoder) ExpectedFragmentCount() int {
	return d.seqLen
}

// Message returns the reconstructed message once Complete is true.
//
// The concatenated segments are truncated to the declared message length
// and re-verified against the message checksum; a mismatch fails with
// errs.ErrInvalidChecksum.
func (d *Decoder) Message() ([]byte, error) {
	if !d.Complete() {
		return nil, fmt.Errorf("fountain: message not yet complete (%d of %d segments)",
			d.solvedCount, d.seqLen)
	}

	message := make([]byte, 0, d.seqLen*d.fragmentLen)
	for _, segment := range d.solved {
		message = append(message, segment...)
	}
	message = message[:d.messageLen]

	if actual := crc32.ChecksumIEEE(message); actual != d.checksum {
		return nil, fmt.Errorf("%w: message crc 0x%08x, expected 0x%08x",
			errs.ErrInvalidChecksum, actual, d.checksum)
	}

	return message, nil
}
