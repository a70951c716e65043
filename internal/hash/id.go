// Package hash provides xxHash64 identities for decoder bookkeeping.
//
// The fountain decoder keys its pending parts by the identity of their
// index sets; hashing the bitset words gives an O(N/8) key without
// materializing a string per set.
package hash

import (
	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// SetID computes the xxHash64 identity of an index bitset.
//
// The words must be in canonical order (word 0 first) and trailing zero
// words must be included, so equal sets always produce equal IDs.
func SetID(words []uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, w := range words {
		buf[0] = byte(w)
		buf[1] = byte(w >> 8)
		buf[2] = byte(w >> 16)
		buf[3] = byte(w >> 24)
		buf[4] = byte(w >> 32)
		buf[5] = byte(w >> 40)
		buf[6] = byte(w >> 48)
		buf[7] = byte(w >> 56)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
