// Package random provides the deterministic sampling machinery behind
// fountain part generation.
//
// Sender and receiver never exchange segment index lists; both derive them
// from the part header alone. That makes every function in this package a
// wire-level contract: the xoshiro256** stream, the 1/i degree distribution
// and the partial Fisher-Yates shuffle must all be reproduced bit-for-bit,
// or the two sides disagree about which segments a part mixes.
package random

import (
	"crypto/sha256"
	"math"

	"github.com/arloliu/bcur/endian"
)

// Xoshiro256 is the xoshiro256** generator in its standard output variant.
//
// Instances are cheap to create and single-use: one generator is seeded per
// part, consumed for the degree draw and the index shuffle, then discarded.
// Not safe for concurrent use.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 creates a generator seeded from arbitrary seed material.
//
// The material is expanded through SHA-256 and the digest is consumed as
// four big-endian uint64 state words.
func NewXoshiro256(seed []byte) *Xoshiro256 {
	digest := sha256.Sum256(seed)
	engine := endian.GetBigEndianEngine()

	x := &Xoshiro256{}
	for i := range x.s {
		x.s[i] = engine.Uint64(digest[i*8:])
	}

	return x
}

// NewPartRNG creates the generator that selects segment indices for the
// part with the given sequence number, bound to the message through its
// CRC-32 checksum.
func NewPartRNG(seqNum uint32, checksum uint32) *Xoshiro256 {
	engine := endian.GetBigEndianEngine()
	seed := make([]byte, 0, 8)
	seed = engine.AppendUint32(seed, seqNum)
	seed = engine.AppendUint32(seed, checksum)

	return NewXoshiro256(seed)
}

func rotl(x uint64, k uint) uint64 {
	return x<<k | x>>(64-k)
}

// Next returns the next 64 bits of the stream.
func (x *Xoshiro256) Next() uint64 {
	result := rotl(x.s[1]*5, 7) * 9

	t := x.s[1] << 17
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = rotl(x.s[3], 45)

	return result
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits of
// one Next output.
func (x *Xoshiro256) Float64() float64 {
	return float64(x.Next()>>11) / (1 << 53)
}

// Intn returns a uniform value in [0, n) using unbiased modulo rejection.
// Panics if n is not positive.
func (x *Xoshiro256) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn range must be positive")
	}

	m := uint64(n)
	// Largest multiple of m representable in 64 bits; draws at or above it
	// would bias the low residues and are rejected.
	limit := math.MaxUint64 - math.MaxUint64%m
	for {
		r := x.Next()
		if r < limit {
			return int(r % m)
		}
	}
}
