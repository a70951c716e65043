package fountain

import (
	"math/bits"

	"github.com/arloliu/bcur/internal/hash"
)

// indexSet is a bitset over a fixed universe of segment indices.
//
// Pending parts are keyed and compared by their index sets; bitset words
// keep the XOR-merge and subset tests at O(N/64) regardless of degree.
type indexSet struct {
	words []uint64
	size  int
}

func newIndexSet(universe int) *indexSet {
	return &indexSet{
		words: make([]uint64, (universe+63)/64),
	}
}

func newIndexSetOf(indexes []int, universe int) *indexSet {
	s := newIndexSet(universe)
	for _, idx := range indexes {
		s.add(idx)
	}

	return s
}

func (s *indexSet) add(idx int) {
	w, b := idx/64, uint(idx%64)
	if s.words[w]&(1<<b) == 0 {
		s.words[w] |= 1 << b
		s.size++
	}
}

func (s *indexSet) remove(idx int) {
	w, b := idx/64, uint(idx%64)
	if s.words[w]&(1<<b) != 0 {
		s.words[w] &^= 1 << b
		s.size--
	}
}

func (s *indexSet) has(idx int) bool {
	return s.words[idx/64]&(1<<uint(idx%64)) != 0
}

// first returns the lowest index in the set, or -1 if the set is empty.
func (s *indexSet) first() int {
	for w, word := range s.words {
		if word != 0 {
			return w*64 + bits.TrailingZeros64(word)
		}
	}

	return -1
}

// xor replaces s with the symmetric difference of s and other.
func (s *indexSet) xor(other *indexSet) {
	size := 0
	for i := range s.words {
		s.words[i] ^= other.words[i]
		size += bits.OnesCount64(s.words[i])
	}
	s.size = size
}

// strictSubsetOf reports whether s is a strict subset of other.
func (s *indexSet) strictSubsetOf(other *indexSet) bool {
	if s.size >= other.size {
		return false
	}
	for i := range s.words {
		if s.words[i]&^other.words[i] != 0 {
			return false
		}
	}

	return true
}

// id returns the xxHash64 identity of the set for map keying.
func (s *indexSet) id() uint64 {
	return hash.SetID(s.words)
}

// indexes returns the members in ascending order.
func (s *indexSet) indexes() []int {
	out := make([]int, 0, s.size)
	for w, word := range s.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &^= 1 << uint(b)
		}
	}

	return out
}
