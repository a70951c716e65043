package random

// ChooseDegree draws the number of segments mixed into a part from the
// discrete distribution with weights 1/i over {1..seqLen}.
//
// The draw consumes exactly one Float64 from the generator and scans the
// cumulative normalized weights, resolving ties to the lowest degree.
func ChooseDegree(seqLen int, rng *Xoshiro256) int {
	u := rng.Float64()

	var total float64
	for i := 1; i <= seqLen; i++ {
		total += 1 / float64(i)
	}

	var cum float64
	for i := 1; i < seqLen; i++ {
		cum += (1 / float64(i)) / total
		if u < cum {
			return i
		}
	}

	return seqLen
}

// ChooseFragments returns the segment indices XORed into the part with the
// given sequence number.
//
// The first seqLen parts are fixed-rate: part seqNum carries segment
// seqNum-1 alone, so a receiver listening from the start needs no mixing at
// all. Later parts are rateless: a generator seeded from (seqNum, checksum)
// draws a degree and then a degree-sized prefix of a partial Fisher-Yates
// shuffle over the segment indices.
func ChooseFragments(seqNum uint32, seqLen int, checksum uint32) []int {
	if seqLen == 1 {
		return []int{0}
	}
	if seqNum <= uint32(seqLen) {
		return []int{int(seqNum - 1)}
	}

	rng := NewPartRNG(seqNum, checksum)
	degree := ChooseDegree(seqLen, rng)

	indexes := make([]int, seqLen)
	for i := range indexes {
		indexes[i] = i
	}
	for k := 0; k < degree; k++ {
		j := k + rng.Intn(seqLen-k)
		indexes[k], indexes[j] = indexes[j], indexes[k]
	}

	return indexes[:degree:degree]
}
