package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, ID("bytes"), ID("bytes"))
	require.NotEqual(t, ID("bytes"), ID("crypto-seed"))
}

func TestSetID_Deterministic(t *testing.T) {
	a := []uint64{0b1011, 0}
	b := []uint64{0b1011, 0}
	require.Equal(t, SetID(a), SetID(b))
}

func TestSetID_DistinguishesSets(t *testing.T) {
	require.NotEqual(t, SetID([]uint64{0b01}), SetID([]uint64{0b10}))
	require.NotEqual(t, SetID([]uint64{1, 0}), SetID([]uint64{0, 1}))
}

func TestSetID_TrailingZeroWordsMatter(t *testing.T) {
	// Sets over different universes hash differently even when the
	// populated words match.
	require.NotEqual(t, SetID([]uint64{1}), SetID([]uint64{1, 0}))
}
