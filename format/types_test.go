package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleString(t *testing.T) {
	require.Equal(t, "Standard", StyleStandard.String())
	require.Equal(t, "URI", StyleURI.String())
	require.Equal(t, "Minimal", StyleMinimal.String())
	require.Equal(t, "Unknown", Style(0x7f).String())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "SinglePart", KindSinglePart.String())
	require.Equal(t, "MultiPart", KindMultiPart.String())
	require.Equal(t, "Unknown", Kind(0).String())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0x7f).String())
}
