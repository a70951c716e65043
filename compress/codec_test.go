package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bcur/format"
)

var codecTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestGetCodec(t *testing.T) {
	for _, ct := range codecTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "type %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("short"),
		bytes.Repeat([]byte("Some binary data"), 200),
		{0x00, 0xff, 0x00, 0xff},
	}
	for _, ct := range codecTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		for _, payload := range payloads {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err, "%s compress", ct)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err, "%s decompress", ct)
			require.Equal(t, payload, restored, "%s round trip", ct)
		}
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	payload := bytes.Repeat([]byte("Some binary data"), 1000)
	for _, ct := range codecTypes {
		if ct == format.CompressionNone {
			continue
		}
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink repetitive data", ct)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range codecTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestZstd_RejectsGarbage(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	_, err = codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
