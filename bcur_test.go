package bcur_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bcur"
	"github.com/arloliu/bcur/format"
	"github.com/arloliu/bcur/ur"
)

func TestSinglePartRoundTrip(t *testing.T) {
	text, err := bcur.Encode("bytes", []byte("Some binary data"))
	require.NoError(t, err)
	require.Equal(t, "ur:bytes/gujljnihcxidinjthsjpkkcxiehsjyhsnsgdmkht", text)

	kind, payload, err := bcur.Decode(text)
	require.NoError(t, err)
	require.Equal(t, format.KindSinglePart, kind)
	require.Equal(t, []byte("Some binary data"), payload)
}

func TestMultiPartRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("Some binary data"), 50)

	encoder, err := bcur.NewBytesEncoder(payload, 30)
	require.NoError(t, err)

	decoder, err := bcur.NewDecoder()
	require.NoError(t, err)
	for !decoder.Complete() {
		part, err := encoder.NextPart()
		require.NoError(t, err)
		require.NoError(t, decoder.Receive(part))
	}

	got, err := decoder.Message()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestLossyTransport(t *testing.T) {
	payload := bytes.Repeat([]byte("Some binary data"), 50)

	encoder, err := bcur.NewBytesEncoder(payload, 10)
	require.NoError(t, err)

	decoder, err := bcur.NewDecoder()
	require.NoError(t, err)
	for !decoder.Complete() {
		part, err := encoder.NextPart()
		require.NoError(t, err)
		if encoder.CurrentIndex()%3 != 0 {
			continue // two of three frames never arrive
		}
		require.NoError(t, decoder.Receive(part))
	}

	got, err := decoder.Message()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestCompressedTransfer(t *testing.T) {
	payload := bytes.Repeat([]byte("highly compressible payload "), 64)

	encoder, err := bcur.NewBytesEncoder(payload, 50,
		ur.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	decoder, err := bcur.NewDecoder(ur.WithDecompression(format.CompressionS2))
	require.NoError(t, err)
	for !decoder.Complete() {
		part, err := encoder.NextPart()
		require.NoError(t, err)
		require.NoError(t, decoder.Receive(part))
	}

	got, err := decoder.Message()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
