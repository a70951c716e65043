package bytewords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/format"
)

func TestEncode_Minimal(t *testing.T) {
	got, err := Encode([]byte("Some binary data"), format.StyleMinimal)
	require.NoError(t, err)
	require.Equal(t, "gujljnihcxidinjthsjpkkcxiehsjyhsnsgdmkht", got)
}

func TestEncode_Standard(t *testing.T) {
	got, err := Encode([]byte("Some binary data"), format.StyleStandard)
	require.NoError(t, err)
	require.Equal(t,
		"guru-jowl-join-inch-crux-iced-iron-jolt-huts-jump-kick-crux-idle-huts-jury-huts-news-good-monk-heat",
		got)
}

func TestEncode_URIMatchesStandard(t *testing.T) {
	data := []byte{0, 1, 2, 128, 255}
	std, err := Encode(data, format.StyleStandard)
	require.NoError(t, err)
	uri, err := Encode(data, format.StyleURI)
	require.NoError(t, err)
	require.Equal(t, std, uri)
	require.Equal(t, "able-acid-also-lava-zoom-jade-need-echo-taxi", uri)
}

func TestEncode_UnsupportedStyle(t *testing.T) {
	_, err := Encode([]byte("x"), format.Style(0x7f))
	require.Error(t, err)
}

func TestDecode_Vectors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		style format.Style
		want  []byte
	}{
		{"minimal", "gujljnihcxidinjthsjpkkcxiehsjyhsnsgdmkht", format.StyleMinimal, []byte("Some binary data")},
		{"standard", "guru-jowl-join-inch-crux-iced-iron-jolt-huts-jump-kick-crux-idle-huts-jury-huts-news-good-monk-heat", format.StyleStandard, []byte("Some binary data")},
		{"single zero byte", "aetdaowslg", format.StyleMinimal, []byte{0}},
		{"high bytes", "aeadaolazmjendeoti", format.StyleMinimal, []byte{0, 1, 2, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text, tt.style)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_CaseInsensitive(t *testing.T) {
	got, err := Decode("GUJLJNIHCXIDINJTHSJPKKCXIEHSJYHSNSGDMKHT", format.StyleMinimal)
	require.NoError(t, err)
	require.Equal(t, []byte("Some binary data"), got)

	got, err = Decode("Able-Tied-Also-Webs-Lung", format.StyleStandard)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, got)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		style format.Style
		want  error
	}{
		{"empty", "", format.StyleMinimal, errs.ErrEmpty},
		{"odd minimal length", "gujljni", format.StyleMinimal, errs.ErrInvalidLength},
		{"unknown pair", "qqzz", format.StyleMinimal, errs.ErrInvalidWord},
		{"digits", "gu12", format.StyleMinimal, errs.ErrInvalidWord},
		{"too short for trailer", "aeadaola", format.StyleMinimal, errs.ErrInvalidLength},
		{"bad trailer", "gujljnihcxidinjthsjpkkcxiehsjyhsnsgdmkhs", format.StyleMinimal, errs.ErrInvalidChecksum},
		{"ragged word length", "able-tied-also-webs-lun", format.StyleStandard, errs.ErrInvalidLength},
		{"bad middle letters", "abze-tied-also-webs-lung", format.StyleStandard, errs.ErrInvalidWord},
		{"bad separator", "able_tied-also-webs-lung", format.StyleStandard, errs.ErrInvalidWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text, tt.style)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_RejectsWordFromWrongStyle(t *testing.T) {
	// Read as minimal text, a full word is two letter pairs; "ab" is not a
	// first/last pair of any word.
	_, err := Decode("able", format.StyleMinimal)
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	styles := []format.Style{format.StyleStandard, format.StyleURI, format.StyleMinimal}
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "data")
		style := rapid.SampledFrom(styles).Draw(t, "style")

		text, err := Encode(data, style)
		require.NoError(t, err)

		got, err := Decode(text, style)
		require.NoError(t, err)
		require.Equal(t, data, got)
	})
}

func TestTamperDetection(t *testing.T) {
	// Flipping any single character must surface as an invalid word or a
	// checksum mismatch, never as silent corruption.
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "data")
		text, err := Encode(data, format.StyleMinimal)
		require.NoError(t, err)

		pos := rapid.IntRange(0, len(text)-1).Draw(t, "pos")
		replacement := rapid.SampledFrom([]byte("abcdefghijklmnopqrstuvwxyz")).Draw(t, "replacement")
		if text[pos] == replacement {
			t.Skip("no-op flip")
		}
		tampered := text[:pos] + string(replacement) + text[pos+1:]

		got, err := Decode(tampered, format.StyleMinimal)
		if err == nil {
			require.Equal(t, data, got, "tampered text decoded to different data")
			t.Fatalf("tamper at %d not detected", pos)
		}
		require.True(t,
			strings.Contains(err.Error(), errs.ErrInvalidWord.Error()) ||
				strings.Contains(err.Error(), errs.ErrInvalidChecksum.Error()),
			"unexpected error: %v", err)
	})
}
