// Package bytewords implements the byteword encoding of binary data: each
// byte maps to one of 256 four-letter English words, chosen so that the
// first and last letters alone identify the word.
//
// Three output styles are supported:
//
//   - format.StyleStandard: full words joined by '-'
//   - format.StyleURI: identical text, kept as a distinct style for
//     callers that embed the result in URI components
//   - format.StyleMinimal: the first and last letter of each word,
//     concatenated, two characters per byte
//
// Every encoding carries a big-endian CRC-32 of the input as four extra
// trailing bytes, mapped like any other payload bytes. Decoding verifies
// the trailer and is case-insensitive in all styles.
package bytewords

import (
	"fmt"
	"hash/crc32"

	"github.com/arloliu/bcur/endian"
	"github.com/arloliu/bcur/errs"
	"github.com/arloliu/bcur/format"
	"github.com/arloliu/bcur/internal/pool"
)

const alphabet = "ableacidalsoapexaquaarchatomauntawayaxisbackbaldbarnbeltbetabiasbluebodybragbrewbulbbuzzcalmcashcatschefcityclawcodecolacookcostcruxcurlcuspcyandarkdatadaysdelidicedietdoordowndrawdropdrumdulldutyeacheasyechoedgeepicevenexamexiteyesfactfairfernfigsfilmfishfizzflapflewfluxfoxyfreefrogfuelfundgalagamegeargemsgiftgirlglowgoodgraygrimgurugushgyrohalfhanghardhawkheathelphighhillholyhopehornhutsicedideaidleinchinkyintoirisironitemjadejazzjoinjoltjowljudojugsjumpjunkjurykeepkenokeptkeyskickkilnkingkitekiwiknoblamblavalazyleaflegsliarlimplionlistlogoloudloveluaulucklungmainmanymathmazememomenumeowmildmintmissmonknailnavyneednewsnextnoonnotenumbobeyoboeomitonyxopenovalowlspaidpartpeckplaypluspoempoolposepuffpumapurrquadquizraceramprealredorichroadrockroofrubyruinrunsrustsafesagascarsetssilkskewslotsoapsolosongstubsurfswantacotasktaxitenttiedtimetinytoiltombtoystriptunatwinuglyundouniturgeuservastveryvetovialvibeviewvisavoidvowswallwandwarmwaspwavewaxywebswhatwhenwhizwolfworkyankyawnyellyogayurtzapszerozestzinczonezoom"

const (
	wordLen      = 4
	minimalLen   = 2
	checksumSize = 4
	separator    = '-'
)

var (
	words [256]string
	// lookup maps (last letter, first letter) pairs to byte values; every
	// word is unique in that pair, which is what makes the minimal style
	// decodable.
	lookup [26 * 26]int16
)

func init() {
	for i := 0; i < 256; i++ {
		words[i] = alphabet[i*wordLen : (i+1)*wordLen]
	}
	for i := range lookup {
		lookup[i] = -1
	}
	for i, w := range words {
		x := w[0] - 'a'
		y := w[3] - 'a'
		lookup[int(y)*26+int(x)] = int16(i)
	}
}

// Encode encodes data in the given style, appending a big-endian CRC-32 of
// data before mapping bytes to words.
func Encode(data []byte, style format.Style) (string, error) {
	switch style {
	case format.StyleStandard, format.StyleURI:
		return encodeWords(data), nil
	case format.StyleMinimal:
		return encodeMinimal(data), nil
	default:
		return "", fmt.Errorf("unsupported bytewords style: %s", style)
	}
}

// Decode decodes text in the given style, verifying and stripping the
// CRC-32 trailer.
//
// Decoding is case-insensitive. It fails with errs.ErrInvalidWord for
// tokens outside the alphabet, errs.ErrInvalidLength when the text cannot
// hold a whole number of words plus the trailer, and
// errs.ErrInvalidChecksum when the trailer disagrees with the body.
func Decode(text string, style format.Style) ([]byte, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("%w: empty bytewords text", errs.ErrEmpty)
	}

	var (
		decoded []byte
		err     error
	)
	switch style {
	case format.StyleStandard, format.StyleURI:
		decoded, err = decodeWords(text)
	case format.StyleMinimal:
		decoded, err = decodeMinimal(text)
	default:
		return nil, fmt.Errorf("unsupported bytewords style: %s", style)
	}
	if err != nil {
		return nil, err
	}

	if len(decoded) < checksumSize+1 {
		return nil, fmt.Errorf("%w: %d decoded bytes, need at least %d",
			errs.ErrInvalidLength, len(decoded), checksumSize+1)
	}

	body := decoded[:len(decoded)-checksumSize]
	engine := endian.GetBigEndianEngine()
	expected := engine.Uint32(decoded[len(decoded)-checksumSize:])
	if actual := crc32.ChecksumIEEE(body); actual != expected {
		return nil, fmt.Errorf("%w: trailer 0x%08x, computed 0x%08x",
			errs.ErrInvalidChecksum, expected, actual)
	}

	return body, nil
}

func checksumTrailer(data []byte) [checksumSize]byte {
	var trailer [checksumSize]byte
	endian.GetBigEndianEngine().PutUint32(trailer[:], crc32.ChecksumIEEE(data))

	return trailer
}

func encodeMinimal(data []byte) string {
	trailer := checksumTrailer(data)

	buf := pool.GetPartBuffer()
	defer pool.PutPartBuffer(buf)
	buf.Grow(minimalLen * (len(data) + checksumSize))

	for _, b := range data {
		w := words[b]
		buf.MustWriteByte(w[0])
		buf.MustWriteByte(w[3])
	}
	for _, b := range trailer {
		w := words[b]
		buf.MustWriteByte(w[0])
		buf.MustWriteByte(w[3])
	}

	return string(buf.Bytes())
}

func encodeWords(data []byte) string {
	trailer := checksumTrailer(data)
	total := len(data) + checksumSize

	buf := pool.GetPartBuffer()
	defer pool.PutPartBuffer(buf)
	buf.Grow(total*(wordLen+1) - 1)

	for _, b := range data {
		if buf.Len() > 0 {
			buf.MustWriteByte(separator)
		}
		buf.MustWrite([]byte(words[b]))
	}
	for _, b := range trailer {
		if buf.Len() > 0 {
			buf.MustWriteByte(separator)
		}
		buf.MustWrite([]byte(words[b]))
	}

	return string(buf.Bytes())
}

// lowerLetter folds ASCII letters to lowercase and reports whether the
// result is in a..z.
func lowerLetter(c byte) (byte, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	return c, c >= 'a' && c <= 'z'
}

// wordValue resolves a word by its first and last letters.
func wordValue(first, last byte) (byte, error) {
	f, okF := lowerLetter(first)
	l, okL := lowerLetter(last)
	if !okF || !okL {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidWord, string([]byte{first, last}))
	}

	val := lookup[int(l-'a')*26+int(f-'a')]
	if val < 0 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidWord, string([]byte{first, last}))
	}

	return byte(val), nil
}

func decodeMinimal(text string) ([]byte, error) {
	if len(text)%minimalLen != 0 {
		return nil, fmt.Errorf("%w: minimal text length %d is not a multiple of %d",
			errs.ErrInvalidLength, len(text), minimalLen)
	}

	decoded := make([]byte, 0, len(text)/minimalLen)
	for i := 0; i < len(text); i += minimalLen {
		b, err := wordValue(text[i], text[i+1])
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, b)
	}

	return decoded, nil
}

func decodeWords(text string) ([]byte, error) {
	if (len(text)+1)%(wordLen+1) != 0 {
		return nil, fmt.Errorf("%w: text length %d does not hold whole %d-letter words",
			errs.ErrInvalidLength, len(text), wordLen)
	}

	decoded := make([]byte, 0, (len(text)+1)/(wordLen+1))
	for i := 0; i < len(text); i += wordLen + 1 {
		if i > 0 && text[i-1] != separator {
			return nil, fmt.Errorf("%w: expected separator at offset %d", errs.ErrInvalidWord, i-1)
		}
		b, err := wordValue(text[i], text[i+3])
		if err != nil {
			return nil, err
		}
		// The first and last letters identify the word; the middle letters
		// must still spell it.
		w := words[b]
		m1, ok1 := lowerLetter(text[i+1])
		m2, ok2 := lowerLetter(text[i+2])
		if !ok1 || !ok2 || m1 != w[1] || m2 != w[2] {
			return nil, fmt.Errorf("%w: %q", errs.ErrInvalidWord, text[i:i+wordLen])
		}
		decoded = append(decoded, b)
	}

	return decoded, nil
}
