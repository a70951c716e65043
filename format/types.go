package format

type (
	Style           uint8
	Kind            uint8
	CompressionType uint8
)

const (
	StyleStandard Style = 0x1 // StyleStandard represents full 4-letter words joined by '-'.
	StyleURI      Style = 0x2 // StyleURI represents the URI-embeddable variant of the standard style.
	StyleMinimal  Style = 0x3 // StyleMinimal represents 2-letter abbreviations with no separator.

	KindSinglePart Kind = 0x1 // KindSinglePart represents a ur:<type>/<payload> resource.
	KindMultiPart  Kind = 0x2 // KindMultiPart represents a ur:<type>/<seq>-<total>/<payload> fragment.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "Standard"
	case StyleURI:
		return "URI"
	case StyleMinimal:
		return "Minimal"
	default:
		return "Unknown"
	}
}

func (k Kind) String() string {
	switch k {
	case KindSinglePart:
		return "SinglePart"
	case KindMultiPart:
		return "MultiPart"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
