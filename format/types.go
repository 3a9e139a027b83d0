package format

import "strings"

// Wire format of an RLE stream.
//
// An encoded stream is a flat sequence of fixed-size records:
//
//	[count: 1 byte][value: 1 byte]
//
// count is in [1, MaxRunLength]. Runs longer than MaxRunLength are split into
// consecutive records for the same value. There is no header, trailer or escaping,
// so a well-formed stream always has an even length.
const (
	RecordSize   = 2   // RecordSize is the size of one (count, value) record in bytes.
	MaxRunLength = 255 // MaxRunLength is the largest count a single record can carry.
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

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

// ParseCompressionType returns the CompressionType whose String form equals name,
// ignoring case. The second result reports whether the name was recognized.
func ParseCompressionType(name string) (CompressionType, bool) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}

	return 0, false
}
