package encoding

import "github.com/arloliu/rle/format"

// Stats reports the amount of data an encoder has processed.
type Stats struct {
	// SourceBytes is the number of input bytes consumed from the source.
	SourceBytes int64

	// EncodedBytes is the number of encoded bytes handed to the caller or destination.
	EncodedBytes int64
}

// Records returns the number of complete records in EncodedBytes.
func (s Stats) Records() int64 {
	return s.EncodedBytes / format.RecordSize
}

// Ratio returns EncodedBytes / SourceBytes.
//
// Values below 1.0 mean the encoding is smaller than its input; RLE on data
// without runs approaches 2.0. Returns 0 when no input was consumed.
func (s Stats) Ratio() float64 {
	if s.SourceBytes == 0 {
		return 0.0
	}

	return float64(s.EncodedBytes) / float64(s.SourceBytes)
}

// SpaceSavings returns the space saved as a percentage. It is negative when the
// encoding expanded the input.
func (s Stats) SpaceSavings() float64 {
	if s.SourceBytes == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}
