package encoding

import "github.com/arloliu/rle/format"

// Encode run-length encodes src in one shot.
//
// The result is allocated with its exact final size. An empty src returns nil.
func Encode(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}

	return AppendEncode(make([]byte, 0, EncodedLen(src)), src)
}

// AppendEncode appends the run-length encoding of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte) []byte {
	dst, carry := AppendChunk(dst, src, Run{})

	return carry.AppendTo(dst)
}

// EncodedLen returns the exact length of Encode(src) without encoding it.
func EncodedLen(src []byte) int {
	if len(src) == 0 {
		return 0
	}

	records, count := 1, 1
	for i := 1; i < len(src); i++ {
		if src[i] == src[i-1] && count < format.MaxRunLength {
			count++
			continue
		}
		records++
		count = 1
	}

	return records * format.RecordSize
}
