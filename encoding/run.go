package encoding

import "github.com/arloliu/rle/format"

// Run is a repetition of one byte value.
//
// The zero Run (Count == 0) means "no run". A non-zero Run always has Count in
// [1, format.MaxRunLength].
type Run struct {
	Count uint8
	Value byte
}

// IsZero reports whether r holds no run.
func (r Run) IsZero() bool {
	return r.Count == 0
}

// Full reports whether r reached format.MaxRunLength and cannot be extended.
func (r Run) Full() bool {
	return r.Count == format.MaxRunLength
}

// AppendTo appends r as a record to dst. A zero Run appends nothing.
func (r Run) AppendTo(dst []byte) []byte {
	if r.Count == 0 {
		return dst
	}

	return append(dst, r.Count, r.Value)
}

// AppendChunk run-length encodes src, appends the completed records to dst and
// returns the extended slice together with the run still open at the end of src.
//
// carry is the run left open by the previous chunk (the zero Run if none). It is
// extended by the leading bytes of src when they match, and emitted as soon as it
// is ended by a different byte or reaches format.MaxRunLength.
//
// A run that reaches the end of src is never emitted: it is returned as the new
// carry because the next chunk may extend it. Callers flush the final carry with
// Run.AppendTo once the input is exhausted. A run that hits the length cap before
// the end of src is emitted immediately and a new run starts at the next byte.
//
// An empty src returns dst and carry unchanged.
func AppendChunk(dst, src []byte, carry Run) ([]byte, Run) {
	if len(src) == 0 {
		return dst, carry
	}

	i := 0
	if carry.Count > 0 {
		for i < len(src) && src[i] == carry.Value && carry.Count < format.MaxRunLength {
			carry.Count++
			i++
		}
		if i == len(src) {
			return dst, carry
		}

		dst = carry.AppendTo(dst)
		carry = Run{}
	}

	for i < len(src) {
		value := src[i]
		j := i + 1
		for j < len(src) && src[j] == value && j-i < format.MaxRunLength {
			j++
		}

		run := Run{Count: uint8(j - i), Value: value} //nolint:gosec
		if j == len(src) {
			return dst, run
		}

		dst = run.AppendTo(dst)
		i = j
	}

	return dst, carry
}
