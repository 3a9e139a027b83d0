// Package encoding implements run-length encoding of byte streams into
// (count, value) records.
//
// # Wire Format
//
// Every record is exactly format.RecordSize (2) bytes:
//
//	[count: 1 byte][value: 1 byte]
//
// count is in [1, 255]. A run longer than 255 bytes is split into consecutive
// records for the same value, so 300 zero bytes encode as {255, 0, 45, 0}.
// Records have no header, trailer or escaping and the encoded length is always even.
//
// # Encoders
//
// The package offers three ways to produce the same byte stream:
//
//   - Encode / AppendEncode: one-shot encoding of an in-memory buffer.
//   - Reader: a pull-based io.Reader that encodes an underlying io.Reader with a
//     fixed-size read buffer, serving output buffers of any size.
//   - Writer: a push-based io.WriteCloser that encodes whatever is written to it
//     and forwards the records to another io.Writer.
//
// All three are built on AppendChunk, which encodes one chunk of input while
// carrying an unfinished run across chunk boundaries. For every input and every
// way of splitting it, the concatenated output equals Encode of the whole input.
//
// # Memory
//
// Reader allocates its read buffer once in NewReader and never grows it. Records
// that do not fit in the caller's buffer are held in a fixed 2-byte spill area and
// delivered first on the next Read.
//
// # Thread Safety
//
// Reader and Writer are not safe for concurrent use. Encode and AppendChunk are
// pure functions.
//
// # Example
//
//	r, err := encoding.NewReader(32*1024, file)
//	if err != nil {
//	    return err
//	}
//	if _, err := io.Copy(dst, r); err != nil {
//	    return err
//	}
package encoding
