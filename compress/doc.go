// Package compress provides general-purpose codecs that can be layered on top of
// a run-length encoded stream.
//
// RLE removes byte repetition but leaves the record stream itself uncompressed:
// data with few runs expands to up to twice its size, and repeated record
// patterns are not exploited. A second stage with a general-purpose algorithm
// recovers that space.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): records are passed through unchanged.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// # Block Codecs
//
// Codec compresses complete in-memory payloads:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(encoding.Encode(data))
//
// # Streaming
//
// NewStreamWriter wraps an io.Writer in a framed compressor so it can sit behind
// an encoding.Reader or encoding.Writer without buffering the whole stream:
//
//	zw, err := compress.NewStreamWriter(format.CompressionS2, file)
//	if err != nil {
//	    return err
//	}
//	defer zw.Close()
//	_, err = io.Copy(zw, rleReader)
//
// NewStreamReader opens the matching framed reader. Block and stream formats are
// not interchangeable.
//
// # Thread Safety
//
// Block codecs are stateless values backed by sync.Pool and may be shared across
// goroutines. Stream writers and readers must be used by one goroutine at a time.
//
// # Error Handling
//
// Decompression of corrupted or foreign data returns an error wrapped with the
// algorithm name. Unknown compression types are reported by the factories.
package compress
