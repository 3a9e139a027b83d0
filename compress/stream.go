package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/rle/format"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewStreamWriter returns a writer that compresses everything written to it into
// w using the framed stream format of compressionType.
//
// Close must be called to flush the final frame. Closing the returned writer does
// not close w. For format.CompressionNone, writes go straight to w.
func NewStreamWriter(compressionType format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return nopWriteCloser{w}, nil
	case format.CompressionZstd:
		enc, err := zstd.NewWriter(w,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			return nil, fmt.Errorf("create zstd stream writer: %w", err)
		}

		return enc, nil
	case format.CompressionS2:
		return s2.NewWriter(w, s2.WriterConcurrency(1)), nil
	case format.CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported stream compression type: %s", compressionType)
	}
}

// NewStreamReader returns a reader that decompresses a stream produced by
// NewStreamWriter with the same compressionType.
//
// Closing the returned reader releases decoder resources; it does not close r.
func NewStreamReader(compressionType format.CompressionType, r io.Reader) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("create zstd stream reader: %w", err)
		}

		return dec.IOReadCloser(), nil
	case format.CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case format.CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported stream compression type: %s", compressionType)
	}
}
