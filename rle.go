// Package rle run-length encodes byte streams into (count, value) records.
//
// Each record is two bytes: a count in [1, 255] followed by the repeated byte.
// Runs longer than 255 bytes are split into several records. The format has no
// header or trailer, so an encoded stream is always an even number of bytes.
//
// # Core Features
//
//   - One-shot encoding of in-memory buffers (Encode)
//   - Pull-based streaming with a fixed read buffer and any output size (NewReader)
//   - Push-based streaming into an io.Writer (NewWriter)
//   - Optional second-stage compression (Zstd, S2, LZ4) of the record stream
//   - Optional xxHash64 checksum of the encoded stream
//
// # Basic Usage
//
//	encoded := rle.Encode([]byte{1, 2, 3, 4, 4, 4, 5})
//	// encoded == []byte{1, 1, 1, 2, 1, 3, 3, 4, 1, 5}
//
// Streaming a file through a 32KiB buffer:
//
//	r, err := rle.NewReader(32*1024, file)
//	if err != nil {
//	    return err
//	}
//	_, err = io.Copy(out, r)
//
// Encoding and compressing in one pass:
//
//	res, err := rle.Copy(out, file, rle.WithCompression(format.CompressionZstd))
//
// # Package Structure
//
// This package provides convenient wrappers around the encoding and compress
// packages. Use those packages directly for finer control.
package rle

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/rle/compress"
	"github.com/arloliu/rle/encoding"
	"github.com/arloliu/rle/format"
	"github.com/arloliu/rle/internal/options"
	"github.com/arloliu/rle/internal/pool"
)

const (
	// DefaultBufferSize is the default read buffer size used by Copy.
	DefaultBufferSize = 32 * 1024
	// DefaultChunkSize is the default number of encoded bytes Copy requests per Read.
	DefaultChunkSize = 32 * 1024
)

// Encode run-length encodes src in one shot. An empty src returns nil.
func Encode(src []byte) []byte {
	return encoding.Encode(src)
}

// NewReader creates a streaming encoder that pulls from src through a read buffer
// of size bytes. See encoding.Reader.
func NewReader(size int, src io.Reader, opts ...encoding.ReaderOption) (*encoding.Reader, error) {
	return encoding.NewReader(size, src, opts...)
}

// NewWriter creates a streaming encoder that pushes records into w.
// See encoding.Writer.
func NewWriter(w io.Writer, opts ...encoding.WriterOption) (*encoding.Writer, error) {
	return encoding.NewWriter(w, opts...)
}

// EncodeCompressed run-length encodes src and compresses the records with the
// block codec of compressionType.
//
// Example:
//
//	compressed, err := rle.EncodeCompressed(data, format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	codec, _ := compress.GetCodec(format.CompressionS2)
//	records, err := codec.Decompress(compressed)
func EncodeCompressed(src []byte, compressionType format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Compress(encoding.Encode(src))
}

// CopyConfig holds the settings of Copy.
type CopyConfig struct {
	bufferSize  int
	chunkSize   int
	compression format.CompressionType
}

// CopyOption configures Copy.
type CopyOption = options.Option[*CopyConfig]

// WithBufferSize sets the size of the read buffer used to pull from the source.
func WithBufferSize(size int) CopyOption {
	return options.New(func(c *CopyConfig) error {
		if size < 1 {
			return fmt.Errorf("%w: %d", encoding.ErrInvalidBufferSize, size)
		}
		c.bufferSize = size

		return nil
	})
}

// WithChunkSize sets how many encoded bytes Copy requests per Read.
func WithChunkSize(size int) CopyOption {
	return options.New(func(c *CopyConfig) error {
		if size < 1 {
			return fmt.Errorf("invalid chunk size: %d", size)
		}
		c.chunkSize = size

		return nil
	})
}

// WithCompression compresses the record stream with the stream format of
// compressionType. The default is format.CompressionNone.
func WithCompression(compressionType format.CompressionType) CopyOption {
	return options.New(func(c *CopyConfig) error {
		switch compressionType {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compressionType
			return nil
		default:
			return fmt.Errorf("invalid copy compression: %s", compressionType)
		}
	})
}

// CopyResult summarizes a Copy.
type CopyResult struct {
	encoding.Stats

	// Checksum is the xxHash64 of the record stream before compression.
	Checksum uint64

	// WrittenBytes is the number of bytes written to the destination, after compression.
	WrittenBytes int64
}

// Copy run-length encodes everything from src and writes it to dst, optionally
// compressed, until src is exhausted or an error occurs.
//
// The result is filled in even when an error is returned and then describes
// the work done before the failure. Source errors are returned unchanged.
//
// Parameters:
//   - dst: Destination of the (compressed) record stream
//   - src: Source of the bytes to encode
//   - opts: WithBufferSize, WithChunkSize, WithCompression
//
// Returns:
//   - CopyResult: Byte counts and checksum of the record stream
//   - error: Option, source or destination error
func Copy(dst io.Writer, src io.Reader, opts ...CopyOption) (CopyResult, error) {
	cfg := &CopyConfig{
		bufferSize:  DefaultBufferSize,
		chunkSize:   DefaultChunkSize,
		compression: format.CompressionNone,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return CopyResult{}, err
	}

	r, err := encoding.NewReader(cfg.bufferSize, src, encoding.WithReaderChecksum())
	if err != nil {
		return CopyResult{}, err
	}

	cw := &countingWriter{w: dst}
	zw, err := compress.NewStreamWriter(cfg.compression, cw)
	if err != nil {
		return CopyResult{}, err
	}

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)
	buf.ExtendOrGrow(cfg.chunkSize)
	chunk := buf.B[:cfg.chunkSize]

	result := func() CopyResult {
		return CopyResult{Stats: r.Stats(), Checksum: r.Sum64(), WrittenBytes: cw.n}
	}

	for {
		n, rerr := r.Read(chunk)
		if n > 0 {
			if _, werr := zw.Write(chunk[:n]); werr != nil {
				_ = zw.Close()
				return result(), werr
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			_ = zw.Close()
			return result(), rerr
		}
	}

	if err := zw.Close(); err != nil {
		return result(), err
	}

	return result(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
