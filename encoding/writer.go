package encoding

import (
	"io"

	"github.com/arloliu/rle/internal/hash"
	"github.com/arloliu/rle/internal/options"
	"github.com/arloliu/rle/internal/pool"
)

// WriterConfig holds the optional settings of a Writer.
type WriterConfig struct {
	checksum bool
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithWriterChecksum enables an xxHash64 digest over every byte the Writer
// forwards to its destination. The digest is available from Writer.Sum64.
func WithWriterChecksum() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.checksum = true
	})
}

// Writer run-length encodes everything written to it and forwards the records to
// an underlying io.Writer.
//
// The run open at the end of each Write is held back until the next Write shows
// whether it continues, so Close must be called to emit the final record. Close
// does not close the underlying writer.
//
// Errors from the underlying writer are sticky: once a forward fails, every later
// Write and Close returns the same error.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w      io.Writer
	buf    *pool.ByteBuffer
	carry  Run
	stats  Stats
	digest *hash.Digest
	err    error
	closed bool
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter creates a Writer that forwards encoded records to w.
//
// Returns:
//   - *Writer: Writer ready for use
//   - error: ErrNilWriter if w is nil, or an option error
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	cfg := &WriterConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	enc := &Writer{
		w:   w,
		buf: pool.GetRecordBuffer(),
	}
	if cfg.checksum {
		enc.digest = hash.NewDigest()
	}

	return enc, nil
}

// Write encodes p and forwards every record completed by it.
//
// It returns len(p) on success. On failure it returns 0 and the error of the
// underlying writer. p is consumed even then: its bytes are already folded into
// the open run and counted in Stats, and the Writer stays failed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	w.buf.Reset()
	w.buf.B, w.carry = AppendChunk(w.buf.B, p, w.carry)
	w.stats.SourceBytes += int64(len(p))

	if err := w.forward(); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close emits the final record and releases the scratch buffer.
// Calling Close more than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.err == nil && !w.carry.IsZero() {
		w.buf.Reset()
		w.buf.B = w.carry.AppendTo(w.buf.B)
		_ = w.forward()
	}
	w.carry = Run{}

	pool.PutRecordBuffer(w.buf)
	w.buf = nil

	return w.err
}

func (w *Writer) forward() error {
	if w.buf.Len() == 0 {
		return nil
	}

	written, err := w.buf.WriteTo(w.w)
	n := int(written)
	if n > 0 {
		w.stats.EncodedBytes += int64(n)
		w.digest.Write(w.buf.B[:n])
	}
	if err == nil && n < w.buf.Len() {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.err = err
	}

	return err
}

// Stats returns the number of bytes written to w and encoded bytes forwarded so far.
func (w *Writer) Stats() Stats {
	return w.stats
}

// Sum64 returns the xxHash64 of all bytes forwarded so far, or 0 if the Writer
// was created without WithWriterChecksum.
func (w *Writer) Sum64() uint64 {
	return w.digest.Sum64()
}
