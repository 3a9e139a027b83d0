package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/rle/format"
	"github.com/arloliu/rle/internal/hash"
	"github.com/arloliu/rle/internal/options"
)

// maxConsecutiveEmptyReads bounds how often a source may return (0, nil) in a row.
const maxConsecutiveEmptyReads = 100

// ReaderConfig holds the optional settings of a Reader.
type ReaderConfig struct {
	checksum bool
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithReaderChecksum enables an xxHash64 digest over every byte the Reader returns.
// The digest is available from Reader.Sum64.
func WithReaderChecksum() ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.checksum = true
	})
}

// Reader run-length encodes an underlying io.Reader on demand.
//
// Source bytes are pulled into a read buffer that is allocated once by NewReader
// and reused for every pull. Each call to Read fills the caller's buffer with
// encoded records; a record that does not fit is spilled into a 2-byte holding
// area and delivered first on the next call. Runs spanning source chunks are
// carried over between pulls, so the bytes returned across all calls always equal
// Encode applied to the whole source, whatever sizes the source returns and
// whatever buffer sizes the caller passes.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf []byte

	// buf[start:end] holds source bytes not yet scanned.
	start int
	end   int

	// carry is the run open at buf[start], not yet known to be complete.
	carry Run

	// pending[pendingPos:pendingEnd] holds record bytes that did not fit in the
	// caller's buffer.
	pending    [format.RecordSize]byte
	pendingPos int
	pendingEnd int

	eof bool
	err error // non-EOF source error returned together with data, reported on the next pull

	stats  Stats
	digest *hash.Digest
}

// NewReader creates a Reader that encodes src using a read buffer of size bytes.
//
// Parameters:
//   - size: Capacity of the read buffer; must be at least 1
//   - src: Source of the bytes to encode
//   - opts: Optional settings such as WithReaderChecksum
//
// Returns:
//   - *Reader: Reader ready to serve encoded bytes
//   - error: ErrInvalidBufferSize if size < 1, ErrNilSource if src is nil
func NewReader(size int, src io.Reader, opts ...ReaderOption) (*Reader, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferSize, size)
	}
	if src == nil {
		return nil, ErrNilSource
	}

	cfg := &ReaderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := &Reader{
		src: src,
		buf: make([]byte, size),
	}
	if cfg.checksum {
		r.digest = hash.NewDigest()
	}

	return r, nil
}

// Read writes encoded records into p and returns the number of bytes written.
//
// Read follows io.Reader semantics. A short read does not imply the end of the
// stream; (0, io.EOF) does, and every later call returns (0, io.EOF) as well
// without touching the source again. A zero-length p returns (0, nil) and
// changes nothing.
//
// Errors from the source are returned unchanged. A failed pull leaves the carried
// run, the spilled bytes and the buffered source bytes untouched, so calling Read
// again retries the pull. Bytes from an earlier successful pull in the same call
// may already have been absorbed into the carried run; they are neither lost nor
// replayed.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.read(p)
	if n > 0 {
		r.stats.EncodedBytes += int64(n)
		r.digest.Write(p[:n])
	}

	return n, err
}

func (r *Reader) read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := copy(p, r.pending[r.pendingPos:r.pendingEnd])
	r.pendingPos += n
	if r.pendingPos < r.pendingEnd {
		return n, nil
	}
	r.pendingPos, r.pendingEnd = 0, 0
	if n == len(p) {
		return n, nil
	}

	for {
		if r.start < r.end {
			var ok bool
			n, ok = r.encodeBuffered(p, n)
			if !ok || n == len(p) {
				return n, nil
			}
		}

		if r.eof {
			if !r.carry.IsZero() {
				n, _ = r.emit(p, n, r.carry)
				r.carry = Run{}
			}
			if n == 0 {
				return 0, io.EOF
			}

			return n, nil
		}

		// Only block on the source when there is nothing to hand back yet.
		if n > 0 {
			return n, nil
		}

		if r.err != nil {
			err := r.err
			r.err = nil

			return 0, err
		}

		if err := r.fill(); err != nil {
			return 0, err
		}
	}
}

// encodeBuffered scans buf[start:end] and writes completed records into p
// starting at offset n. It returns the new offset and false if scanning stopped
// because a record had to be spilled. In that case the byte that ended the run is
// left unconsumed and the carry is cleared.
func (r *Reader) encodeBuffered(p []byte, n int) (int, bool) {
	run := r.carry
	r.carry = Run{}
	if run.IsZero() {
		run = Run{Count: 1, Value: r.buf[r.start]}
		r.start++
	}

	for r.start < r.end {
		b := r.buf[r.start]
		if b == run.Value && !run.Full() {
			run.Count++
			r.start++

			continue
		}

		var ok bool
		if n, ok = r.emit(p, n, run); !ok {
			return n, false
		}
		run = Run{Count: 1, Value: b}
		r.start++
	}

	r.carry = run

	return n, true
}

// emit writes run as a record into p at offset n. Bytes that do not fit are
// moved to the spill area and false is returned.
func (r *Reader) emit(p []byte, n int, run Run) (int, bool) {
	if n >= len(p) {
		r.pending[0], r.pending[1] = run.Count, run.Value
		r.pendingPos, r.pendingEnd = 0, 2

		return n, false
	}
	p[n] = run.Count
	n++

	if n >= len(p) {
		r.pending[0] = run.Value
		r.pendingPos, r.pendingEnd = 0, 1

		return n, false
	}
	p[n] = run.Value

	return n + 1, true
}

// fill pulls the next chunk from the source into buf.
//
// Only a successful pull of at least one byte moves the cursor. io.EOF marks the
// source as exhausted. A non-EOF error without data is returned; with data it is
// kept and reported by the next pull.
func (r *Reader) fill() error {
	if r.src == nil {
		return ErrNilSource
	}

	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		m, err := r.src.Read(r.buf)
		if m < 0 || m > len(r.buf) {
			panic(errNegativeRead)
		}

		if m > 0 {
			r.start, r.end = 0, m
			r.stats.SourceBytes += int64(m)
		}

		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
			return nil
		case err != nil:
			if m == 0 {
				return err
			}
			r.err = err

			return nil
		case m > 0:
			return nil
		}
	}

	return io.ErrNoProgress
}

// Reset discards all state and makes r encode src, reusing the read buffer.
// The checksum setting is kept and its digest restarts. If src is nil, Read
// returns ErrNilSource.
func (r *Reader) Reset(src io.Reader) {
	digest := r.digest
	digest.Reset()

	*r = Reader{
		src:    src,
		buf:    r.buf,
		digest: digest,
	}
}

// Size returns the size of the read buffer in bytes.
func (r *Reader) Size() int {
	return len(r.buf)
}

// Buffered returns the number of source bytes pulled but not yet encoded.
func (r *Reader) Buffered() int {
	return r.end - r.start
}

// Pending returns the number of encoded bytes waiting for the next Read.
func (r *Reader) Pending() int {
	return r.pendingEnd - r.pendingPos
}

// Stats returns the number of source bytes pulled and encoded bytes returned so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Sum64 returns the xxHash64 of all bytes returned so far, or 0 if the Reader
// was created without WithReaderChecksum.
func (r *Reader) Sum64() uint64 {
	return r.digest.Sum64()
}
