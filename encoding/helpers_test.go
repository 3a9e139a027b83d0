package encoding

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/arloliu/rle/format"
	"github.com/stretchr/testify/require"
)

// expand reverses the encoding for verification and checks the record invariants.
func expand(t *testing.T, encoded []byte) []byte {
	t.Helper()

	require.Zero(t, len(encoded)%format.RecordSize, "encoded length must be even")

	var out []byte
	for i := 0; i < len(encoded); i += format.RecordSize {
		count, value := encoded[i], encoded[i+1]
		require.NotZero(t, count, "record %d has zero count", i/format.RecordSize)
		out = append(out, bytes.Repeat([]byte{value}, int(count))...)
	}

	return out
}

// runData generates input made of runs of random length over a small alphabet so
// that long runs, cap splits and chunk-spanning runs all occur.
func runData(rng *rand.Rand, size int) []byte {
	data := make([]byte, 0, size)
	for len(data) < size {
		value := byte(rng.Intn(4))
		var length int
		switch rng.Intn(4) {
		case 0:
			length = 1
		case 1:
			length = rng.Intn(8) + 1
		case 2:
			length = rng.Intn(300) + 200
		default:
			length = rng.Intn(1000) + 1
		}
		length = min(length, size-len(data))
		data = append(data, bytes.Repeat([]byte{value}, length)...)
	}

	return data
}

// chunkReader serves data in chunks whose sizes are chosen by next.
type chunkReader struct {
	data  []byte
	next  func() int
	calls int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	c.calls++
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n := min(c.next(), len(p), len(c.data))
	copy(p, c.data[:n])
	c.data = c.data[n:]

	return n, nil
}

func fixedChunks(size int) func() int {
	return func() int { return size }
}

func randomChunks(rng *rand.Rand, maxSize int) func() int {
	return func() int { return rng.Intn(maxSize) + 1 }
}

// readAll drains r using output buffers whose sizes are chosen by next.
func readAll(t *testing.T, r io.Reader, next func() int) []byte {
	t.Helper()

	var out []byte
	for {
		buf := make([]byte, next())
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			require.Zero(t, n)
			return out
		}
		require.NoError(t, err)
		require.NotZero(t, n, "Read returned (0, nil) for a %d-byte buffer", len(buf))
	}
}
