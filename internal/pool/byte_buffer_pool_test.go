package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 3, 'a', 1, 'b')
	require.Equal(t, 4, bb.Len())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 255, 0, 45, 0)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, []byte{255, 0, 45, 0}, out.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 1, 1)

	_, err := bb.WriteTo(failingWriter{})
	require.EqualError(t, err, "sink closed")
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(4)

	require.True(t, bb.Extend(4))
	require.Equal(t, 4, bb.Len())
	require.False(t, bb.Extend(1), "no spare capacity left")
	require.Equal(t, 4, bb.Len())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.B = append(bb.B, 7, 7)

	bb.ExtendOrGrow(10)

	require.Equal(t, 12, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 12)
	require.Equal(t, []byte{7, 7}, bb.B[:2], "existing data must be preserved")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.Grow(16)
		require.Equal(t, 32, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, make([]byte, 8)...)
		bb.Grow(1)
		require.Equal(t, 8+RecordBufferDefaultSize, cap(bb.B))
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * RecordBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = append(bb.B, make([]byte, size)...)
		bb.Grow(1)
		require.Equal(t, size+size/4, cap(bb.B))
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * RecordBufferDefaultSize)
		require.Equal(t, 3*RecordBufferDefaultSize, cap(bb.B))
	})
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetRecordBuffer(t *testing.T) {
	bb := GetRecordBuffer()
	defer PutRecordBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), RecordBufferDefaultSize)
}

func TestPutRecordBuffer_Nil(t *testing.T) {
	require.NotPanics(t, func() { PutRecordBuffer(nil) })
}

func TestPool_PutResetsBuffer(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	bb := p.Get()
	bb.B = append(bb.B, "stale"...)
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len())
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	big := NewByteBuffer(64)
	big.B = append(big.B, 'x')
	p.Put(big)

	// An oversized buffer is dropped, so Get must hand out a fresh default-sized one.
	// sync.Pool gives no ordering guarantees, so only the reachable property is checked.
	got := p.Get()
	require.Equal(t, 0, got.Len())
	require.LessOrEqual(t, cap(got.B), 32)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := GetRecordBuffer()
				bb.B = append(bb.B, byte(i), byte(j))
				PutRecordBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
