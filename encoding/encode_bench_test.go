package encoding

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func benchmarkData(size int) []byte {
	return runData(rand.New(rand.NewSource(42)), size)
}

func BenchmarkEncode(b *testing.B) {
	data := benchmarkData(64 * 1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(data)
	}
}

func BenchmarkAppendEncode_Reuse(b *testing.B) {
	data := benchmarkData(64 * 1024)
	dst := make([]byte, 0, EncodedLen(data))
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = AppendEncode(dst[:0], data)
	}
}

func BenchmarkReader(b *testing.B) {
	data := benchmarkData(64 * 1024)
	src := bytes.NewReader(data)
	r, err := NewReader(4096, src)
	if err != nil {
		b.Fatal(err)
	}
	out := make([]byte, 1024)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Reset(data)
		r.Reset(src)
		for {
			if _, err := r.Read(out); err == io.EOF {
				break
			}
		}
	}
}

func BenchmarkWriter(b *testing.B) {
	data := benchmarkData(64 * 1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w, err := NewWriter(io.Discard)
		if err != nil {
			b.Fatal(err)
		}
		for rest := data; len(rest) > 0; rest = rest[min(len(rest), 4096):] {
			_, _ = w.Write(rest[:min(len(rest), 4096)])
		}
		_ = w.Close()
	}
}
