// Package hash provides xxHash64 checksums for encoded record streams.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over a stream written in pieces.
//
// A nil *Digest is valid and ignores all writes, so callers can keep an
// optional digest without branching at every call site.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates a new streaming digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the digest.
func (d *Digest) Write(p []byte) {
	if d == nil || len(p) == 0 {
		return
	}
	_, _ = d.d.Write(p)
}

// Sum64 returns the digest of everything written so far; 0 for a nil digest.
func (d *Digest) Sum64() uint64 {
	if d == nil {
		return 0
	}

	return d.d.Sum64()
}

// Reset discards everything written so far.
func (d *Digest) Reset() {
	if d == nil {
		return
	}
	d.d.Reset()
}
