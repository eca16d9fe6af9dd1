// Package mhsimd provides a [merklehash.Hasher] backed by
// the SIMD-accelerated SHA-256 implementation in
// [github.com/minio/sha256-simd].
//
// Digests are identical to those of the mhsha256 package,
// so trees built with either hasher have the same root.
package mhsimd

import (
	"github.com/gordian-engine/flatmerkle/merklehash"
	sha256 "github.com/minio/sha256-simd"
)

const HashSize = sha256.Size

// Hasher is a [merklehash.Hasher] backed by sha256-simd.
type Hasher struct{}

var _ merklehash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) {
	h := sha256.New()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) {
	h := sha256.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }
