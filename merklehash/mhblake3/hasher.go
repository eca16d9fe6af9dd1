// Package mhblake3 provides a [merklehash.Hasher] backed by 256-bit BLAKE3,
// using [github.com/zeebo/blake3].
package mhblake3

import (
	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/zeebo/blake3"
)

// HashSize is the default BLAKE3 output length.
const HashSize = 32

// Hasher is a [merklehash.Hasher] backed by BLAKE3.
type Hasher struct{}

var _ merklehash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) {
	h := blake3.New()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) {
	h := blake3.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }
