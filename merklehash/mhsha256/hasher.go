// Package mhsha256 provides a [merklehash.Hasher] backed by SHA-256.
// It is the default hasher for flatmerkle trees.
package mhsha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/flatmerkle/merklehash"
)

const HashSize = sha256.Size

// Hasher is a [merklehash.Hasher] backed by SHA-256 hashes.
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
