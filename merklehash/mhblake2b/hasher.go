// Package mhblake2b provides a [merklehash.Hasher] backed by BLAKE2b-256.
package mhblake2b

import (
	"hash"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size256

// Hasher is an unkeyed BLAKE2b-256 [merklehash.Hasher].
type Hasher struct{}

var _ merklehash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) {
	h := newHash()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) {
	h := newHash()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }

func newHash() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only possible with an oversized key.
		panic(err)
	}
	return h
}
