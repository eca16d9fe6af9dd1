// Package mhsha3 provides [merklehash.Hasher] implementations
// backed by SHA3-256 and by the legacy Keccak-256
// used in Ethereum-style commitments.
package mhsha3

import (
	"hash"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// Hasher is a SHA3-256 [merklehash.Hasher].
type Hasher struct{}

var _ merklehash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) {
	leaf(sha3.New256, in, dst)
}

func (Hasher) Node(left, right, dst []byte) {
	node(sha3.New256, left, right, dst)
}

func (Hasher) Size() int { return HashSize }

// KeccakHasher is a legacy Keccak-256 [merklehash.Hasher].
// Its digests differ from [Hasher] only in padding.
type KeccakHasher struct{}

var _ merklehash.Hasher = KeccakHasher{}

func (KeccakHasher) Leaf(in, dst []byte) {
	leaf(sha3.NewLegacyKeccak256, in, dst)
}

func (KeccakHasher) Node(left, right, dst []byte) {
	node(sha3.NewLegacyKeccak256, left, right, dst)
}

func (KeccakHasher) Size() int { return HashSize }

func leaf(newHash func() hash.Hash, in, dst []byte) {
	h := newHash()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func node(newHash func() hash.Hash, left, right, dst []byte) {
	h := newHash()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}
