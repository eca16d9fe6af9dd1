// Package mhprefix provides a [merklehash.Hasher] with RFC 6962 style
// domain separation: leaves are hashed as H(0x00 || data)
// and nodes as H(0x01 || left || right).
//
// Plain hashers compute a node digest over the bare concatenation
// of its children, so a 2*Size byte block can produce a leaf digest
// equal to an interior node digest.
// The prefixes rule that out, at the cost of roots
// that differ from plain hashers over the same hash function.
package mhprefix

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/gordian-engine/flatmerkle/merklehash"
)

const (
	LeafPrefix byte = 0x00
	NodePrefix byte = 0x01
)

// Hasher is a domain-separated [merklehash.Hasher].
// Create one with [New] or [NewSHA256].
type Hasher struct {
	newHash func() hash.Hash
	size    int
}

var _ merklehash.Hasher = Hasher{}

// New returns a Hasher that uses a fresh hash from newHash
// for every leaf and node.
// The returned hashes must all have the same Size.
func New(newHash func() hash.Hash) Hasher {
	if newHash == nil {
		panic(fmt.Errorf("BUG: newHash must not be nil"))
	}

	return Hasher{
		newHash: newHash,
		size:    newHash().Size(),
	}
}

// NewSHA256 returns a domain-separated SHA-256 Hasher,
// matching the RFC 6962 tree hash functions.
func NewSHA256() Hasher {
	return New(sha256.New)
}

func (p Hasher) Leaf(in, dst []byte) {
	h := p.newHash()
	_, _ = h.Write([]byte{LeafPrefix})
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (p Hasher) Node(left, right, dst []byte) {
	h := p.newHash()
	_, _ = h.Write([]byte{NodePrefix})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

func (p Hasher) Size() int { return p.size }
