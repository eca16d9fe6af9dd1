package mhprefix_test

import (
	"crypto/sha256"
	"testing"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/gordian-engine/flatmerkle/merklehash/merklehashtest"
	"github.com/gordian-engine/flatmerkle/merklehash/mhprefix"
	"github.com/gordian-engine/flatmerkle/merklehash/mhsha256"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestCompliance(t *testing.T) {
	t.Run("sha256", func(t *testing.T) {
		t.Parallel()

		merklehashtest.TestHasherCompliance(t, func() merklehash.Hasher {
			return mhprefix.NewSHA256()
		})
	})

	t.Run("sha3", func(t *testing.T) {
		t.Parallel()

		merklehashtest.TestHasherCompliance(t, func() merklehash.Hasher {
			return mhprefix.New(sha3.New256)
		})
	})
}

func TestHasher_rfc6962Vectors(t *testing.T) {
	t.Parallel()

	h := mhprefix.NewSHA256()
	require.Equal(t, sha256.Size, h.Size())

	// RFC 6962 leaf hash of the empty string.
	got := make([]byte, h.Size())
	h.Leaf(nil, got[:0])
	want := sha256.Sum256([]byte{0x00})
	require.Equal(t, want[:], got)

	node := make([]byte, h.Size())
	h.Node(got, got, node[:0])
	wantNode := sha256.Sum256(append(append([]byte{0x01}, got...), got...))
	require.Equal(t, wantNode[:], node)
}

func TestHasher_separatesLeavesFromNodes(t *testing.T) {
	t.Parallel()

	var plain mhsha256.Hasher
	prefixed := mhprefix.NewSHA256()

	a := make([]byte, sha256.Size)
	plain.Leaf([]byte("a"), a[:0])
	b := make([]byte, sha256.Size)
	plain.Leaf([]byte("b"), b[:0])

	// With the plain hasher, the leaf of a||b collides with the node over a, b.
	block := append(append([]byte{}, a...), b...)
	plainLeaf := make([]byte, sha256.Size)
	plain.Leaf(block, plainLeaf[:0])
	plainNode := make([]byte, sha256.Size)
	plain.Node(a, b, plainNode[:0])
	require.Equal(t, plainNode, plainLeaf)

	prefLeaf := make([]byte, sha256.Size)
	prefixed.Leaf(block, prefLeaf[:0])
	prefNode := make([]byte, sha256.Size)
	prefixed.Node(a, b, prefNode[:0])
	require.NotEqual(t, prefNode, prefLeaf)
}
