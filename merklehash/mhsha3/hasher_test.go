package mhsha3_test

import (
	"testing"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/gordian-engine/flatmerkle/merklehash/merklehashtest"
	"github.com/gordian-engine/flatmerkle/merklehash/mhsha3"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Run("sha3", func(t *testing.T) {
		t.Parallel()

		merklehashtest.TestHasherCompliance(t, func() merklehash.Hasher {
			return mhsha3.Hasher{}
		})
	})

	t.Run("keccak", func(t *testing.T) {
		t.Parallel()

		merklehashtest.TestHasherCompliance(t, func() merklehash.Hasher {
			return mhsha3.KeccakHasher{}
		})
	})
}

func TestKeccakHasher_differsFromSHA3(t *testing.T) {
	t.Parallel()

	a := make([]byte, mhsha3.HashSize)
	mhsha3.Hasher{}.Leaf([]byte("same input"), a[:0])

	b := make([]byte, mhsha3.HashSize)
	mhsha3.KeccakHasher{}.Leaf([]byte("same input"), b[:0])

	require.NotEqual(t, a, b)
}
