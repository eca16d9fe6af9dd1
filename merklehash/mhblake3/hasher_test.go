package mhblake3_test

import (
	"testing"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/gordian-engine/flatmerkle/merklehash/merklehashtest"
	"github.com/gordian-engine/flatmerkle/merklehash/mhblake3"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	merklehashtest.TestHasherCompliance(t, func() merklehash.Hasher {
		return mhblake3.Hasher{}
	})
}

func TestHasher_Leaf(t *testing.T) {
	t.Parallel()

	got := make([]byte, mhblake3.HashSize)
	mhblake3.Hasher{}.Leaf([]byte("abc"), got[:0])

	want := blake3.Sum256([]byte("abc"))
	require.Equal(t, want[:], got)
}
